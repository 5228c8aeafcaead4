package events

import "time"

const UserUpdatedTopic = "hr.user.updated.v1"

// UserUpdatedEvent dipublish user service eksternal setiap record user
// berubah. Gateway memakainya untuk membuang edit session yang
// baseline-nya sudah basi.
type UserUpdatedEvent struct {
	EventType  string    `json:"event_type"`
	UserID     string    `json:"user_id"`
	UpdatedBy  string    `json:"updated_by,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
