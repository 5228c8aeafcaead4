package submission

import (
	"encoding/json"
	"fmt"

	"github.com/HadirBos/hr-admin-gateway/internal/user"
)

const (
	TypeLeave       = "leave"
	TypeResignation = "resignation"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// EmployeeRef adalah field polimorfik: store eksternal kadang mengirim
// id mentah, kadang record user yang sudah di-expand. Caller wajib siap
// menerima keduanya.
type EmployeeRef struct {
	ID   string
	User *user.Data
}

// Expanded melaporkan apakah reference berisi record user penuh.
func (r EmployeeRef) Expanded() bool {
	return r.User != nil
}

func (r *EmployeeRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.User = nil
		return nil
	}

	var u user.Data
	if err := json.Unmarshal(data, &u); err != nil {
		return fmt.Errorf("employeeId is neither a string nor a user object: %w", err)
	}
	r.ID = u.ID
	r.User = &u
	return nil
}

func (r EmployeeRef) MarshalJSON() ([]byte, error) {
	if r.User != nil {
		return json.Marshal(r.User)
	}
	return json.Marshal(r.ID)
}

// Submission adalah record pengajuan cuti/resign. Status hanya diubah
// oleh approver workflow di luar gateway, dan transisinya satu arah:
// pending -> approved | rejected.
type Submission struct {
	ID         string      `json:"_id"`
	EmployeeID EmployeeRef `json:"employeeId"`
	Type       string      `json:"type"`
	Reason     string      `json:"reason"`
	StartDate  string      `json:"startDate,omitempty"`
	EndDate    string      `json:"endDate,omitempty"`
	Status     string      `json:"status"`
	FileURL    string      `json:"fileUrl,omitempty"`
	AdminNotes string      `json:"adminNotes,omitempty"`
	CreatedAt  string      `json:"createdAt"`
	UpdatedAt  string      `json:"updatedAt"`
}

// FormData adalah payload pembuatan submission dari sisi form.
type FormData struct {
	Type      string `json:"type" binding:"required,oneof=leave resignation"`
	Reason    string `json:"reason" binding:"required"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	FileURL   string `json:"fileUrl,omitempty"`
}

// StatusCounts adalah hitungan per status untuk satu tipe submission.
type StatusCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

type Percentages struct {
	Pending  float64 `json:"pending"`
	Approved float64 `json:"approved"`
	Rejected float64 `json:"rejected"`
}

type TypeStats struct {
	StatusCounts
	Percentages Percentages `json:"percentages"`
}

// Stats adalah agregat read-only dari analytics endpoint eksternal,
// dikonsumsi hanya untuk tampilan.
type Stats struct {
	Leave       TypeStats `json:"leave"`
	Resignation TypeStats `json:"resignation"`
	Total       TypeStats `json:"total"`
}

type TrendBucket struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type TrendPoint struct {
	Year        int         `json:"year"`
	Month       int         `json:"month"`
	Leave       TrendBucket `json:"leave"`
	Resignation TrendBucket `json:"resignation"`
}

type Trend struct {
	Trend []TrendPoint `json:"trend"`
}
