package editform

type CreateSessionRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type SetFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

type SessionResponse struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	State      string         `json:"state"`
	Fields     map[string]any `json:"fields,omitempty"`
	Submitting bool           `json:"submitting"`
	LoadError  string         `json:"load_error,omitempty"`
}

type SubmitResponse struct {
	Patch   map[string]any `json:"patch"`
	Updated bool           `json:"updated"`
}

func mapToResponse(s *Session) SessionResponse {
	fields := s.Fields
	if fields != nil {
		// password tidak pernah dikembalikan untuk ditampilkan
		masked := make(map[string]any, len(fields))
		for k, v := range fields {
			if k == FieldPassword {
				continue
			}
			masked[k] = v
		}
		fields = masked
	}
	return SessionResponse{
		ID:         s.ID,
		UserID:     s.UserID,
		State:      string(s.State),
		Fields:     fields,
		Submitting: s.Submitting,
		LoadError:  s.LoadError,
	}
}
