package editform

import (
	"time"

	"github.com/HadirBos/hr-admin-gateway/internal/user"
)

// State adalah lifecycle sebuah edit session. Transisi hanya dilakukan
// oleh operasi Load: uninitialized -> loading -> ready | failed.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateReady         State = "ready"
	StateFailed        State = "failed"
)

const FieldPassword = "password"

// FieldNames adalah sepuluh field yang boleh diedit, urutannya tetap.
var FieldNames = []string{
	"name",
	"email",
	FieldPassword,
	"role",
	"department",
	"position",
	"baseSalary",
	"phone",
	"address",
	"accountNumber",
}

// Session menampung working state satu form edit user: snapshot baseline
// hasil fetch (immutable setelah load) dan salinan editable-nya.
type Session struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	State      State          `json:"state"`
	Baseline   map[string]any `json:"baseline,omitempty"`
	Fields     map[string]any `json:"fields,omitempty"`
	Submitting bool           `json:"submitting"`
	LoadError  string         `json:"load_error,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// IsEditableField melaporkan apakah nama field termasuk yang boleh diedit.
func IsEditableField(name string) bool {
	for _, f := range FieldNames {
		if f == name {
			return true
		}
	}
	return false
}

// seedFields membangun field map dari record hasil fetch. Field yang
// kosong di record diberi default sesuai tipenya; password selalu kosong
// karena tidak pernah di-round-trip untuk ditampilkan.
func seedFields(d user.Data) map[string]any {
	role := d.Role
	if role == "" {
		role = user.RoleEmployee
	}
	return map[string]any{
		"name":          d.Name,
		"email":         d.Email,
		FieldPassword:   "",
		"role":          role,
		"department":    d.Department,
		"position":      d.Position,
		"baseSalary":    d.BaseSalary,
		"phone":         d.Phone,
		"address":       d.Address,
		"accountNumber": d.AccountNumber,
	}
}

// Seed mengisi baseline dan salinan editable dari record hasil fetch dan
// menandai session siap diedit.
func (s *Session) Seed(d user.Data) {
	s.Baseline = seedFields(d)
	s.Fields = seedFields(d)
	s.State = StateReady
	s.LoadError = ""
}

// ComputePatch menghitung sparse patch: hanya field yang nilainya berbeda
// dari baseline (perbandingan representasi apa adanya, tanpa normalisasi
// numerik). Password hanya ikut bila diisi. Form yang tidak disentuh
// menghasilkan patch kosong.
func (s *Session) ComputePatch() user.Patch {
	patch := user.Patch{}
	for _, name := range FieldNames {
		current := s.Fields[name]
		if name == FieldPassword {
			if current != "" {
				patch[name] = current
			}
			continue
		}
		if current != s.Baseline[name] {
			patch[name] = current
		}
	}
	return patch
}
