package user

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// Data adalah record user milik user service eksternal. Gateway hanya
// membaca dan mengusulkan partial update; field names mengikuti wire
// format service tersebut (camelCase).
type Data struct {
	ID            string  `json:"_id,omitempty"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	Department    string  `json:"department,omitempty"`
	Position      string  `json:"position,omitempty"`
	BaseSalary    float64 `json:"baseSalary,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Address       string  `json:"address,omitempty"`
	AccountNumber string  `json:"accountNumber,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty"`
}

// Patch adalah partial update yang hanya berisi field yang berubah.
type Patch map[string]any
