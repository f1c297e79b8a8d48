package models

// Student defines the student model based on the 'students' table.
// Password holds the bcrypt hash, never the plaintext.
type Student struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	Password     string `json:"-" db:"password"`
	DepartmentID int64  `json:"department_id" db:"department_id"`
	IsActive     bool   `json:"is_active" db:"is_active"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}
