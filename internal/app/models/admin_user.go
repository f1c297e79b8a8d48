package models

// AdminUser is a static principal; there is no self-registration for admins.
type AdminUser struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
	FullName string `json:"full_name" db:"full_name"`
	Email    string `json:"email" db:"email"`
}
