package dto

// LoginRequest carries credentials for either principal table. For admins the
// username is the admin username; for students it is the email address.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"secret123"`
	UserType string `json:"userType" binding:"required" example:"admin"`
}

// PrincipalDTO is the authenticated identity returned by login and validate.
// Admin principals carry Username/FullName; student principals carry
// Name/Department.
type PrincipalDTO struct {
	ID         int64  `json:"id"`
	Role       string `json:"role"`
	Email      string `json:"email,omitempty"`
	Username   string `json:"username,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	Name       string `json:"name,omitempty"`
	Department string `json:"department,omitempty"`
}
