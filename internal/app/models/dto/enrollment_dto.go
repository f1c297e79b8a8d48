package dto

// RegisterRequest is the body of POST /registrations.
type RegisterRequest struct {
	StudentID int64 `json:"student_id" binding:"required" example:"1"`
	CourseID  int64 `json:"course_id" binding:"required" example:"3"`
}

// EnrollmentView is one row of the enrollment listing. Fields are populated
// depending on whether the listing is scoped by student, by course, or
// unscoped; absent fields are omitted.
type EnrollmentView struct {
	ID           int64  `json:"id"`
	RegisteredAt string `json:"registered_at"`

	CourseID   int64  `json:"course_id,omitempty"`
	CourseName string `json:"course_name,omitempty"`
	CourseCode string `json:"course_code,omitempty"`

	StudentID    int64  `json:"student_id,omitempty"`
	StudentName  string `json:"student_name,omitempty"`
	StudentEmail string `json:"student_email,omitempty"`

	DepartmentName    string `json:"department_name,omitempty"`
	StudentDepartment string `json:"student_department,omitempty"`
	CourseDepartment  string `json:"course_department,omitempty"`
}
