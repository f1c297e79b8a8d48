package dto

// CreateStudentRequest is the admin payload for creating a student. Password
// falls back to a default when omitted, matching the admin UI behavior.
type CreateStudentRequest struct {
	Name         string `json:"name" binding:"required" example:"Ada Lovelace"`
	Email        string `json:"email" binding:"required" example:"ada@example.edu"`
	DepartmentID int64  `json:"department_id" binding:"required" example:"1"`
	Password     string `json:"password,omitempty"`
}

// UpdateStudentRequest is the admin payload for updating a student. Method
// carries the _method override for clients that cannot issue native PUT.
type UpdateStudentRequest struct {
	Method       string `json:"_method,omitempty"`
	ID           int64  `json:"id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	DepartmentID int64  `json:"department_id" binding:"required"`
}

// CreateCourseRequest is the admin payload for creating a course.
type CreateCourseRequest struct {
	Name         string `json:"name" binding:"required" example:"Algorithms"`
	CourseCode   string `json:"course_code" binding:"required" example:"CS101"`
	DepartmentID int64  `json:"department_id" binding:"required" example:"1"`
	SeatLimit    *int   `json:"seat_limit,omitempty" example:"30"`
}

// UpdateCourseRequest is the admin payload for updating a course.
type UpdateCourseRequest struct {
	Method       string `json:"_method,omitempty"`
	ID           int64  `json:"id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	CourseCode   string `json:"course_code" binding:"required"`
	DepartmentID int64  `json:"department_id" binding:"required"`
	SeatLimit    *int   `json:"seat_limit,omitempty"`
}

// CreateDepartmentRequest is the admin payload for creating a department.
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required" example:"Computer Science"`
}

// UpdateDepartmentRequest is the admin payload for renaming a department.
type UpdateDepartmentRequest struct {
	Method string `json:"_method,omitempty"`
	ID     int64  `json:"id" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

// CourseView is one row of the course listing, including the live seat
// accounting derived from the ledger in the same query.
type CourseView struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	CourseCode     string `json:"course_code"`
	SeatLimit      int    `json:"seat_limit"`
	DepartmentName string `json:"department_name"`
	AvailableSeats int    `json:"available_seats"`
	EnrolledCount  int    `json:"enrolled_count"`
}

// StudentView is one row of the student listing.
type StudentView struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	DepartmentName string `json:"department_name"`
	IsActive       bool   `json:"is_active"`
}
