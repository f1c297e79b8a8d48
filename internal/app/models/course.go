package models

// Course represents a course offered by a department. SeatLimit is the
// hard upper bound on concurrent enrollments enforced by the enrollment
// engine.
type Course struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	CourseCode   string `json:"course_code" db:"course_code"`
	DepartmentID int64  `json:"department_id" db:"department_id"`
	SeatLimit    int    `json:"seat_limit" db:"seat_limit"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}
