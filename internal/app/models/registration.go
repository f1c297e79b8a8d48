package models

import "time"

// Registration is a ledger entry recording that a student holds a seat in a
// course. The (StudentID, CourseID) pair is unique.
type Registration struct {
	ID           int64     `json:"id" db:"id"`
	StudentID    int64     `json:"student_id" db:"student_id"`
	CourseID     int64     `json:"course_id" db:"course_id"`
	RegisteredAt time.Time `json:"registered_at" db:"registered_at"`
}
