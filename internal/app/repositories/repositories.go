// Package repositories contains the pgx-backed data access layer.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository instances sharing one connection pool.
type Repositories struct {
	AdminUserRepository  *AdminUserRepository
	StudentRepository    *StudentRepository
	DepartmentRepository *DepartmentRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	SessionRepository    *SessionRepository
}

// NewRepositories creates all repositories over the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminUserRepository:  NewAdminUserRepository(db),
		StudentRepository:    NewStudentRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		SessionRepository:    NewSessionRepository(db),
	}
}
