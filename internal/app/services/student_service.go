package services

import (
	"context"
	"strings"

	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/app/repositories"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
	pkgauth "github.com/yigit/courseregistry/internal/pkg/auth"
	"github.com/yigit/courseregistry/internal/pkg/validation"
)

// DefaultStudentPassword is assigned when an admin creates a student without
// an explicit password. Students are expected to change it after first login.
const DefaultStudentPassword = "student123"

// StudentService defines the interface for student catalog operations
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	Update(ctx context.Context, req *dto.UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]dto.StudentView, error)
}

type studentService struct {
	studentRepo    *repositories.StudentRepository
	departmentRepo *repositories.DepartmentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	departmentRepo *repositories.DepartmentRepository,
) StudentService {
	return &studentService{
		studentRepo:    studentRepo,
		departmentRepo: departmentRepo,
	}
}

// Create creates a student with a unique email in an existing department. New
// students start active.
func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	email := strings.TrimSpace(req.Email)
	if !validation.IsValidEmail(email) {
		return nil, apperrors.NewBadRequestError("Invalid email address")
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	exists, err := s.studentRepo.EmailExists(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	password := req.Password
	if password == "" {
		password = DefaultStudentPassword
	}
	hashed, err := pkgauth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Password:     hashed,
		DepartmentID: req.DepartmentID,
		IsActive:     true,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Update changes a student's profile fields. The password is left untouched.
func (s *studentService) Update(ctx context.Context, req *dto.UpdateStudentRequest) (*models.Student, error) {
	email := strings.TrimSpace(req.Email)
	if !validation.IsValidEmail(email) {
		return nil, apperrors.NewBadRequestError("Invalid email address")
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	exists, err := s.studentRepo.EmailExists(ctx, email, req.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	student := &models.Student{
		ID:           req.ID,
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		DepartmentID: req.DepartmentID,
	}
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Delete removes a student. Their registrations cascade at the schema level,
// freeing any claimed seats.
func (s *studentService) Delete(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}

// GetAll lists all students with department names. Admin only; enforced at
// the route level.
func (s *studentService) GetAll(ctx context.Context) ([]dto.StudentView, error) {
	return s.studentRepo.GetAll(ctx)
}
