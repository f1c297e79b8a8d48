package services

import (
	"context"
	"strings"

	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/app/repositories"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
	"github.com/yigit/courseregistry/internal/pkg/validation"
)

// DefaultSeatLimit is assigned when an admin creates a course without an
// explicit seat limit.
const DefaultSeatLimit = 30

// CourseService defines the interface for course catalog operations
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	Update(ctx context.Context, req *dto.UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]dto.CourseView, error)
}

type courseService struct {
	courseRepo     *repositories.CourseRepository
	departmentRepo *repositories.DepartmentRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	departmentRepo *repositories.DepartmentRepository,
) CourseService {
	return &courseService{
		courseRepo:     courseRepo,
		departmentRepo: departmentRepo,
	}
}

// Create creates a course with a unique code in an existing department.
func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	code := strings.ToUpper(strings.TrimSpace(req.CourseCode))
	if !validation.IsValidCourseCode(code) {
		return nil, apperrors.NewBadRequestError("Invalid course code format")
	}

	seatLimit := DefaultSeatLimit
	if req.SeatLimit != nil {
		seatLimit = *req.SeatLimit
	}
	if seatLimit < 0 {
		return nil, apperrors.NewBadRequestError("Seat limit cannot be negative")
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	exists, err := s.courseRepo.CodeExists(ctx, code, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCourseCodeAlreadyExists
	}

	course := &models.Course{
		Name:         strings.TrimSpace(req.Name),
		CourseCode:   code,
		DepartmentID: req.DepartmentID,
		SeatLimit:    seatLimit,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// Update changes a course. Lowering seat_limit below the live enrollment
// count is allowed; existing registrations are never revoked, the course just
// reports zero available seats until drops catch up.
func (s *courseService) Update(ctx context.Context, req *dto.UpdateCourseRequest) (*models.Course, error) {
	code := strings.ToUpper(strings.TrimSpace(req.CourseCode))
	if !validation.IsValidCourseCode(code) {
		return nil, apperrors.NewBadRequestError("Invalid course code format")
	}

	current, err := s.courseRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	seatLimit := current.SeatLimit
	if req.SeatLimit != nil {
		seatLimit = *req.SeatLimit
	}
	if seatLimit < 0 {
		return nil, apperrors.NewBadRequestError("Seat limit cannot be negative")
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	exists, err := s.courseRepo.CodeExists(ctx, code, req.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCourseCodeAlreadyExists
	}

	course := &models.Course{
		ID:           req.ID,
		Name:         strings.TrimSpace(req.Name),
		CourseCode:   code,
		DepartmentID: req.DepartmentID,
		SeatLimit:    seatLimit,
	}
	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// Delete removes a course. Its registrations cascade at the schema level.
func (s *courseService) Delete(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}

// GetAll lists all courses with live seat availability.
func (s *courseService) GetAll(ctx context.Context) ([]dto.CourseView, error) {
	return s.courseRepo.GetAllWithAvailability(ctx)
}
