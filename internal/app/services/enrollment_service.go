package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/app/models/dto/enums"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
)

// Outcome is the structured result of a registration mutation: a
// machine-checkable status plus a message safe to display directly.
type Outcome struct {
	Status  enums.OutcomeStatus `json:"status"`
	Message string              `json:"message"`
}

// EnrollmentStore is the ledger access the enrollment engine needs. The pgx
// implementation serializes Register per course with a row-level lock; any
// implementation must guarantee that two concurrent Register calls cannot
// both claim the last seat.
type EnrollmentStore interface {
	Register(ctx context.Context, studentID, courseID int64) (*models.Registration, error)
	Drop(ctx context.Context, studentID, courseID int64) error
	AvailableSeats(ctx context.Context, courseID int64) (int, error)
}

// EnrollmentLister reads the ledger for the three listing shapes.
type EnrollmentLister interface {
	ListByStudent(ctx context.Context, studentID int64) ([]dto.EnrollmentView, error)
	ListByCourse(ctx context.Context, courseID int64) ([]dto.EnrollmentView, error)
	ListAll(ctx context.Context) ([]dto.EnrollmentView, error)
}

// EnrollmentService is the registration workflow: capacity-aware register,
// drop, the live seat count, and the ledger listings.
type EnrollmentService interface {
	Register(ctx context.Context, studentID, courseID int64) Outcome
	Drop(ctx context.Context, studentID, courseID int64) Outcome
	AvailableSeats(ctx context.Context, courseID int64) (int, error)
	ListByStudent(ctx context.Context, studentID int64) ([]dto.EnrollmentView, error)
	ListByCourse(ctx context.Context, courseID int64) ([]dto.EnrollmentView, error)
	ListAll(ctx context.Context) ([]dto.EnrollmentView, error)
}

type enrollmentService struct {
	store  EnrollmentStore
	lister EnrollmentLister
	logger zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService. The pgx repository
// satisfies both interfaces; tests substitute fakes.
func NewEnrollmentService(store EnrollmentStore, lister EnrollmentLister, logger zerolog.Logger) EnrollmentService {
	return &enrollmentService{
		store:  store,
		lister: lister,
		logger: logger,
	}
}

// Register claims a seat for the student. The store performs the
// duplicate/capacity checks and the insert atomically; this layer translates
// the result into an Outcome and keeps storage errors from leaking to
// callers.
func (s *enrollmentService) Register(ctx context.Context, studentID, courseID int64) Outcome {
	_, err := s.store.Register(ctx, studentID, courseID)
	switch {
	case err == nil:
		return Outcome{Status: enums.OutcomeRegistered, Message: "Successfully registered for course"}
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		return Outcome{Status: enums.OutcomeAlreadyRegistered, Message: "Student is already registered for this course"}
	case errors.Is(err, apperrors.ErrCourseFull):
		return Outcome{Status: enums.OutcomeCourseFull, Message: "Course is full, no available seats"}
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return Outcome{Status: enums.OutcomeNotFound, Message: "Student not found"}
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return Outcome{Status: enums.OutcomeNotFound, Message: "Course not found"}
	default:
		s.logger.Error().Err(err).
			Int64("studentID", studentID).
			Int64("courseID", courseID).
			Msg("Registration failed with storage error")
		return Outcome{Status: enums.OutcomeSystemError, Message: "Error registering for course"}
	}
}

// Drop releases the student's seat. The freed seat is observable to the next
// Register call immediately; no counts are cached anywhere.
func (s *enrollmentService) Drop(ctx context.Context, studentID, courseID int64) Outcome {
	err := s.store.Drop(ctx, studentID, courseID)
	switch {
	case err == nil:
		return Outcome{Status: enums.OutcomeDropped, Message: "Successfully dropped course"}
	case errors.Is(err, apperrors.ErrNotRegistered):
		return Outcome{Status: enums.OutcomeNotRegistered, Message: "Student is not registered for this course"}
	default:
		s.logger.Error().Err(err).
			Int64("studentID", studentID).
			Int64("courseID", courseID).
			Msg("Drop failed with storage error")
		return Outcome{Status: enums.OutcomeSystemError, Message: "Error dropping course"}
	}
}

// AvailableSeats returns the live seat count from the store's view of the
// ledger. Callers must treat it as advisory: Register re-validates capacity
// under the course lock regardless of what this reported.
func (s *enrollmentService) AvailableSeats(ctx context.Context, courseID int64) (int, error) {
	return s.store.AvailableSeats(ctx, courseID)
}

// ListByStudent lists the student's registrations with course details.
func (s *enrollmentService) ListByStudent(ctx context.Context, studentID int64) ([]dto.EnrollmentView, error) {
	return s.lister.ListByStudent(ctx, studentID)
}

// ListByCourse lists the course roster with student details.
func (s *enrollmentService) ListByCourse(ctx context.Context, courseID int64) ([]dto.EnrollmentView, error) {
	return s.lister.ListByCourse(ctx, courseID)
}

// ListAll lists the full ledger with both sides joined.
func (s *enrollmentService) ListAll(ctx context.Context) ([]dto.EnrollmentView, error) {
	return s.lister.ListAll(ctx)
}
