package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/db"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
	"github.com/yigit/courseregistry/internal/pkg/dberrors"
)

// EnrollmentRepository owns the registration ledger. Register is the only
// code path that inserts ledger rows; it runs the capacity check and the
// insert in one transaction serialized per course by a row-level lock on the
// course record, so two concurrent registrations for the last seat cannot
// both commit. Registrations for different courses lock different rows and
// proceed in parallel.
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Register atomically claims a seat for the student in the course.
// Returns apperrors.ErrStudentNotFound, ErrCourseNotFound,
// ErrAlreadyRegistered or ErrCourseFull on the corresponding failure; the
// transaction rolls back on every failure path, so no partial writes are
// possible.
func (r *EnrollmentRepository) Register(ctx context.Context, studentID, courseID int64) (*models.Registration, error) {
	registration := &models.Registration{
		StudentID: studentID,
		CourseID:  courseID,
	}

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var isActive bool
		err := tx.QueryRow(ctx, `SELECT is_active FROM students WHERE id = $1`, studentID).Scan(&isActive)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrStudentNotFound
		}
		if err != nil {
			return fmt.Errorf("error checking student: %w", err)
		}
		if !isActive {
			return apperrors.ErrStudentNotFound
		}

		// The FOR UPDATE lock on the course row is what serializes concurrent
		// registrations for the same course. It is held until commit/rollback.
		var seatLimit int
		err = tx.QueryRow(ctx, `SELECT seat_limit FROM courses WHERE id = $1 FOR UPDATE`, courseID).Scan(&seatLimit)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrCourseNotFound
		}
		if err != nil {
			return fmt.Errorf("error locking course row: %w", err)
		}

		var alreadyRegistered bool
		err = tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM registrations WHERE student_id = $1 AND course_id = $2)`,
			studentID, courseID).Scan(&alreadyRegistered)
		if err != nil {
			return fmt.Errorf("error checking existing registration: %w", err)
		}
		if alreadyRegistered {
			return apperrors.ErrAlreadyRegistered
		}

		var enrolledCount int
		err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM registrations WHERE course_id = $1`, courseID).Scan(&enrolledCount)
		if err != nil {
			return fmt.Errorf("error counting enrollments: %w", err)
		}
		if seatLimit-enrolledCount <= 0 {
			return apperrors.ErrCourseFull
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO registrations (student_id, course_id)
			VALUES ($1, $2)
			RETURNING id, registered_at`,
			studentID, courseID).Scan(&registration.ID, &registration.RegisteredAt)
		if err != nil {
			// Backstop: the unique constraint catches a duplicate that slipped
			// past the pre-check (cannot happen while the course lock is held,
			// but the constraint stays authoritative).
			if dberrors.IsDuplicateConstraintError(err, "registrations_student_id_course_id_key") {
				return apperrors.ErrAlreadyRegistered
			}
			return fmt.Errorf("error inserting registration: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return registration, nil
}

// Drop removes the student's registration for the course, freeing one seat
// immediately for subsequent Register calls. Returns
// apperrors.ErrNotRegistered when no ledger row exists.
func (r *EnrollmentRepository) Drop(ctx context.Context, studentID, courseID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM registrations WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID)
	if err != nil {
		return fmt.Errorf("error dropping registration: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotRegistered
	}

	return nil
}

// AvailableSeats returns seat_limit minus the live enrollment count. The
// count comes from the same ledger Register reads; there is no cached seat
// counter anywhere, so a subsequent Register re-validates against the same
// view of the data.
func (r *EnrollmentRepository) AvailableSeats(ctx context.Context, courseID int64) (int, error) {
	query := `
		SELECT c.seat_limit - COUNT(reg.id)
		FROM courses c
		LEFT JOIN registrations reg ON reg.course_id = c.id
		WHERE c.id = $1
		GROUP BY c.seat_limit
	`

	var available int
	err := r.db.QueryRow(ctx, query, courseID).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperrors.ErrCourseNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("error computing available seats: %w", err)
	}

	if available < 0 {
		available = 0
	}
	return available, nil
}

// ListByStudent returns the courses a student is registered in, newest first.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]dto.EnrollmentView, error) {
	query := `
		SELECT reg.id, reg.registered_at,
		       c.id, c.name, c.course_code,
		       d.name
		FROM registrations reg
		JOIN courses c ON reg.course_id = c.id
		JOIN departments d ON c.department_id = d.id
		WHERE reg.student_id = $1
		ORDER BY reg.registered_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]dto.EnrollmentView, 0)
	for rows.Next() {
		var v dto.EnrollmentView
		var registeredAt time.Time
		if err := rows.Scan(&v.ID, &registeredAt,
			&v.CourseID, &v.CourseName, &v.CourseCode,
			&v.DepartmentName); err != nil {
			return nil, err
		}
		v.RegisteredAt = registeredAt.UTC().Format(time.RFC3339)
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

// ListByCourse returns the students enrolled in a course, ordered by name.
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID int64) ([]dto.EnrollmentView, error) {
	query := `
		SELECT reg.id, reg.registered_at,
		       s.id, s.name, s.email,
		       d.name
		FROM registrations reg
		JOIN students s ON reg.student_id = s.id
		JOIN departments d ON s.department_id = d.id
		WHERE reg.course_id = $1
		ORDER BY s.name
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]dto.EnrollmentView, 0)
	for rows.Next() {
		var v dto.EnrollmentView
		var registeredAt time.Time
		if err := rows.Scan(&v.ID, &registeredAt,
			&v.StudentID, &v.StudentName, &v.StudentEmail,
			&v.DepartmentName); err != nil {
			return nil, err
		}
		v.RegisteredAt = registeredAt.UTC().Format(time.RFC3339)
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

// ListAll returns the full ledger with student, course and both department
// names, newest first.
func (r *EnrollmentRepository) ListAll(ctx context.Context) ([]dto.EnrollmentView, error) {
	query := `
		SELECT reg.id, reg.registered_at,
		       s.id, s.name, s.email,
		       c.id, c.name, c.course_code,
		       sd.name, cd.name
		FROM registrations reg
		JOIN students s ON reg.student_id = s.id
		JOIN courses c ON reg.course_id = c.id
		JOIN departments sd ON s.department_id = sd.id
		JOIN departments cd ON c.department_id = cd.id
		ORDER BY reg.registered_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]dto.EnrollmentView, 0)
	for rows.Next() {
		var v dto.EnrollmentView
		var registeredAt time.Time
		if err := rows.Scan(&v.ID, &registeredAt,
			&v.StudentID, &v.StudentName, &v.StudentEmail,
			&v.CourseID, &v.CourseName, &v.CourseCode,
			&v.StudentDepartment, &v.CourseDepartment); err != nil {
			return nil, err
		}
		v.RegisteredAt = registeredAt.UTC().Format(time.RFC3339)
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
