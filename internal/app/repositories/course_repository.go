package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, course_code, department_id, seat_limit)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.Name, course.CourseCode, course.DepartmentID, course.SeatLimit,
	).Scan(&course.ID)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, name, course_code, department_id, seat_limit
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.CourseCode,
		&course.DepartmentID,
		&course.SeatLimit,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetAllWithAvailability retrieves all courses with department names and live
// seat accounting derived from the ledger in the same query. The listing is a
// point-in-time view; register re-validates capacity independently.
func (r *CourseRepository) GetAllWithAvailability(ctx context.Context) ([]dto.CourseView, error) {
	query := `
		SELECT c.id, c.name, c.course_code, c.seat_limit, d.name,
		       COUNT(reg.id) AS enrolled_count
		FROM courses c
		JOIN departments d ON c.department_id = d.id
		LEFT JOIN registrations reg ON reg.course_id = c.id
		GROUP BY c.id, c.name, c.course_code, c.seat_limit, d.name
		ORDER BY d.name, c.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]dto.CourseView, 0)
	for rows.Next() {
		var c dto.CourseView
		if err := rows.Scan(&c.ID, &c.Name, &c.CourseCode, &c.SeatLimit, &c.DepartmentName, &c.EnrolledCount); err != nil {
			return nil, err
		}
		c.AvailableSeats = c.SeatLimit - c.EnrolledCount
		if c.AvailableSeats < 0 {
			// Possible after an admin lowers seat_limit below the live count.
			c.AvailableSeats = 0
		}
		courses = append(courses, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// CodeExists checks if a course code is taken, optionally excluding an ID
func (r *CourseRepository) CodeExists(ctx context.Context, code string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE course_code = $1 AND id != $2)`,
		code, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course code existence: %w", err)
	}

	return exists, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = $1, course_code = $2, department_id = $3, seat_limit = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Name, course.CourseCode, course.DepartmentID, course.SeatLimit, course.ID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID. Ledger rows cascade at the schema level.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
