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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create creates a new student. The password must already be hashed.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, email, password, department_id, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.Name, student.Email, student.Password, student.DepartmentID, student.IsActive,
	).Scan(&student.ID)
	if err != nil {
		return err
	}

	return nil
}

// GetActiveByEmail retrieves an active student by email with the department
// joined for display. Inactive students are treated as absent.
func (r *StudentRepository) GetActiveByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `
		SELECT s.id, s.name, s.email, s.password, s.department_id, s.is_active, d.id, d.name
		FROM students s
		JOIN departments d ON s.department_id = d.id
		WHERE s.email = $1 AND s.is_active = TRUE
	`

	return r.scanStudentWithDepartment(r.db.QueryRow(ctx, query, email))
}

// GetActiveByID retrieves an active student by ID with the department joined.
func (r *StudentRepository) GetActiveByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT s.id, s.name, s.email, s.password, s.department_id, s.is_active, d.id, d.name
		FROM students s
		JOIN departments d ON s.department_id = d.id
		WHERE s.id = $1 AND s.is_active = TRUE
	`

	return r.scanStudentWithDepartment(r.db.QueryRow(ctx, query, id))
}

func (r *StudentRepository) scanStudentWithDepartment(row pgx.Row) (*models.Student, error) {
	var student models.Student
	var department models.Department
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.Password,
		&student.DepartmentID,
		&student.IsActive,
		&department.ID,
		&department.Name,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	student.Department = &department
	return &student, nil
}

// GetAll retrieves all students with their department names
func (r *StudentRepository) GetAll(ctx context.Context) ([]dto.StudentView, error) {
	query := `
		SELECT s.id, s.name, s.email, d.name, s.is_active
		FROM students s
		JOIN departments d ON s.department_id = d.id
		ORDER BY s.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]dto.StudentView, 0)
	for rows.Next() {
		var s dto.StudentView
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.DepartmentName, &s.IsActive); err != nil {
			return nil, err
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// EmailExists checks if a student email is taken, optionally excluding an ID
func (r *StudentRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student email existence: %w", err)
	}

	return exists, nil
}

// Update updates a student's profile fields. The password is not touched here.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, email = $2, department_id = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name, student.Email, student.DepartmentID, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by ID. Ledger rows cascade at the schema level.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
