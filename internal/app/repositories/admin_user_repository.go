package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
)

// AdminUserRepository handles database operations for admin principals.
// Admin accounts are seeded, not self-registered, so there is no Create here.
type AdminUserRepository struct {
	db *pgxpool.Pool
}

// NewAdminUserRepository creates a new admin user repository
func NewAdminUserRepository(db *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

// GetByUsername retrieves an admin by username
func (r *AdminUserRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	query := `
		SELECT id, username, password, full_name, email
		FROM admin_users
		WHERE username = $1
	`

	var admin models.AdminUser
	err := r.db.QueryRow(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.Password,
		&admin.FullName,
		&admin.Email,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving admin user: %w", err)
	}

	return &admin, nil
}

// GetByID retrieves an admin by ID
func (r *AdminUserRepository) GetByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	query := `
		SELECT id, username, password, full_name, email
		FROM admin_users
		WHERE id = $1
	`

	var admin models.AdminUser
	err := r.db.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.Username,
		&admin.Password,
		&admin.FullName,
		&admin.Email,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving admin user: %w", err)
	}

	return &admin, nil
}

// UsernameExists checks whether an admin with the given username exists.
func (r *AdminUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM admin_users WHERE username = $1)`,
		username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admin username existence: %w", err)
	}
	return exists, nil
}

// Create inserts an admin principal. Used only by seeding.
func (r *AdminUserRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	query := `
		INSERT INTO admin_users (username, password, full_name, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, admin.Username, admin.Password, admin.FullName, admin.Email).Scan(&admin.ID)
	if err != nil {
		return fmt.Errorf("error creating admin user: %w", err)
	}
	return nil
}
