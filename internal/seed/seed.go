package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/courseregistry/internal/app/models"
	appRepos "github.com/yigit/courseregistry/internal/app/repositories"
	"github.com/yigit/courseregistry/internal/config"
	"github.com/yigit/courseregistry/internal/pkg/auth"
	"github.com/yigit/courseregistry/internal/pkg/dberrors"
)

// CreateDefaultData seeds the default admin account and starter departments.
// There is no self-registration, so the principal tables must be usable out
// of the box. Re-running against a seeded database is a no-op.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminUserRepository(dbPool)
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)

	var finalErr error

	for _, name := range []string{"Computer Science", "Mathematics", "Physics"} {
		department := &appModels.Department{Name: name}
		if err := departmentRepo.Create(ctx, department); err != nil && !dberrors.IsUniqueViolation(err) {
			lgr.Error().Err(err).Str("department", name).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	exists, err := adminRepo.UsernameExists(ctx, cfg.Admin.Username)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return errors.Join(finalErr, err)
	}
	if exists {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return finalErr
	}

	password := cfg.Admin.Password
	if password == "" {
		lgr.Warn().Msg("No admin password configured, using default")
		password = "admin123"
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return errors.Join(finalErr, err)
	}

	admin := &appModels.AdminUser{
		Username: cfg.Admin.Username,
		Password: hashed,
		FullName: cfg.Admin.FullName,
		Email:    cfg.Admin.Email,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Int64("adminID", admin.ID).Str("username", admin.Username).
		Msg("Default admin user created successfully")
	return finalErr
}
