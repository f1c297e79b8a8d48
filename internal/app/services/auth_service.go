package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/courseregistry/internal/app/auth"
	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
	pkgauth "github.com/yigit/courseregistry/internal/pkg/auth"
)

// AdminDirectory is the admin principal table access the auth gateway needs.
type AdminDirectory interface {
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	GetByID(ctx context.Context, id int64) (*models.AdminUser, error)
}

// StudentDirectory is the student principal table access the auth gateway
// needs. Both lookups must exclude inactive students.
type StudentDirectory interface {
	GetActiveByEmail(ctx context.Context, email string) (*models.Student, error)
	GetActiveByID(ctx context.Context, id int64) (*models.Student, error)
}

// SessionStore is the session persistence the auth gateway needs.
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	GetValidByID(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// AuthService is the session gateway: login issues an opaque token, validate
// resolves it back to a live principal, logout revokes it.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.PrincipalDTO, string, error)
	Validate(ctx context.Context, sessionID string) (*dto.PrincipalDTO, error)
	Logout(ctx context.Context, sessionID string) error
	SessionTTL() time.Duration
}

type authService struct {
	registry *appauth.Registry
	sessions SessionStore
	ttl      time.Duration
	logger   zerolog.Logger
}

// NewAuthService creates an AuthService with one principal source per role.
func NewAuthService(
	admins AdminDirectory,
	students StudentDirectory,
	sessions SessionStore,
	ttl time.Duration,
	logger zerolog.Logger,
) AuthService {
	registry := appauth.NewRegistry()
	registry.Register(models.RoleAdmin, &adminSource{admins: admins})
	registry.Register(models.RoleStudent, &studentSource{students: students})

	return &authService{
		registry: registry,
		sessions: sessions,
		ttl:      ttl,
		logger:   logger,
	}
}

// Login authenticates against the principal table selected by the request's
// role and issues a new session. Credential failures are uniform across
// unknown identifier, wrong password and inactive account.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.PrincipalDTO, string, error) {
	role := models.UserRole(req.UserType)
	if !role.Valid() {
		return nil, "", apperrors.NewBadRequestError("Invalid user type")
	}

	source, ok := s.registry.Lookup(role)
	if !ok {
		return nil, "", fmt.Errorf("no principal source registered for role %q", role)
	}

	principal, err := source.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, "", err
	}

	// Lazy eviction: expired sessions are only ever removed here, amortized
	// across logins. A failure is not fatal to the login itself.
	if evicted, err := s.sessions.DeleteExpired(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to evict expired sessions")
	} else if evicted > 0 {
		s.logger.Debug().Int64("evicted", evicted).Msg("Evicted expired sessions")
	}

	token, err := pkgauth.NewSessionToken()
	if err != nil {
		return nil, "", err
	}

	session := &models.Session{
		SessionID: token,
		UserID:    principal.ID,
		UserType:  role,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, "", err
	}

	return principal, token, nil
}

// Validate resolves a session token back to a live principal. The principal
// row is re-fetched rather than cached in the session, so profile changes
// and deactivations take effect on the next request.
func (s *authService) Validate(ctx context.Context, sessionID string) (*dto.PrincipalDTO, error) {
	if sessionID == "" {
		return nil, apperrors.ErrSessionInvalid
	}

	session, err := s.sessions.GetValidByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	source, ok := s.registry.Lookup(session.UserType)
	if !ok {
		return nil, apperrors.ErrSessionInvalid
	}

	principal, err := source.Resolve(ctx, session.UserID)
	if errors.Is(err, apperrors.ErrResourceNotFound) || errors.Is(err, apperrors.ErrStudentNotFound) {
		// The session outlived its principal (deleted or deactivated).
		return nil, apperrors.ErrSessionInvalid
	}
	if err != nil {
		return nil, err
	}

	return principal, nil
}

// Logout deletes the session row. Idempotent: logging out twice succeeds.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// SessionTTL returns the configured session lifetime, used by the controller
// to set the cookie max-age.
func (s *authService) SessionTTL() time.Duration {
	return s.ttl
}

// adminSource resolves principals from the admin_users table.
type adminSource struct {
	admins AdminDirectory
}

func (a *adminSource) Authenticate(ctx context.Context, identifier, secret string) (*dto.PrincipalDTO, error) {
	admin, err := a.admins.GetByUsername(ctx, identifier)
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		// A storage failure is not a credential failure; let it surface as one.
		return nil, fmt.Errorf("admin lookup failed: %w", err)
	}
	if !pkgauth.CheckPassword(admin.Password, secret) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return adminPrincipal(admin), nil
}

func (a *adminSource) Resolve(ctx context.Context, userID int64) (*dto.PrincipalDTO, error) {
	admin, err := a.admins.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return adminPrincipal(admin), nil
}

func adminPrincipal(admin *models.AdminUser) *dto.PrincipalDTO {
	return &dto.PrincipalDTO{
		ID:       admin.ID,
		Role:     string(models.RoleAdmin),
		Username: admin.Username,
		FullName: admin.FullName,
		Email:    admin.Email,
	}
}

// studentSource resolves principals from the students table. Students log in
// with their email address and carry their department name for display.
type studentSource struct {
	students StudentDirectory
}

func (s *studentSource) Authenticate(ctx context.Context, identifier, secret string) (*dto.PrincipalDTO, error) {
	student, err := s.students.GetActiveByEmail(ctx, identifier)
	if errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("student lookup failed: %w", err)
	}
	if !pkgauth.CheckPassword(student.Password, secret) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return studentPrincipal(student), nil
}

func (s *studentSource) Resolve(ctx context.Context, userID int64) (*dto.PrincipalDTO, error) {
	student, err := s.students.GetActiveByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return studentPrincipal(student), nil
}

func studentPrincipal(student *models.Student) *dto.PrincipalDTO {
	p := &dto.PrincipalDTO{
		ID:    student.ID,
		Role:  string(models.RoleStudent),
		Name:  student.Name,
		Email: student.Email,
	}
	if student.Department != nil {
		p.Department = student.Department.Name
	}
	return p
}
