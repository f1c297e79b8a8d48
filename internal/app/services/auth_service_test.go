package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

func hashForTest(t *testing.T, password string) string {
	t.Helper()
	// MinCost keeps the tests fast; the production path uses a higher cost.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	return string(hash)
}

type fakeAdminDirectory struct {
	admins map[string]*models.AdminUser
	err    error
}

func (d *fakeAdminDirectory) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	if d.err != nil {
		return nil, d.err
	}
	admin, ok := d.admins[username]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return admin, nil
}

func (d *fakeAdminDirectory) GetByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	if d.err != nil {
		return nil, d.err
	}
	for _, admin := range d.admins {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

type fakeStudentDirectory struct {
	students map[string]*models.Student
	err      error
}

func (d *fakeStudentDirectory) GetActiveByEmail(ctx context.Context, email string) (*models.Student, error) {
	if d.err != nil {
		return nil, d.err
	}
	student, ok := d.students[email]
	if !ok || !student.IsActive {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (d *fakeStudentDirectory) GetActiveByID(ctx context.Context, id int64) (*models.Student, error) {
	if d.err != nil {
		return nil, d.err
	}
	for _, student := range d.students {
		if student.ID == id && student.IsActive {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

type fakeSessionStore struct {
	sessions map[string]*models.Session
	now      time.Time
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		sessions: make(map[string]*models.Session),
		now:      time.Now(),
	}
}

func (s *fakeSessionStore) Create(ctx context.Context, session *models.Session) error {
	s.sessions[session.SessionID] = session
	return nil
}

func (s *fakeSessionStore) GetValidByID(ctx context.Context, sessionID string) (*models.Session, error) {
	session, ok := s.sessions[sessionID]
	if !ok || session.Expired(s.now) {
		return nil, apperrors.ErrSessionInvalid
	}
	return session, nil
}

func (s *fakeSessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func (s *fakeSessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	var evicted int64
	for id, session := range s.sessions {
		if session.Expired(s.now) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted, nil
}

func newTestAuthService(t *testing.T, sessions SessionStore) AuthService {
	t.Helper()

	admins := &fakeAdminDirectory{admins: map[string]*models.AdminUser{
		"admin": {
			ID:       1,
			Username: "admin",
			Password: hashForTest(t, "secret"),
			FullName: "System Administrator",
			Email:    "admin@example.edu",
		},
	}}
	students := &fakeStudentDirectory{students: map[string]*models.Student{
		"ada@example.edu": {
			ID:           7,
			Name:         "Ada Lovelace",
			Email:        "ada@example.edu",
			Password:     hashForTest(t, "student123"),
			DepartmentID: 1,
			IsActive:     true,
			Department:   &models.Department{ID: 1, Name: "Mathematics"},
		},
		"inactive@example.edu": {
			ID:       8,
			Email:    "inactive@example.edu",
			Password: hashForTest(t, "student123"),
			IsActive: false,
		},
	}}

	return NewAuthService(admins, students, sessions, 24*time.Hour, zerolog.Nop())
}

func TestLoginAdmin(t *testing.T) {
	sessions := newFakeSessionStore()
	svc := newTestAuthService(t, sessions)

	principal, sessionID, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "secret",
		UserType: "admin",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if principal.Role != "admin" || principal.Username != "admin" || principal.FullName == "" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
	if len(sessionID) != 64 {
		t.Fatalf("expected 64-char hex token, got %d chars", len(sessionID))
	}
	if _, ok := sessions.sessions[sessionID]; !ok {
		t.Fatal("session was not persisted")
	}
}

func TestLoginStudentCarriesDepartment(t *testing.T) {
	svc := newTestAuthService(t, newFakeSessionStore())

	principal, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ada@example.edu",
		Password: "student123",
		UserType: "student",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if principal.Role != "student" || principal.Department != "Mathematics" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	svc := newTestAuthService(t, newFakeSessionStore())
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"unknown admin", dto.LoginRequest{Username: "nobody", Password: "secret", UserType: "admin"}},
		{"wrong admin password", dto.LoginRequest{Username: "admin", Password: "wrong", UserType: "admin"}},
		{"unknown student", dto.LoginRequest{Username: "nobody@example.edu", Password: "student123", UserType: "student"}},
		{"wrong student password", dto.LoginRequest{Username: "ada@example.edu", Password: "wrong", UserType: "student"}},
		{"inactive student", dto.LoginRequest{Username: "inactive@example.edu", Password: "student123", UserType: "student"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, &tc.req)
			if err != apperrors.ErrInvalidCredentials {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestLoginStorageFailureIsNotACredentialFailure(t *testing.T) {
	boom := errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")
	svc := NewAuthService(
		&fakeAdminDirectory{err: boom},
		&fakeStudentDirectory{err: boom},
		newFakeSessionStore(),
		time.Hour,
		zerolog.Nop(),
	)
	ctx := context.Background()

	for _, userType := range []string{"admin", "student"} {
		t.Run(userType, func(t *testing.T) {
			_, _, err := svc.Login(ctx, &dto.LoginRequest{
				Username: "admin",
				Password: "secret",
				UserType: userType,
			})
			if errors.Is(err, apperrors.ErrInvalidCredentials) {
				t.Fatal("storage failure must not look like bad credentials")
			}
			if !errors.Is(err, boom) {
				t.Fatalf("expected the storage error to surface, got %v", err)
			}
		})
	}
}

func TestValidateStorageFailurePropagates(t *testing.T) {
	boom := errors.New("connection reset by peer")
	sessions := newFakeSessionStore()
	sessions.sessions["live"] = &models.Session{
		SessionID: "live",
		UserID:    1,
		UserType:  models.RoleAdmin,
		ExpiresAt: sessions.now.Add(time.Hour),
	}

	svc := NewAuthService(
		&fakeAdminDirectory{err: boom},
		&fakeStudentDirectory{},
		sessions,
		time.Hour,
		zerolog.Nop(),
	)

	_, err := svc.Validate(context.Background(), "live")
	if errors.Is(err, apperrors.ErrSessionInvalid) {
		t.Fatal("storage failure must not invalidate the session")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected the storage error to surface, got %v", err)
	}
}

func TestLoginInvalidUserType(t *testing.T) {
	svc := newTestAuthService(t, newFakeSessionStore())

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "secret",
		UserType: "superuser",
	})
	if err == nil {
		t.Fatal("expected error for invalid user type")
	}
}

func TestLoginEvictsExpiredSessions(t *testing.T) {
	sessions := newFakeSessionStore()
	sessions.sessions["stale"] = &models.Session{
		SessionID: "stale",
		UserID:    1,
		UserType:  models.RoleAdmin,
		ExpiresAt: sessions.now.Add(-time.Hour),
	}

	svc := newTestAuthService(t, sessions)

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "secret",
		UserType: "admin",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if _, ok := sessions.sessions["stale"]; ok {
		t.Fatal("expired session was not evicted on login")
	}
}

func TestValidateRoundTrip(t *testing.T) {
	sessions := newFakeSessionStore()
	svc := newTestAuthService(t, sessions)
	ctx := context.Background()

	_, sessionID, err := svc.Login(ctx, &dto.LoginRequest{
		Username: "ada@example.edu",
		Password: "student123",
		UserType: "student",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	principal, err := svc.Validate(ctx, sessionID)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if principal.ID != 7 || principal.Role != "student" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestValidateExpiredSession(t *testing.T) {
	sessions := newFakeSessionStore()
	sessions.sessions["expired"] = &models.Session{
		SessionID: "expired",
		UserID:    1,
		UserType:  models.RoleAdmin,
		ExpiresAt: sessions.now.Add(-time.Minute),
	}

	svc := newTestAuthService(t, sessions)

	if _, err := svc.Validate(context.Background(), "expired"); err != apperrors.ErrSessionInvalid {
		t.Fatalf("expected ErrSessionInvalid, got %v", err)
	}
}

func TestValidateEmptyAndUnknownToken(t *testing.T) {
	svc := newTestAuthService(t, newFakeSessionStore())
	ctx := context.Background()

	if _, err := svc.Validate(ctx, ""); err != apperrors.ErrSessionInvalid {
		t.Fatalf("expected ErrSessionInvalid for empty token, got %v", err)
	}
	if _, err := svc.Validate(ctx, "no-such-token"); err != apperrors.ErrSessionInvalid {
		t.Fatalf("expected ErrSessionInvalid for unknown token, got %v", err)
	}
}

func TestValidateSessionOutlivesPrincipal(t *testing.T) {
	sessions := newFakeSessionStore()
	sessions.sessions["orphan"] = &models.Session{
		SessionID: "orphan",
		UserID:    999,
		UserType:  models.RoleStudent,
		ExpiresAt: sessions.now.Add(time.Hour),
	}

	svc := newTestAuthService(t, sessions)

	if _, err := svc.Validate(context.Background(), "orphan"); err != apperrors.ErrSessionInvalid {
		t.Fatalf("expected ErrSessionInvalid for deleted principal, got %v", err)
	}
}

func TestLogoutRevokesAndIsIdempotent(t *testing.T) {
	sessions := newFakeSessionStore()
	svc := newTestAuthService(t, sessions)
	ctx := context.Background()

	_, sessionID, err := svc.Login(ctx, &dto.LoginRequest{
		Username: "admin",
		Password: "secret",
		UserType: "admin",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := svc.Logout(ctx, sessionID); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := svc.Validate(ctx, sessionID); err != apperrors.ErrSessionInvalid {
		t.Fatalf("session still valid after logout: %v", err)
	}
	// Logging out again must not fail.
	if err := svc.Logout(ctx, sessionID); err != nil {
		t.Fatalf("second Logout failed: %v", err)
	}
}
