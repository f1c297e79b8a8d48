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

// SessionRepository owns the user_sessions table. No other component mutates
// session rows. Expired rows are inert (GetValidByID filters them out) until
// DeleteExpired lazily evicts them.
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session row.
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO user_sessions (session_id, user_id, user_type, expires_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		session.SessionID, session.UserID, string(session.UserType), session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("error creating session: %w", err)
	}

	return nil
}

// GetValidByID retrieves a session whose expiry is still in the future.
// Expired or missing sessions yield apperrors.ErrSessionInvalid.
func (r *SessionRepository) GetValidByID(ctx context.Context, sessionID string) (*models.Session, error) {
	query := `
		SELECT session_id, user_id, user_type, expires_at
		FROM user_sessions
		WHERE session_id = $1 AND expires_at > NOW()
	`

	var session models.Session
	var userType string
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&session.SessionID,
		&session.UserID,
		&userType,
		&session.ExpiresAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrSessionInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}

	session.UserType = models.UserRole(userType)
	return &session, nil
}

// Delete removes a session row. Deleting an absent session is not an error,
// which makes logout idempotent.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM user_sessions WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// DeleteExpired removes all sessions past their expiry and returns how many
// rows were evicted. Called opportunistically from login.
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM user_sessions WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired sessions: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
