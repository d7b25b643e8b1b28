package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"porra/internal/domain"
)

// SessionRepository keeps the tokens of the signed-in user in the local
// store. It is the api.TokenProvider of the client.
type SessionRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewSessionRepository(sqlDB *sql.DB, logger zerolog.Logger) *SessionRepository {
	return &SessionRepository{db: sqlDB, logger: logger}
}

// Get returns the stored session, or nil when nobody is signed in.
func (r *SessionRepository) Get(ctx context.Context) (*domain.Session, error) {
	var s domain.Session
	err := r.db.QueryRowContext(ctx,
		`SELECT access_token, refresh_cookie, user_id, updated_at FROM sessions WHERE id = 1`,
	).Scan(&s.AccessToken, &s.RefreshCookie, &s.UserID, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return &s, nil
}

func (r *SessionRepository) AccessToken(ctx context.Context) (string, error) {
	s, err := r.Get(ctx)
	if err != nil || s == nil {
		return "", err
	}
	return s.AccessToken, nil
}

func (r *SessionRepository) RefreshCookie(ctx context.Context) (string, error) {
	s, err := r.Get(ctx)
	if err != nil || s == nil {
		return "", err
	}
	return s.RefreshCookie, nil
}

// SaveTokens replaces both tokens. An empty refresh cookie keeps the stored one.
func (r *SessionRepository) SaveTokens(ctx context.Context, accessToken, refreshCookie string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, access_token, refresh_cookie, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_cookie = CASE WHEN excluded.refresh_cookie = '' THEN sessions.refresh_cookie ELSE excluded.refresh_cookie END,
			updated_at = excluded.updated_at`,
		accessToken, refreshCookie, time.Now().UTC(),
	)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to save session")
		return fmt.Errorf("failed to save session: %w", err)
	}
	r.logger.Debug().Msg("session saved")
	return nil
}

func (r *SessionRepository) SetUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET user_id = ?, updated_at = ? WHERE id = 1`,
		userID, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save session user: %w", err)
	}
	return nil
}

func (r *SessionRepository) ClearTokens(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		r.logger.Error().Err(err).Msg("failed to clear session")
		return fmt.Errorf("failed to clear session: %w", err)
	}
	r.logger.Debug().Msg("session cleared")
	return nil
}
