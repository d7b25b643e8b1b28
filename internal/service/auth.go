package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"

	"porra/internal/domain"
	"porra/internal/repository"
	"porra/internal/validation"
)

type AuthService struct {
	auth     *repository.AuthRepository
	sessions *repository.SessionRepository
	logger   zerolog.Logger
	now      func() time.Time
}

func NewAuthService(auth *repository.AuthRepository, sessions *repository.SessionRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{auth: auth, sessions: sessions, logger: logger, now: time.Now}
}

func (s *AuthService) Login(ctx context.Context, form validation.LoginForm) (*domain.User, error) {
	form.Email = strings.TrimSpace(form.Email)
	if err := validation.ValidateLogin(form); err != nil {
		return nil, err
	}

	user, err := s.auth.Login(ctx, form.Email, form.Password)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SetUser(ctx, user.ID); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("signed in")
	return user, nil
}

func (s *AuthService) Register(ctx context.Context, form validation.RegisterForm) (string, error) {
	form.Email = strings.TrimSpace(form.Email)
	form.Name = strings.TrimSpace(form.Name)
	if err := validation.ValidateRegister(form); err != nil {
		return "", err
	}
	return s.auth.Register(ctx, form.Name, form.Email, form.Password)
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) (string, error) {
	if err := validation.ValidateVerifyToken(token); err != nil {
		return "", err
	}
	return s.auth.VerifyEmail(ctx, strings.TrimSpace(token))
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if err := validation.ValidateForgotPassword(email); err != nil {
		return "", err
	}
	return s.auth.ForgotPassword(ctx, email)
}

func (s *AuthService) ResetPassword(ctx context.Context, form validation.ResetPasswordForm) (string, error) {
	if err := validation.ValidateResetPassword(form); err != nil {
		return "", err
	}
	return s.auth.ResetPassword(ctx, strings.TrimSpace(form.Token), form.Password)
}

// Logout forgets the local session even when the backend cannot be reached.
func (s *AuthService) Logout(ctx context.Context) error {
	session, err := s.sessions.Get(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrNotSignedIn
	}
	if err := s.auth.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("backend logout failed, local session cleared anyway")
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context) (*domain.User, error) {
	if _, err := s.requireSession(ctx); err != nil {
		return nil, err
	}
	return s.auth.Me(ctx)
}

// Identity is what the stored access token says about its holder. It is read
// without verifying the signature: only the backend can do that.
type Identity struct {
	UserID    string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Expired   bool
}

type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (s *AuthService) WhoAmI(ctx context.Context) (*Identity, error) {
	session, err := s.requireSession(ctx)
	if err != nil {
		return nil, err
	}

	var claims accessClaims
	if _, _, err := jwt.NewParser().ParseUnverified(session.AccessToken, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	id := &Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
	}
	if id.UserID == "" {
		id.UserID = session.UserID
	}
	if claims.IssuedAt != nil {
		id.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
		id.Expired = !id.ExpiresAt.After(s.now())
	}
	return id, nil
}

func (s *AuthService) requireSession(ctx context.Context) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil || session.AccessToken == "" {
		return nil, ErrNotSignedIn
	}
	return session, nil
}
