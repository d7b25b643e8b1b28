package repository

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"porra/internal/api"
	"porra/internal/domain"
)

type AuthRepository struct {
	client *api.Client
	logger zerolog.Logger
}

func NewAuthRepository(client *api.Client, logger zerolog.Logger) *AuthRepository {
	return &AuthRepository{client: client, logger: logger}
}

var (
	loginMessages = statusMessages{
		http.StatusUnauthorized:    "Email o contraseña incorrectos",
		http.StatusForbidden:       "Debes verificar tu email antes de iniciar sesión",
		http.StatusTooManyRequests: "Demasiados intentos. Espera unos minutos e inténtalo de nuevo",
	}
	registerMessages = statusMessages{
		http.StatusConflict:   "Ya existe una cuenta con ese email",
		http.StatusBadRequest: "Los datos de registro no son válidos",
	}
	verifyEmailMessages = statusMessages{
		http.StatusBadRequest: "El enlace de verificación no es válido o ha caducado",
		http.StatusNotFound:   "El enlace de verificación no es válido o ha caducado",
	}
	forgotPasswordMessages = statusMessages{
		http.StatusTooManyRequests: "Ya se ha enviado un email recientemente. Revisa tu bandeja de entrada",
	}
	resetPasswordMessages = statusMessages{
		http.StatusBadRequest: "El enlace de recuperación no es válido o ha caducado",
		http.StatusNotFound:   "El enlace de recuperación no es válido o ha caducado",
	}
	meMessages = statusMessages{
		http.StatusNotFound: "No se encontró tu usuario",
	}
)

func (r *AuthRepository) Login(ctx context.Context, email, password string) (*domain.User, error) {
	res, err := r.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		r.logger.Debug().Err(err).Msg("login failed")
		return nil, translate(err, loginMessages)
	}
	user := toUser(res.User)
	return &user, nil
}

func (r *AuthRepository) Register(ctx context.Context, name, email, password string) (string, error) {
	res, err := r.client.Register(ctx, api.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return "", translate(err, registerMessages)
	}
	return res.Message, nil
}

func (r *AuthRepository) VerifyEmail(ctx context.Context, token string) (string, error) {
	res, err := r.client.VerifyEmail(ctx, api.VerifyEmailRequest{Token: token})
	if err != nil {
		return "", translate(err, verifyEmailMessages)
	}
	return res.Message, nil
}

func (r *AuthRepository) ForgotPassword(ctx context.Context, email string) (string, error) {
	res, err := r.client.ForgotPassword(ctx, api.ForgotPasswordRequest{Email: email})
	if err != nil {
		return "", translate(err, forgotPasswordMessages)
	}
	return res.Message, nil
}

func (r *AuthRepository) ResetPassword(ctx context.Context, token, password string) (string, error) {
	res, err := r.client.ResetPassword(ctx, api.ResetPasswordRequest{Token: token, Password: password})
	if err != nil {
		return "", translate(err, resetPasswordMessages)
	}
	return res.Message, nil
}

func (r *AuthRepository) Me(ctx context.Context) (*domain.User, error) {
	res, err := r.client.Me(ctx)
	if err != nil {
		return nil, translate(err, meMessages)
	}
	user := toUser(*res)
	return &user, nil
}

func (r *AuthRepository) Logout(ctx context.Context) error {
	return translate(r.client.Logout(ctx), nil)
}
