package repository

import (
	"errors"
	"net/http"

	"porra/internal/api"
)

// UserError carries a message meant for the person at the terminal. The
// underlying cause stays available through errors.Is/As.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

const (
	msgConnection     = "No se pudo conectar con el servidor. Comprueba tu conexión e inténtalo de nuevo."
	msgSessionExpired = "Tu sesión ha expirado. Vuelve a iniciar sesión."
	msgServer         = "El servidor no está disponible en este momento. Inténtalo más tarde."
	msgUnexpected     = "Ha ocurrido un error inesperado. Inténtalo de nuevo."
)

// statusMessages maps backend status codes to what one operation should tell
// the user about them.
type statusMessages map[int]string

func translate(err error, messages statusMessages) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, api.ErrSessionExpired):
		return &UserError{Message: msgSessionExpired, Err: err}
	case errors.Is(err, api.ErrNetwork):
		return &UserError{Message: msgConnection, Err: err}
	}

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return &UserError{Message: msgUnexpected, Err: err}
	}
	if msg, ok := messages[apiErr.StatusCode]; ok {
		return &UserError{Message: msg, Err: err}
	}
	switch {
	case apiErr.StatusCode == http.StatusUnauthorized:
		return &UserError{Message: msgSessionExpired, Err: err}
	case apiErr.StatusCode >= http.StatusInternalServerError:
		return &UserError{Message: msgServer, Err: err}
	case apiErr.Message != "":
		return &UserError{Message: apiErr.Message, Err: err}
	}
	return &UserError{Message: msgUnexpected, Err: err}
}
