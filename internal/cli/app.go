// Package cli is the command-line front end: cobra commands on top of the
// services, with lipgloss tables for output.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"porra/internal/constants"
	"porra/internal/middleware"
	"porra/internal/repository"
	"porra/internal/service"
	"porra/internal/validation"
)

type App struct {
	auth        *service.AuthService
	leagues     *service.LeagueService
	predictions *service.PredictionService
	schedule    *service.ScheduleService
	teams       *service.TeamService
	dashboard   *service.DashboardService
	logger      zerolog.Logger

	out io.Writer
}

func NewApp(
	auth *service.AuthService,
	leagues *service.LeagueService,
	predictions *service.PredictionService,
	schedule *service.ScheduleService,
	teams *service.TeamService,
	dashboard *service.DashboardService,
	logger zerolog.Logger,
) *App {
	return &App{
		auth:        auth,
		leagues:     leagues,
		predictions: predictions,
		schedule:    schedule,
		teams:       teams,
		dashboard:   dashboard,
		logger:      logger,
		out:         os.Stdout,
	}
}

type action func(ctx context.Context, cmd *cobra.Command, args []string) error

// run turns an action into a RunE: each command run gets its own request id
// and an overall deadline.
func (a *App) run(fn action) func(*cobra.Command, []string) error {
	return middleware.RequestID(a.logger)(func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), constants.CommandTimeout)
		defer cancel()
		return fn(ctx, cmd, args)
	})
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// inputError is a malformed argument or flag.
type inputError struct {
	msg string
}

func (e *inputError) Error() string {
	return e.msg
}

func inputErrorf(format string, args ...any) error {
	return &inputError{msg: fmt.Sprintf(format, args...)}
}

var sentinelMessages = map[error]string{
	service.ErrNotSignedIn:     "No has iniciado sesión. Usa 'porra auth login'.",
	service.ErrMalformedToken:  "La sesión guardada no es válida. Vuelve a iniciar sesión.",
	service.ErrNoDrafts:        "No hay borradores que enviar.",
	service.ErrNothingToUpdate: "No hay nada que actualizar.",
	service.ErrMatchNotFound:   "No se encontraron partidos para ese grupo.",
}

// UserMessage is what gets printed for a failed command.
func UserMessage(err error) string {
	var userErr *repository.UserError
	if errors.As(err, &userErr) {
		return userErr.Message
	}

	var vErr *validation.Error
	if errors.As(err, &vErr) {
		if vErr.MatchID != "" {
			return fmt.Sprintf("Partido %s (#%d): %s", vErr.MatchID, vErr.Index+1, vErr.Message)
		}
		return vErr.Message
	}

	var inErr *inputError
	if errors.As(err, &inErr) {
		return inErr.msg
	}

	for sentinel, msg := range sentinelMessages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return err.Error()
}
