package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

type RunE func(cmd *cobra.Command, args []string) error

// RequestID tags one command run with a request id that every API call made
// during the run sends along. The id and a scoped logger travel in the
// command context.
func RequestID(logger zerolog.Logger) func(RunE) RunE {
	return func(next RunE) RunE {
		return func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			requestID := uuid.New().String()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = WithRequestID(ctx, requestID)

			loggerWithID := logger.With().Str("request_id", requestID).Logger()
			ctx = loggerWithID.WithContext(ctx)
			cmd.SetContext(ctx)

			loggerWithID.Debug().
				Str("command", cmd.CommandPath()).
				Msg("command started")

			err := next(cmd, args)

			duration := time.Since(start)
			event := loggerWithID.Debug()
			if err != nil {
				event = loggerWithID.Info().Err(err)
			}
			event.
				Str("command", cmd.CommandPath()).
				Int64("duration_ms", duration.Milliseconds()).
				Dur("duration", duration).
				Msg("command completed")
			return err
		}
	}
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
