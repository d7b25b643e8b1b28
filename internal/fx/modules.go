package fx

import (
	"porra/internal/api"
	"porra/internal/cli"
	"porra/internal/config"
	"porra/internal/database"
	"porra/internal/logger"
	"porra/internal/repository"
	"porra/internal/service"

	"go.uber.org/fx"
)

func applyLogLevel(cfg *config.Config) {
	logger.SetLevel(cfg.LogLevel)
}

// ProvideTokens hands the stored session to the API client.
func ProvideTokens(sessions *repository.SessionRepository) api.TokenProvider {
	return sessions
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Invoke(applyLogLevel),
	fx.Provide(database.New),
	// local store
	fx.Provide(repository.NewSessionRepository),
	fx.Provide(repository.NewDraftRepository),
	fx.Provide(ProvideTokens),
	// api client
	fx.Provide(api.NewClient),
	// remote repos
	fx.Provide(repository.NewAuthRepository),
	fx.Provide(repository.NewLeagueRepository),
	fx.Provide(repository.NewPredictionRepository),
	fx.Provide(repository.NewMatchRepository),
	fx.Provide(repository.NewTeamRepository),
	// svc
	fx.Provide(service.NewAuthService),
	fx.Provide(service.NewLeagueService),
	fx.Provide(service.NewScheduleService),
	fx.Provide(service.NewTeamService),
	fx.Provide(service.NewPredictionService),
	fx.Provide(service.NewDashboardService),
	// cli
	fx.Provide(cli.NewApp),
	fx.Provide(cli.NewRootCommand),
)
