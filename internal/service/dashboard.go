package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"porra/internal/constants"
	"porra/internal/domain"
	"porra/internal/repository"
)

const (
	dashboardUpcoming    = 5
	dashboardConcurrency = 4
)

type DashboardService struct {
	auth        *AuthService
	leagues     *repository.LeagueRepository
	predictions *repository.PredictionRepository
	schedule    *ScheduleService
	logger      zerolog.Logger
	now         func() time.Time
}

func NewDashboardService(
	auth *AuthService,
	leagues *repository.LeagueRepository,
	predictions *repository.PredictionRepository,
	schedule *ScheduleService,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		auth:        auth,
		leagues:     leagues,
		predictions: predictions,
		schedule:    schedule,
		logger:      logger,
		now:         time.Now,
	}
}

type LeagueSummary struct {
	League domain.League
	Stats  *domain.PredictionStats
}

type Dashboard struct {
	User     *domain.User
	Leagues  []LeagueSummary
	Upcoming []domain.Match
}

// Load gathers the home screen. The independent reads run in parallel; each
// league's progress is then fetched with bounded concurrency.
func (s *DashboardService) Load(ctx context.Context) (*Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.CommandTimeout)
	defer cancel()

	var (
		d       Dashboard
		leagues []domain.League
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		user, err := s.auth.Me(gCtx)
		if err != nil {
			return err
		}
		d.User = user
		return nil
	})

	g.Go(func() error {
		var err error
		leagues, err = s.leagues.List(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		d.Upcoming, err = s.schedule.Upcoming(gCtx, s.now(), dashboardUpcoming)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Debug().Err(err).Msg("failed to load dashboard")
		return nil, err
	}

	d.Leagues = make([]LeagueSummary, len(leagues))
	g, gCtx = errgroup.WithContext(ctx)
	g.SetLimit(dashboardConcurrency)
	for i, l := range leagues {
		d.Leagues[i].League = l
		g.Go(func() error {
			p, err := s.predictions.GetOrCreate(gCtx, l.ID)
			if err != nil {
				return err
			}
			stats, err := s.predictions.Stats(gCtx, p.ID)
			if err != nil {
				return err
			}
			d.Leagues[i].Stats = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Debug().Err(err).Msg("failed to load league progress")
		return nil, err
	}

	s.logger.Debug().Int("leagues", len(d.Leagues)).Int("upcoming", len(d.Upcoming)).Msg("dashboard loaded")
	return &d, nil
}
