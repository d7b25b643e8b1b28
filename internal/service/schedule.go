package service

import (
	"context"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"porra/internal/domain"
	"porra/internal/repository"
)

type ScheduleService struct {
	matches *repository.MatchRepository
	logger  zerolog.Logger
}

func NewScheduleService(matches *repository.MatchRepository, logger zerolog.Logger) *ScheduleService {
	return &ScheduleService{matches: matches, logger: logger}
}

// Matches lists matches in kickoff order.
func (s *ScheduleService) Matches(ctx context.Context, f repository.MatchFilter) ([]domain.Match, error) {
	matches, err := s.matches.List(ctx, f)
	if err != nil {
		return nil, err
	}
	sortByKickoff(matches)
	return matches, nil
}

func (s *ScheduleService) Match(ctx context.Context, id string) (*domain.Match, error) {
	return s.matches.Get(ctx, id)
}

func (s *ScheduleService) Calendar(ctx context.Context) ([]repository.CalendarDay, error) {
	days, err := s.matches.Calendar(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(days, func(a, b repository.CalendarDay) int {
		return a.Date.Compare(b.Date)
	})
	for _, d := range days {
		sortByKickoff(d.Matches)
	}
	return days, nil
}

// Upcoming returns up to limit matches not yet finished that kick off after now.
func (s *ScheduleService) Upcoming(ctx context.Context, now time.Time, limit int) ([]domain.Match, error) {
	matches, err := s.Matches(ctx, repository.MatchFilter{})
	if err != nil {
		return nil, err
	}
	return upcoming(matches, now, limit), nil
}

func (s *ScheduleService) Stadiums(ctx context.Context) ([]domain.Stadium, error) {
	stadiums, err := s.matches.Stadiums(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(stadiums, func(a, b domain.Stadium) int {
		return b.Capacity - a.Capacity
	})
	return stadiums, nil
}

func (s *ScheduleService) Stadium(ctx context.Context, id string) (*domain.Stadium, error) {
	return s.matches.Stadium(ctx, id)
}

func sortByKickoff(matches []domain.Match) {
	slices.SortStableFunc(matches, func(a, b domain.Match) int {
		if c := a.KickoffAt.Compare(b.KickoffAt); c != 0 {
			return c
		}
		return a.Number - b.Number
	})
}

func upcoming(sorted []domain.Match, now time.Time, limit int) []domain.Match {
	out := make([]domain.Match, 0, limit)
	for _, m := range sorted {
		if len(out) == limit {
			break
		}
		if m.Status == domain.MatchFinished || !m.KickoffAt.After(now) {
			continue
		}
		out = append(out, m)
	}
	return out
}
