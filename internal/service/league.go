package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"porra/internal/domain"
	"porra/internal/repository"
	"porra/internal/validation"
)

type LeagueService struct {
	leagues *repository.LeagueRepository
	logger  zerolog.Logger
}

func NewLeagueService(leagues *repository.LeagueRepository, logger zerolog.Logger) *LeagueService {
	return &LeagueService{leagues: leagues, logger: logger}
}

func (s *LeagueService) List(ctx context.Context) ([]domain.League, error) {
	return s.leagues.List(ctx)
}

func (s *LeagueService) Get(ctx context.Context, id string) (*domain.League, error) {
	return s.leagues.Get(ctx, id)
}

func (s *LeagueService) Create(ctx context.Context, form validation.LeagueForm) (*domain.League, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Description = strings.TrimSpace(form.Description)
	if err := validation.ValidateLeague(form); err != nil {
		return nil, err
	}
	return s.leagues.Create(ctx, form.Name, form.Description, form.IsPrivate)
}

// Update validates only the fields being changed.
func (s *LeagueService) Update(ctx context.Context, id string, u repository.LeagueUpdate) (*domain.League, error) {
	if u.Name == nil && u.Description == nil && u.IsPrivate == nil {
		return nil, ErrNothingToUpdate
	}

	current, err := s.leagues.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	form := validation.LeagueForm{Name: current.Name, Description: current.Description}
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		u.Name = &name
		form.Name = name
	}
	if u.Description != nil {
		desc := strings.TrimSpace(*u.Description)
		u.Description = &desc
		form.Description = desc
	}
	if err := validation.ValidateLeague(form); err != nil {
		return nil, err
	}
	return s.leagues.Update(ctx, id, u)
}

func (s *LeagueService) Delete(ctx context.Context, id string) error {
	return s.leagues.Delete(ctx, id)
}

func (s *LeagueService) Join(ctx context.Context, code string) (*domain.League, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if err := validation.ValidateJoinCode(code); err != nil {
		return nil, err
	}
	league, err := s.leagues.Join(ctx, code)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("league_id", league.ID).Msg("joined league")
	return league, nil
}

func (s *LeagueService) Leave(ctx context.Context, id string) error {
	return s.leagues.Leave(ctx, id)
}

func (s *LeagueService) Members(ctx context.Context, id string) ([]domain.LeagueMember, error) {
	return s.leagues.Members(ctx, id)
}

func (s *LeagueService) Kick(ctx context.Context, leagueID, userID string) error {
	return s.leagues.RemoveMember(ctx, leagueID, userID)
}

func (s *LeagueService) Ranking(ctx context.Context, id string, page int) (*repository.RankingPage, error) {
	return s.leagues.Ranking(ctx, id, page)
}
