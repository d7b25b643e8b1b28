package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/rs/zerolog"

	"porra/internal/domain"
	"porra/internal/repository"
)

type TeamService struct {
	teams  *repository.TeamRepository
	logger zerolog.Logger
}

func NewTeamService(teams *repository.TeamRepository, logger zerolog.Logger) *TeamService {
	return &TeamService{teams: teams, logger: logger}
}

// List returns the teams ordered by group, then name.
func (s *TeamService) List(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(teams, func(a, b domain.Team) int {
		return cmp.Or(cmp.Compare(a.GroupID, b.GroupID), cmp.Compare(a.Name, b.Name))
	})
	return teams, nil
}

func (s *TeamService) Get(ctx context.Context, id string) (*domain.Team, error) {
	return s.teams.Get(ctx, id)
}

var positionOrder = map[string]int{"GK": 0, "DF": 1, "MF": 2, "FW": 3}

// Players returns the squad ordered by position, then shirt number.
func (s *TeamService) Players(ctx context.Context, teamID string) ([]domain.Player, error) {
	players, err := s.teams.Players(ctx, teamID)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(players, func(a, b domain.Player) int {
		pa, oka := positionOrder[a.Position]
		pb, okb := positionOrder[b.Position]
		if !oka {
			pa = len(positionOrder)
		}
		if !okb {
			pb = len(positionOrder)
		}
		return cmp.Or(cmp.Compare(pa, pb), cmp.Compare(a.Number, b.Number), cmp.Compare(a.Name, b.Name))
	})
	return players, nil
}
