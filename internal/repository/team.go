package repository

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"porra/internal/api"
	"porra/internal/domain"
)

type TeamRepository struct {
	client *api.Client
	logger zerolog.Logger
}

func NewTeamRepository(client *api.Client, logger zerolog.Logger) *TeamRepository {
	return &TeamRepository{client: client, logger: logger}
}

var teamMessages = statusMessages{
	http.StatusNotFound: "La selección no existe",
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	res, err := r.client.ListTeams(ctx)
	if err != nil {
		return nil, translate(err, nil)
	}
	teams := make([]domain.Team, len(*res))
	for i, t := range *res {
		teams[i] = toTeam(t)
	}
	return teams, nil
}

func (r *TeamRepository) Get(ctx context.Context, id string) (*domain.Team, error) {
	res, err := r.client.GetTeam(ctx, id)
	if err != nil {
		return nil, translate(err, teamMessages)
	}
	t := toTeam(*res)
	return &t, nil
}

func (r *TeamRepository) Players(ctx context.Context, teamID string) ([]domain.Player, error) {
	res, err := r.client.ListTeamPlayers(ctx, teamID)
	if err != nil {
		return nil, translate(err, teamMessages)
	}
	players := make([]domain.Player, len(*res))
	for i, p := range *res {
		players[i] = toPlayer(p)
	}
	return players, nil
}
