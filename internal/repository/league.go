package repository

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"porra/internal/api"
	"porra/internal/constants"
	"porra/internal/domain"
)

type LeagueRepository struct {
	client *api.Client
	logger zerolog.Logger
}

func NewLeagueRepository(client *api.Client, logger zerolog.Logger) *LeagueRepository {
	return &LeagueRepository{client: client, logger: logger}
}

const leagueNotFound = "La liga no existe o no tienes acceso a ella"

var (
	listLeaguesMessages = statusMessages{}
	getLeagueMessages   = statusMessages{
		http.StatusNotFound:  leagueNotFound,
		http.StatusForbidden: leagueNotFound,
	}
	createLeagueMessages = statusMessages{
		http.StatusBadRequest: "Los datos de la liga no son válidos",
		http.StatusConflict:   "Ya existe una liga con ese nombre",
	}
	updateLeagueMessages = statusMessages{
		http.StatusNotFound:   leagueNotFound,
		http.StatusForbidden:  "Solo el administrador de la liga puede modificarla",
		http.StatusBadRequest: "Los datos de la liga no son válidos",
	}
	deleteLeagueMessages = statusMessages{
		http.StatusNotFound:  leagueNotFound,
		http.StatusForbidden: "Solo el administrador de la liga puede eliminarla",
	}
	joinLeagueMessages = statusMessages{
		http.StatusNotFound:   "No existe ninguna liga con ese código",
		http.StatusConflict:   "Ya eres miembro de esta liga",
		http.StatusForbidden:  "La liga está completa",
		http.StatusBadRequest: "El código de invitación no es válido",
	}
	leaveLeagueMessages = statusMessages{
		http.StatusNotFound:   leagueNotFound,
		http.StatusBadRequest: "El administrador no puede abandonar su propia liga",
		http.StatusForbidden:  "El administrador no puede abandonar su propia liga",
	}
	membersMessages = statusMessages{
		http.StatusNotFound:  leagueNotFound,
		http.StatusForbidden: leagueNotFound,
	}
	kickMessages = statusMessages{
		http.StatusNotFound:   "El usuario no es miembro de esta liga",
		http.StatusForbidden:  "Solo el administrador de la liga puede expulsar miembros",
		http.StatusBadRequest: "No puedes expulsarte a ti mismo",
	}
	rankingMessages = statusMessages{
		http.StatusNotFound:  leagueNotFound,
		http.StatusForbidden: leagueNotFound,
	}
)

func (r *LeagueRepository) List(ctx context.Context) ([]domain.League, error) {
	res, err := r.client.ListLeagues(ctx)
	if err != nil {
		return nil, translate(err, listLeaguesMessages)
	}
	leagues := make([]domain.League, len(*res))
	for i, l := range *res {
		leagues[i] = toLeague(l)
	}
	return leagues, nil
}

func (r *LeagueRepository) Get(ctx context.Context, id string) (*domain.League, error) {
	res, err := r.client.GetLeague(ctx, id)
	if err != nil {
		return nil, translate(err, getLeagueMessages)
	}
	league := toLeague(*res)
	return &league, nil
}

func (r *LeagueRepository) Create(ctx context.Context, name, description string, private bool) (*domain.League, error) {
	res, err := r.client.CreateLeague(ctx, api.CreateLeagueRequest{Name: name, Description: description, IsPrivate: private})
	if err != nil {
		return nil, translate(err, createLeagueMessages)
	}
	league := toLeague(*res)
	r.logger.Info().Str("league_id", league.ID).Msg("league created")
	return &league, nil
}

// LeagueUpdate holds the fields to change; nil fields are left alone.
type LeagueUpdate struct {
	Name        *string
	Description *string
	IsPrivate   *bool
}

func (r *LeagueRepository) Update(ctx context.Context, id string, u LeagueUpdate) (*domain.League, error) {
	res, err := r.client.UpdateLeague(ctx, id, api.UpdateLeagueRequest{
		Name:        u.Name,
		Description: u.Description,
		IsPrivate:   u.IsPrivate,
	})
	if err != nil {
		return nil, translate(err, updateLeagueMessages)
	}
	league := toLeague(*res)
	return &league, nil
}

func (r *LeagueRepository) Delete(ctx context.Context, id string) error {
	return translate(r.client.DeleteLeague(ctx, id), deleteLeagueMessages)
}

func (r *LeagueRepository) Join(ctx context.Context, code string) (*domain.League, error) {
	res, err := r.client.JoinLeague(ctx, api.JoinLeagueRequest{Code: code})
	if err != nil {
		return nil, translate(err, joinLeagueMessages)
	}
	league := toLeague(*res)
	return &league, nil
}

func (r *LeagueRepository) Leave(ctx context.Context, id string) error {
	return translate(r.client.LeaveLeague(ctx, id), leaveLeagueMessages)
}

func (r *LeagueRepository) Members(ctx context.Context, id string) ([]domain.LeagueMember, error) {
	res, err := r.client.ListLeagueMembers(ctx, id)
	if err != nil {
		return nil, translate(err, membersMessages)
	}
	members := make([]domain.LeagueMember, len(*res))
	for i, m := range *res {
		members[i] = toLeagueMember(m)
	}
	return members, nil
}

func (r *LeagueRepository) RemoveMember(ctx context.Context, leagueID, userID string) error {
	return translate(r.client.RemoveLeagueMember(ctx, leagueID, userID), kickMessages)
}

// RankingPage is one page of a league ranking.
type RankingPage struct {
	Entries []domain.RankingEntry
	Total   int
	Page    int
}

func (r *LeagueRepository) Ranking(ctx context.Context, id string, page int) (*RankingPage, error) {
	if page < 1 {
		page = 1
	}
	res, err := r.client.GetLeagueRanking(ctx, id, page, constants.RankingPageSize)
	if err != nil {
		return nil, translate(err, rankingMessages)
	}
	out := &RankingPage{
		Entries: make([]domain.RankingEntry, len(res.Entries)),
		Total:   res.Total,
		Page:    res.Page,
	}
	for i, e := range res.Entries {
		out.Entries[i] = toRankingEntry(e)
	}
	return out, nil
}
