package repository

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"porra/internal/api"
	"porra/internal/domain"
)

type MatchRepository struct {
	client *api.Client
	logger zerolog.Logger
}

func NewMatchRepository(client *api.Client, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{client: client, logger: logger}
}

var (
	listMatchesMessages = statusMessages{
		http.StatusBadRequest: "El filtro de partidos no es válido",
	}
	getMatchMessages = statusMessages{
		http.StatusNotFound: "El partido no existe",
	}
	stadiumMessages = statusMessages{
		http.StatusNotFound: "El estadio no existe",
	}
)

type MatchFilter struct {
	Phase   domain.Phase
	GroupID string
}

func (r *MatchRepository) List(ctx context.Context, f MatchFilter) ([]domain.Match, error) {
	res, err := r.client.ListMatches(ctx, api.MatchFilter{Phase: string(f.Phase), Group: f.GroupID})
	if err != nil {
		return nil, translate(err, listMatchesMessages)
	}
	matches := make([]domain.Match, len(*res))
	for i, m := range *res {
		matches[i] = toMatch(m)
	}
	return matches, nil
}

func (r *MatchRepository) Get(ctx context.Context, id string) (*domain.Match, error) {
	res, err := r.client.GetMatch(ctx, id)
	if err != nil {
		return nil, translate(err, getMatchMessages)
	}
	m := toMatch(*res)
	return &m, nil
}

// CalendarDay groups the matches played on one date.
type CalendarDay struct {
	Date    time.Time
	Matches []domain.Match
}

func (r *MatchRepository) Calendar(ctx context.Context) ([]CalendarDay, error) {
	res, err := r.client.GetCalendar(ctx)
	if err != nil {
		return nil, translate(err, nil)
	}
	days := make([]CalendarDay, 0, len(*res))
	for _, d := range *res {
		date, err := time.Parse(time.DateOnly, d.Date)
		if err != nil {
			r.logger.Warn().Str("date", d.Date).Msg("skipping calendar day with unparseable date")
			continue
		}
		day := CalendarDay{Date: date, Matches: make([]domain.Match, len(d.Matches))}
		for i, m := range d.Matches {
			day.Matches[i] = toMatch(m)
		}
		days = append(days, day)
	}
	return days, nil
}

func (r *MatchRepository) Stadiums(ctx context.Context) ([]domain.Stadium, error) {
	res, err := r.client.ListStadiums(ctx)
	if err != nil {
		return nil, translate(err, nil)
	}
	stadiums := make([]domain.Stadium, len(*res))
	for i, s := range *res {
		stadiums[i] = toStadium(s)
	}
	return stadiums, nil
}

func (r *MatchRepository) Stadium(ctx context.Context, id string) (*domain.Stadium, error) {
	res, err := r.client.GetStadium(ctx, id)
	if err != nil {
		return nil, translate(err, stadiumMessages)
	}
	s := toStadium(*res)
	return &s, nil
}
