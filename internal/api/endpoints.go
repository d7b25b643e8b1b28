package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/valyala/fasthttp"
)

func get[T any](ctx context.Context, c *Client, format string, args ...any) (*T, error) {
	return doRequest[T](ctx, c, call{method: fasthttp.MethodGet, path: escapedPath(format, args...)})
}

func escapedPath(format string, args ...any) string {
	escaped := make([]any, len(args))
	for i, a := range args {
		if s, ok := a.(string); ok {
			escaped[i] = url.PathEscape(s)
			continue
		}
		escaped[i] = a
	}
	return fmt.Sprintf(format, escaped...)
}

// leagues

func (c *Client) ListLeagues(ctx context.Context) (*[]LeagueDTO, error) {
	return get[[]LeagueDTO](ctx, c, "/leagues")
}

func (c *Client) GetLeague(ctx context.Context, id string) (*LeagueDTO, error) {
	return get[LeagueDTO](ctx, c, "/leagues/%s", id)
}

func (c *Client) CreateLeague(ctx context.Context, in CreateLeagueRequest) (*LeagueDTO, error) {
	return doRequest[LeagueDTO](ctx, c, call{method: fasthttp.MethodPost, path: "/leagues", body: in})
}

func (c *Client) UpdateLeague(ctx context.Context, id string, in UpdateLeagueRequest) (*LeagueDTO, error) {
	return doRequest[LeagueDTO](ctx, c, call{method: fasthttp.MethodPatch, path: escapedPath("/leagues/%s", id), body: in})
}

func (c *Client) DeleteLeague(ctx context.Context, id string) error {
	_, err := c.send(ctx, call{method: fasthttp.MethodDelete, path: escapedPath("/leagues/%s", id)})
	return err
}

func (c *Client) JoinLeague(ctx context.Context, in JoinLeagueRequest) (*LeagueDTO, error) {
	return doRequest[LeagueDTO](ctx, c, call{method: fasthttp.MethodPost, path: "/leagues/join", body: in})
}

func (c *Client) LeaveLeague(ctx context.Context, id string) error {
	_, err := c.send(ctx, call{method: fasthttp.MethodPost, path: escapedPath("/leagues/%s/leave", id)})
	return err
}

func (c *Client) ListLeagueMembers(ctx context.Context, id string) (*[]LeagueMemberDTO, error) {
	return get[[]LeagueMemberDTO](ctx, c, "/leagues/%s/members", id)
}

func (c *Client) RemoveLeagueMember(ctx context.Context, leagueID, userID string) error {
	_, err := c.send(ctx, call{method: fasthttp.MethodDelete, path: escapedPath("/leagues/%s/members/%s", leagueID, userID)})
	return err
}

func (c *Client) GetLeagueRanking(ctx context.Context, id string, page, limit int) (*RankingPageDTO, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return doRequest[RankingPageDTO](ctx, c, call{
		method: fasthttp.MethodGet,
		path:   escapedPath("/leagues/%s/ranking", id) + "?" + q.Encode(),
	})
}

// predictions

// GetOrCreatePrediction returns the caller's prediction for a league, creating
// an empty one on first access.
func (c *Client) GetOrCreatePrediction(ctx context.Context, leagueID string) (*PredictionDTO, error) {
	return get[PredictionDTO](ctx, c, "/predictions/league/%s", leagueID)
}

func (c *Client) SaveGroupPredictions(ctx context.Context, predictionID, groupID string, in SaveGroupRequest) (*PredictionDTO, error) {
	return doRequest[PredictionDTO](ctx, c, call{
		method: fasthttp.MethodPut,
		path:   escapedPath("/predictions/%s/groups/%s", predictionID, groupID),
		body:   in,
	})
}

func (c *Client) SaveKnockoutPredictions(ctx context.Context, predictionID, phase string, in SaveKnockoutRequest) (*PredictionDTO, error) {
	return doRequest[PredictionDTO](ctx, c, call{
		method: fasthttp.MethodPut,
		path:   escapedPath("/predictions/%s/knockout/%s", predictionID, phase),
		body:   in,
	})
}

func (c *Client) GetPredictionStats(ctx context.Context, predictionID string) (*PredictionStatsDTO, error) {
	return get[PredictionStatsDTO](ctx, c, "/predictions/%s/stats", predictionID)
}

func (c *Client) SaveAwards(ctx context.Context, predictionID string, in AwardsDTO) (*PredictionDTO, error) {
	return doRequest[PredictionDTO](ctx, c, call{
		method: fasthttp.MethodPut,
		path:   escapedPath("/predictions/%s/awards", predictionID),
		body:   in,
	})
}

func (c *Client) SaveChampion(ctx context.Context, predictionID string, in ChampionRequest) (*PredictionDTO, error) {
	return doRequest[PredictionDTO](ctx, c, call{
		method: fasthttp.MethodPut,
		path:   escapedPath("/predictions/%s/champion", predictionID),
		body:   in,
	})
}

// matches and stadiums

type MatchFilter struct {
	Phase string
	Group string
}

func (c *Client) ListMatches(ctx context.Context, f MatchFilter) (*[]MatchDTO, error) {
	path := "/matches"
	q := url.Values{}
	if f.Phase != "" {
		q.Set("phase", f.Phase)
	}
	if f.Group != "" {
		q.Set("group", f.Group)
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return doRequest[[]MatchDTO](ctx, c, call{method: fasthttp.MethodGet, path: path})
}

func (c *Client) GetCalendar(ctx context.Context) (*[]CalendarDayDTO, error) {
	return get[[]CalendarDayDTO](ctx, c, "/matches/calendar")
}

func (c *Client) GetMatch(ctx context.Context, id string) (*MatchDTO, error) {
	return get[MatchDTO](ctx, c, "/matches/%s", id)
}

func (c *Client) ListStadiums(ctx context.Context) (*[]StadiumDTO, error) {
	return get[[]StadiumDTO](ctx, c, "/stadiums")
}

func (c *Client) GetStadium(ctx context.Context, id string) (*StadiumDTO, error) {
	return get[StadiumDTO](ctx, c, "/stadiums/%s", id)
}

// teams

func (c *Client) ListTeams(ctx context.Context) (*[]TeamDTO, error) {
	return get[[]TeamDTO](ctx, c, "/teams")
}

func (c *Client) GetTeam(ctx context.Context, id string) (*TeamDTO, error) {
	return get[TeamDTO](ctx, c, "/teams/%s", id)
}

func (c *Client) ListTeamPlayers(ctx context.Context, id string) (*[]PlayerDTO, error) {
	return get[[]PlayerDTO](ctx, c, "/teams/%s/players", id)
}
