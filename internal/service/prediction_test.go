package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"porra/internal/domain"
	"porra/internal/validation"
)

func intPtr(v int) *int { return &v }

func sidePtr(s domain.Side) *domain.Side { return &s }

func standingIDs(table []domain.TeamStanding) []string {
	ids := make([]string, len(table))
	for i, s := range table {
		ids[i] = s.Team.ID
	}
	return ids
}

func TestSaveKnockoutInvalidSendsNothing(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	// a regulation draw with no penalty winner
	_, err := env.predictions.SaveKnockout(context.Background(), "lg1", domain.PhaseQuarterFinal, []domain.MatchPrediction{
		{MatchID: "m90", HomeTeamID: "esp", AwayTeamID: "bra", HomeScore: 2, AwayScore: 2},
	})

	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, validation.RuleDrawResolution, vErr.Rule)
	assert.Zero(t, env.backend.total())
}

func TestSaveKnockoutOverflowSendsNothing(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	preds := make([]domain.MatchPrediction, 5)
	for i := range preds {
		preds[i] = domain.MatchPrediction{MatchID: "m9" + string(rune('0'+i)), HomeTeamID: "a", AwayTeamID: "b", HomeScore: 1}
	}
	_, err := env.predictions.SaveKnockout(context.Background(), "lg1", domain.PhaseQuarterFinal, preds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Maximum is 4")
	assert.Zero(t, env.backend.total())
}

func TestSaveKnockoutFillsTeamsFromFixtures(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	p, err := env.predictions.SaveKnockout(context.Background(), "lg1", domain.PhaseQuarterFinal, []domain.MatchPrediction{
		{MatchID: "m90", HomeScore: 1, AwayScore: 1, ExtraTimeHome: intPtr(2), ExtraTimeAway: intPtr(2), PenaltiesWinner: sidePtr(domain.SideAway)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, env.backend.count("GET", "/matches"))
	assert.Equal(t, 1, env.backend.count("PUT", "/predictions/p1/knockout/QUARTER_FINAL"))

	require.Len(t, env.backend.lastKO.Predictions, 1)
	assert.Equal(t, "esp", env.backend.lastKO.Predictions[0].HomeTeamID)
	assert.Equal(t, "bra", env.backend.lastKO.Predictions[0].AwayTeamID)

	ko, ok := p.MatchPrediction("m90")
	require.True(t, ok)
	winner, ok := ko.Winner()
	require.True(t, ok)
	assert.Equal(t, "bra", winner)
}

func TestSaveKnockoutUnknownMatchSendsNothing(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	_, err := env.predictions.SaveKnockout(context.Background(), "lg1", domain.PhaseQuarterFinal, []domain.MatchPrediction{
		{MatchID: "m404", HomeScore: 1, AwayScore: 0},
	})

	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, validation.RuleIdentifiers, vErr.Rule)
	assert.Zero(t, env.backend.count("GET", "/predictions/league/lg1"))
	assert.Zero(t, env.backend.count("PUT", "/predictions/p1/knockout/QUARTER_FINAL"))
}

func TestSaveKnockout(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	p, err := env.predictions.SaveKnockout(context.Background(), "lg1", domain.PhaseQuarterFinal, []domain.MatchPrediction{
		{MatchID: "m90", HomeTeamID: "esp", AwayTeamID: "bra", HomeScore: 2, AwayScore: 2, PenaltiesWinner: sidePtr(domain.SideHome)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, env.backend.count("PUT", "/predictions/p1/knockout/QUARTER_FINAL"))

	ko, ok := p.MatchPrediction("m90")
	require.True(t, ok)
	winner, ok := ko.Winner()
	require.True(t, ok)
	assert.Equal(t, "esp", winner)
}

func TestSaveGroup(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)
	ctx := context.Background()

	res, err := env.predictions.SaveGroup(ctx, "lg1", "A", []domain.MatchPrediction{
		{MatchID: "m1", HomeScore: 1, AwayScore: 1},
		{MatchID: "m2", HomeScore: 0, AwayScore: 0},
	}, nil)
	require.NoError(t, err)

	// team ids are filled from the fixtures
	require.Len(t, env.backend.lastGroup.Predictions, 2)
	assert.Equal(t, "esp", env.backend.lastGroup.Predictions[0].HomeTeamID)
	assert.Equal(t, "bra", env.backend.lastGroup.Predictions[0].AwayTeamID)

	table := res.Table.Standings
	assert.Equal(t, []string{"bra", "esp", "jpn", "mar"}, standingIDs(table))
	require.Len(t, res.Table.Ties, 2)
	assert.ElementsMatch(t, []string{"bra", "esp"}, res.Table.Ties[0])
	assert.ElementsMatch(t, []string{"jpn", "mar"}, res.Table.Ties[1])
}

func TestSaveGroupRejectsForeignMatch(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	_, err := env.predictions.SaveGroup(context.Background(), "lg1", "A", []domain.MatchPrediction{
		{MatchID: "m1", HomeScore: 1, AwayScore: 0},
		{MatchID: "m90", HomeScore: 1, AwayScore: 0},
	}, nil)

	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, validation.RuleIdentifiers, vErr.Rule)
	assert.Equal(t, 1, vErr.Index)
	assert.Zero(t, env.backend.count("PUT", "/predictions/p1/groups/A"))
}

func TestGroupStandingsWithTiebreaker(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)
	ctx := context.Background()

	_, err := env.predictions.SaveGroup(ctx, "lg1", "A", []domain.MatchPrediction{
		{MatchID: "m1", HomeScore: 1, AwayScore: 1},
		{MatchID: "m2", HomeScore: 0, AwayScore: 0},
	}, map[string]int{"esp": 1, "bra": 2})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"esp": 1, "bra": 2}, env.backend.lastGroup.Tiebreakers)

	table, err := env.predictions.GroupStandings(ctx, "lg1", "A", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"esp", "bra", "jpn", "mar"}, standingIDs(table.Standings))

	// an override passed in wins over the saved ranks
	table, err = env.predictions.GroupStandings(ctx, "lg1", "A", map[string]int{"mar": 1, "jpn": 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"esp", "bra", "mar", "jpn"}, standingIDs(table.Standings))
}

func TestDraftLifecycle(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)
	ctx := context.Background()

	_, err := env.predictions.SetDraft(ctx, "lg1", domain.MatchPrediction{MatchID: "m1", HomeScore: 3, AwayScore: 0})
	require.NoError(t, err)
	_, err = env.predictions.SetDraft(ctx, "lg1", domain.MatchPrediction{MatchID: "m3", HomeScore: 1, AwayScore: 0})
	require.NoError(t, err)

	drafts, err := env.predictions.Drafts(ctx, "lg1")
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "A", drafts[0].GroupID)
	assert.Equal(t, "esp", drafts[0].Prediction.HomeTeamID)

	preview, err := env.predictions.DraftStandings(ctx, "lg1", "A", nil)
	require.NoError(t, err)
	top := preview.Standings[0]
	assert.Equal(t, "esp", top.Team.ID)
	assert.Equal(t, 6, top.Points)
	assert.Zero(t, env.backend.count("PUT", "/predictions/p1/groups/A"))

	res, err := env.predictions.SubmitGroupDrafts(ctx, "lg1", "A", nil)
	require.NoError(t, err)
	assert.Len(t, res.Prediction.Matches, 2)
	assert.Equal(t, 1, env.backend.count("PUT", "/predictions/p1/groups/A"))

	drafts, err = env.predictions.Drafts(ctx, "lg1")
	require.NoError(t, err)
	assert.Empty(t, drafts)

	_, err = env.predictions.SubmitGroupDrafts(ctx, "lg1", "A", nil)
	assert.ErrorIs(t, err, ErrNoDrafts)
}

func TestKnockoutDraftValidation(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)
	ctx := context.Background()

	_, err := env.predictions.SetDraft(ctx, "lg1", domain.MatchPrediction{
		MatchID: "m90", HomeScore: 1, AwayScore: 1, ExtraTimeHome: intPtr(2), ExtraTimeAway: intPtr(2),
	})
	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, validation.RuleDrawResolution, vErr.Rule)

	draft, err := env.predictions.SetDraft(ctx, "lg1", domain.MatchPrediction{
		MatchID: "m90", HomeScore: 1, AwayScore: 1, ExtraTimeHome: intPtr(2), ExtraTimeAway: intPtr(2),
		PenaltiesWinner: sidePtr(domain.SideAway),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseQuarterFinal, draft.Phase)

	_, err = env.predictions.SubmitKnockoutDrafts(ctx, "lg1", domain.PhaseSemiFinal)
	assert.ErrorIs(t, err, ErrNoDrafts)

	_, err = env.predictions.SubmitKnockoutDrafts(ctx, "lg1", domain.PhaseQuarterFinal)
	require.NoError(t, err)
	require.Len(t, env.backend.lastKO.Predictions, 1)
	require.NotNil(t, env.backend.lastKO.Predictions[0].PenaltiesWinner)
	assert.Equal(t, "away", *env.backend.lastKO.Predictions[0].PenaltiesWinner)

	n, err := env.predictions.ClearDrafts(ctx, "lg1", DraftScope{Phase: domain.PhaseQuarterFinal})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSetDraftUnknownMatch(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	_, err := env.predictions.SetDraft(context.Background(), "lg1", domain.MatchPrediction{MatchID: "nope"})
	require.Error(t, err)
	assert.False(t, errors.As(err, new(*validation.Error)))
}

func TestSaveAwardsMerges(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)
	ctx := context.Background()

	_, err := env.predictions.SaveAwards(ctx, "lg1", domain.Awards{GoldenBall: "pl1"})
	require.NoError(t, err)
	p, err := env.predictions.SaveAwards(ctx, "lg1", domain.Awards{GoldenBoot: "pl2"})
	require.NoError(t, err)
	assert.Equal(t, domain.Awards{GoldenBall: "pl1", GoldenBoot: "pl2"}, p.Awards)

	_, err = env.predictions.SaveAwards(ctx, "lg1", domain.Awards{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}
