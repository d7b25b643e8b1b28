package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"porra/internal/domain"
	"porra/internal/repository"
)

func TestDashboardLoad(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	d, err := env.dashboard.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Ana", d.User.Name)
	require.Len(t, d.Leagues, 1)
	assert.Equal(t, "lg1", d.Leagues[0].League.ID)
	require.NotNil(t, d.Leagues[0].Stats)
	assert.Equal(t, 6, d.Leagues[0].Stats.GroupMatchesTotal)

	require.Len(t, d.Upcoming, dashboardUpcoming)
	assert.Equal(t, "m1", d.Upcoming[0].ID)
}

func TestDashboardRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.dashboard.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC)
	matches := []domain.Match{
		{ID: "past", KickoffAt: now.Add(-time.Hour)},
		{ID: "done", KickoffAt: now.Add(time.Hour), Status: domain.MatchFinished},
		{ID: "next", KickoffAt: now.Add(2 * time.Hour)},
		{ID: "later", KickoffAt: now.Add(3 * time.Hour)},
		{ID: "last", KickoffAt: now.Add(4 * time.Hour)},
	}

	got := upcoming(matches, now, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "next", got[0].ID)
	assert.Equal(t, "later", got[1].ID)
}

func TestLeagueJoinNormalizesCode(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)
	ctx := context.Background()

	league, err := env.leagues.Join(ctx, "  office26 ")
	require.NoError(t, err)
	assert.Equal(t, "OFFICE26", league.Code)

	_, err = env.leagues.Join(ctx, "x!")
	require.Error(t, err)
	assert.Equal(t, 1, env.backend.count("POST", "/leagues/join"))

	_, err = env.leagues.Update(ctx, "lg1", repository.LeagueUpdate{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestScheduleMatchesOrdered(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	matches, err := env.schedule.Matches(context.Background(), repository.MatchFilter{GroupID: "A"})
	require.NoError(t, err)
	require.Len(t, matches, 6)
	for i := 1; i < len(matches); i++ {
		assert.False(t, matches[i].KickoffAt.Before(matches[i-1].KickoffAt))
	}
}
