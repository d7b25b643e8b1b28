package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"porra/internal/domain"
	"porra/internal/repository"
	"porra/internal/service"
	"porra/internal/validation"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "backend message",
			err:  fmt.Errorf("join: %w", &repository.UserError{Message: "Código de invitación no válido", Err: errors.New("404")}),
			want: "Código de invitación no válido",
		},
		{
			name: "validation on a match",
			err:  &validation.Error{Rule: validation.RuleDrawResolution, Index: 1, MatchID: "m98", Message: "falta el ganador de los penaltis"},
			want: "Partido m98 (#2): falta el ganador de los penaltis",
		},
		{
			name: "validation on the batch",
			err:  &validation.Error{Rule: validation.RuleCount, Index: -1, Message: "demasiados partidos"},
			want: "demasiados partidos",
		},
		{
			name: "bad input",
			err:  inputErrorf("fase %q no reconocida", "semis"),
			want: `fase "semis" no reconocida`,
		},
		{
			name: "not signed in",
			err:  fmt.Errorf("dashboard: %w", service.ErrNotSignedIn),
			want: "No has iniciado sesión. Usa 'porra auth login'.",
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
			want: "boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

// newBareApp has no services: only commands that fail before reaching one
// can run against it.
func newBareApp(out *bytes.Buffer) *App {
	return &App{logger: zerolog.Nop(), out: out}
}

func TestCommandsRejectInputBeforeCallingServices(t *testing.T) {
	tests := [][]string{
		{"predictions", "knockout", "lg1", "SEMIS", "m1=1-0"},
		{"predictions", "knockout", "lg1", "QUARTER_FINAL", "m97=1-1,pen=maybe,x=1"},
		{"predictions", "group", "lg1", "A", "m1=1"},
		{"predictions", "group", "lg1", "A", "m1=1-0", "--tiebreak", "esp"},
		{"standings", "lg1", "A", "--tiebreak", "esp=0"},
		{"draft", "set", "lg1", "m1"},
		{"draft", "clear", "lg1", "--phase", "octavos"},
		{"schedule", "matches", "--phase", "semis"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			var out bytes.Buffer
			root := NewRootCommand(newBareApp(&out))
			root.SetArgs(args)
			root.SetOut(&out)
			root.SetErr(&out)

			err := root.Execute()
			var inErr *inputError
			require.ErrorAs(t, err, &inErr)
		})
	}
}

func TestCommandArgs(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCommand(newBareApp(&out))
	root.SetArgs([]string{"predictions", "champion", "lg1"})
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestRenderStandingsListsTies(t *testing.T) {
	var out bytes.Buffer
	renderStandings(&out, &service.GroupTable{
		GroupID: "A",
		Standings: []domain.TeamStanding{
			{Team: domain.Team{ID: "esp", Name: "España"}, Played: 3, Won: 2, Drawn: 1, GoalsFor: 5, GoalsAgainst: 1, GoalDifference: 4, Points: 7, Position: 1},
			{Team: domain.Team{ID: "mar", Name: "Marruecos"}, Played: 3, Won: 1, Drawn: 1, Lost: 1, GoalsFor: 2, GoalsAgainst: 2, Points: 4, Position: 2, IsTied: true, TiedWith: []string{"jpn"}},
			{Team: domain.Team{ID: "jpn", Name: "Japón"}, Played: 3, Won: 1, Drawn: 1, Lost: 1, GoalsFor: 2, GoalsAgainst: 2, Points: 4, Position: 3, IsTied: true, TiedWith: []string{"mar"}},
		},
		Ties: [][]string{{"mar", "jpn"}},
	})

	got := out.String()
	assert.Contains(t, got, "Grupo A")
	assert.Contains(t, got, "España")
	assert.Contains(t, got, "+4")
	assert.Contains(t, got, "Marruecos (mar), Japón (jpn)")
	assert.Contains(t, got, "--tiebreak")
}

func TestRenderPrediction(t *testing.T) {
	var out bytes.Buffer
	renderPrediction(&out, &domain.Prediction{
		ID: "p1",
		Matches: []domain.MatchPrediction{
			{MatchID: "m97", HomeTeamID: "esp", AwayTeamID: "bra", HomeScore: 1, AwayScore: 1, ExtraTimeHome: intPtr(2), ExtraTimeAway: intPtr(2), PenaltiesWinner: sidePtr(domain.SideAway)},
		},
		Awards:     domain.Awards{GoldenBoot: "pl9"},
		ChampionID: "bra",
	})

	got := out.String()
	assert.Contains(t, got, "1-1 (prórroga 2-2) (penaltis: away)")
	assert.Contains(t, got, "Campeón: bra")
	assert.Contains(t, got, "Bota de Oro: pl9")
	assert.Contains(t, got, "Balón de Oro: -")
}

func TestRenderDraftsEmpty(t *testing.T) {
	var out bytes.Buffer
	renderDrafts(&out, nil)
	assert.Contains(t, out.String(), "No hay borradores.")
}

func TestRenderDashboardWithoutStats(t *testing.T) {
	var out bytes.Buffer
	renderDashboard(&out, &service.Dashboard{
		User:    &domain.User{Name: "Ana"},
		Leagues: []service.LeagueSummary{{League: domain.League{Name: "Oficina"}}},
	})

	got := out.String()
	assert.Contains(t, got, "Hola, Ana")
	assert.Contains(t, got, "Oficina")
	assert.Contains(t, got, "Próximos partidos")
}
