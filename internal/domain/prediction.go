package domain

import (
	"fmt"
	"time"
)

type Phase string

const (
	PhaseGroupStage   Phase = "GROUP_STAGE"
	PhaseRoundOf32    Phase = "ROUND_OF_32"
	PhaseRoundOf16    Phase = "ROUND_OF_16"
	PhaseQuarterFinal Phase = "QUARTER_FINAL"
	PhaseSemiFinal    Phase = "SEMI_FINAL"
	PhaseThirdPlace   Phase = "THIRD_PLACE"
	PhaseFinal        Phase = "FINAL"
)

// KnockoutPhases are the phases submitted as knockout batches, in bracket
// order. The third-place match is not one of them.
var KnockoutPhases = []Phase{
	PhaseRoundOf32,
	PhaseRoundOf16,
	PhaseQuarterFinal,
	PhaseSemiFinal,
	PhaseFinal,
}

func ParsePhase(s string) (Phase, error) {
	switch p := Phase(s); p {
	case PhaseGroupStage, PhaseRoundOf32, PhaseRoundOf16, PhaseQuarterFinal,
		PhaseSemiFinal, PhaseThirdPlace, PhaseFinal:
		return p, nil
	}
	return "", fmt.Errorf("unknown phase %q", s)
}

type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// MatchPrediction is one user's guess for a single match. ExtraTime is nil
// unless both extra-time scores were entered.
type MatchPrediction struct {
	MatchID         string
	HomeTeamID      string
	AwayTeamID      string
	HomeScore       int
	AwayScore       int
	ExtraTimeHome   *int
	ExtraTimeAway   *int
	PenaltiesWinner *Side
}

func (p MatchPrediction) Score() Score {
	return Score{Home: p.HomeScore, Away: p.AwayScore}
}

func (p MatchPrediction) HasExtraTime() bool {
	return p.ExtraTimeHome != nil && p.ExtraTimeAway != nil
}

// Winner resolves who goes through: regulation, then extra time, then
// penalties. ok is false when the prediction does not decide a winner.
func (p MatchPrediction) Winner() (teamID string, ok bool) {
	side, ok := p.winningSide()
	if !ok {
		return "", false
	}
	if side == SideHome {
		return p.HomeTeamID, true
	}
	return p.AwayTeamID, true
}

func (p MatchPrediction) winningSide() (Side, bool) {
	switch {
	case p.HomeScore > p.AwayScore:
		return SideHome, true
	case p.AwayScore > p.HomeScore:
		return SideAway, true
	}
	if p.HasExtraTime() {
		switch {
		case *p.ExtraTimeHome > *p.ExtraTimeAway:
			return SideHome, true
		case *p.ExtraTimeAway > *p.ExtraTimeHome:
			return SideAway, true
		}
	}
	if p.PenaltiesWinner != nil {
		return *p.PenaltiesWinner, true
	}
	return "", false
}

// Prediction is the per-user, per-league aggregate.
type Prediction struct {
	ID          string
	UserID      string
	LeagueID    string
	Matches     []MatchPrediction
	Awards      Awards
	ChampionID  string
	Tiebreakers map[string]map[string]int // group id -> team id -> manual rank
	UpdatedAt   time.Time
}

func (p *Prediction) MatchPrediction(matchID string) (MatchPrediction, bool) {
	for _, m := range p.Matches {
		if m.MatchID == matchID {
			return m, true
		}
	}
	return MatchPrediction{}, false
}

// Draft is a match prediction kept locally until it is submitted.
type Draft struct {
	ID           string
	PredictionID string
	GroupID      string
	Phase        Phase
	Prediction   MatchPrediction
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
