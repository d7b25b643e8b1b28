package validation

import (
	"fmt"
	"strings"

	"porra/internal/domain"
)

var maxMatchesPerPhase = map[domain.Phase]int{
	domain.PhaseRoundOf32:    16,
	domain.PhaseRoundOf16:    8,
	domain.PhaseQuarterFinal: 4,
	domain.PhaseSemiFinal:    2,
	domain.PhaseFinal:        1,
}

// MaxMatches returns how many matches a knockout phase has, or 0 for phases
// that cannot be submitted as knockout predictions.
func MaxMatches(phase domain.Phase) int {
	return maxMatchesPerPhase[phase]
}

func knockoutPhaseList() string {
	names := make([]string, len(domain.KnockoutPhases))
	for i, p := range domain.KnockoutPhases {
		names[i] = string(p)
	}
	last := len(names) - 1
	return strings.Join(names[:last], ", ") + " and " + names[last]
}

// ValidateKnockout checks a knockout batch before it is sent. It stops at the
// first failing rule; a non-nil result means nothing may be submitted.
//
// A prediction with a decisive regulation score may carry extra-time or
// penalty data: the values are checked but not required to be consistent.
func ValidateKnockout(phase domain.Phase, preds []domain.MatchPrediction) error {
	limit, ok := maxMatchesPerPhase[phase]
	if !ok {
		return &Error{
			Rule:    RulePhase,
			Index:   -1,
			Message: fmt.Sprintf("Invalid knockout phase %q. Valid phases are %s", phase, knockoutPhaseList()),
		}
	}

	if len(preds) == 0 {
		return &Error{Rule: RuleCount, Index: -1, Message: fmt.Sprintf("At least one prediction is required for %s", phase)}
	}
	if len(preds) > limit {
		return &Error{
			Rule:    RuleCount,
			Index:   -1,
			Message: fmt.Sprintf("Too many predictions for %s: got %d. Maximum is %d", phase, len(preds), limit),
		}
	}

	for i, p := range preds {
		if err := validateKnockoutPrediction(p); err != nil {
			err.Index = i
			err.MatchID = p.MatchID
			return err
		}
	}
	return nil
}

func validateKnockoutPrediction(p domain.MatchPrediction) *Error {
	switch {
	case p.MatchID == "":
		return &Error{Rule: RuleIdentifiers, Message: "matchId is required"}
	case p.HomeTeamID == "":
		return &Error{Rule: RuleIdentifiers, Message: fmt.Sprintf("homeTeamId is required for match %s", p.MatchID)}
	case p.AwayTeamID == "":
		return &Error{Rule: RuleIdentifiers, Message: fmt.Sprintf("awayTeamId is required for match %s", p.MatchID)}
	case p.HomeTeamID == p.AwayTeamID:
		return &Error{Rule: RuleIdentifiers, Message: fmt.Sprintf("Home and away teams must be different in match %s", p.MatchID)}
	}

	if p.HomeScore < 0 || p.AwayScore < 0 {
		return &Error{Rule: RuleScores, Message: fmt.Sprintf("Scores must be non-negative integers in match %s", p.MatchID)}
	}

	if err := validateExtraFields(p); err != nil {
		return err
	}

	if p.HomeScore != p.AwayScore {
		return nil
	}

	hasPenalties := p.PenaltiesWinner != nil
	if !p.HasExtraTime() {
		if !hasPenalties {
			return &Error{
				Rule:    RuleDrawResolution,
				Message: fmt.Sprintf("Match %s ends in a draw: extra time scores or a penalties winner are required", p.MatchID),
			}
		}
		return nil
	}

	etTied := *p.ExtraTimeHome == *p.ExtraTimeAway
	switch {
	case etTied && !hasPenalties:
		return &Error{
			Rule:    RuleDrawResolution,
			Message: fmt.Sprintf("Match %s is still tied after extra time: a penalties winner is required", p.MatchID),
		}
	case !etTied && hasPenalties:
		return &Error{
			Rule:    RuleDrawResolution,
			Message: fmt.Sprintf("Match %s is decided in extra time: penalties winner must not be set", p.MatchID),
		}
	}
	return nil
}

// validateExtraFields applies the numeric checks that hold whether or not the
// extra fields are needed.
func validateExtraFields(p domain.MatchPrediction) *Error {
	if (p.ExtraTimeHome == nil) != (p.ExtraTimeAway == nil) {
		return &Error{
			Rule:    RuleExtraTime,
			Message: fmt.Sprintf("Extra time needs both home and away scores in match %s", p.MatchID),
		}
	}
	if p.HasExtraTime() && (*p.ExtraTimeHome < 0 || *p.ExtraTimeAway < 0) {
		return &Error{
			Rule:    RuleExtraTime,
			Message: fmt.Sprintf("Extra time scores must be non-negative integers in match %s", p.MatchID),
		}
	}
	if w := p.PenaltiesWinner; w != nil && *w != domain.SideHome && *w != domain.SideAway {
		return &Error{
			Rule:    RuleExtraTime,
			Message: fmt.Sprintf("Penalties winner must be \"home\" or \"away\" in match %s", p.MatchID),
		}
	}
	return nil
}
