package cli

import (
	"slices"
	"strconv"
	"strings"

	"porra/internal/domain"
)

// parseScore reads "H-A".
func parseScore(s string) (home, away int, err error) {
	h, a, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return 0, 0, inputErrorf("marcador %q no válido, usa el formato 2-1", s)
	}
	home, errH := strconv.Atoi(strings.TrimSpace(h))
	away, errA := strconv.Atoi(strings.TrimSpace(a))
	if errH != nil || errA != nil {
		return 0, 0, inputErrorf("marcador %q no válido, usa el formato 2-1", s)
	}
	return home, away, nil
}

// parsePrediction reads "matchId=H-A[,et=H-A][,pen=home|away]". Sign and
// range checks are left to the validators.
func parsePrediction(s string) (domain.MatchPrediction, error) {
	var p domain.MatchPrediction

	matchID, rest, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(matchID) == "" {
		return p, inputErrorf("pronóstico %q no válido, usa partido=2-1", s)
	}
	p.MatchID = strings.TrimSpace(matchID)

	parts := strings.Split(rest, ",")
	var err error
	p.HomeScore, p.AwayScore, err = parseScore(parts[0])
	if err != nil {
		return p, err
	}

	for _, part := range parts[1:] {
		key, value, _ := strings.Cut(part, "=")
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "et":
			h, a, err := parseScore(value)
			if err != nil {
				return p, err
			}
			p.ExtraTimeHome, p.ExtraTimeAway = &h, &a
		case "pen":
			side := domain.Side(strings.ToLower(strings.TrimSpace(value)))
			p.PenaltiesWinner = &side
		default:
			return p, inputErrorf("opción %q no reconocida en %q, usa et=2-2 o pen=home", key, s)
		}
	}
	return p, nil
}

func parsePredictions(args []string) ([]domain.MatchPrediction, error) {
	preds := make([]domain.MatchPrediction, 0, len(args))
	for _, a := range args {
		p, err := parsePrediction(a)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	return preds, nil
}

// parseTiebreaks reads repeated "teamId=rank" pairs.
func parseTiebreaks(pairs []string) (map[string]int, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]int, len(pairs))
	for _, pair := range pairs {
		id, rank, ok := strings.Cut(pair, "=")
		n, err := strconv.Atoi(strings.TrimSpace(rank))
		if !ok || strings.TrimSpace(id) == "" || err != nil || n < 1 {
			return nil, inputErrorf("desempate %q no válido, usa equipo=posición (por ejemplo esp=1)", pair)
		}
		out[strings.TrimSpace(id)] = n
	}
	return out, nil
}

// parseKnockoutPhase is parsePhase restricted to phases submitted as a batch.
func parseKnockoutPhase(s string) (domain.Phase, error) {
	phase, err := parsePhase(s)
	if err != nil {
		return "", err
	}
	if !slices.Contains(domain.KnockoutPhases, phase) {
		names := make([]string, len(domain.KnockoutPhases))
		for i, p := range domain.KnockoutPhases {
			names[i] = string(p)
		}
		return "", inputErrorf("%s no es una fase eliminatoria, usa una de: %s", phase, strings.Join(names, ", "))
	}
	return phase, nil
}

func parsePhase(s string) (domain.Phase, error) {
	phase, err := domain.ParsePhase(strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return "", inputErrorf("fase %q no reconocida", s)
	}
	return phase, nil
}
