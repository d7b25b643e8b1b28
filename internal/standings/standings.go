// Package standings builds group tables out of predicted scores.
package standings

import (
	"fmt"
	"slices"
	"strings"

	"porra/internal/domain"
)

const (
	pointsWin  = 3
	pointsDraw = 1
)

// Calculate derives the table for one group. Teams are taken from the match
// set, so a team without predicted matches still gets a zeroed row. Matches
// without a usable score are skipped. tiebreakers maps team id to a manual
// rank (1 is best) and only orders teams that are tied on points, goal
// difference and goals for.
func Calculate(matches []domain.Match, scores map[string]domain.Score, tiebreakers map[string]int) []domain.TeamStanding {
	index := make(map[string]*domain.TeamStanding)
	order := make([]string, 0, 4)

	addTeam := func(t *domain.Team) {
		if _, ok := index[t.ID]; ok {
			return
		}
		index[t.ID] = &domain.TeamStanding{Team: *t}
		order = append(order, t.ID)
	}

	for _, m := range matches {
		if m.HomeTeam == nil || m.AwayTeam == nil || m.HomeTeam.ID == "" || m.AwayTeam.ID == "" {
			continue
		}
		addTeam(m.HomeTeam)
		addTeam(m.AwayTeam)
	}

	for _, m := range matches {
		if m.HomeTeam == nil || m.AwayTeam == nil {
			continue
		}
		score, ok := scores[m.ID]
		if !ok || score.Home < 0 || score.Away < 0 {
			continue
		}
		home, away := index[m.HomeTeam.ID], index[m.AwayTeam.ID]
		if home == nil || away == nil {
			continue
		}
		record(home, away, score)
	}

	table := make([]domain.TeamStanding, 0, len(order))
	for _, id := range order {
		s := index[id]
		s.GoalDifference = s.GoalsFor - s.GoalsAgainst
		table = append(table, *s)
	}

	markTies(table)

	slices.SortStableFunc(table, func(a, b domain.TeamStanding) int {
		return compare(a, b, tiebreakers)
	})

	for i := range table {
		table[i].Position = i + 1
	}
	return table
}

func record(home, away *domain.TeamStanding, score domain.Score) {
	home.Played++
	away.Played++
	home.GoalsFor += score.Home
	home.GoalsAgainst += score.Away
	away.GoalsFor += score.Away
	away.GoalsAgainst += score.Home

	switch {
	case score.Home > score.Away:
		home.Won++
		home.Points += pointsWin
		away.Lost++
	case score.Away > score.Home:
		away.Won++
		away.Points += pointsWin
		home.Lost++
	default:
		home.Drawn++
		away.Drawn++
		home.Points += pointsDraw
		away.Points += pointsDraw
	}
}

func tieKey(s domain.TeamStanding) string {
	return fmt.Sprintf("%d|%d|%d", s.Points, s.GoalDifference, s.GoalsFor)
}

func markTies(table []domain.TeamStanding) {
	groups := make(map[string][]int)
	for i, s := range table {
		k := tieKey(s)
		groups[k] = append(groups[k], i)
	}
	for _, members := range groups {
		if len(members) < 2 {
			continue
		}
		for _, i := range members {
			table[i].IsTied = true
			table[i].TiedWith = make([]string, 0, len(members)-1)
			for _, j := range members {
				if j != i {
					table[i].TiedWith = append(table[i].TiedWith, table[j].Team.ID)
				}
			}
		}
	}
}

func compare(a, b domain.TeamStanding, tiebreakers map[string]int) int {
	if a.Points != b.Points {
		return b.Points - a.Points
	}
	if a.GoalDifference != b.GoalDifference {
		return b.GoalDifference - a.GoalDifference
	}
	if a.GoalsFor != b.GoalsFor {
		return b.GoalsFor - a.GoalsFor
	}
	if a.IsTied && slices.Contains(a.TiedWith, b.Team.ID) && fullyRanked(a, tiebreakers) {
		if ra, rb := tiebreakers[a.Team.ID], tiebreakers[b.Team.ID]; ra != rb {
			return ra - rb
		}
	}
	if c := strings.Compare(a.Team.Name, b.Team.Name); c != 0 {
		return c
	}
	return strings.Compare(a.Team.ID, b.Team.ID)
}

// fullyRanked reports whether every team in s's tie group has a manual rank.
// A partly ranked group is ordered by name and id as a whole.
func fullyRanked(s domain.TeamStanding, tiebreakers map[string]int) bool {
	if _, ok := tiebreakers[s.Team.ID]; !ok {
		return false
	}
	for _, id := range s.TiedWith {
		if _, ok := tiebreakers[id]; !ok {
			return false
		}
	}
	return true
}

// ScoresFromPredictions indexes regulation scores by match id.
func ScoresFromPredictions(preds []domain.MatchPrediction) map[string]domain.Score {
	scores := make(map[string]domain.Score, len(preds))
	for _, p := range preds {
		if p.MatchID == "" {
			continue
		}
		scores[p.MatchID] = p.Score()
	}
	return scores
}

// TiedGroups returns the sets of team ids that are still tied, in table order.
func TiedGroups(table []domain.TeamStanding) [][]string {
	seen := make(map[string]bool)
	var groups [][]string
	for _, s := range table {
		if !s.IsTied || seen[s.Team.ID] {
			continue
		}
		group := append([]string{s.Team.ID}, s.TiedWith...)
		for _, id := range group {
			seen[id] = true
		}
		groups = append(groups, group)
	}
	return groups
}
