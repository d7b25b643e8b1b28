package repository

import (
	"porra/internal/api"
	"porra/internal/domain"
)

func toUser(d api.UserDTO) domain.User {
	return domain.User{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Verified:  d.EmailVerified,
		CreatedAt: d.CreatedAt,
	}
}

func toLeague(d api.LeagueDTO) domain.League {
	return domain.League{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Code:        d.Code,
		OwnerID:     d.OwnerID,
		IsPrivate:   d.IsPrivate,
		MemberCount: d.MemberCount,
		CreatedAt:   d.CreatedAt,
	}
}

func toLeagueMember(d api.LeagueMemberDTO) domain.LeagueMember {
	return domain.LeagueMember{
		UserID:   d.UserID,
		Name:     d.Name,
		Role:     d.Role,
		JoinedAt: d.JoinedAt,
	}
}

func toRankingEntry(d api.RankingEntryDTO) domain.RankingEntry {
	return domain.RankingEntry{
		Position:    d.Position,
		UserID:      d.UserID,
		UserName:    d.UserName,
		Points:      d.Points,
		ExactScores: d.ExactScores,
		Outcomes:    d.Outcomes,
	}
}

func toTeam(d api.TeamDTO) domain.Team {
	return domain.Team{
		ID:            d.ID,
		Name:          d.Name,
		Code:          d.FifaCode,
		Confederation: d.Confederation,
		FlagURL:       d.FlagURL,
		GroupID:       d.Group,
	}
}

func toPlayer(d api.PlayerDTO) domain.Player {
	return domain.Player{
		ID:       d.ID,
		Name:     d.Name,
		Position: d.Position,
		Number:   d.Number,
		TeamID:   d.TeamID,
		Club:     d.Club,
	}
}

func toStadium(d api.StadiumDTO) domain.Stadium {
	return domain.Stadium{
		ID:       d.ID,
		Name:     d.Name,
		City:     d.City,
		Country:  d.Country,
		Capacity: d.Capacity,
	}
}

func toMatch(d api.MatchDTO) domain.Match {
	m := domain.Match{
		ID:        d.ID,
		GroupID:   d.Group,
		Phase:     domain.Phase(d.Phase),
		Number:    d.MatchNumber,
		KickoffAt: d.Date,
		StadiumID: d.StadiumID,
		Status:    domain.MatchStatus(d.Status),
	}
	if d.HomeTeam != nil {
		t := toTeam(*d.HomeTeam)
		m.HomeTeam = &t
	}
	if d.AwayTeam != nil {
		t := toTeam(*d.AwayTeam)
		m.AwayTeam = &t
	}
	if d.HomeScore != nil && d.AwayScore != nil {
		m.Result = &domain.Score{Home: *d.HomeScore, Away: *d.AwayScore}
	}
	return m
}

func toMatchPrediction(d api.MatchPredictionDTO) domain.MatchPrediction {
	p := domain.MatchPrediction{
		MatchID:       d.MatchID,
		HomeTeamID:    d.HomeTeamID,
		AwayTeamID:    d.AwayTeamID,
		HomeScore:     d.HomeScore,
		AwayScore:     d.AwayScore,
		ExtraTimeHome: d.HomeScoreET,
		ExtraTimeAway: d.AwayScoreET,
	}
	if d.PenaltiesWinner != nil {
		side := domain.Side(*d.PenaltiesWinner)
		p.PenaltiesWinner = &side
	}
	return p
}

func fromMatchPrediction(p domain.MatchPrediction) api.MatchPredictionDTO {
	d := api.MatchPredictionDTO{
		MatchID:     p.MatchID,
		HomeTeamID:  p.HomeTeamID,
		AwayTeamID:  p.AwayTeamID,
		HomeScore:   p.HomeScore,
		AwayScore:   p.AwayScore,
		HomeScoreET: p.ExtraTimeHome,
		AwayScoreET: p.ExtraTimeAway,
	}
	if p.PenaltiesWinner != nil {
		side := string(*p.PenaltiesWinner)
		d.PenaltiesWinner = &side
	}
	return d
}

func fromMatchPredictions(preds []domain.MatchPrediction) []api.MatchPredictionDTO {
	out := make([]api.MatchPredictionDTO, len(preds))
	for i, p := range preds {
		out[i] = fromMatchPrediction(p)
	}
	return out
}

func toPrediction(d api.PredictionDTO) *domain.Prediction {
	p := &domain.Prediction{
		ID:          d.ID,
		UserID:      d.UserID,
		LeagueID:    d.LeagueID,
		Matches:     make([]domain.MatchPrediction, 0, len(d.GroupPredictions)+len(d.KnockoutPredictions)),
		Tiebreakers: d.Tiebreakers,
		UpdatedAt:   d.UpdatedAt,
	}
	for _, m := range d.GroupPredictions {
		p.Matches = append(p.Matches, toMatchPrediction(m))
	}
	for _, m := range d.KnockoutPredictions {
		p.Matches = append(p.Matches, toMatchPrediction(m))
	}
	if d.Awards != nil {
		p.Awards = domain.Awards{
			GoldenBall:      d.Awards.GoldenBall,
			GoldenBoot:      d.Awards.GoldenBoot,
			GoldenGlove:     d.Awards.GoldenGlove,
			BestYoungPlayer: d.Awards.BestYoungPlayer,
		}
	}
	if d.ChampionTeamID != nil {
		p.ChampionID = *d.ChampionTeamID
	}
	if p.Tiebreakers == nil {
		p.Tiebreakers = map[string]map[string]int{}
	}
	return p
}

func toPredictionStats(d api.PredictionStatsDTO) domain.PredictionStats {
	return domain.PredictionStats{
		GroupMatchesPredicted:    d.GroupPredicted,
		GroupMatchesTotal:        d.GroupTotal,
		KnockoutMatchesPredicted: d.KnockoutPredicted,
		KnockoutMatchesTotal:     d.KnockoutTotal,
		AwardsCompleted:          d.HasAwards,
		ChampionSelected:         d.HasChampion,
		Points:                   d.Points,
	}
}
