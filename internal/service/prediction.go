package service

import (
	"context"
	"fmt"
	"maps"

	"github.com/rs/zerolog"

	"porra/internal/domain"
	"porra/internal/repository"
	"porra/internal/standings"
	"porra/internal/validation"
)

type PredictionService struct {
	predictions *repository.PredictionRepository
	matches     *repository.MatchRepository
	drafts      *repository.DraftRepository
	logger      zerolog.Logger
}

func NewPredictionService(
	predictions *repository.PredictionRepository,
	matches *repository.MatchRepository,
	drafts *repository.DraftRepository,
	logger zerolog.Logger,
) *PredictionService {
	return &PredictionService{predictions: predictions, matches: matches, drafts: drafts, logger: logger}
}

func (s *PredictionService) Get(ctx context.Context, leagueID string) (*domain.Prediction, error) {
	return s.predictions.GetOrCreate(ctx, leagueID)
}

func (s *PredictionService) Stats(ctx context.Context, leagueID string) (*domain.PredictionStats, error) {
	p, err := s.predictions.GetOrCreate(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return s.predictions.Stats(ctx, p.ID)
}

// GroupTable is a group's standings together with the ties the user may
// still have to break by hand.
type GroupTable struct {
	GroupID   string
	Standings []domain.TeamStanding
	Ties      [][]string
}

// GroupResult is what a group submission leaves behind.
type GroupResult struct {
	Prediction *domain.Prediction
	Table      GroupTable
}

// SaveGroup validates a group batch against the group's fixtures and sends it.
// tiebreakers maps team id to manual rank for teams left level.
func (s *PredictionService) SaveGroup(ctx context.Context, leagueID, groupID string, preds []domain.MatchPrediction, tiebreakers map[string]int) (*GroupResult, error) {
	groupMatches, err := s.groupMatches(ctx, groupID)
	if err != nil {
		return nil, err
	}
	preds = fillTeams(groupMatches, preds)
	if err := validation.ValidateGroupSubmission(groupMatches, preds); err != nil {
		return nil, err
	}

	p, err := s.predictions.GetOrCreate(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	saved, err := s.predictions.SaveGroup(ctx, p.ID, groupID, preds, tiebreakers)
	if err != nil {
		return nil, err
	}

	return &GroupResult{
		Prediction: saved,
		Table:      buildTable(groupID, groupMatches, saved.Matches, mergeTiebreakers(saved.Tiebreakers[groupID], tiebreakers)),
	}, nil
}

// SaveKnockout validates the whole batch locally first. Nothing is sent
// unless every prediction passes. Team ids missing from the predictions are
// taken from the phase's fixtures.
func (s *PredictionService) SaveKnockout(ctx context.Context, leagueID string, phase domain.Phase, preds []domain.MatchPrediction) (*domain.Prediction, error) {
	if missingTeams(preds) && validation.MaxMatches(phase) > 0 {
		fixtures, err := s.matches.List(ctx, repository.MatchFilter{Phase: phase})
		if err != nil {
			return nil, err
		}
		preds = fillTeams(fixtures, preds)
	}

	if err := validation.ValidateKnockout(phase, preds); err != nil {
		s.logger.Debug().Err(err).Str("phase", string(phase)).Msg("knockout batch rejected")
		return nil, err
	}

	p, err := s.predictions.GetOrCreate(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return s.predictions.SaveKnockout(ctx, p.ID, phase, preds)
}

func (s *PredictionService) SaveAwards(ctx context.Context, leagueID string, awards domain.Awards) (*domain.Prediction, error) {
	if awards == (domain.Awards{}) {
		return nil, ErrNothingToUpdate
	}
	p, err := s.predictions.GetOrCreate(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return s.predictions.SaveAwards(ctx, p.ID, mergeAwards(p.Awards, awards))
}

func (s *PredictionService) SaveChampion(ctx context.Context, leagueID, teamID string) (*domain.Prediction, error) {
	if teamID == "" {
		return nil, ErrNothingToUpdate
	}
	p, err := s.predictions.GetOrCreate(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return s.predictions.SaveChampion(ctx, p.ID, teamID)
}

// GroupStandings builds a group's table out of the saved predictions. Manual
// ranks passed in override the saved ones.
func (s *PredictionService) GroupStandings(ctx context.Context, leagueID, groupID string, tiebreakers map[string]int) (*GroupTable, error) {
	p, err := s.predictions.GetOrCreate(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	groupMatches, err := s.groupMatches(ctx, groupID)
	if err != nil {
		return nil, err
	}
	table := buildTable(groupID, groupMatches, p.Matches, mergeTiebreakers(p.Tiebreakers[groupID], tiebreakers))
	return &table, nil
}

// SetDraft stores one match prediction locally after checking it the same
// way a submission would.
func (s *PredictionService) SetDraft(ctx context.Context, leagueID string, pred domain.MatchPrediction) (*domain.Draft, error) {
	match, err := s.matches.Get(ctx, pred.MatchID)
	if err != nil {
		return nil, err
	}
	pred = fillTeams([]domain.Match{*match}, []domain.MatchPrediction{pred})[0]

	if match.Phase == domain.PhaseGroupStage {
		err = validation.ValidateGroupSubmission([]domain.Match{*match}, []domain.MatchPrediction{pred})
	} else {
		err = validation.ValidateKnockout(match.Phase, []domain.MatchPrediction{pred})
	}
	if err != nil {
		return nil, err
	}

	p, err := s.predictions.GetOrCreate(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	draft := &domain.Draft{
		PredictionID: p.ID,
		GroupID:      match.GroupID,
		Phase:        match.Phase,
		Prediction:   pred,
	}
	if err := s.drafts.Upsert(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *PredictionService) Drafts(ctx context.Context, leagueID string) ([]domain.Draft, error) {
	p, err := s.predictions.GetOrCreate(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return s.drafts.List(ctx, p.ID)
}

// DraftScope selects which drafts to clear. The zero value clears all of them.
type DraftScope struct {
	MatchID string
	GroupID string
	Phase   domain.Phase
}

func (s *PredictionService) ClearDrafts(ctx context.Context, leagueID string, scope DraftScope) (int64, error) {
	p, err := s.predictions.GetOrCreate(ctx, leagueID)
	if err != nil {
		return 0, err
	}
	switch {
	case scope.MatchID != "":
		return s.drafts.DeleteMatch(ctx, p.ID, scope.MatchID)
	case scope.GroupID != "":
		return s.drafts.DeleteGroup(ctx, p.ID, scope.GroupID)
	case scope.Phase != "":
		return s.drafts.DeletePhase(ctx, p.ID, scope.Phase)
	}
	return s.drafts.DeleteAll(ctx, p.ID)
}

// DraftStandings previews a group's table with the local drafts laid over
// the saved predictions.
func (s *PredictionService) DraftStandings(ctx context.Context, leagueID, groupID string, tiebreakers map[string]int) (*GroupTable, error) {
	p, err := s.predictions.GetOrCreate(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	drafts, err := s.drafts.ListByGroup(ctx, p.ID, groupID)
	if err != nil {
		return nil, err
	}
	groupMatches, err := s.groupMatches(ctx, groupID)
	if err != nil {
		return nil, err
	}

	preds := overlay(p.Matches, drafts)
	table := buildTable(groupID, groupMatches, preds, mergeTiebreakers(p.Tiebreakers[groupID], tiebreakers))
	return &table, nil
}

// SubmitGroupDrafts sends a group's drafts and drops them once accepted.
func (s *PredictionService) SubmitGroupDrafts(ctx context.Context, leagueID, groupID string, tiebreakers map[string]int) (*GroupResult, error) {
	p, err := s.predictions.GetOrCreate(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	drafts, err := s.drafts.ListByGroup(ctx, p.ID, groupID)
	if err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, ErrNoDrafts
	}

	res, err := s.SaveGroup(ctx, leagueID, groupID, draftPredictions(drafts), tiebreakers)
	if err != nil {
		return nil, err
	}
	if _, err := s.drafts.DeleteGroup(ctx, p.ID, groupID); err != nil {
		s.logger.Warn().Err(err).Str("group", groupID).Msg("group submitted but drafts were not cleared")
	}
	return res, nil
}

// SubmitKnockoutDrafts sends a phase's drafts as one batch. An invalid draft
// blocks the whole batch and keeps every draft.
func (s *PredictionService) SubmitKnockoutDrafts(ctx context.Context, leagueID string, phase domain.Phase) (*domain.Prediction, error) {
	p, err := s.predictions.GetOrCreate(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	drafts, err := s.drafts.ListByPhase(ctx, p.ID, phase)
	if err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, ErrNoDrafts
	}

	preds := draftPredictions(drafts)
	if err := validation.ValidateKnockout(phase, preds); err != nil {
		return nil, err
	}
	saved, err := s.predictions.SaveKnockout(ctx, p.ID, phase, preds)
	if err != nil {
		return nil, err
	}
	if _, err := s.drafts.DeletePhase(ctx, p.ID, phase); err != nil {
		s.logger.Warn().Err(err).Str("phase", string(phase)).Msg("phase submitted but drafts were not cleared")
	}
	return saved, nil
}

func (s *PredictionService) groupMatches(ctx context.Context, groupID string) ([]domain.Match, error) {
	matches, err := s.matches.List(ctx, repository.MatchFilter{Phase: domain.PhaseGroupStage, GroupID: groupID})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no matches in group %s", ErrMatchNotFound, groupID)
	}
	return matches, nil
}

func buildTable(groupID string, groupMatches []domain.Match, preds []domain.MatchPrediction, tiebreakers map[string]int) GroupTable {
	table := standings.Calculate(groupMatches, standings.ScoresFromPredictions(preds), tiebreakers)
	return GroupTable{
		GroupID:   groupID,
		Standings: table,
		Ties:      standings.TiedGroups(table),
	}
}

// fillTeams copies team ids from the fixtures into predictions that omit them.
func fillTeams(matches []domain.Match, preds []domain.MatchPrediction) []domain.MatchPrediction {
	byID := make(map[string]domain.Match, len(matches))
	for _, m := range matches {
		byID[m.ID] = m
	}
	out := make([]domain.MatchPrediction, len(preds))
	for i, p := range preds {
		if m, ok := byID[p.MatchID]; ok {
			if p.HomeTeamID == "" && m.HomeTeam != nil {
				p.HomeTeamID = m.HomeTeam.ID
			}
			if p.AwayTeamID == "" && m.AwayTeam != nil {
				p.AwayTeamID = m.AwayTeam.ID
			}
		}
		out[i] = p
	}
	return out
}

func missingTeams(preds []domain.MatchPrediction) bool {
	for _, p := range preds {
		if p.HomeTeamID == "" || p.AwayTeamID == "" {
			return true
		}
	}
	return false
}

func overlay(saved []domain.MatchPrediction, drafts []domain.Draft) []domain.MatchPrediction {
	out := make([]domain.MatchPrediction, 0, len(saved)+len(drafts))
	drafted := make(map[string]bool, len(drafts))
	for _, d := range drafts {
		drafted[d.Prediction.MatchID] = true
		out = append(out, d.Prediction)
	}
	for _, p := range saved {
		if !drafted[p.MatchID] {
			out = append(out, p)
		}
	}
	return out
}

func draftPredictions(drafts []domain.Draft) []domain.MatchPrediction {
	preds := make([]domain.MatchPrediction, len(drafts))
	for i, d := range drafts {
		preds[i] = d.Prediction
	}
	return preds
}

func mergeTiebreakers(saved, override map[string]int) map[string]int {
	out := make(map[string]int, len(saved)+len(override))
	maps.Copy(out, saved)
	maps.Copy(out, override)
	return out
}

func mergeAwards(current, update domain.Awards) domain.Awards {
	if update.GoldenBall != "" {
		current.GoldenBall = update.GoldenBall
	}
	if update.GoldenBoot != "" {
		current.GoldenBoot = update.GoldenBoot
	}
	if update.GoldenGlove != "" {
		current.GoldenGlove = update.GoldenGlove
	}
	if update.BestYoungPlayer != "" {
		current.BestYoungPlayer = update.BestYoungPlayer
	}
	return current
}
