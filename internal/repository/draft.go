package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"porra/internal/domain"
)

// DraftRepository holds match predictions typed in but not yet sent. There is
// at most one draft per prediction and match.
type DraftRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewDraftRepository(sqlDB *sql.DB, logger zerolog.Logger) *DraftRepository {
	return &DraftRepository{db: sqlDB, logger: logger}
}

const upsertDraft = `
	INSERT INTO prediction_drafts (
		id, prediction_id, match_id, group_id, phase,
		home_team_id, away_team_id, home_score, away_score,
		home_score_et, away_score_et, penalties_winner,
		created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (prediction_id, match_id) DO UPDATE SET
		group_id = excluded.group_id,
		phase = excluded.phase,
		home_team_id = excluded.home_team_id,
		away_team_id = excluded.away_team_id,
		home_score = excluded.home_score,
		away_score = excluded.away_score,
		home_score_et = excluded.home_score_et,
		away_score_et = excluded.away_score_et,
		penalties_winner = excluded.penalties_winner,
		updated_at = excluded.updated_at`

func (r *DraftRepository) Upsert(ctx context.Context, draft *domain.Draft) error {
	return r.UpsertBatch(ctx, []domain.Draft{*draft})
}

func (r *DraftRepository) UpsertBatch(ctx context.Context, drafts []domain.Draft) error {
	if len(drafts) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertDraft)
	if err != nil {
		return fmt.Errorf("failed to prepare draft upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, d := range drafts {
		id := d.ID
		if id == "" {
			id, err = gonanoid.New()
			if err != nil {
				return fmt.Errorf("failed to generate nanoid: %w", err)
			}
		}

		p := d.Prediction
		var penalties *string
		if p.PenaltiesWinner != nil {
			side := string(*p.PenaltiesWinner)
			penalties = &side
		}

		_, err := stmt.ExecContext(ctx,
			id, d.PredictionID, p.MatchID, d.GroupID, string(d.Phase),
			p.HomeTeamID, p.AwayTeamID, p.HomeScore, p.AwayScore,
			p.ExtraTimeHome, p.ExtraTimeAway, penalties,
			now, now,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert draft for match %s: %w", p.MatchID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit drafts: %w", err)
	}
	r.logger.Debug().Int("count", len(drafts)).Msg("drafts saved")
	return nil
}

const selectDrafts = `
	SELECT id, prediction_id, match_id, group_id, phase,
		home_team_id, away_team_id, home_score, away_score,
		home_score_et, away_score_et, penalties_winner,
		created_at, updated_at
	FROM prediction_drafts`

func (r *DraftRepository) List(ctx context.Context, predictionID string) ([]domain.Draft, error) {
	return r.query(ctx, selectDrafts+` WHERE prediction_id = ? ORDER BY phase, group_id, match_id`, predictionID)
}

func (r *DraftRepository) ListByGroup(ctx context.Context, predictionID, groupID string) ([]domain.Draft, error) {
	return r.query(ctx, selectDrafts+` WHERE prediction_id = ? AND phase = ? AND group_id = ? ORDER BY match_id`,
		predictionID, string(domain.PhaseGroupStage), groupID)
}

func (r *DraftRepository) ListByPhase(ctx context.Context, predictionID string, phase domain.Phase) ([]domain.Draft, error) {
	return r.query(ctx, selectDrafts+` WHERE prediction_id = ? AND phase = ? ORDER BY match_id`,
		predictionID, string(phase))
}

func (r *DraftRepository) query(ctx context.Context, query string, args ...any) ([]domain.Draft, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	drafts := []domain.Draft{}
	for rows.Next() {
		var (
			d         domain.Draft
			phase     string
			etHome    sql.NullInt64
			etAway    sql.NullInt64
			penalties sql.NullString
		)
		err := rows.Scan(
			&d.ID, &d.PredictionID, &d.Prediction.MatchID, &d.GroupID, &phase,
			&d.Prediction.HomeTeamID, &d.Prediction.AwayTeamID, &d.Prediction.HomeScore, &d.Prediction.AwayScore,
			&etHome, &etAway, &penalties,
			&d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}

		d.Phase = domain.Phase(phase)
		if etHome.Valid {
			v := int(etHome.Int64)
			d.Prediction.ExtraTimeHome = &v
		}
		if etAway.Valid {
			v := int(etAway.Int64)
			d.Prediction.ExtraTimeAway = &v
		}
		if penalties.Valid {
			side := domain.Side(penalties.String)
			d.Prediction.PenaltiesWinner = &side
		}
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate drafts: %w", err)
	}
	return drafts, nil
}

func (r *DraftRepository) DeleteMatch(ctx context.Context, predictionID, matchID string) (int64, error) {
	return r.delete(ctx, `DELETE FROM prediction_drafts WHERE prediction_id = ? AND match_id = ?`, predictionID, matchID)
}

func (r *DraftRepository) DeleteGroup(ctx context.Context, predictionID, groupID string) (int64, error) {
	return r.delete(ctx, `DELETE FROM prediction_drafts WHERE prediction_id = ? AND phase = ? AND group_id = ?`,
		predictionID, string(domain.PhaseGroupStage), groupID)
}

func (r *DraftRepository) DeletePhase(ctx context.Context, predictionID string, phase domain.Phase) (int64, error) {
	return r.delete(ctx, `DELETE FROM prediction_drafts WHERE prediction_id = ? AND phase = ?`, predictionID, string(phase))
}

func (r *DraftRepository) DeleteAll(ctx context.Context, predictionID string) (int64, error) {
	return r.delete(ctx, `DELETE FROM prediction_drafts WHERE prediction_id = ?`, predictionID)
}

func (r *DraftRepository) delete(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete drafts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted drafts: %w", err)
	}
	r.logger.Debug().Int64("count", n).Msg("drafts deleted")
	return n, nil
}
