package repository

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"porra/internal/api"
	"porra/internal/domain"
)

type PredictionRepository struct {
	client *api.Client
	logger zerolog.Logger
}

func NewPredictionRepository(client *api.Client, logger zerolog.Logger) *PredictionRepository {
	return &PredictionRepository{client: client, logger: logger}
}

const (
	predictionNotFound = "No se encontró la predicción"
	predictionsLocked  = "El plazo para modificar las predicciones ha terminado"
)

var (
	getPredictionMessages = statusMessages{
		http.StatusNotFound:  "La liga no existe o no eres miembro de ella",
		http.StatusForbidden: "La liga no existe o no eres miembro de ella",
	}
	saveGroupMessages = statusMessages{
		http.StatusNotFound:   predictionNotFound,
		http.StatusForbidden:  predictionsLocked,
		http.StatusBadRequest: "Los resultados del grupo no son válidos",
	}
	saveKnockoutMessages = statusMessages{
		http.StatusNotFound:   predictionNotFound,
		http.StatusForbidden:  predictionsLocked,
		http.StatusBadRequest: "Los resultados de la eliminatoria no son válidos",
	}
	statsMessages = statusMessages{
		http.StatusNotFound: predictionNotFound,
	}
	awardsMessages = statusMessages{
		http.StatusNotFound:   predictionNotFound,
		http.StatusForbidden:  predictionsLocked,
		http.StatusBadRequest: "Alguno de los jugadores elegidos no existe",
	}
	championMessages = statusMessages{
		http.StatusNotFound:   predictionNotFound,
		http.StatusForbidden:  predictionsLocked,
		http.StatusBadRequest: "La selección elegida no existe",
	}
)

// GetOrCreate returns the user's prediction for a league. The backend creates
// an empty one on first access.
func (r *PredictionRepository) GetOrCreate(ctx context.Context, leagueID string) (*domain.Prediction, error) {
	res, err := r.client.GetOrCreatePrediction(ctx, leagueID)
	if err != nil {
		return nil, translate(err, getPredictionMessages)
	}
	return toPrediction(*res), nil
}

func (r *PredictionRepository) SaveGroup(ctx context.Context, predictionID, groupID string, preds []domain.MatchPrediction, tiebreakers map[string]int) (*domain.Prediction, error) {
	res, err := r.client.SaveGroupPredictions(ctx, predictionID, groupID, api.SaveGroupRequest{
		Predictions: fromMatchPredictions(preds),
		Tiebreakers: tiebreakers,
	})
	if err != nil {
		return nil, translate(err, saveGroupMessages)
	}
	r.logger.Info().Str("prediction_id", predictionID).Str("group", groupID).Int("count", len(preds)).Msg("group predictions saved")
	return toPrediction(*res), nil
}

func (r *PredictionRepository) SaveKnockout(ctx context.Context, predictionID string, phase domain.Phase, preds []domain.MatchPrediction) (*domain.Prediction, error) {
	res, err := r.client.SaveKnockoutPredictions(ctx, predictionID, string(phase), api.SaveKnockoutRequest{
		Predictions: fromMatchPredictions(preds),
	})
	if err != nil {
		return nil, translate(err, saveKnockoutMessages)
	}
	r.logger.Info().Str("prediction_id", predictionID).Str("phase", string(phase)).Int("count", len(preds)).Msg("knockout predictions saved")
	return toPrediction(*res), nil
}

func (r *PredictionRepository) Stats(ctx context.Context, predictionID string) (*domain.PredictionStats, error) {
	res, err := r.client.GetPredictionStats(ctx, predictionID)
	if err != nil {
		return nil, translate(err, statsMessages)
	}
	stats := toPredictionStats(*res)
	return &stats, nil
}

func (r *PredictionRepository) SaveAwards(ctx context.Context, predictionID string, awards domain.Awards) (*domain.Prediction, error) {
	res, err := r.client.SaveAwards(ctx, predictionID, api.AwardsDTO{
		GoldenBall:      awards.GoldenBall,
		GoldenBoot:      awards.GoldenBoot,
		GoldenGlove:     awards.GoldenGlove,
		BestYoungPlayer: awards.BestYoungPlayer,
	})
	if err != nil {
		return nil, translate(err, awardsMessages)
	}
	return toPrediction(*res), nil
}

func (r *PredictionRepository) SaveChampion(ctx context.Context, predictionID, teamID string) (*domain.Prediction, error) {
	res, err := r.client.SaveChampion(ctx, predictionID, api.ChampionRequest{TeamID: teamID})
	if err != nil {
		return nil, translate(err, championMessages)
	}
	return toPrediction(*res), nil
}
