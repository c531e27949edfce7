package dto

import (
	"time"

	"risk-prediction-service/internal/domain"
	"risk-prediction-service/internal/usecase"
)

type PredictionRequest struct {
	StudentData map[string]any `json:"student_data" binding:"required"`
	ModelName   string         `json:"model_name"`
}

type PredictionResponse struct {
	Prediction  float64            `json:"prediction"`
	RiskLevel   string             `json:"risk_level"`
	Confidence  float64            `json:"confidence"`
	Explanation map[string]float64 `json:"explanation"`
	Timestamp   time.Time          `json:"timestamp"`
}

type HealthResponse struct {
	Status       string    `json:"status"`
	Version      string    `json:"version"`
	ModelsLoaded []string  `json:"models_loaded"`
	LastUpdated  time.Time `json:"last_updated"`
}

type ModelsResponse struct {
	Models []usecase.ModelSummary `json:"models"`
}

func ToPredictionResponse(result *domain.PredictionResult) PredictionResponse {
	return PredictionResponse{
		Prediction:  result.Prediction,
		RiskLevel:   string(result.RiskLevel),
		Confidence:  result.Confidence,
		Explanation: result.Explanation,
		Timestamp:   result.Timestamp,
	}
}
