package domain

import (
	"time"

	"github.com/google/uuid"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskLevelFor buckets a prediction score. The 0.3 and 0.7 boundaries are
// closed on the upper bucket: exactly 0.3 is medium, exactly 0.7 is high.
func RiskLevelFor(score float64) RiskLevel {
	switch {
	case score < 0.3:
		return RiskLow
	case score < 0.7:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// DefaultConfidence is substituted when the serving model reports none.
const DefaultConfidence = 0.8

type PredictionResult struct {
	Prediction  float64
	RiskLevel   RiskLevel
	Confidence  float64
	Explanation map[string]float64
	Timestamp   time.Time
}

// PredictionLogEntry is the persisted trace of one served prediction,
// written asynchronously after the response has gone out.
type PredictionLogEntry struct {
	ID          uuid.UUID
	ModelName   string
	Prediction  float64
	RiskLevel   RiskLevel
	Confidence  float64
	Explanation map[string]float64
	CreatedAt   time.Time
}

type TrendPoint struct {
	Date        string `json:"date"`
	Predictions int    `json:"predictions"`
	HighRisk    int    `json:"high_risk"`
}

type RiskFactor struct {
	Factor string  `json:"factor"`
	Impact float64 `json:"impact"`
}

type AnalyticsReport struct {
	TotalPredictions int               `json:"total_predictions"`
	RiskDistribution map[RiskLevel]int `json:"risk_distribution"`
	Trends           []TrendPoint      `json:"trends"`
	TopRiskFactors   []RiskFactor      `json:"top_risk_factors"`
}

type AnalyticsFilter struct {
	Since     time.Time
	ModelName string
}
