package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"risk-prediction-service/internal/domain"
)

type predictionLogRepo struct {
	pool *pgxpool.Pool
}

// NewPredictionLogRepository returns the Postgres-backed prediction log.
// Expected schema:
//
//	CREATE TABLE prediction_log (
//	    id          UUID PRIMARY KEY,
//	    model_name  TEXT NOT NULL,
//	    prediction  DOUBLE PRECISION NOT NULL,
//	    risk_level  TEXT NOT NULL,
//	    confidence  DOUBLE PRECISION NOT NULL,
//	    explanation JSONB NOT NULL DEFAULT '{}',
//	    created_at  TIMESTAMPTZ NOT NULL
//	);
func NewPredictionLogRepository(pool *pgxpool.Pool) domain.PredictionLogRepository {
	return &predictionLogRepo{pool: pool}
}

func (r *predictionLogRepo) Record(ctx context.Context, entry *domain.PredictionLogEntry) error {
	explanationJSON, err := json.Marshal(entry.Explanation)
	if err != nil {
		return fmt.Errorf("marshal explanation: %w", err)
	}

	query := `
		INSERT INTO prediction_log
			(id, model_name, prediction, risk_level, confidence, explanation, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`

	_, err = r.pool.Exec(ctx, query,
		entry.ID, entry.ModelName, entry.Prediction, string(entry.RiskLevel),
		entry.Confidence, explanationJSON, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record prediction: %w", err)
	}
	return nil
}

func (r *predictionLogRepo) Report(ctx context.Context, filter domain.AnalyticsFilter) (*domain.AnalyticsReport, error) {
	report := &domain.AnalyticsReport{
		RiskDistribution: map[domain.RiskLevel]int{
			domain.RiskLow: 0, domain.RiskMedium: 0, domain.RiskHigh: 0,
		},
		Trends:         []domain.TrendPoint{},
		TopRiskFactors: []domain.RiskFactor{},
	}

	where := "created_at >= $1"
	args := []interface{}{filter.Since}
	if filter.ModelName != "" {
		where += " AND model_name = $2"
		args = append(args, filter.ModelName)
	}

	distQuery := fmt.Sprintf(`
		SELECT risk_level, COUNT(*)
		FROM prediction_log
		WHERE %s
		GROUP BY risk_level
	`, where)

	rows, err := r.pool.Query(ctx, distQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("risk distribution: %w", err)
	}
	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan risk distribution: %w", err)
		}
		report.RiskDistribution[domain.RiskLevel(level)] = count
		report.TotalPredictions += count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("risk distribution: %w", err)
	}

	trendQuery := fmt.Sprintf(`
		SELECT to_char(date_trunc('day', created_at), 'YYYY-MM-DD') AS day,
		       COUNT(*),
		       COUNT(*) FILTER (WHERE risk_level = 'high')
		FROM prediction_log
		WHERE %s
		GROUP BY day
		ORDER BY day
	`, where)

	rows, err = r.pool.Query(ctx, trendQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("trends: %w", err)
	}
	for rows.Next() {
		var p domain.TrendPoint
		if err := rows.Scan(&p.Date, &p.Predictions, &p.HighRisk); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan trend: %w", err)
		}
		report.Trends = append(report.Trends, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("trends: %w", err)
	}

	factorQuery := fmt.Sprintf(`
		SELECT e.key, AVG(ABS(e.value::double precision))
		FROM prediction_log, jsonb_each_text(explanation) AS e
		WHERE %s
		GROUP BY e.key
		ORDER BY 2 DESC
		LIMIT 5
	`, where)

	rows, err = r.pool.Query(ctx, factorQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("top risk factors: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var f domain.RiskFactor
		if err := rows.Scan(&f.Factor, &f.Impact); err != nil {
			return nil, fmt.Errorf("scan risk factor: %w", err)
		}
		report.TopRiskFactors = append(report.TopRiskFactors, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top risk factors: %w", err)
	}

	return report, nil
}
