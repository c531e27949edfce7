package repository

import (
	"context"
	"math"
	"sort"
	"sync"

	"risk-prediction-service/internal/domain"
)

// memoryLogRepo keeps the prediction log in process memory. It backs the
// analytics surface when Postgres is disabled; entries do not survive a
// restart.
type memoryLogRepo struct {
	mu      sync.RWMutex
	entries []domain.PredictionLogEntry
}

func NewMemoryPredictionLog() domain.PredictionLogRepository {
	return &memoryLogRepo{}
}

func (r *memoryLogRepo) Record(_ context.Context, entry *domain.PredictionLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memoryLogRepo) Report(_ context.Context, filter domain.AnalyticsFilter) (*domain.AnalyticsReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report := &domain.AnalyticsReport{
		RiskDistribution: map[domain.RiskLevel]int{
			domain.RiskLow: 0, domain.RiskMedium: 0, domain.RiskHigh: 0,
		},
		Trends:         []domain.TrendPoint{},
		TopRiskFactors: []domain.RiskFactor{},
	}

	byDay := make(map[string]*domain.TrendPoint)
	impactSum := make(map[string]float64)
	impactCount := make(map[string]int)

	for _, e := range r.entries {
		if e.CreatedAt.Before(filter.Since) {
			continue
		}
		if filter.ModelName != "" && e.ModelName != filter.ModelName {
			continue
		}

		report.TotalPredictions++
		report.RiskDistribution[e.RiskLevel]++

		day := e.CreatedAt.UTC().Format("2006-01-02")
		point, ok := byDay[day]
		if !ok {
			point = &domain.TrendPoint{Date: day}
			byDay[day] = point
		}
		point.Predictions++
		if e.RiskLevel == domain.RiskHigh {
			point.HighRisk++
		}

		for factor, impact := range e.Explanation {
			impactSum[factor] += math.Abs(impact)
			impactCount[factor]++
		}
	}

	for _, point := range byDay {
		report.Trends = append(report.Trends, *point)
	}
	sort.Slice(report.Trends, func(i, j int) bool {
		return report.Trends[i].Date < report.Trends[j].Date
	})

	for factor, sum := range impactSum {
		report.TopRiskFactors = append(report.TopRiskFactors, domain.RiskFactor{
			Factor: factor,
			Impact: sum / float64(impactCount[factor]),
		})
	}
	sort.Slice(report.TopRiskFactors, func(i, j int) bool {
		if report.TopRiskFactors[i].Impact != report.TopRiskFactors[j].Impact {
			return report.TopRiskFactors[i].Impact > report.TopRiskFactors[j].Impact
		}
		return report.TopRiskFactors[i].Factor < report.TopRiskFactors[j].Factor
	})
	if len(report.TopRiskFactors) > 5 {
		report.TopRiskFactors = report.TopRiskFactors[:5]
	}

	return report, nil
}
