package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"risk-prediction-service/internal/domain"
)

// AnalyticsUseCase aggregates the persisted prediction log.
type AnalyticsUseCase struct {
	logs domain.PredictionLogRepository
}

func NewAnalyticsUseCase(logs domain.PredictionLogRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{logs: logs}
}

// Report builds the analytics view for a time range such as "7d", "30d" or
// "90d". filters is a JSON object; "model_name" is the supported key and
// unparseable filters are treated as empty, matching the lenient query
// contract.
func (uc *AnalyticsUseCase) Report(ctx context.Context, timeRange, filters string) (*domain.AnalyticsReport, error) {
	days, err := parseTimeRange(timeRange)
	if err != nil {
		return nil, &domain.ValidationError{Problems: []string{err.Error()}}
	}

	filter := domain.AnalyticsFilter{
		Since: time.Now().UTC().AddDate(0, 0, -days),
	}
	if filters != "" {
		parsed := map[string]any{}
		if err := json.Unmarshal([]byte(filters), &parsed); err == nil {
			if name, ok := parsed["model_name"].(string); ok {
				filter.ModelName = name
			}
		}
	}

	return uc.logs.Report(ctx, filter)
}

func parseTimeRange(s string) (int, error) {
	if s == "" {
		return 30, nil
	}
	if !strings.HasSuffix(s, "d") {
		return 0, fmt.Errorf("unsupported time range %q", s)
	}
	days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
	if err != nil || days <= 0 {
		return 0, fmt.Errorf("unsupported time range %q", s)
	}
	return days, nil
}
