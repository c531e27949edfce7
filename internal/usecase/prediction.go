package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"risk-prediction-service/internal/data"
	"risk-prediction-service/internal/domain"
	"risk-prediction-service/internal/model"
)

// PredictionUseCase runs the serving pipeline: validate the record,
// preprocess it, resolve the production model, score, bucket, respond.
// The prediction-log write happens after the response and can neither
// delay nor fail it.
type PredictionUseCase struct {
	registry domain.RegistryStore
	logs     domain.PredictionLogRepository
	loader   model.Loader

	requiredColumns []string
	timeout         time.Duration
}

func NewPredictionUseCase(registry domain.RegistryStore, logs domain.PredictionLogRepository, loader model.Loader, requiredColumns []string, timeout time.Duration) *PredictionUseCase {
	return &PredictionUseCase{
		registry:        registry,
		logs:            logs,
		loader:          loader,
		requiredColumns: requiredColumns,
		timeout:         timeout,
	}
}

func (uc *PredictionUseCase) Predict(ctx context.Context, record map[string]any, modelName string) (*domain.PredictionResult, error) {
	if ok, problems := data.ValidateRecord(record, uc.requiredColumns); !ok {
		return nil, &domain.ValidationError{Problems: problems}
	}

	processed := data.Preprocess(domain.FrameFromRecord(record))

	rec, err := uc.registry.GetProductionModel(modelName)
	if err != nil {
		return nil, err
	}

	m, err := uc.loader.Get(rec.Path)
	if err != nil {
		return nil, fmt.Errorf("load model %s/%s: %w", rec.Name, rec.Version, err)
	}

	features := featureVector(processed, m.Features())
	score, err := uc.predictWithTimeout(ctx, m, features)
	if err != nil {
		return nil, err
	}

	confidence, ok := m.Confidence()
	if !ok {
		confidence = domain.DefaultConfidence
	}

	explanation := map[string]float64{}
	if ex, ok := m.(model.Explainer); ok {
		explanation = ex.Explain(features)
	}

	result := &domain.PredictionResult{
		Prediction:  score,
		RiskLevel:   domain.RiskLevelFor(score),
		Confidence:  confidence,
		Explanation: explanation,
		Timestamp:   time.Now().UTC(),
	}

	go uc.logPrediction(modelName, result)

	return result, nil
}

func (uc *PredictionUseCase) predictWithTimeout(ctx context.Context, m model.Model, features []float64) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	type outcome struct {
		score float64
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		scores, err := m.Predict([][]float64{features})
		if err != nil {
			done <- outcome{err: err}
			return
		}
		done <- outcome{score: scores[0]}
	}()

	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("inference: %w", ctx.Err())
	case out := <-done:
		return out.score, out.err
	}
}

// logPrediction is fire-and-forget; failures are logged locally and never
// surface to the caller.
func (uc *PredictionUseCase) logPrediction(modelName string, result *domain.PredictionResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry := &domain.PredictionLogEntry{
		ID:          uuid.New(),
		ModelName:   modelName,
		Prediction:  result.Prediction,
		RiskLevel:   result.RiskLevel,
		Confidence:  result.Confidence,
		Explanation: result.Explanation,
		CreatedAt:   result.Timestamp,
	}
	if err := uc.logs.Record(ctx, entry); err != nil {
		log.WithError(err).WithField("model", modelName).Warn("prediction log write failed")
	}
}

// featureVector extracts the model's feature columns, in order, from the
// single preprocessed row. Cells the model expects but the record lacks
// come through as zero.
func featureVector(f *domain.Frame, names []string) []float64 {
	out := make([]float64, len(names))
	if len(f.Rows) == 0 {
		return out
	}
	for i, name := range names {
		if v, ok := f.Numeric(0, name); ok {
			out[i] = v
		}
	}
	return out
}
