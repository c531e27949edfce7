package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"risk-prediction-service/internal/domain"
	"risk-prediction-service/internal/model"
)

// MockRegistryStore is a mock of RegistryStore.
type MockRegistryStore struct {
	mock.Mock
}

func (m *MockRegistryStore) Register(name, version string, metrics map[string]float64, path string) error {
	args := m.Called(name, version, metrics, path)
	return args.Error(0)
}

func (m *MockRegistryStore) PromoteToProduction(name, version string) error {
	args := m.Called(name, version)
	return args.Error(0)
}

func (m *MockRegistryStore) GetProductionModel(name string) (*domain.ModelRecord, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModelRecord), args.Error(1)
}

func (m *MockRegistryStore) ListAvailableModels() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

// MockPredictionLog is a mock of PredictionLogRepository.
type MockPredictionLog struct {
	mock.Mock
}

func (m *MockPredictionLog) Record(ctx context.Context, entry *domain.PredictionLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockPredictionLog) Report(ctx context.Context, filter domain.AnalyticsFilter) (*domain.AnalyticsReport, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticsReport), args.Error(1)
}

// MockLoader is a mock of model.Loader.
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Get(path string) (model.Model, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Model), args.Error(1)
}

// StubModel is a fixed-output model for pipeline tests.
type StubModel struct {
	Score         float64
	FeatureNames  []string
	ConfValue     float64
	ConfSupplied  bool
	PredictErr    error
	ExplainOutput map[string]float64
}

func (s *StubModel) Build() model.Model { return s }

func (s *StubModel) Train(features [][]float64, labels []float64) error { return nil }

func (s *StubModel) Predict(features [][]float64) ([]float64, error) {
	if s.PredictErr != nil {
		return nil, s.PredictErr
	}
	out := make([]float64, len(features))
	for i := range out {
		out[i] = s.Score
	}
	return out, nil
}

func (s *StubModel) Confidence() (float64, bool) { return s.ConfValue, s.ConfSupplied }

func (s *StubModel) Features() []string { return s.FeatureNames }

func (s *StubModel) Save(path string) error { return nil }

func (s *StubModel) Trained() bool { return true }

func (s *StubModel) Explain(features []float64) map[string]float64 {
	if s.ExplainOutput == nil {
		return map[string]float64{}
	}
	return s.ExplainOutput
}
