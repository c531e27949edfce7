package domain

import "context"

// RegistryStore is the catalogue of trained model versions. Mutations come
// from offline training jobs; the serving path only reads.
type RegistryStore interface {
	Register(name, version string, metrics map[string]float64, path string) error
	PromoteToProduction(name, version string) error
	GetProductionModel(name string) (*ModelRecord, error)
	ListAvailableModels() []string
}

// PredictionLogRepository persists served predictions and aggregates them
// for the analytics surface.
type PredictionLogRepository interface {
	Record(ctx context.Context, entry *PredictionLogEntry) error
	Report(ctx context.Context, filter AnalyticsFilter) (*AnalyticsReport, error)
}
