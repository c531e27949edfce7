package usecase

import (
	"time"

	log "github.com/sirupsen/logrus"

	"risk-prediction-service/internal/domain"
	"risk-prediction-service/internal/model"
)

// ModelSummary is the catalogue view of one serving model.
type ModelSummary struct {
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Version     string    `json:"version"`
	Accuracy    *float64  `json:"accuracy"`
	LastTrained time.Time `json:"last_trained"`
}

// CatalogUseCase answers the read-only catalogue queries (/models, /health).
type CatalogUseCase struct {
	registry domain.RegistryStore
}

func NewCatalogUseCase(registry domain.RegistryStore) *CatalogUseCase {
	return &CatalogUseCase{registry: registry}
}

func (uc *CatalogUseCase) ListAvailableModels() []string {
	return uc.registry.ListAvailableModels()
}

// ListModels summarizes the current production record of every resolvable
// name. The model family comes from a cheap artifact-header read; an
// unreadable artifact degrades to "unknown" rather than failing the listing.
func (uc *CatalogUseCase) ListModels() []ModelSummary {
	names := uc.registry.ListAvailableModels()
	summaries := make([]ModelSummary, 0, len(names))

	for _, name := range names {
		rec, err := uc.registry.GetProductionModel(name)
		if err != nil {
			continue
		}

		family, err := model.ReadFamily(rec.Path)
		if err != nil {
			log.WithError(err).WithField("model", name).Warn("artifact family unreadable")
			family = "unknown"
		}

		var accuracy *float64
		if acc, ok := rec.Metrics["accuracy"]; ok {
			accuracy = &acc
		}

		summaries = append(summaries, ModelSummary{
			Name:        name,
			Type:        family,
			Version:     rec.Version,
			Accuracy:    accuracy,
			LastTrained: rec.Timestamp,
		})
	}
	return summaries
}
