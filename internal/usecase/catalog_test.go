package usecase

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"risk-prediction-service/internal/domain"
	"risk-prediction-service/internal/model"
	"risk-prediction-service/internal/testutil"
)

func TestListModels(t *testing.T) {
	m := model.NewLogisticModel(nil)
	m.Build()
	require.NoError(t, m.Train([][]float64{{0}, {1}}, []float64{0, 1}))
	artifact := filepath.Join(t.TempDir(), "default-v2.json")
	require.NoError(t, m.Save(artifact))

	trained := time.Now().UTC()
	registry := new(testutil.MockRegistryStore)
	registry.On("ListAvailableModels").Return([]string{"default"})
	registry.On("GetProductionModel", "default").Return(&domain.ModelRecord{
		Name:      "default",
		Version:   "v2",
		Timestamp: trained,
		Metrics:   map[string]float64{"accuracy": 0.91},
		Path:      artifact,
		Status:    domain.StatusProduction,
	}, nil)

	uc := NewCatalogUseCase(registry)
	summaries := uc.ListModels()

	require.Len(t, summaries, 1)
	assert.Equal(t, "default", summaries[0].Name)
	assert.Equal(t, "logistic", summaries[0].Type)
	assert.Equal(t, "v2", summaries[0].Version)
	require.NotNil(t, summaries[0].Accuracy)
	assert.Equal(t, 0.91, *summaries[0].Accuracy)
	assert.Equal(t, trained, summaries[0].LastTrained)
}

func TestListModels_UnreadableArtifact(t *testing.T) {
	registry := new(testutil.MockRegistryStore)
	registry.On("ListAvailableModels").Return([]string{"default"})
	registry.On("GetProductionModel", "default").Return(&domain.ModelRecord{
		Name:    "default",
		Version: "v1",
		Path:    filepath.Join(t.TempDir(), "absent.json"),
		Status:  domain.StatusProduction,
	}, nil)

	uc := NewCatalogUseCase(registry)
	summaries := uc.ListModels()

	require.Len(t, summaries, 1)
	assert.Equal(t, "unknown", summaries[0].Type)
	assert.Nil(t, summaries[0].Accuracy)
}
