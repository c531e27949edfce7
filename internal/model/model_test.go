package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"risk-prediction-service/internal/domain"
)

func TestPredict_Untrained(t *testing.T) {
	m := NewLogisticModel(nil).Build()

	_, err := m.Predict([][]float64{{1, 2}})
	assert.ErrorIs(t, err, domain.ErrNotTrained)
}

func TestTrain_MisalignedInput(t *testing.T) {
	m := NewLogisticModel(nil).Build()

	err := m.Train([][]float64{{1}, {2}}, []float64{1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = m.Train(nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTrainAndPredict_SeparatesClasses(t *testing.T) {
	m := NewLogisticModel(map[string]any{"epochs": 500, "learning_rate": 0.5})
	m.Build()

	features := [][]float64{{0, 0}, {0, 1}, {1, 0}, {5, 5}, {5, 6}, {6, 5}}
	labels := []float64{0, 0, 0, 1, 1, 1}
	require.NoError(t, m.Train(features, labels))
	assert.True(t, m.Trained())

	scores, err := m.Predict(features)
	require.NoError(t, err)
	require.Len(t, scores, len(features))

	for _, s := range scores {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
	assert.Less(t, scores[0], 0.5)
	assert.Greater(t, scores[3], 0.5)
}

func TestSave_Untrained(t *testing.T) {
	m := NewLogisticModel(nil).Build()

	err := m.Save(filepath.Join(t.TempDir(), "m.json"))
	assert.ErrorIs(t, err, domain.ErrNotTrained)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := NewLogisticModel(map[string]any{"features": []string{"a", "b"}})
	m.Build()
	require.NoError(t, m.Train([][]float64{{0, 0}, {4, 4}}, []float64{0, 1}))

	path := filepath.Join(t.TempDir(), "m.json")
	require.NoError(t, m.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.True(t, loaded.Trained())
	assert.Equal(t, []string{"a", "b"}, loaded.Features())

	want, err := m.Predict([][]float64{{2, 3}})
	require.NoError(t, err)
	got, err := loaded.Predict([][]float64{{2, 3}})
	require.NoError(t, err)
	assert.InDelta(t, want[0], got[0], 1e-12)
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoad_CorruptArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_UnknownFamily(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weird.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"family":"forest","payload":{}}`), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown family")
}

func TestReadFamily(t *testing.T) {
	m := NewLogisticModel(nil)
	m.Build()
	require.NoError(t, m.Train([][]float64{{0}, {1}}, []float64{0, 1}))

	path := filepath.Join(t.TempDir(), "m.json")
	require.NoError(t, m.Save(path))

	family, err := ReadFamily(path)
	require.NoError(t, err)
	assert.Equal(t, "logistic", family)
}

func TestExplain_NamesFeatures(t *testing.T) {
	m := NewLogisticModel(map[string]any{"features": []string{"gpa", "absences"}})
	m.Build()
	require.NoError(t, m.Train([][]float64{{0, 0}, {1, 1}}, []float64{0, 1}))

	explanation := m.Explain([]float64{1, 2})
	assert.Contains(t, explanation, "gpa")
	assert.Contains(t, explanation, "absences")
}

func TestCache_SharesInstances(t *testing.T) {
	m := NewLogisticModel(nil)
	m.Build()
	require.NoError(t, m.Train([][]float64{{0}, {1}}, []float64{0, 1}))

	path := filepath.Join(t.TempDir(), "m.json")
	require.NoError(t, m.Save(path))

	cache := NewCache()
	first, err := cache.Get(path)
	require.NoError(t, err)
	second, err := cache.Get(path)
	require.NoError(t, err)
	assert.Same(t, first, second)
}
