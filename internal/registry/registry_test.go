package registry

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"risk-prediction-service/internal/domain"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := New(filepath.Join(t.TempDir(), "registry.json"))
	require.NoError(t, err)
	return reg
}

func TestRegister_StartsExperimental(t *testing.T) {
	reg := newTestRegistry(t)

	err := reg.Register("risk", "v1", map[string]float64{"accuracy": 0.9}, "models/risk-v1.json")
	require.NoError(t, err)

	_, err = reg.GetProductionModel("risk")
	assert.ErrorIs(t, err, domain.ErrNoProductionModel)
}

func TestPromoteThenGetProduction(t *testing.T) {
	reg := newTestRegistry(t)

	require.NoError(t, reg.Register("risk", "v1", nil, "models/risk-v1.json"))
	require.NoError(t, reg.PromoteToProduction("risk", "v1"))

	rec, err := reg.GetProductionModel("risk")
	require.NoError(t, err)
	assert.Equal(t, "v1", rec.Version)
	assert.Equal(t, domain.StatusProduction, rec.Status)
}

func TestGetProductionModel_NewestWins(t *testing.T) {
	reg := newTestRegistry(t)

	require.NoError(t, reg.Register("risk", "v1", nil, "models/risk-v1.json"))
	require.NoError(t, reg.PromoteToProduction("risk", "v1"))
	require.NoError(t, reg.Register("risk", "v2", nil, "models/risk-v2.json"))
	require.NoError(t, reg.PromoteToProduction("risk", "v2"))

	rec, err := reg.GetProductionModel("risk")
	require.NoError(t, err)
	assert.Equal(t, "v2", rec.Version)
}

func TestPromote_UnknownVersion(t *testing.T) {
	reg := newTestRegistry(t)

	require.NoError(t, reg.Register("risk", "v1", nil, "models/risk-v1.json"))

	err := reg.PromoteToProduction("risk", "v9")
	assert.ErrorIs(t, err, domain.ErrModelNotFound)
}

func TestDuplicateRegistrationAllowed(t *testing.T) {
	reg := newTestRegistry(t)

	require.NoError(t, reg.Register("risk", "v1", nil, "models/a.json"))
	require.NoError(t, reg.Register("risk", "v1", nil, "models/b.json"))
	require.NoError(t, reg.PromoteToProduction("risk", "v1"))

	// Both duplicates flip; the later-registered one serves.
	rec, err := reg.GetProductionModel("risk")
	require.NoError(t, err)
	assert.Equal(t, "models/b.json", rec.Path)
}

func TestListAvailableModels(t *testing.T) {
	reg := newTestRegistry(t)

	require.NoError(t, reg.Register("zeta", "v1", nil, "p1"))
	require.NoError(t, reg.Register("alpha", "v1", nil, "p2"))
	require.NoError(t, reg.Register("alpha", "v2", nil, "p3"))
	require.NoError(t, reg.PromoteToProduction("zeta", "v1"))
	require.NoError(t, reg.PromoteToProduction("alpha", "v1"))
	require.NoError(t, reg.PromoteToProduction("alpha", "v2"))

	assert.Equal(t, []string{"alpha", "zeta"}, reg.ListAvailableModels())
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")

	reg, err := New(path)
	require.NoError(t, err)
	require.NoError(t, reg.Register("risk", "v1", map[string]float64{"auc": 0.8}, "models/risk-v1.json"))
	require.NoError(t, reg.PromoteToProduction("risk", "v1"))

	reopened, err := New(path)
	require.NoError(t, err)

	rec, err := reopened.GetProductionModel("risk")
	require.NoError(t, err)
	assert.Equal(t, "v1", rec.Version)
	assert.Equal(t, 0.8, rec.Metrics["auc"])
	assert.Equal(t, "models/risk-v1.json", rec.Path)
}

func TestReload_MissingFileIsEmpty(t *testing.T) {
	reg, err := New(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Empty(t, reg.ListAvailableModels())
}
