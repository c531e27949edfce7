package registry

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReloadsOnRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.json")

	serving, err := New(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = serving.Watch(ctx) }()

	// Give the watcher a moment to attach before the writer runs.
	time.Sleep(100 * time.Millisecond)

	// A second handle plays the offline trainer rewriting the ledger.
	trainer, err := New(path)
	require.NoError(t, err)
	require.NoError(t, trainer.Register("risk", "v1", nil, "models/risk-v1.json"))
	require.NoError(t, trainer.PromoteToProduction("risk", "v1"))

	assert.Eventually(t, func() bool {
		_, err := serving.GetProductionModel("risk")
		return err == nil
	}, 3*time.Second, 50*time.Millisecond)
}
