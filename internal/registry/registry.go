package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"risk-prediction-service/internal/domain"
)

// catalogue matches the persisted ledger layout: {"models": [...]}.
type catalogue struct {
	Models []domain.ModelRecord `json:"models"`
}

// Registry is a flat-file model catalogue. The whole ledger is loaded at
// construction and rewritten on every mutation through a temp file and an
// atomic rename, so a crashed writer never leaves a torn file. Mutations are
// serialized in-process by a mutex; across processes the single-writer
// assumption holds (training jobs run sequentially).
type Registry struct {
	path string

	mu      sync.RWMutex
	records []domain.ModelRecord
}

func New(path string) (*Registry, error) {
	r := &Registry{path: path}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload replaces the in-memory catalogue with the ledger file's contents.
// A missing file is an empty catalogue, not an error.
func (r *Registry) Reload() error {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		r.mu.Lock()
		r.records = nil
		r.mu.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("read registry %s: %w", r.path, err)
	}

	var cat catalogue
	if err := json.Unmarshal(data, &cat); err != nil {
		return fmt.Errorf("decode registry %s: %w", r.path, err)
	}

	r.mu.Lock()
	r.records = cat.Models
	r.mu.Unlock()
	return nil
}

func (r *Registry) Register(name, version string, metrics map[string]float64, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, domain.ModelRecord{
		Name:      name,
		Version:   version,
		Timestamp: time.Now().UTC(),
		Metrics:   metrics,
		Path:      path,
		Status:    domain.StatusExperimental,
	})
	return r.persist()
}

// PromoteToProduction flips every record matching (name, version) exactly.
// Unlike registration, a miss is reported: a silent no-op would make a typo
// in an offline promotion invisible.
func (r *Registry) PromoteToProduction(name, version string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := false
	for i := range r.records {
		if r.records[i].Name == name && r.records[i].Version == version {
			r.records[i].Status = domain.StatusProduction
			matched = true
		}
	}
	if !matched {
		return fmt.Errorf("promote %s/%s: %w", name, version, domain.ErrModelNotFound)
	}
	return r.persist()
}

// GetProductionModel returns the newest production record for the name.
// On a timestamp tie the later-registered record wins.
func (r *Registry) GetProductionModel(name string) (*domain.ModelRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *domain.ModelRecord
	for i := range r.records {
		rec := &r.records[i]
		if rec.Name != name || rec.Status != domain.StatusProduction {
			continue
		}
		if latest == nil || !rec.Timestamp.Before(latest.Timestamp) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("model %q: %w", name, domain.ErrNoProductionModel)
	}

	out := *latest
	return &out, nil
}

// ListAvailableModels returns the sorted distinct names that currently
// resolve to a production record.
func (r *Registry) ListAvailableModels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	for _, rec := range r.records {
		if rec.Status == domain.StatusProduction {
			seen[rec.Name] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// persist rewrites the full ledger. Callers hold the write lock.
func (r *Registry) persist() error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create registry dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(catalogue{Models: r.records}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".registry-*.json")
	if err != nil {
		return fmt.Errorf("create registry temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write registry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close registry temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace registry: %w", err)
	}
	return nil
}
