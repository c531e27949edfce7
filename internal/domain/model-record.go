package domain

import "time"

type ModelStatus string

const (
	StatusExperimental ModelStatus = "experimental"
	StatusProduction   ModelStatus = "production"
)

// ModelRecord is one row in the registry ledger. Records are append-only
// except for the status flip performed by promotion; nothing deletes them.
type ModelRecord struct {
	Name      string             `json:"name"`
	Version   string             `json:"version"`
	Timestamp time.Time          `json:"timestamp"`
	Metrics   map[string]float64 `json:"metrics"`
	Path      string             `json:"path"`
	Status    ModelStatus        `json:"status"`
}
