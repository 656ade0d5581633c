package storage

import (
	"time"

	"mtr/domain"
	"mtr/internal/config"
)

// Storage persists and loads run results (e.g. for the failures viewer).
type Storage interface {
	Save(results []domain.Result, duration time.Duration) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after resolve toggles in the viewer).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
