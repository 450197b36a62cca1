package storage

import (
	"time"

	"gcheck/internal/config"
	"gcheck/internal/domain"
)

// Storage persists and loads run records (e.g. for the fails viewer).
type Storage interface {
	Save(results []domain.TestResult, summary domain.Summary, duration time.Duration) error
	Load() (*domain.RunRecord, error)
	// SaveRecord writes the full record back (e.g. after resolving failures).
	SaveRecord(record *domain.RunRecord) error
}

// JSONStorage stores run records in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
