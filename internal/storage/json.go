package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gcheck/internal/domain"
)

// Save converts case results into the persisted record form and writes them
// to the configured JSON output file.
func (s *JSONStorage) Save(results []domain.TestResult, summary domain.Summary, duration time.Duration) error {
	record := &domain.RunRecord{
		Meta: domain.RunMeta{
			TotalCases:        summary.TotalCases,
			PassedCases:       summary.Passed,
			FailedCases:       summary.Failed,
			ExceptionCases:    summary.Exceptions,
			NotPerformedCases: summary.NotPerformed,
			ExecutedChecks:    summary.ExecutedChecks,
			FailedChecks:      summary.FailedChecks,
			Result:            summary.ResultLabel(),
			Duration:          duration.String(),
			DurationSeconds:   duration.Seconds(),
			Timestamp:         time.Now().Format(time.RFC3339),
		},
		Cases: make([]domain.CaseRecord, 0, len(results)),
	}
	for _, r := range results {
		record.Cases = append(record.Cases, domain.NewCaseRecord(r))
	}

	return s.SaveRecord(record)
}

// Load reads the last run record from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunRecord, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var record domain.RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &record, nil
}

// SaveRecord writes the full record to the configured JSON file (e.g. after marking failures resolved).
func (s *JSONStorage) SaveRecord(record *domain.RunRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
