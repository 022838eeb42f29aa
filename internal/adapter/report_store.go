package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	m "github.com/mouse-blink/dupescan/internal/model"
)

// ReportStore persists and retrieves scan results so a scan can be
// inspected later without re-hashing the tree.
type ReportStore interface {
	Save(path m.Path, result *m.ScanResult) error
	Load(path m.Path) (*m.ScanResult, error)
}

type jsonReportStore struct{}

// NewReportStore constructs a ReportStore that writes indented JSON files.
func NewReportStore() ReportStore {
	return &jsonReportStore{}
}

func (rs *jsonReportStore) Save(path m.Path, result *m.ScanResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return os.WriteFile(string(path), data, 0o600)
}

func (rs *jsonReportStore) Load(path m.Path) (*m.ScanResult, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	var result m.ScanResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", path, err)
	}

	return &result, nil
}
