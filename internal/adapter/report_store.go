package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mole-works/mend/internal/model"
)

// reportFileName is the file reports are stored under inside the reports dir.
const reportFileName = "reports.json"

// ReportStore persists and retrieves per-file analysis reports.
type ReportStore interface {
	SaveReports(dir m.Path, reports []m.FileReport) error
	LoadReports(dir m.Path) ([]m.FileReport, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore backed by a JSON file.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) SaveReports(dir m.Path, reports []m.FileReport) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}

	path := filepath.Join(string(dir), reportFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func (rs *reportStore) LoadReports(dir m.Path) ([]m.FileReport, error) {
	path := filepath.Join(string(dir), reportFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var reports []m.FileReport
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return reports, nil
}
