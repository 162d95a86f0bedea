package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	m "resuffix.dev/pkg/resuffix/internal/model"
)

// ReportStore persists run summaries so completed runs can be reviewed later.
type ReportStore interface {
	// SaveSummary writes the summary into dir and returns the report path.
	// The directory is created when missing.
	SaveSummary(dir m.Path, summary m.RunSummary) (m.Path, error)

	// LoadSummary reads a previously saved summary.
	LoadSummary(path m.Path) (m.RunSummary, error)
}

type reportStore struct {
	now func() time.Time
}

// NewReportStore constructs a ReportStore writing YAML reports.
func NewReportStore() ReportStore {
	return &reportStore{now: time.Now}
}

const reportTimestampLayout = "20060102-150405"

func (r *reportStore) SaveSummary(dir m.Path, summary m.RunSummary) (m.Path, error) {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("encode summary: %w", err)
	}

	name := fmt.Sprintf("run-%s.yaml", r.now().UTC().Format(reportTimestampLayout))
	path := filepath.Join(string(dir), name)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return m.Path(path), nil
}

func (r *reportStore) LoadSummary(path m.Path) (m.RunSummary, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RunSummary{}, fmt.Errorf("read report: %w", err)
	}

	var summary m.RunSummary
	if err := yaml.Unmarshal(data, &summary); err != nil {
		return m.RunSummary{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return summary, nil
}
