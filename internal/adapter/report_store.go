package adapter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/annogen/internal/model"
)

// ReportFileName is the name of the persisted last-run report inside the reports directory.
const ReportFileName = "last-run.yaml"

// ReportStore persists and retrieves batch reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.Report) error
	LoadReport(dir m.Path) (m.Report, error)
}

// LocalReportStore keeps one YAML report per reports directory.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReport writes report to dir/last-run.yaml, creating dir when needed.
func (rs *LocalReportStore) SaveReport(dir m.Path, report m.Report) error {
	if dir == "" {
		return fmt.Errorf("reports directory is empty")
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return atomicWrite(filepath.Join(string(dir), ReportFileName), buf.Bytes())
}

// LoadReport reads dir/last-run.yaml. Unknown fields are rejected.
func (rs *LocalReportStore) LoadReport(dir m.Path) (m.Report, error) {
	path := filepath.Join(string(dir), ReportFileName)

	// #nosec G304 - reports directory is user configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return m.Report{}, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var report m.Report

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&report); err != nil {
		return m.Report{}, fmt.Errorf("failed to decode report %s: %w", path, err)
	}

	return report, nil
}
