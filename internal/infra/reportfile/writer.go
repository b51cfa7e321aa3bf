// Package reportfile writes check results as YAML for CI artifacts.
package reportfile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/fixed-skips/internal/domain"
)

// Writer implements domain.ReportWriter.
type Writer struct {
	path string
}

// Ensure Writer implements domain.ReportWriter interface.
var _ domain.ReportWriter = (*Writer)(nil)

// New creates a Writer for path.
func New(path string) *Writer {
	return &Writer{path: path}
}

// Write marshals the report to YAML and replaces the file atomically.
func (w *Writer) Write(report *domain.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".fixed-skips-report-*")
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write report file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close report file: %w", err)
	}
	if err := os.Rename(tmpName, w.path); err != nil {
		return fmt.Errorf("rename report file: %w", err)
	}
	return nil
}
