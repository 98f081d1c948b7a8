// Package ingest loads already-normalized task records for the analytics
// engine. Normalization itself (column mapping, type coercion, row
// validation) happens upstream; this package only decodes the agreed JSON
// hand-off format.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/watchtower-ppm/watchtower/internal/portfolio/domain"
)

// JSONSource reads a JSON array of normalized Task records from a file.
// Dates are RFC 3339 strings or null; numerics are already coerced.
type JSONSource struct {
	path string
}

// NewJSONSource creates a source for the given file path.
func NewJSONSource(path string) *JSONSource {
	return &JSONSource{path: path}
}

// Load reads and decodes the task records.
func (s *JSONSource) Load() ([]domain.Task, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open task file: %w", err)
	}
	defer f.Close()

	tasks, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}
	return tasks, nil
}

// Decode reads a JSON array of normalized Task records from r.
func Decode(r io.Reader) ([]domain.Task, error) {
	var tasks []domain.Task
	dec := json.NewDecoder(r)
	if err := dec.Decode(&tasks); err != nil {
		return nil, fmt.Errorf("invalid task records: %w", err)
	}
	return tasks, nil
}
