package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/qwikish/taskboard/internal/models"
)

// ExportDoc is the read-only snapshot written by the export interface.
// There is no corresponding import.
type ExportDoc struct {
	Tasks      []models.Task    `json:"tasks"`
	Projects   []models.Project `json:"projects"`
	Tags       []models.Tag     `json:"tags"`
	ExportDate time.Time        `json:"exportDate"`
}

// Export builds the snapshot document from the current state.
func (s *Store) Export() ExportDoc {
	return ExportDoc{
		Tasks:      s.Tasks(),
		Projects:   s.Projects(),
		Tags:       s.Tags(),
		ExportDate: s.now(),
	}
}

// WriteExport writes the snapshot as indented JSON to path.
func (s *Store) WriteExport(path string) error {
	data, err := json.MarshalIndent(s.Export(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
