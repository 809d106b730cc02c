package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileAdapter persists the state as a plain JSON document on disk. It is
// the dependency-free alternative to the SQLite adapter.
type FileAdapter struct {
	path string
}

// NewFileAdapter creates an adapter writing to the given path.
func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

// Load reads and decodes the file. A missing file yields (nil, nil).
func (a *FileAdapter) Load() (*State, error) {
	data, err := os.ReadFile(a.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode %s: %w", a.path, err)
	}
	return &state, nil
}

// Save writes the state atomically via a temp file rename.
func (a *FileAdapter) Save(state *State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	tmp := a.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(a.path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, a.path)
}

// Reset removes the file; the next Load yields seed state.
func (a *FileAdapter) Reset() error {
	err := os.Remove(a.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
