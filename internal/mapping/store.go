package mapping

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Store persists mapping tables as one key→value JSON file per table
// under a mappings directory. Normal runs only load; files are
// rewritten exclusively in the explicit refresh mode.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads one table from disk.
func (s *Store) Load(name string) (*Table, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping %s: %w", name, err)
	}
	table := &Table{name: name}
	if err := json.Unmarshal(data, table); err != nil {
		return nil, fmt.Errorf("failed to parse mapping %s: %w", name, err)
	}
	slog.Debug("Loaded mapping table", "table", name, "entries", table.Len())
	return table, nil
}

// Save writes one table to disk, creating the mappings directory if
// needed.
func (s *Store) Save(table *Table) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create mappings directory: %w", err)
	}
	data, err := json.MarshalIndent(table, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode mapping %s: %w", table.Name(), err)
	}
	if err := os.WriteFile(s.path(table.Name()), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write mapping %s: %w", table.Name(), err)
	}
	slog.Info("Saved mapping table", "table", table.Name(), "entries", table.Len())
	return nil
}

// LoadSet loads the named tables into a Set.
func (s *Store) LoadSet(names ...string) (Set, error) {
	set := make(Set, len(names))
	for _, name := range names {
		table, err := s.Load(name)
		if err != nil {
			return nil, err
		}
		set[name] = table
	}
	return set, nil
}
