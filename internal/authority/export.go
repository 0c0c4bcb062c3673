package authority

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/wikimedia-sverige/batchinfo/internal/record"
)

// Run normalizes a slice of raw authority attribute maps.
func Run(batch []record.Attrs) []Person {
	people := make([]Person, 0, len(batch))
	for _, attrs := range batch {
		raw := record.Ingest(record.AuthoritySchema, attrs)
		if raw.ID() == "" {
			slog.Warn("Skipping authority record without identifier")
			continue
		}
		people = append(people, Normalize(raw))
	}
	return people
}

// Export writes the normalized entries as indented JSON keyed by record
// identifier, sorted for stable diffs between runs.
func Export(people []Person, path string) error {
	keyed := make(map[string]Person, len(people))
	for _, person := range people {
		keyed[person.ID] = person
	}
	data, err := json.MarshalIndent(keyed, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode authority export: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write authority export: %w", err)
	}
	slog.Info("Wrote authority export", "path", path, "entries", len(keyed))
	return nil
}
