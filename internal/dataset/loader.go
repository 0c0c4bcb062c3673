// Package dataset loads batches of pre-parsed record attribute maps.
// The export parser that turns the archive's markup into attribute maps
// runs upstream; this loader only reads its output files.
package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/wikimedia-sverige/batchinfo/internal/record"
)

// Loader reads record attribute maps from a JSONL or Parquet file.
type Loader struct {
	path string
}

// NewLoader creates a loader for one batch input file.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads every record in the batch, in file order.
func (l *Loader) Load() ([]record.Attrs, error) {
	ext := strings.ToLower(filepath.Ext(l.path))
	switch ext {
	case ".parquet":
		return l.loadParquet()
	case ".jsonl", ".json":
		return l.loadJSONL()
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .parquet, .jsonl)", ext)
	}
}

// loadJSONL reads one record per line: an object mapping each tag to a
// string or a list of strings.
func (l *Loader) loadJSONL() ([]record.Attrs, error) {
	slog.Debug("Opening JSONL file", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch file: %w", err)
	}
	defer file.Close()

	var records []record.Attrs
	scanner := bufio.NewScanner(file)

	// Increase buffer size for large JSON lines
	const maxCapacity = 10 * 1024 * 1024 // 10MB per line
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		attrs, err := parseAttrs(line)
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}
		records = append(records, attrs)

		if lineNum%1000 == 0 {
			slog.Debug("Reading JSONL", "lines_read", lineNum)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading batch file: %w", err)
	}

	slog.Debug("Finished reading JSONL file", "total_records", len(records))
	return records, nil
}

// parseAttrs accepts both value shapes a tag may carry: a single string
// or an ordered list of strings.
func parseAttrs(line []byte) (record.Attrs, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(line, &raw); err != nil {
		return nil, err
	}
	attrs := make(record.Attrs, len(raw))
	for tag, value := range raw {
		var single string
		if err := json.Unmarshal(value, &single); err == nil {
			attrs[tag] = []string{single}
			continue
		}
		var many []string
		if err := json.Unmarshal(value, &many); err != nil {
			return nil, fmt.Errorf("tag %q: %w", tag, err)
		}
		attrs[tag] = many
	}
	return attrs, nil
}

// exportRow is the long-format Parquet shape: one row per tag value,
// grouped by record identifier in file order.
type exportRow struct {
	RecordID string `parquet:"record_id"`
	Tag      string `parquet:"tag"`
	Value    string `parquet:"value"`
}

// loadParquet reads a long-format Parquet export and regroups the rows
// into one attribute map per record.
func (l *Loader) loadParquet() ([]record.Attrs, error) {
	slog.Debug("Opening Parquet file", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet file opened", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[exportRow](pf)
	defer reader.Close()

	var order []string
	grouped := make(map[string]record.Attrs)

	rows := make([]exportRow, 128) // Read in batches
	for {
		n, err := reader.Read(rows)
		for _, row := range rows[:n] {
			attrs, ok := grouped[row.RecordID]
			if !ok {
				attrs = make(record.Attrs)
				grouped[row.RecordID] = attrs
				order = append(order, row.RecordID)
			}
			attrs[row.Tag] = append(attrs[row.Tag], row.Value)
		}
		if err != nil {
			break
		}
	}

	records := make([]record.Attrs, 0, len(order))
	for _, id := range order {
		records = append(records, grouped[id])
	}

	slog.Debug("Finished reading Parquet file", "total_records", len(records))
	return records, nil
}
