// Package mapping loads and queries the controlled-vocabulary tables
// that turn archive free-text labels into canonical categories and
// knowledge-base identifiers. Lookups are exact-match only: a label
// differing by one character never resolves, and ambiguity is reported
// by absence, never resolved to a guess.
package mapping

import (
	"encoding/json"
	"fmt"
	"sort"
)

// CanonicalRef is the canonical value a free-text label maps to. Which
// fields are populated depends on the table: plain category tables fill
// only Category; knowledge-base-enriched tables fill CommonsCat,
// Creator and Wikidata as the remote entity provides them.
type CanonicalRef struct {
	Category   string `json:"category,omitempty"`
	CommonsCat string `json:"commonscat,omitempty"`
	Creator    string `json:"creator,omitempty"`
	Wikidata   string `json:"wikidata,omitempty"`
}

// Table is one named mapping table, read-only during a transform run.
type Table struct {
	name    string
	entries map[string]CanonicalRef
}

// NewTable builds a table from resolved entries.
func NewTable(name string, entries map[string]CanonicalRef) *Table {
	if entries == nil {
		entries = map[string]CanonicalRef{}
	}
	return &Table{name: name, entries: entries}
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Resolve looks up a raw label by exact match.
func (t *Table) Resolve(label string) (CanonicalRef, bool) {
	ref, ok := t.entries[label]
	return ref, ok
}

// Labels returns every key in sorted order.
func (t *Table) Labels() []string {
	labels := make([]string, 0, len(t.entries))
	for label := range t.entries {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// MarshalJSON renders the persisted key→value form: a bare string when
// the entry is a plain category, an object otherwise.
func (t *Table) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(t.entries))
	for label, ref := range t.entries {
		if ref.CommonsCat == "" && ref.Creator == "" && ref.Wikidata == "" {
			out[label] = ref.Category
		} else {
			out[label] = ref
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts both persisted shapes: label→"category" and
// label→{commonscat, creator, wikidata}.
func (t *Table) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	entries := make(map[string]CanonicalRef, len(raw))
	for label, value := range raw {
		var category string
		if err := json.Unmarshal(value, &category); err == nil {
			entries[label] = CanonicalRef{Category: category}
			continue
		}
		var ref CanonicalRef
		if err := json.Unmarshal(value, &ref); err != nil {
			return fmt.Errorf("mapping entry %q: %w", label, err)
		}
		entries[label] = ref
	}
	t.entries = entries
	return nil
}

// Set holds every table a collection pipeline needs, keyed by table
// name.
type Set map[string]*Table

// Resolve looks up a label in a named table. A missing table behaves
// like a missing label.
func (s Set) Resolve(table, label string) (CanonicalRef, bool) {
	t, ok := s[table]
	if !ok {
		return CanonicalRef{}, false
	}
	return t.Resolve(label)
}
