package mapping

import (
	"context"
	"fmt"
	"log/slog"
)

// Row is one entry of a curated mapping listing, as returned by the
// listing collaborator. Rows are ordered; later duplicates of a name
// win, matching the listing's own edit conventions.
type Row struct {
	Name     string
	Category string
	Wikidata string
}

// RowSource yields the ordered rows of one curated listing page.
type RowSource interface {
	Rows(ctx context.Context, page string) ([]Row, error)
}

// EntityLookup fetches a fixed set of property values for one
// knowledge-base entity. A property the entity lacks is simply absent
// from the result.
type EntityLookup interface {
	Claims(ctx context.Context, id string, properties []string) (map[string]string, error)
}

// Knowledge-base property identifiers used to enrich entity-keyed
// tables.
const (
	PropCommonsCat = "P373"
	PropCreator    = "P1472"
)

// Builder rebuilds mapping tables from curated listings, optionally
// cross-referencing a remote knowledge base. Entity lookups are
// memoized per identifier, so a batch makes one remote call per
// distinct identifier regardless of how many labels share it.
type Builder struct {
	rows     RowSource
	entities EntityLookup
	memo     map[string]map[string]string
}

// NewBuilder creates a builder over the two collaborators.
func NewBuilder(rows RowSource, entities EntityLookup) *Builder {
	return &Builder{
		rows:     rows,
		entities: entities,
		memo:     make(map[string]map[string]string),
	}
}

// CategoryTable builds a plain name→category table from a listing.
// Rows missing either the name or the category are skipped silently;
// partially filled listings are expected.
func (b *Builder) CategoryTable(ctx context.Context, name, page string) (*Table, error) {
	rows, err := b.rows.Rows(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing %s: %w", page, err)
	}
	entries := make(map[string]CanonicalRef)
	for _, row := range rows {
		if row.Name == "" || row.Category == "" {
			continue
		}
		entries[row.Name] = CanonicalRef{Category: row.Category}
	}
	slog.Info("Built mapping table", "table", name, "rows", len(rows), "entries", len(entries))
	return NewTable(name, entries), nil
}

// EntityTable builds a table keyed by listing name whose values come
// from the knowledge base: each row's identifier is resolved to the
// requested properties. The "-" sentinel marks a row curators decided
// has no entity. A property the entity lacks yields an absent field,
// not a failed entry; a failed remote lookup fails the whole build.
func (b *Builder) EntityTable(ctx context.Context, name, page string, properties []string) (*Table, error) {
	rows, err := b.rows.Rows(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing %s: %w", page, err)
	}
	entries := make(map[string]CanonicalRef)
	for _, row := range rows {
		if row.Name == "" || row.Wikidata == "" || row.Wikidata == "-" {
			continue
		}
		claims, err := b.lookup(ctx, row.Wikidata, properties)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s (%s): %w", row.Name, row.Wikidata, err)
		}
		entries[row.Name] = CanonicalRef{
			CommonsCat: claims[PropCommonsCat],
			Creator:    claims[PropCreator],
			Wikidata:   row.Wikidata,
		}
	}
	slog.Info("Built mapping table", "table", name, "rows", len(rows), "entries", len(entries))
	return NewTable(name, entries), nil
}

func (b *Builder) lookup(ctx context.Context, id string, properties []string) (map[string]string, error) {
	if claims, ok := b.memo[id]; ok {
		return claims, nil
	}
	claims, err := b.entities.Claims(ctx, id, properties)
	if err != nil {
		return nil, err
	}
	b.memo[id] = claims
	return claims, nil
}
