// Package collection wires the per-collection pipelines: schema,
// normalization, rule list, and rendering for each of the archive's
// export variants.
package collection

import (
	"fmt"

	"github.com/wikimedia-sverige/batchinfo/internal/categorize"
	"github.com/wikimedia-sverige/batchinfo/internal/mapping"
	"github.com/wikimedia-sverige/batchinfo/internal/record"
	"github.com/wikimedia-sverige/batchinfo/internal/render"
)

// MappingBuild describes how one of a collection's mapping tables is
// rebuilt in refresh mode.
type MappingBuild struct {
	Table string
	// Entity marks tables keyed through the knowledge base; Properties
	// lists the claims to request for each row's identifier.
	Entity     bool
	Properties []string
}

// Collection is one export variant's pipeline.
type Collection interface {
	Name() string
	Schema() record.Schema

	// MappingTables names the persisted tables this collection loads
	// for a transform run.
	MappingTables() []string
	// MappingBuilds describes the refresh-mode rebuild of each table.
	MappingBuilds() []MappingBuild
	// SetMappings hands the loaded tables to the pipeline before a run.
	SetMappings(set mapping.Set)

	// Normalize converts one ingested record. The second return is
	// false for records the pipeline does not publish at all (e.g. the
	// container entries of a paired export).
	Normalize(raw record.Raw) (*record.Normalized, bool)

	// Expand turns one normalized record into its output records. Most
	// collections publish records one to one; paired collections derive
	// one record per side.
	Expand(rec *record.Normalized) []*record.Normalized

	// Rules returns the ordered category rule list for a run
	// environment.
	Rules(env *categorize.Env) []categorize.Rule

	// Render assembles the metadata block. otherVersions is the
	// pre-built gallery of sibling or duplicate assets, empty when
	// there is none.
	Render(rec *record.Normalized, cats *categorize.Set, otherVersions string) render.Info

	// Filename derives the output filename for one record.
	Filename(rec *record.Normalized, provider string) string
}

// New returns the pipeline for a collection name.
func New(name string) (Collection, error) {
	switch name {
	case "helleday":
		return &Helleday{}, nil
	case "glass":
		return &Glass{}, nil
	case "stereo":
		return &Stereo{}, nil
	case "glass-uncat":
		return &GlassUncat{}, nil
	default:
		return nil, fmt.Errorf("unknown collection: %s", name)
	}
}

// Names lists every known collection.
func Names() []string {
	return []string{"helleday", "glass", "stereo", "glass-uncat"}
}
