package collection

import (
	"strings"

	"github.com/wikimedia-sverige/batchinfo/internal/categorize"
	"github.com/wikimedia-sverige/batchinfo/internal/mapping"
	"github.com/wikimedia-sverige/batchinfo/internal/normalize"
	"github.com/wikimedia-sverige/batchinfo/internal/pairing"
	"github.com/wikimedia-sverige/batchinfo/internal/record"
	"github.com/wikimedia-sverige/batchinfo/internal/render"
)

// Stereo is the stereo card collection. One physical card has two
// sides; each source record expands into two output records that
// cross-reference each other.
type Stereo struct{}

func (s *Stereo) Name() string            { return "stereo" }
func (s *Stereo) Schema() record.Schema   { return record.StereoSchema }
func (s *Stereo) MappingTables() []string { return nil }

func (s *Stereo) MappingBuilds() []MappingBuild { return nil }

func (s *Stereo) SetMappings(mapping.Set) {}

func (s *Stereo) Normalize(raw record.Raw) (*record.Normalized, bool) {
	// Container entries describe the collection itself, not a card.
	if raw.Field("record_type") == "Collection" {
		return nil, false
	}
	rec := &record.Normalized{
		ID:         raw.ID(),
		Title:      raw.Field("image_title"),
		Creator:    raw.Field("creator"),
		Collection: raw.Field("collection"),
		URL:        raw.Field("url"),
		Keywords:   normalize.SplitList(raw.Field("keywords")),
	}
	rec.Descriptions = bilingualDescriptions(raw.Values("description"))
	if year, ok := normalize.ParseDecade(raw.Field("image_date")); ok {
		rec.DecadeYear = year
	} else if date, ok := normalize.ParseDate(raw.Field("image_date")); ok {
		rec.Event = &date
	}
	if dims, ok := normalize.ParseDimensions(raw.Field("dimensions")); ok {
		rec.Dimensions = &dims
	}
	return rec, true
}

// Expand derives the two sides of the card. Each side gets its own
// output identifier; the shared fields are copied as-is.
func (s *Stereo) Expand(rec *record.Normalized) []*record.Normalized {
	sides := pairing.Sides()
	out := make([]*record.Normalized, 0, len(sides))
	for _, side := range sides {
		derived := *rec
		derived.Side = side
		derived.ID = pairing.SideID(rec.ID, side)
		out = append(out, &derived)
	}
	return out
}

func (s *Stereo) Rules(env *categorize.Env) []categorize.Rule {
	return []categorize.Rule{
		categorize.TemporalTheatreRule(env),
		categorize.AlwaysAddRule(
			"Color stereo cards",
			"Stereo cards in the Swedish Performing Arts Agency",
		),
	}
}

func (s *Stereo) Render(rec *record.Normalized, cats *categorize.Set, otherVersions string) render.Info {
	return render.Info{
		Template: infoTemplate,
		Fields: []render.Field{
			{Label: "title", Value: rec.Title},
			{Label: "description", Value: bilingualDescriptionField(rec)},
			{Label: "dimensions", Value: sizeField(rec.Dimensions)},
			{Label: "date", Value: dateField(rec)},
			{Label: "department", Value: departmentField(rec.Collection)},
			{Label: "permission", Value: "{{PD-old}}"},
			{Label: "ID", Value: rec.ID},
			{Label: "source", Value: sourceField(rec.ID, rec.URL, false)},
			{Label: "other versions", Value: otherVersions},
		},
		ContentCats: cats.Content(),
		MetaCats:    cats.Meta(),
	}
}

func (s *Stereo) Filename(rec *record.Normalized, provider string) string {
	return render.Filename(rec.Title, provider, rec.ID)
}

// SiblingFilename derives the other side's filename for the
// other-versions gallery.
func (s *Stereo) SiblingFilename(rec *record.Normalized, provider string) (string, bool) {
	sibling, ok := pairing.SiblingSide(rec.Side)
	if !ok {
		return "", false
	}
	baseID := strings.TrimSuffix(rec.ID, rec.Side)
	return render.Filename(rec.Title, provider, pairing.SideID(baseID, sibling)) + ".tif", true
}
