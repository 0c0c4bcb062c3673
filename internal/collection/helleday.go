package collection

import (
	"github.com/wikimedia-sverige/batchinfo/internal/categorize"
	"github.com/wikimedia-sverige/batchinfo/internal/mapping"
	"github.com/wikimedia-sverige/batchinfo/internal/normalize"
	"github.com/wikimedia-sverige/batchinfo/internal/record"
	"github.com/wikimedia-sverige/batchinfo/internal/render"
)

// Helleday is the portrait collection: cataloged studio photographs
// with per-person authority links, venue, production and photographer
// attribution.
type Helleday struct {
	mappings mapping.Set
}

func (h *Helleday) Name() string          { return "helleday" }
func (h *Helleday) Schema() record.Schema { return record.HelledaySchema }

func (h *Helleday) MappingTables() []string {
	return []string{"theatres", "plays", "depicted", "photographers"}
}

func (h *Helleday) MappingBuilds() []MappingBuild {
	return []MappingBuild{
		{Table: "theatres"},
		{Table: "plays"},
		{Table: "depicted", Entity: true, Properties: []string{mapping.PropCommonsCat}},
		{Table: "photographers", Entity: true, Properties: []string{mapping.PropCommonsCat, mapping.PropCreator}},
	}
}

func (h *Helleday) SetMappings(set mapping.Set) { h.mappings = set }

func (h *Helleday) Normalize(raw record.Raw) (*record.Normalized, bool) {
	rec := &record.Normalized{
		ID:         raw.ID(),
		Title:      raw.Field("image_title"),
		Creator:    raw.Field("creator"),
		Ensemble:   raw.Field("ensemble"),
		PlayTitle:  raw.Field("show_title"),
		ImageType:  raw.Field("image_type"),
		Collection: raw.Field("collection"),
		URL:        raw.Field("url"),
		Keywords:   normalize.SplitList(raw.Field("keywords")),
	}
	if desc := raw.Field("description"); desc != "" {
		rec.Descriptions = map[string]string{"sv": desc}
	}
	if year, ok := normalize.ParseDecade(raw.Field("image_date")); ok {
		rec.DecadeYear = year
	} else if date, ok := normalize.ParseDate(raw.Field("image_date")); ok {
		rec.Event = &date
	}
	if dims, ok := normalize.ParseDimensions(raw.Field("dimensions")); ok {
		rec.Dimensions = &dims
	}

	names := raw.Values("depicted")
	codes := raw.Values("related_auth")
	genders := raw.Values("gender")
	for i, name := range names {
		if name == "" {
			continue
		}
		person := record.PersonRef{
			RawName: name,
			Name:    normalize.CleanName(name),
		}
		if i < len(codes) {
			person.AuthorityCode = codes[i]
		}
		if i < len(genders) {
			person.Gender = normalize.ParseGender(genders[i])
		}
		rec.Depicted = append(rec.Depicted, person)
	}
	return rec, true
}

func (h *Helleday) Expand(rec *record.Normalized) []*record.Normalized {
	return []*record.Normalized{rec}
}

func (h *Helleday) Rules(env *categorize.Env) []categorize.Rule {
	return []categorize.Rule{
		categorize.TemporalTheatreRule(env),
		categorize.VenueRule(env, "theatres", "Theatre of Sweden"),
		categorize.DepictedRule(env, "depicted"),
		categorize.CostumeRule(),
		categorize.PortraitRule(),
		categorize.CreatorRule(env, "photographers"),
		categorize.PlayRule(env, "plays"),
	}
}

// photographerField prefers the resolved creator template over the raw
// attribution string.
func (h *Helleday) photographerField(creator string) string {
	if creator == "" {
		return ""
	}
	if ref, ok := h.mappings.Resolve("photographers", creator); ok && ref.Creator != "" {
		return "{{Creator:" + ref.Creator + "}}"
	}
	return creator
}

func (h *Helleday) Render(rec *record.Normalized, cats *categorize.Set, otherVersions string) render.Info {
	return render.Info{
		Template: infoTemplate,
		Fields: []render.Field{
			{Label: "title", Value: rec.Title},
			{Label: "description", Value: render.LanguageDescription("sv", rec.Descriptions["sv"])},
			{Label: "photographer", Value: h.photographerField(rec.Creator)},
			{Label: "depicted people", Value: depictedField(rec)},
			{Label: "dimensions", Value: sizeField(rec.Dimensions)},
			{Label: "department", Value: departmentField(rec.Collection)},
			{Label: "date", Value: dateField(rec)},
			{Label: "permission", Value: "{{PD-old-70}}"},
			{Label: "ID", Value: rec.ID},
			{Label: "source", Value: sourceField(rec.ID, rec.URL, true)},
			{Label: "other versions", Value: otherVersions},
		},
		ContentCats: cats.Content(),
		MetaCats:    cats.Meta(),
	}
}

func (h *Helleday) Filename(rec *record.Normalized, provider string) string {
	return render.Filename(rec.Title, provider, rec.ID)
}
