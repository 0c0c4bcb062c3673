package collection

import (
	"github.com/wikimedia-sverige/batchinfo/internal/categorize"
	"github.com/wikimedia-sverige/batchinfo/internal/mapping"
	"github.com/wikimedia-sverige/batchinfo/internal/normalize"
	"github.com/wikimedia-sverige/batchinfo/internal/record"
	"github.com/wikimedia-sverige/batchinfo/internal/render"
)

// Studios known to appear in the glass negative creator field, matched
// by substring because attribution strings vary.
var glassStudios = []categorize.Studio{
	{Match: "atelier jaeger", Category: "Atelier Jaeger"},
	{Match: "a. blomberg", Category: "Anton Blomberg"},
}

// Glass is the glass plate negative collection: bilingual descriptions,
// record-level gender, depicted people without authority links.
type Glass struct {
	mappings mapping.Set
}

func (g *Glass) Name() string          { return "glass" }
func (g *Glass) Schema() record.Schema { return record.GlassSchema }

func (g *Glass) MappingTables() []string { return []string{"glass_depicted"} }

func (g *Glass) MappingBuilds() []MappingBuild {
	return []MappingBuild{{Table: "glass_depicted"}}
}

func (g *Glass) SetMappings(set mapping.Set) { g.mappings = set }

func (g *Glass) Normalize(raw record.Raw) (*record.Normalized, bool) {
	rec := &record.Normalized{
		ID:         raw.ID(),
		Title:      raw.Field("image_title"),
		Creator:    raw.Field("creator"),
		ImageType:  raw.Field("image_type"),
		Collection: raw.Field("collection"),
		URL:        raw.Field("url"),
		Gender:     normalize.ParseGender(raw.Field("gender")),
		Keywords:   normalize.SplitList(raw.Field("keywords")),
	}
	rec.Descriptions = bilingualDescriptions(raw.Values("description"))
	if year, ok := normalize.ParseDecade(raw.Field("image_date")); ok {
		rec.DecadeYear = year
	} else if date, ok := normalize.ParseDate(raw.Field("image_date")); ok {
		rec.Event = &date
	}
	for _, name := range raw.Values("depicted") {
		if name == "" {
			continue
		}
		rec.Depicted = append(rec.Depicted, record.PersonRef{
			RawName: name,
			Name:    normalize.CleanName(name),
			Gender:  rec.Gender,
		})
	}
	return rec, true
}

// bilingualDescriptions maps the export's ordered description values to
// languages: Swedish first, English second.
func bilingualDescriptions(values []string) map[string]string {
	descriptions := make(map[string]string)
	if len(values) > 0 && values[0] != "" {
		descriptions["sv"] = values[0]
	}
	if len(values) > 1 && values[1] != "" {
		descriptions["en"] = values[1]
	}
	if len(descriptions) == 0 {
		return nil
	}
	return descriptions
}

func (g *Glass) Expand(rec *record.Normalized) []*record.Normalized {
	return []*record.Normalized{rec}
}

func (g *Glass) Rules(env *categorize.Env) []categorize.Rule {
	return []categorize.Rule{
		categorize.DepictedRule(env, "glass_depicted"),
		categorize.TemporalPortraitRule(env),
		categorize.ImageTypeRule(env),
		categorize.StudioRule(glassStudios),
		categorize.AlwaysAddRule("Glass plate negatives in the Swedish Performing Arts Agency"),
	}
}

// photographerField normalizes the studio attribution strings that
// dominate this collection. Anything outside the vetted studios stays
// empty: the field carries curated attribution only, never raw archive
// strings.
func (g *Glass) photographerField(creator string) string {
	switch {
	case containsFold(creator, "atelier jaeger"):
		return "Atelier Jaeger, Stockholm"
	case containsFold(creator, "a. blomberg"):
		return "{{Creator:Anton Blomberg}}"
	default:
		return ""
	}
}

func (g *Glass) Render(rec *record.Normalized, cats *categorize.Set, otherVersions string) render.Info {
	return render.Info{
		Template: infoTemplate,
		Fields: []render.Field{
			{Label: "title", Value: rec.Title},
			{Label: "description", Value: bilingualDescriptionField(rec)},
			{Label: "photographer", Value: g.photographerField(rec.Creator)},
			{Label: "depicted people", Value: depictedField(rec)},
			{Label: "date", Value: dateField(rec)},
			{Label: "department", Value: departmentField(rec.Collection)},
			{Label: "permission", Value: "{{PD-old-70}}"},
			{Label: "ID", Value: rec.ID},
			{Label: "source", Value: sourceField(rec.ID, rec.URL, false)},
			{Label: "other versions", Value: otherVersions},
		},
		ContentCats: cats.Content(),
		MetaCats:    cats.Meta(),
	}
}

// bilingualDescriptionField renders English above Swedish, matching the
// platform's reader expectations.
func bilingualDescriptionField(rec *record.Normalized) string {
	english := render.LanguageDescription("en", rec.Descriptions["en"])
	swedish := render.LanguageDescription("sv", rec.Descriptions["sv"])
	switch {
	case english != "" && swedish != "":
		return english + "\n" + swedish
	case english != "":
		return english
	default:
		return swedish
	}
}

func (g *Glass) Filename(rec *record.Normalized, provider string) string {
	return render.Filename(rec.Title, provider, rec.ID)
}
