package collection

import (
	"regexp"
	"strings"

	"github.com/wikimedia-sverige/batchinfo/internal/categorize"
	"github.com/wikimedia-sverige/batchinfo/internal/mapping"
	"github.com/wikimedia-sverige/batchinfo/internal/normalize"
	"github.com/wikimedia-sverige/batchinfo/internal/record"
	"github.com/wikimedia-sverige/batchinfo/internal/render"
)

var trailingYear = regexp.MustCompile(`([1-3][0-9]{3})`)

// Words in a filename-style title segment that mark it as not naming an
// identifiable person.
var nonPersonWords = []string{"unidentified", "dancer", "scene"}

// GlassUncat covers the uncataloged part of the glass negative
// collection: no export metadata beyond a descriptive filename, so
// depicted people and the year are recovered from the title itself.
type GlassUncat struct{}

func (g *GlassUncat) Name() string            { return "glass-uncat" }
func (g *GlassUncat) Schema() record.Schema   { return record.GlassUncatSchema }
func (g *GlassUncat) MappingTables() []string { return nil }

func (g *GlassUncat) MappingBuilds() []MappingBuild { return nil }

func (g *GlassUncat) SetMappings(mapping.Set) {}

func (g *GlassUncat) Normalize(raw record.Raw) (*record.Normalized, bool) {
	title := raw.Field("image_title")
	rec := &record.Normalized{
		ID:         raw.ID(),
		Title:      strings.ReplaceAll(title, "_", " "),
		Collection: "Glasnegativsamlingen",
	}
	if m := trailingYear.FindString(title); m != "" {
		if date, ok := normalize.ParseDate(m); ok {
			rec.Event = &date
		}
	}
	for _, name := range titlePersons(title) {
		rec.Depicted = append(rec.Depicted, record.PersonRef{
			RawName: name,
			Name:    name,
		})
	}
	return rec, true
}

// titlePersons extracts person names from a filename-style title:
// everything before "_in_" (or "_as_" for role portraits), split on
// "_and_" and commas, dropping segments that are not names.
func titlePersons(title string) []string {
	before := title
	if strings.Contains(title, "_as_") {
		before = strings.SplitN(title, "_as_", 2)[0]
	} else {
		before = strings.SplitN(title, "_in_", 2)[0]
	}

	var names []string
	for _, segment := range strings.Split(before, "_and_") {
		for _, part := range strings.Split(segment, ",") {
			if !looksLikeName(part) {
				continue
			}
			names = append(names, strings.TrimSpace(strings.ReplaceAll(part, "_", " ")))
		}
	}
	return names
}

// looksLikeName requires at least two words and none of the known
// non-person markers.
func looksLikeName(part string) bool {
	lower := strings.ToLower(part)
	for _, word := range nonPersonWords {
		if strings.Contains(lower, word) {
			return false
		}
	}
	return len(strings.Fields(strings.ReplaceAll(strings.Trim(part, "_"), "_", " "))) > 1
}

func (g *GlassUncat) Expand(rec *record.Normalized) []*record.Normalized {
	return []*record.Normalized{rec}
}

func (g *GlassUncat) Rules(env *categorize.Env) []categorize.Rule {
	return []categorize.Rule{
		categorize.DepictedNameRule(env),
		categorize.AlwaysAddRule("Glass plate negatives in the Swedish Performing Arts Agency"),
	}
}

// uncatNote warns readers that the file predates detailed cataloging.
const uncatNote = "This file comes from a part of the collection that had not been cataloged " +
	"and provided with detailed metadata. The lack of metadata might have resulted in " +
	"poor description and categorization of the file."

func (g *GlassUncat) Render(rec *record.Normalized, cats *categorize.Set, otherVersions string) render.Info {
	return render.Info{
		Template: infoTemplate,
		Fields: []render.Field{
			{Label: "title", Value: rec.Title},
			{Label: "depicted people", Value: depictedField(rec)},
			{Label: "date", Value: dateField(rec)},
			{Label: "notes", Value: uncatNote},
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

func (g *GlassUncat) Filename(rec *record.Normalized, provider string) string {
	return render.Filename(rec.Title, provider, rec.ID)
}
