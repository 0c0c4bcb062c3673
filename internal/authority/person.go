// Package authority normalizes the archive's biographical authority
// records into canonical person entries for knowledge-base import.
package authority

import (
	"strings"

	"github.com/wikimedia-sverige/batchinfo/internal/normalize"
	"github.com/wikimedia-sverige/batchinfo/internal/record"
)

// recordURLBase is the archive's public record page for one authority
// entry.
const recordURLBase = "http://calmview.musikverk.se/CalmView/Record.aspx?src=CalmView.Persons&id="

// Person is one normalized authority entry. Organizations reuse the
// type with only FullName, ID and URL populated.
type Person struct {
	ID          string   `json:"id_no"`
	Type        string   `json:"type"`
	FullName    string   `json:"full_name"`
	FirstNames  []string `json:"first,omitempty"`
	LastName    string   `json:"last,omitempty"`
	OtherNames  []string `json:"other_names,omitempty"`
	Professions []string `json:"professions,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	Birth       string   `json:"birth,omitempty"`
	Death       string   `json:"death,omitempty"`
	URL         string   `json:"url"`
}

// Normalize converts one ingested authority record. Every transform is
// total: malformed dates or unknown gender leave the field absent.
func Normalize(raw record.Raw) Person {
	person := Person{
		ID:   raw.Field("id_no"),
		URL:  recordURLBase + raw.Field("id_no"),
		Type: "person",
	}

	if corporate := raw.Field("corporate_name"); corporate != "" {
		person.Type = "organization"
		person.FullName = corporate
		person.OtherNames = otherNames(raw)
		return person
	}

	first := raw.Field("first")
	last := raw.Field("last")
	person.FullName = strings.TrimSpace(first + " " + last)
	if first != "" {
		person.FirstNames = strings.Fields(first)
	}
	person.LastName = last
	person.OtherNames = otherNames(raw)

	person.Professions = normalize.SplitList(raw.Field("profession"))
	if gender := normalize.ParseGender(raw.Field("gender")); gender != normalize.GenderUnknown {
		person.Gender = string(gender)
	}

	span := normalize.ParseLifespan(raw.Field("dates"))
	exact := normalize.ExtractLifeEvents(raw.Field("dates_places"))
	if exact.Birth != nil {
		span.Birth = exact.Birth
	}
	if exact.Death != nil {
		span.Death = exact.Death
	}
	if span.Birth != nil {
		person.Birth = span.Birth.String()
	}
	if span.Death != nil {
		person.Death = span.Death.String()
	}

	return person
}

// otherNames gathers alternate name forms from the parallel and
// non-preferred entries, flipped into natural order.
func otherNames(raw record.Raw) []string {
	var names []string
	names = append(names, normalize.SplitOtherNames(raw.Field("parallell_name"))...)
	names = append(names, normalize.SplitOtherNames(raw.Field("not_preferred_name"))...)
	return names
}
