package authority

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/wikimedia-sverige/batchinfo/internal/record"
)

func authorityRaw(attrs record.Attrs) record.Raw {
	return record.Ingest(record.AuthoritySchema, attrs)
}

func TestNormalizePerson(t *testing.T) {
	person := Normalize(authorityRaw(record.Attrs{
		"id_no":      {"PE0042"},
		"first":      {"Ellen Johanna"},
		"last":       {"Hartman"},
		"gender":     {"kvinna"},
		"profession": {"skådespelare, sångare"},
		"dates":      {"1860-1945"},
	}))

	if person.Type != "person" {
		t.Errorf("Type = %q", person.Type)
	}
	if person.FullName != "Ellen Johanna Hartman" {
		t.Errorf("FullName = %q", person.FullName)
	}
	if !reflect.DeepEqual(person.FirstNames, []string{"Ellen", "Johanna"}) {
		t.Errorf("FirstNames = %v", person.FirstNames)
	}
	if person.LastName != "Hartman" {
		t.Errorf("LastName = %q", person.LastName)
	}
	if !reflect.DeepEqual(person.Professions, []string{"skådespelare", "sångare"}) {
		t.Errorf("Professions = %v", person.Professions)
	}
	if person.Gender != "woman" {
		t.Errorf("Gender = %q", person.Gender)
	}
	if person.Birth != "1860" || person.Death != "1945" {
		t.Errorf("lifespan = %q / %q", person.Birth, person.Death)
	}
	if person.URL != recordURLBase+"PE0042" {
		t.Errorf("URL = %q", person.URL)
	}
}

func TestNormalizeExactDatesWin(t *testing.T) {
	// The free-text biography carries full dates; they refine the
	// year-granular lifespan.
	person := Normalize(authorityRaw(record.Attrs{
		"id_no":        {"PE0007"},
		"first":        {"Harriet"},
		"last":         {"Bosse"},
		"dates":        {"1878-1961"},
		"dates_places": {"Född 1878-02-19 i Kristiania, död 1961-11-02 i Oslo."},
	}))

	if person.Birth != "1878-02-19" {
		t.Errorf("Birth = %q", person.Birth)
	}
	if person.Death != "1961-11-02" {
		t.Errorf("Death = %q", person.Death)
	}
}

func TestNormalizeUnknownBound(t *testing.T) {
	person := Normalize(authorityRaw(record.Attrs{
		"id_no": {"PE0100"},
		"first": {"Okänd"},
		"last":  {"Person"},
		"dates": {"1870-?"},
	}))
	if person.Birth != "1870" {
		t.Errorf("Birth = %q", person.Birth)
	}
	// Unknown death stays absent rather than guessed.
	if person.Death != "" {
		t.Errorf("Death = %q, want empty", person.Death)
	}
}

func TestNormalizeOrganization(t *testing.T) {
	person := Normalize(authorityRaw(record.Attrs{
		"id_no":          {"ORG001"},
		"corporate_name": {"Kungliga Operan"},
		"gender":         {"kvinna"},
	}))

	if person.Type != "organization" {
		t.Errorf("Type = %q", person.Type)
	}
	if person.FullName != "Kungliga Operan" {
		t.Errorf("FullName = %q", person.FullName)
	}
	// Person fields never leak into organizations.
	if person.Gender != "" || person.LastName != "" || len(person.FirstNames) != 0 {
		t.Errorf("person fields set on organization: %+v", person)
	}
}

func TestNormalizeOtherNames(t *testing.T) {
	person := Normalize(authorityRaw(record.Attrs{
		"id_no":              {"PE0007"},
		"first":              {"Harriet"},
		"last":               {"Bosse"},
		"parallell_name":     {"Wingård, Harriet"},
		"not_preferred_name": {"Bosse-Palme, Harriet"},
	}))

	want := []string{"Harriet Wingård", "Harriet Bosse-Palme"}
	if !reflect.DeepEqual(person.OtherNames, want) {
		t.Errorf("OtherNames = %v, want %v", person.OtherNames, want)
	}
}

func TestRunSkipsRecordsWithoutID(t *testing.T) {
	people := Run([]record.Attrs{
		{"first": {"Namnlös"}},
		{"id_no": {"PE0001"}, "first": {"Anna"}, "last": {"Helleday"}},
	})
	if len(people) != 1 || people[0].ID != "PE0001" {
		t.Errorf("people = %+v", people)
	}
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authority.json")
	people := []Person{
		{ID: "PE0002", FullName: "Anna Helleday", Type: "person"},
		{ID: "PE0001", FullName: "Harriet Bosse", Type: "person"},
	}
	if err := Export(people, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var keyed map[string]Person
	if err := json.Unmarshal(data, &keyed); err != nil {
		t.Fatal(err)
	}
	if len(keyed) != 2 {
		t.Errorf("entries = %d", len(keyed))
	}
	if keyed["PE0001"].FullName != "Harriet Bosse" {
		t.Errorf("PE0001 = %+v", keyed["PE0001"])
	}
}
