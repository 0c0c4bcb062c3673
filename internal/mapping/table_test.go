package mapping

import (
	"encoding/json"
	"testing"
)

func TestTableResolveExactMatch(t *testing.T) {
	table := NewTable("theatres", map[string]CanonicalRef{
		"Kungliga Operan": {Category: "Royal Swedish Opera"},
	})

	ref, ok := table.Resolve("Kungliga Operan")
	if !ok || ref.Category != "Royal Swedish Opera" {
		t.Fatalf("Resolve = (%+v, %v)", ref, ok)
	}

	// Near matches never resolve.
	for _, label := range []string{"kungliga operan", "Kungliga Operan ", "Kungliga opera", ""} {
		if _, ok := table.Resolve(label); ok {
			t.Errorf("Resolve(%q) resolved, want miss", label)
		}
	}
}

func TestTableJSONStringShape(t *testing.T) {
	data := []byte(`{"Kungliga Operan": "Royal Swedish Opera"}`)
	table := &Table{}
	if err := json.Unmarshal(data, table); err != nil {
		t.Fatal(err)
	}
	ref, ok := table.Resolve("Kungliga Operan")
	if !ok || ref.Category != "Royal Swedish Opera" {
		t.Fatalf("Resolve = (%+v, %v)", ref, ok)
	}

	out, err := json.Marshal(table)
	if err != nil {
		t.Fatal(err)
	}
	roundTrip := &Table{}
	if err := json.Unmarshal(out, roundTrip); err != nil {
		t.Fatal(err)
	}
	if got, _ := roundTrip.Resolve("Kungliga Operan"); got != ref {
		t.Errorf("round trip changed entry: %+v", got)
	}
}

func TestTableJSONObjectShape(t *testing.T) {
	data := []byte(`{"Bosse, Harriet": {"commonscat": "Harriet Bosse", "wikidata": "Q442542"}}`)
	table := &Table{}
	if err := json.Unmarshal(data, table); err != nil {
		t.Fatal(err)
	}
	ref, ok := table.Resolve("Bosse, Harriet")
	if !ok {
		t.Fatal("entry missing")
	}
	if ref.CommonsCat != "Harriet Bosse" || ref.Wikidata != "Q442542" {
		t.Errorf("ref = %+v", ref)
	}

	// Enriched entries must come back out as objects, not strings.
	out, err := json.Marshal(table)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(out, &raw); err != nil {
		t.Fatal(err)
	}
	var asString string
	if err := json.Unmarshal(raw["Bosse, Harriet"], &asString); err == nil {
		t.Errorf("enriched entry marshaled as string %q", asString)
	}
}

func TestSetResolveMissingTable(t *testing.T) {
	set := Set{"theatres": NewTable("theatres", map[string]CanonicalRef{
		"Dramaten": {Category: "Royal Dramatic Theatre"},
	})}

	if _, ok := set.Resolve("plays", "Dramaten"); ok {
		t.Error("missing table resolved")
	}
	if ref, ok := set.Resolve("theatres", "Dramaten"); !ok || ref.Category != "Royal Dramatic Theatre" {
		t.Errorf("Resolve = (%+v, %v)", ref, ok)
	}
}

func TestTableLabelsSorted(t *testing.T) {
	table := NewTable("x", map[string]CanonicalRef{
		"b": {Category: "B"},
		"a": {Category: "A"},
		"c": {Category: "C"},
	})
	labels := table.Labels()
	want := []string{"a", "b", "c"}
	for i, label := range labels {
		if label != want[i] {
			t.Fatalf("Labels = %v, want %v", labels, want)
		}
	}
}
