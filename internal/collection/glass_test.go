package collection

import (
	"strings"
	"testing"

	"github.com/wikimedia-sverige/batchinfo/internal/categorize"
	"github.com/wikimedia-sverige/batchinfo/internal/normalize"
	"github.com/wikimedia-sverige/batchinfo/internal/record"
)

func TestGlassNormalize(t *testing.T) {
	g := &Glass{}
	rec, ok := g.Normalize(record.Ingest(record.GlassSchema, record.Attrs{
		"id_no":       {"SMV-G2-0001"},
		"image_title": {"Porträtt av okänd kvinna"},
		"image_date":  {"1902"},
		"gender":      {"kvinna"},
		"image_type":  {"porträtt"},
		"depicted":    {"Okänd kvinna"},
		"description": {"Porträtt av okänd kvinna", "Portrait of unknown woman"},
	}))
	if !ok {
		t.Fatal("record skipped")
	}

	if rec.Gender != normalize.GenderWoman {
		t.Errorf("Gender = %q", rec.Gender)
	}
	// The record-level gender carries over to depicted people.
	if len(rec.Depicted) != 1 || rec.Depicted[0].Gender != normalize.GenderWoman {
		t.Errorf("Depicted = %+v", rec.Depicted)
	}
	if rec.Descriptions["sv"] != "Porträtt av okänd kvinna" || rec.Descriptions["en"] != "Portrait of unknown woman" {
		t.Errorf("Descriptions = %v", rec.Descriptions)
	}
}

func TestBilingualDescriptions(t *testing.T) {
	if got := bilingualDescriptions(nil); got != nil {
		t.Errorf("bilingualDescriptions(nil) = %v", got)
	}
	got := bilingualDescriptions([]string{"svensk text"})
	if got["sv"] != "svensk text" || got["en"] != "" {
		t.Errorf("bilingualDescriptions = %v", got)
	}
}

func TestBilingualDescriptionFieldOrder(t *testing.T) {
	rec := &record.Normalized{Descriptions: map[string]string{
		"sv": "Svensk beskrivning.",
		"en": "English description.",
	}}
	got := bilingualDescriptionField(rec)
	want := "{{en|English description.}}\n{{sv|Svensk beskrivning.}}"
	if got != want {
		t.Errorf("bilingualDescriptionField = %q, want %q", got, want)
	}

	rec = &record.Normalized{Descriptions: map[string]string{"sv": "Bara svenska."}}
	if got := bilingualDescriptionField(rec); got != "{{sv|Bara svenska.}}" {
		t.Errorf("bilingualDescriptionField = %q", got)
	}
}

func TestGlassPhotographerField(t *testing.T) {
	g := &Glass{}
	tests := []struct {
		creator string
		want    string
	}{
		{creator: "Atelier Jaeger, Stockholm", want: "Atelier Jaeger, Stockholm"},
		{creator: "ATELIER JAEGER", want: "Atelier Jaeger, Stockholm"},
		{creator: "A. Blomberg, Sthlm", want: "{{Creator:Anton Blomberg}}"},
		// Un-vetted attribution strings never reach the output.
		{creator: "Okänd fotograf", want: ""},
		{creator: "", want: ""},
	}
	for _, tt := range tests {
		if got := g.photographerField(tt.creator); got != tt.want {
			t.Errorf("photographerField(%q) = %q, want %q", tt.creator, got, tt.want)
		}
	}
}

func TestGlassRenderOmitsHighRes(t *testing.T) {
	g := &Glass{}
	rec := &record.Normalized{ID: "SMV-G2-0001", URL: "http://calmview.example/?id=1"}
	info := g.Render(rec, categorize.NewSet(), "")
	if strings.Contains(info.Wikitext(), "high resolution") {
		t.Errorf("glass render includes high resolution link:\n%s", info.Wikitext())
	}
}
