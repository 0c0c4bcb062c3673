package render

import (
	"strings"
	"testing"
)

func TestInfoWikitext(t *testing.T) {
	info := Info{
		Template: "Musikverket-image",
		Fields: []Field{
			{Label: "title", Value: "Harriet Bosse som Indras dotter"},
			{Label: "photographer", Value: ""},
			{Label: "date", Value: "1902"},
		},
		MetaCats:    []string{"Media from SMV: batch 2026-08"},
		ContentCats: []string{"1902 portrait photographs", "Harriet Bosse"},
	}

	got := info.Wikitext()
	want := "{{Musikverket-image\n" +
		"| title = Harriet Bosse som Indras dotter\n" +
		"| photographer = \n" +
		"| date = 1902\n" +
		"}}\n" +
		"[[Category:Media from SMV: batch 2026-08]]\n" +
		"[[Category:1902 portrait photographs]]\n" +
		"[[Category:Harriet Bosse]]\n"
	if got != want {
		t.Errorf("Wikitext =\n%s\nwant\n%s", got, want)
	}
}

func TestInfoWikitextEmptyFieldKeepsSlot(t *testing.T) {
	info := Info{Template: "T", Fields: []Field{{Label: "photographer", Value: ""}}}
	if !strings.Contains(info.Wikitext(), "| photographer = \n") {
		t.Errorf("empty field slot dropped:\n%s", info.Wikitext())
	}
}

func TestGallery(t *testing.T) {
	if got := Gallery(); got != "" {
		t.Errorf("Gallery() = %q, want empty", got)
	}
	got := Gallery("A.tif")
	want := "<gallery>\nA.tif\n</gallery>"
	if got != want {
		t.Errorf("Gallery = %q, want %q", got, want)
	}
}

func TestLanguageDescription(t *testing.T) {
	tests := []struct {
		lang string
		text string
		want string
	}{
		{lang: "sv", text: "Harriet Bosse i rollen som Indras dotter", want: "{{sv|Harriet Bosse i rollen som Indras dotter.}}"},
		{lang: "en", text: "Portrait of Harriet Bosse.", want: "{{en|Portrait of Harriet Bosse.}}"},
		{lang: "sv", text: "", want: ""},
	}
	for _, tt := range tests {
		if got := LanguageDescription(tt.lang, tt.text); got != tt.want {
			t.Errorf("LanguageDescription(%q, %q) = %q, want %q", tt.lang, tt.text, got, tt.want)
		}
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		provider string
		id       string
		want     string
	}{
		{
			name:     "plain",
			title:    "Harriet Bosse som Indras dotter",
			provider: "SMV",
			id:       "H1-0042",
			want:     "Harriet_Bosse_som_Indras_dotter_-_SMV_-_H1-0042",
		},
		{
			name:     "illegal characters substituted",
			title:    `Scen ur "Ett drömspel": akt 1/2 [detalj]`,
			provider: "SMV",
			id:       "H1-0043",
			want:     "Scen_ur_'Ett_drömspel'-_akt_1-2_(detalj)_-_SMV_-_H1-0043",
		},
		{
			name:     "whitespace collapsed",
			title:    "  Namnlös   bild ",
			provider: "SMV",
			id:       "G2-0001",
			want:     "Namnlös_bild_-_SMV_-_G2-0001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.title, tt.provider, tt.id); got != tt.want {
				t.Errorf("Filename = %q, want %q", got, tt.want)
			}
		})
	}
}
