package collection

import (
	"context"
	"strings"
	"testing"

	"github.com/wikimedia-sverige/batchinfo/internal/categorize"
	"github.com/wikimedia-sverige/batchinfo/internal/mapping"
	"github.com/wikimedia-sverige/batchinfo/internal/normalize"
	"github.com/wikimedia-sverige/batchinfo/internal/record"
)

// stubChecker answers existence checks from a fixed set.
type stubChecker map[string]bool

func (s stubChecker) CategoryExists(_ context.Context, name string) (bool, error) {
	return s[name], nil
}

func testEnv(existing stubChecker, tables mapping.Set) *categorize.Env {
	return &categorize.Env{
		Mappings: tables,
		Cache:    categorize.NewExistenceCache(existing),
		Stem:     "Media from the Music and Theatre Library of Sweden",
	}
}

func TestDateField(t *testing.T) {
	tests := []struct {
		name string
		rec  *record.Normalized
		want string
	}{
		{name: "full date", rec: &record.Normalized{Event: &normalize.Date{Year: 1902, Month: 3, Day: 4}}, want: "1902-03-04"},
		{name: "year only", rec: &record.Normalized{Event: &normalize.Date{Year: 1902}}, want: "1902"},
		{name: "decade", rec: &record.Normalized{DecadeYear: 1890}, want: "{{other date|decade|1890}}"},
		{name: "absent", rec: &record.Normalized{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateField(tt.rec); got != tt.want {
				t.Errorf("dateField = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSizeField(t *testing.T) {
	if got := sizeField(nil); got != "" {
		t.Errorf("sizeField(nil) = %q", got)
	}
	got := sizeField(&normalize.Dimensions{WidthCM: 18.3, HeightCM: 11.6})
	if got != "{{Size|cm|18.3|11.6}}" {
		t.Errorf("sizeField = %q", got)
	}
	// Whole numbers render without a decimal point.
	got = sizeField(&normalize.Dimensions{WidthCM: 16, HeightCM: 25})
	if got != "{{Size|cm|16|25}}" {
		t.Errorf("sizeField = %q", got)
	}
}

func TestDepartmentField(t *testing.T) {
	if got := departmentField(""); got != "Musik- och teaterbiblioteket" {
		t.Errorf("departmentField = %q", got)
	}
	got := departmentField("Helledaysamlingen")
	if got != "Musik- och teaterbiblioteket, Helledaysamlingen" {
		t.Errorf("departmentField = %q", got)
	}
}

func TestSourceField(t *testing.T) {
	got := sourceField("H1-0042", "http://calmview.example/?id=1", true)
	if !strings.Contains(got, "{{Musikverket-link|H1-0042}}") {
		t.Errorf("info link missing: %q", got)
	}
	if !strings.Contains(got, "[http://calmview.example/?id=1 high resolution]") {
		t.Errorf("high resolution link missing: %q", got)
	}
	if !strings.Contains(got, "{{Musikverket cooperation project}}") {
		t.Errorf("cooperation template missing: %q", got)
	}

	// No high-res link without a URL or when the collection omits it.
	got = sourceField("H1-0042", "", true)
	if strings.Contains(got, "high resolution") {
		t.Errorf("unexpected high resolution link: %q", got)
	}
	got = sourceField("G2-0001", "http://calmview.example/?id=2", false)
	if strings.Contains(got, "high resolution") {
		t.Errorf("unexpected high resolution link: %q", got)
	}
}

func TestDepictedField(t *testing.T) {
	rec := &record.Normalized{Depicted: []record.PersonRef{
		{Name: "Harriet Bosse"},
		{Name: "Anders de Wahl"},
	}}
	if got := depictedField(rec); got != "Harriet Bosse / Anders de Wahl" {
		t.Errorf("depictedField = %q", got)
	}
	if got := depictedField(&record.Normalized{}); got != "" {
		t.Errorf("depictedField = %q, want empty", got)
	}
}

func TestNewKnowsEveryName(t *testing.T) {
	for _, name := range Names() {
		c, err := New(name)
		if err != nil {
			t.Errorf("New(%q): %v", name, err)
			continue
		}
		if c.Name() != name {
			t.Errorf("New(%q).Name() = %q", name, c.Name())
		}
	}
	if _, err := New("unknown"); err == nil {
		t.Error("New(unknown) succeeded")
	}
}
