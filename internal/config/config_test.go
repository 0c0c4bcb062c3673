package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
batch_category: "Media from the Music and Theatre Library of Sweden"
batch_date: "batch 2026-08"
row_template: "User:Batch/row"
collections:
  helleday:
    link_pattern: "http://calmview.musikverk.se/CalmView/Record.aspx"
    mapping_pages:
      depicted: "User:Batch/depicted"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	// Defaults fill in omitted fields.
	if cfg.Provider != "SMV" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.MappingsDir != "mappings" {
		t.Errorf("MappingsDir = %q", cfg.MappingsDir)
	}

	want := "Media from the Music and Theatre Library of Sweden: batch 2026-08"
	if got := cfg.BatchCat(); got != want {
		t.Errorf("BatchCat = %q, want %q", got, want)
	}

	helleday, ok := cfg.Collections["helleday"]
	if !ok {
		t.Fatal("helleday collection missing")
	}
	if helleday.MappingPages["depicted"] != "User:Batch/depicted" {
		t.Errorf("MappingPages = %v", helleday.MappingPages)
	}
}

func TestLoadMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "no batch_category", content: `batch_date: "batch 2026-08"`},
		{name: "no batch_date", content: `batch_category: "Media from SMV"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadEnvDefaults(t *testing.T) {
	e, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if e.CommonsAPI != "https://commons.wikimedia.org/w/api.php" {
		t.Errorf("CommonsAPI = %q", e.CommonsAPI)
	}
	if e.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v", e.HTTPTimeout)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("COMMONS_API", "http://localhost:8080/w/api.php")
	t.Setenv("BATCHINFO_HTTP_TIMEOUT", "5s")

	e, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if e.CommonsAPI != "http://localhost:8080/w/api.php" {
		t.Errorf("CommonsAPI = %q", e.CommonsAPI)
	}
	if e.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout = %v", e.HTTPTimeout)
	}
}
