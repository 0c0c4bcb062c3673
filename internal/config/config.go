// Package config loads the batch configuration: a YAML file naming the
// collections, their curated mapping listings and the maintenance
// category stem, plus environment overrides for the external service
// endpoints.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Collection configures one collection batch.
type Collection struct {
	// MappingPages maps table names to the curated listing pages they
	// are rebuilt from in refresh mode.
	MappingPages map[string]string `yaml:"mapping_pages"`
	// LinkPattern is the source-URL prefix used to build the
	// cross-batch duplicate index. Empty disables duplicate detection.
	LinkPattern string `yaml:"link_pattern"`
}

// Config is the batch configuration file.
type Config struct {
	// Provider is the short provider code used in derived filenames.
	Provider string `yaml:"provider"`
	// BatchCategory is the maintenance category stem.
	BatchCategory string `yaml:"batch_category"`
	// BatchDate labels this particular batch under the stem.
	BatchDate string `yaml:"batch_date"`
	// MappingsDir holds the persisted mapping table files.
	MappingsDir string `yaml:"mappings_dir"`
	// RowTemplate identifies mapping rows on the curated listings.
	RowTemplate string `yaml:"row_template"`

	Collections map[string]Collection `yaml:"collections"`
}

// BatchCat is the full maintenance category for this batch.
func (c *Config) BatchCat() string {
	return fmt.Sprintf("%s: %s", c.BatchCategory, c.BatchDate)
}

// Load reads and validates the batch configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Provider == "" {
		cfg.Provider = "SMV"
	}
	if cfg.MappingsDir == "" {
		cfg.MappingsDir = "mappings"
	}
	if cfg.BatchCategory == "" {
		return nil, fmt.Errorf("config is missing batch_category")
	}
	if cfg.BatchDate == "" {
		return nil, fmt.Errorf("config is missing batch_date")
	}
	return cfg, nil
}

// Env holds the environment-driven settings for the external services.
type Env struct {
	CommonsAPI  string        `env:"COMMONS_API" envDefault:"https://commons.wikimedia.org/w/api.php"`
	WikidataAPI string        `env:"WIKIDATA_API" envDefault:"https://www.wikidata.org/w/api.php"`
	UserAgent   string        `env:"BATCHINFO_USER_AGENT" envDefault:"batchinfo/0.1 (https://github.com/wikimedia-sverige/batchinfo)"`
	HTTPTimeout time.Duration `env:"BATCHINFO_HTTP_TIMEOUT" envDefault:"30s"`
}

// LoadEnv parses the environment settings.
func LoadEnv() (*Env, error) {
	e := &Env{}
	if err := env.Parse(e); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}
