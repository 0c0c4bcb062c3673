package collection

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ReportRecord is one processed record in the batch report.
type ReportRecord struct {
	ID       string `yaml:"id"`
	Filename string `yaml:"filename"`
	Flagged  bool   `yaml:"flagged,omitempty"`
}

// Report summarizes one batch run for the operator.
type Report struct {
	Collection    string         `yaml:"collection"`
	BatchCategory string         `yaml:"batch_category"`
	Timestamp     string         `yaml:"timestamp"`
	Processed     int            `yaml:"processed"`
	Skipped       int            `yaml:"skipped"`
	Flagged       int            `yaml:"flagged"`
	CategoriesHit int            `yaml:"categories_confirmed"`
	Records       []ReportRecord `yaml:"records"`
}

// NewReport starts an empty report for one run.
func NewReport(collection, batchCat string) *Report {
	return &Report{
		Collection:    collection,
		BatchCategory: batchCat,
		Timestamp:     time.Now().Format("2006-01-02_15-04-05"),
	}
}

// Add records one processed output.
func (r *Report) Add(output Output, flagged bool) {
	r.Processed++
	if flagged {
		r.Flagged++
	}
	r.Records = append(r.Records, ReportRecord{
		ID:       output.ID,
		Filename: output.Filename,
		Flagged:  flagged,
	})
}

// Finish records the run-wide counters.
func (r *Report) Finish(categoriesConfirmed int) {
	r.CategoriesHit = categoriesConfirmed
}

// Save writes the report as YAML.
func (r *Report) Save(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
