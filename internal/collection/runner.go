package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wikimedia-sverige/batchinfo/internal/categorize"
	"github.com/wikimedia-sverige/batchinfo/internal/pairing"
	"github.com/wikimedia-sverige/batchinfo/internal/record"
	"github.com/wikimedia-sverige/batchinfo/internal/render"
)

// Options bound one run to a slice of the batch, for resumed or test
// runs.
type Options struct {
	Offset int
	Limit  int
}

// Output is one publishable record: its rendered metadata block and
// derived filename, handed to the publishing and file-matching
// collaborators.
type Output struct {
	ID       string
	Filename string
	Info     render.Info
}

// siblingNamer is implemented by collections whose records have a
// derived other half.
type siblingNamer interface {
	SiblingFilename(rec *record.Normalized, provider string) (string, bool)
}

// Runner processes one collection batch record by record. Records are
// independent; the only shared state is the existence cache and the
// loaded mapping tables, both read-mostly after the load phase.
type Runner struct {
	Collection Collection
	Env        *categorize.Env
	DupIndex   pairing.Index
	Provider   string
	BatchCat   string
}

// Run ingests, normalizes, categorizes and renders every record in the
// batch. A record the pipeline cannot publish is skipped, never fatal;
// a platform failure aborts the batch.
func (r *Runner) Run(ctx context.Context, batch []record.Attrs, opts Options) ([]Output, *Report, error) {
	if opts.Offset > 0 {
		if opts.Offset >= len(batch) {
			batch = nil
		} else {
			batch = batch[opts.Offset:]
		}
		slog.Info("Using offset", "offset", opts.Offset)
	}
	if opts.Limit > 0 && opts.Limit < len(batch) {
		batch = batch[:opts.Limit]
		slog.Info("Using limit", "limit", opts.Limit)
	}

	engine := categorize.NewEngine(r.Collection.Rules(r.Env))
	schema := r.Collection.Schema()
	report := NewReport(r.Collection.Name(), r.BatchCat)

	var outputs []Output
	for i, attrs := range batch {
		raw := record.Ingest(schema, attrs)
		rec, ok := r.Collection.Normalize(raw)
		if !ok {
			slog.Debug("Skipping record", "id", raw.ID())
			report.Skipped++
			continue
		}
		slog.Debug("Processing record", "id", rec.ID, "progress", fmt.Sprintf("%d/%d", i+1, len(batch)))

		for _, out := range r.Collection.Expand(rec) {
			output, flagged, err := r.processRecord(ctx, out, engine)
			if err != nil {
				return nil, nil, fmt.Errorf("record %s: %w", out.ID, err)
			}
			outputs = append(outputs, output)
			report.Add(output, flagged)
		}
	}

	report.Finish(r.Env.Cache.Confirmed())
	return outputs, report, nil
}

func (r *Runner) processRecord(ctx context.Context, rec *record.Normalized, engine *categorize.Engine) (Output, bool, error) {
	cats, err := engine.Infer(ctx, rec)
	if err != nil {
		return Output{}, false, err
	}

	var gallery []string
	if namer, ok := r.Collection.(siblingNamer); ok {
		if sibling, ok := namer.SiblingFilename(rec, r.Provider); ok {
			gallery = append(gallery, sibling)
		}
	}
	if title, ok := r.DupIndex.Lookup(rec.URL); ok {
		gallery = append(gallery, title)
		cats.AddMeta(r.Env.MaintenanceCat(categorize.PotentialDuplicates))
	}

	cats.AddMeta(r.BatchCat)
	flagged := len(cats.Meta()) > 1

	info := r.Collection.Render(rec, cats, render.Gallery(gallery...))
	filename := r.Collection.Filename(rec, r.Provider)
	return Output{ID: rec.ID, Filename: filename, Info: info}, flagged, nil
}
