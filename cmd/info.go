package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wikimedia-sverige/batchinfo/internal/categorize"
	"github.com/wikimedia-sverige/batchinfo/internal/collection"
	"github.com/wikimedia-sverige/batchinfo/internal/config"
	"github.com/wikimedia-sverige/batchinfo/internal/dataset"
	"github.com/wikimedia-sverige/batchinfo/internal/pairing"
	"github.com/wikimedia-sverige/batchinfo/internal/platform"
)

func newInfoCmd() *cobra.Command {
	var (
		collectionName string
		inFile         string
		configPath     string
		outDir         string
		updateMappings bool
		offset         int
		limit          int
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Process one collection batch into rendered metadata",
		Long: `Run the full pipeline for one collection batch: ingest the pre-parsed
export records, normalize their fields, resolve mapping tables, infer content
and maintenance categories, link paired and duplicate assets, and write one
rendered metadata file per record plus a YAML batch report.`,
		Example: `  # Process the Helleday collection
  batchinfo info --collection helleday --in-file helleday.jsonl

  # Refresh the mapping tables first, then process a slice of the batch
  batchinfo info --collection glass --in-file glass.parquet --update-mappings --offset 100 --limit 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			envCfg, err := config.LoadEnv()
			if err != nil {
				return err
			}

			coll, err := collection.New(collectionName)
			if err != nil {
				return fmt.Errorf("%w (known: %s)", err, strings.Join(collection.Names(), ", "))
			}

			client := platform.NewClient(envCfg.CommonsAPI, envCfg.UserAgent, envCfg.HTTPTimeout)

			deps := pipelineDeps{
				cfg:    cfg,
				envCfg: envCfg,
				client: client,
			}
			if updateMappings {
				if err := refreshMappings(ctx, coll, deps); err != nil {
					return err
				}
			}
			set, err := loadMappings(coll, cfg)
			if err != nil {
				return err
			}
			coll.SetMappings(set)
			slog.Info("Loaded all mappings", "tables", len(set))

			dupIndex := pairing.Index{}
			if pattern := cfg.Collections[coll.Name()].LinkPattern; pattern != "" {
				slog.Info("Building reverse-link index", "pattern", pattern)
				index, err := client.LinkSearch(ctx, pattern)
				if err != nil {
					return fmt.Errorf("failed to build duplicate index: %w", err)
				}
				dupIndex = index
			}

			slog.Info("Loading batch", "file", inFile)
			batch, err := dataset.NewLoader(inFile).Load()
			if err != nil {
				return err
			}
			slog.Info("Batch loaded", "records", len(batch))

			runner := &collection.Runner{
				Collection: coll,
				Env: &categorize.Env{
					Mappings: set,
					Cache:    categorize.NewExistenceCache(client),
					Stem:     cfg.BatchCategory,
				},
				DupIndex: dupIndex,
				Provider: cfg.Provider,
				BatchCat: cfg.BatchCat(),
			}

			outputs, report, err := runner.Run(ctx, batch, collection.Options{Offset: offset, Limit: limit})
			if err != nil {
				return fmt.Errorf("batch failed: %w", err)
			}

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			for _, output := range outputs {
				path := filepath.Join(outDir, output.Filename+".wiki")
				if err := os.WriteFile(path, []byte(output.Info.Wikitext()), 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
			}

			reportPath := filepath.Join(outDir, "report.yaml")
			if err := report.Save(reportPath); err != nil {
				return err
			}

			slog.Info("Batch complete",
				"processed", report.Processed,
				"skipped", report.Skipped,
				"flagged", report.Flagged)
			fmt.Printf("\nWrote %d records to %s\nReport: %s\n", report.Processed, outDir, reportPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&collectionName, "collection", "", "Collection to process (required)")
	cmd.Flags().StringVar(&inFile, "in-file", "", "Batch input file, .jsonl or .parquet (required)")
	cmd.Flags().StringVar(&configPath, "config", "batch.yaml", "Batch configuration file")
	cmd.Flags().StringVar(&outDir, "out-dir", "out", "Directory for rendered metadata files")
	cmd.Flags().BoolVar(&updateMappings, "update-mappings", false, "Rebuild mapping tables before processing")
	cmd.Flags().IntVar(&offset, "offset", 0, "Skip the first N records")
	cmd.Flags().IntVar(&limit, "limit", 0, "Process at most N records (0 = all)")
	_ = cmd.MarkFlagRequired("collection")
	_ = cmd.MarkFlagRequired("in-file")

	return cmd
}
