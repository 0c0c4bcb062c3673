package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wikimedia-sverige/batchinfo/internal/collection"
	"github.com/wikimedia-sverige/batchinfo/internal/config"
	"github.com/wikimedia-sverige/batchinfo/internal/mapping"
	"github.com/wikimedia-sverige/batchinfo/internal/platform"
)

// pipelineDeps bundles what the mapping refresh needs from the calling
// command.
type pipelineDeps struct {
	cfg    *config.Config
	envCfg *config.Env
	client *platform.Client
}

func newMappingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mappings",
		Short: "Manage the controlled-vocabulary mapping tables",
	}
	cmd.AddCommand(newMappingsUpdateCmd())
	return cmd
}

func newMappingsUpdateCmd() *cobra.Command {
	var (
		collectionName string
		configPath     string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rebuild mapping tables from their curated listings",
		Long: `Scrape the curated mapping listings, cross-reference entity-keyed tables
against Wikidata, and rewrite the local JSON mapping files. This is the only
mode that writes mapping files; normal runs load them read-only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
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
			return refreshMappings(cmd.Context(), coll, pipelineDeps{
				cfg:    cfg,
				envCfg: envCfg,
				client: platform.NewClient(envCfg.CommonsAPI, envCfg.UserAgent, envCfg.HTTPTimeout),
			})
		},
	}

	cmd.Flags().StringVar(&collectionName, "collection", "", "Collection whose tables to rebuild (required)")
	cmd.Flags().StringVar(&configPath, "config", "batch.yaml", "Batch configuration file")
	_ = cmd.MarkFlagRequired("collection")

	return cmd
}

// refreshMappings rebuilds every mapping table of one collection and
// persists the results.
func refreshMappings(ctx context.Context, coll collection.Collection, deps pipelineDeps) error {
	builds := coll.MappingBuilds()
	if len(builds) == 0 {
		slog.Info("Collection has no mapping tables", "collection", coll.Name())
		return nil
	}

	slog.Info("Updating mappings", "collection", coll.Name(), "tables", len(builds))

	pages := deps.cfg.Collections[coll.Name()].MappingPages
	rows := platform.NewListingSource(deps.client, deps.cfg.RowTemplate)
	entities := platform.NewWikidataClient(deps.envCfg.WikidataAPI, deps.envCfg.UserAgent, deps.envCfg.HTTPTimeout)
	builder := mapping.NewBuilder(rows, entities)
	store := mapping.NewStore(deps.cfg.MappingsDir)

	for _, build := range builds {
		page := pages[build.Table]
		if page == "" {
			return fmt.Errorf("config has no mapping page for table %s of collection %s", build.Table, coll.Name())
		}

		var table *mapping.Table
		var err error
		if build.Entity {
			table, err = builder.EntityTable(ctx, build.Table, page, build.Properties)
		} else {
			table, err = builder.CategoryTable(ctx, build.Table, page)
		}
		if err != nil {
			return err
		}
		if err := store.Save(table); err != nil {
			return err
		}
	}
	return nil
}

// loadMappings loads the persisted tables a collection's transform run
// needs.
func loadMappings(coll collection.Collection, cfg *config.Config) (mapping.Set, error) {
	names := coll.MappingTables()
	if len(names) == 0 {
		return mapping.Set{}, nil
	}
	return mapping.NewStore(cfg.MappingsDir).LoadSet(names...)
}
