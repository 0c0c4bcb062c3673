package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "batchinfo",
		Short: "Archival catalog normalization and categorization for batch uploads",
		Long: `Batchinfo turns per-collection archival catalog exports into canonical,
enriched records ready for publication to Wikimedia Commons and Wikidata.

It normalizes raw field values, resolves free-text names and venues against
curated mapping tables, infers content and maintenance categories, and renders
the final metadata block and filename for every record.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	cmd.AddCommand(newInfoCmd())
	cmd.AddCommand(newMappingsCmd())
	cmd.AddCommand(newAuthorityCmd())

	return cmd
}
