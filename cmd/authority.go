package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/wikimedia-sverige/batchinfo/internal/authority"
	"github.com/wikimedia-sverige/batchinfo/internal/dataset"
)

func newAuthorityCmd() *cobra.Command {
	var (
		inFile  string
		outFile string
		offset  int
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "authority",
		Short: "Normalize biographical authority records",
		Long: `Normalize the archive's biographical authority export (names, partial
dates, professions, gender) into canonical JSON for knowledge-base import.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Info("Loading authority batch", "file", inFile)
			batch, err := dataset.NewLoader(inFile).Load()
			if err != nil {
				return err
			}

			if offset > 0 {
				if offset >= len(batch) {
					batch = nil
				} else {
					batch = batch[offset:]
				}
				slog.Info("Using offset", "offset", offset)
			}
			if limit > 0 && limit < len(batch) {
				batch = batch[:limit]
				slog.Info("Using limit", "limit", limit)
			}

			people := authority.Run(batch)
			if err := authority.Export(people, outFile); err != nil {
				return err
			}
			fmt.Printf("Normalized %d authority records to %s\n", len(people), outFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&inFile, "in-file", "", "Authority input file, .jsonl or .parquet (required)")
	cmd.Flags().StringVar(&outFile, "out-file", "authority.json", "Output JSON file")
	cmd.Flags().IntVar(&offset, "offset", 0, "Skip the first N records")
	cmd.Flags().IntVar(&limit, "limit", 0, "Process at most N records (0 = all)")
	_ = cmd.MarkFlagRequired("in-file")

	return cmd
}
