package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dealwatch/dealwatch/internal/util"
	"github.com/spf13/cobra"
)

func newRefreshCmd() *cobra.Command {
	var metadataID int

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Ask the server to re-poll prices (or re-scrape one game's metadata)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if metadataID > 0 {
				meta, err := client.RefreshMetadata(ctx, metadataID)
				if err != nil {
					return fmt.Errorf("refreshing metadata: %w", err)
				}
				ok("Metadata refreshed for game %s", strconv.Itoa(metadataID))
				if meta.LastScrapedAt != nil {
					printField("scraped", util.Ago(meta.LastScrapedAt.Time))
				}
				if len(meta.Tags) > 0 {
					printField("tags", fmt.Sprintf("%d", len(meta.Tags)))
				}
				return nil
			}

			fmt.Println("Refreshing prices for all tracked games…")
			summary, err := client.RefreshPrices(ctx)
			if err != nil {
				return fmt.Errorf("refreshing prices: %w", err)
			}
			ok("Processed %d games, inserted %d snapshots",
				summary.GamesProcessed, summary.SnapshotsInserted)
			return nil
		},
	}

	cmd.Flags().IntVar(&metadataID, "metadata", 0, "Re-scrape store metadata for one game id instead")
	return cmd
}
