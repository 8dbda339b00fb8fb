package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <api-game-id>",
		Short: "Add a game to the watchlist by its catalog id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiGameID := args[0]
			ctx := context.Background()

			if err := store.Reload(ctx); err != nil {
				return fmt.Errorf("loading watchlist: %w", err)
			}
			if store.IsTracked(apiGameID) {
				ok("Already in watchlist: %s", apiGameID)
				return nil
			}

			if err := store.Add(ctx, apiGameID); err != nil {
				return err
			}
			ok("Added to watchlist: %s  (%d tracked)", apiGameID, store.Len())
			return nil
		},
	}
	return cmd
}
