package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/dealwatch/dealwatch/internal/search"
	"github.com/dealwatch/dealwatch/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the deals catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session := search.NewSession()
			seq, query, err := session.Begin(strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("nothing to search for")
			}

			ctx := context.Background()
			results, searchErr := client.Search(ctx, query)
			session.Finish(seq, results, searchErr)
			if searchErr != nil {
				return fmt.Errorf("search: %w", searchErr)
			}

			if len(session.Results()) == 0 {
				fmt.Printf("No results for %q.\n", query)
				return nil
			}

			// Membership is combined at presentation time: a failed
			// reload just means no markers, not a failed search.
			if err := store.Reload(ctx); err != nil {
				warn("Could not load watchlist: %v", err)
			}

			header("── results for %q  (%d)", query, len(session.Results()))
			for _, r := range session.Results() {
				marker := ""
				if store.IsTracked(r.APIGameID) {
					marker = color.GreenString("  ✓ in watchlist")
				}
				price := "price unknown"
				if r.CheapestPrice != nil {
					price = "from " + util.FormatPrice(cfg.CurrencySymbol(), r.CheapestPrice)
				}
				fmt.Printf("  %-22s  %s  %s%s\n",
					color.WhiteString(r.APIGameID),
					r.Title,
					color.YellowString(price),
					marker,
				)
			}
			return nil
		},
	}
	return cmd
}
