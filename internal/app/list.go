package app

import (
	"context"
	"fmt"

	"github.com/dealwatch/dealwatch/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the watchlist with best prices",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.Reload(context.Background()); err != nil {
				return err
			}

			games := store.Games()
			if len(games) == 0 {
				fmt.Println("Nothing tracked yet. Try: dealwatch search portal")
				return nil
			}

			header("── watchlist  (%d games)", len(games))
			for _, g := range games {
				best := util.FormatPrice(cfg.CurrencySymbol(), g.BestPrice)
				bestStore := ""
				if g.BestStore != "" {
					bestStore = " " + color.CyanString("@"+g.BestStore)
				}
				updated := ""
				if g.LastUpdated != nil && !g.LastUpdated.IsZero() {
					updated = "  " + color.New(color.Faint).Sprint(util.Ago(g.LastUpdated.Time))
				}
				fmt.Printf("  %-4d %-40s %s%s%s\n",
					g.ID,
					g.Title,
					color.YellowString(best),
					bestStore,
					updated,
				)
			}
			return nil
		},
	}
	return cmd
}
