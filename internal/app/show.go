package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dealwatch/dealwatch/internal/detail"
	"github.com/dealwatch/dealwatch/internal/tui"
	"github.com/dealwatch/dealwatch/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show current prices and history for a tracked game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid game id %q", args[0])
			}

			loader := detail.NewLoader()
			seq := loader.Begin(id)
			det, fetchErr := client.GameDetail(context.Background(), id)
			loader.Finish(seq, det, fetchErr)
			if loadErr := loader.Err(); loadErr != nil {
				return loadErr
			}
			det = loader.Detail()

			header("Game: %s", det.Game.Title)
			printField("id", strconv.Itoa(det.Game.ID))
			printField("catalog_id", det.Game.APIGameID)
			if det.Game.StoreURL != "" {
				printField("store_url", det.Game.StoreURL)
			}
			if det.Metadata != nil && len(det.Metadata.Tags) > 0 {
				printField("tags", strings.Join(det.Metadata.Tags, ", "))
			}
			fmt.Println()

			header("── current prices")
			if len(det.CurrentPrices) == 0 {
				fmt.Println("  No price data yet. Try: dealwatch refresh")
			}
			for _, p := range det.CurrentPrices {
				listPart := ""
				if p.ListPrice != nil && *p.ListPrice > p.Price {
					listPart = color.New(color.Faint).Sprintf("  (list %s%.2f)", cfg.CurrencySymbol(), *p.ListPrice)
				}
				fmt.Printf("  %-20s %s%s  %s\n",
					p.StoreName,
					color.YellowString("%s%.2f", cfg.CurrencySymbol(), p.Price),
					listPart,
					color.New(color.Faint).Sprint(util.Ago(p.Timestamp.Time)),
				)
			}
			fmt.Println()

			header("── price history")
			if !loader.HasHistory() {
				fmt.Println("  Not enough history yet.")
			} else {
				fmt.Println("  " + tui.Sparkline(det.History, 72))
			}

			if det.Metadata != nil && det.Metadata.Description != "" {
				fmt.Println()
				fmt.Println(color.New(color.Faint).Sprint(det.Metadata.Description))
			}
			return nil
		},
	}
	return cmd
}
