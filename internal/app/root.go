package app

import (
	"fmt"
	"os"

	"github.com/dealwatch/dealwatch/internal/api"
	"github.com/dealwatch/dealwatch/internal/config"
	"github.com/dealwatch/dealwatch/internal/tui"
	"github.com/dealwatch/dealwatch/internal/util"
	"github.com/dealwatch/dealwatch/internal/watchlist"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	client *api.Client
	store  *watchlist.Store

	flagNoColor       bool
	flagNoInteractive bool
	flagServer        string
)

var appVersion = "dev"

// SetVersion records the build version injected via ldflags.
func SetVersion(v string) {
	appVersion = v
}

var rootCmd = &cobra.Command{
	Use:   "dealwatch",
	Short: "Track game prices from your terminal",
	Long: `dealwatch is a client for a self-hosted game price tracker.

Search the deals catalog, keep a watchlist, and inspect per-store
prices and price history — from the command line or an interactive TUI.

Run 'dealwatch' with no arguments to launch the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand provided and in TUI mode, launch the hub
		if tui.ShouldUseTUI(cmd) {
			return runHub()
		}
		// Otherwise show help
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "Price service base URL (overrides config)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		baseURL := cfg.Server.BaseURL
		if flagServer != "" {
			baseURL = flagServer
		}

		client = api.New(baseURL, cfg.Timeout())
		store = watchlist.New(client)
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newInitCmd(),
		newSearchCmd(),
		newListCmd(),
		newAddCmd(),
		newShowCmd(),
		newRefreshCmd(),
		newVersionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

func printField(label, value string) {
	fmt.Printf("  %-14s %s\n", color.CyanString(label+":"), value)
}
