package app

import (
	"context"
	"fmt"

	"github.com/dealwatch/dealwatch/internal/api"
	"github.com/dealwatch/dealwatch/internal/config"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if serverURL != "" {
				cfg.Server.BaseURL = serverURL
			}
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			ok("Config written: %s", config.DefaultPath())
			printField("server", cfg.Server.BaseURL)

			// Best-effort connectivity check; config is saved either way.
			probe := client
			if serverURL != "" {
				probe = api.New(serverURL, cfg.Timeout())
			}
			if err := probe.Health(context.Background()); err != nil {
				warn("Server not reachable yet: %v", err)
			} else {
				ok("Server is up")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "Price service base URL to store in the config")
	return cmd
}
