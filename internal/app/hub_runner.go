package app

import (
	"fmt"

	"github.com/dealwatch/dealwatch/internal/unified"
	tea "github.com/charmbracelet/bubbletea"
)

// runHub launches the unified TUI starting at the hub menu.
func runHub() error {
	model := unified.New(unified.Deps{
		Client: client,
		Cfg:    cfg,
		Store:  store,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
