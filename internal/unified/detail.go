package unified

import (
	"context"
	"fmt"
	"strings"

	"github.com/dealwatch/dealwatch/internal/api"
	"github.com/dealwatch/dealwatch/internal/detail"
	"github.com/dealwatch/dealwatch/internal/tui"
	"github.com/dealwatch/dealwatch/internal/util"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// detailDoneMsg carries a completed aggregate fetch with its sequence
// number so late responses for superseded ids can be dropped.
type detailDoneMsg struct {
	seq uint64
	det *api.GameDetail
	err error
}

// DetailModel shows one game's aggregate: current prices, history,
// metadata. The loader is created fresh per mount and discarded with it.
type DetailModel struct {
	deps   Deps
	loader *detail.Loader
	gameID int

	spin          spinner.Model
	width, height int
}

var detailKeyMap = tui.NewStandardKeys()

// NewDetailModel creates a detail view bound to one game id
func NewDetailModel(deps Deps, gameID int) DetailModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(tui.ColorCyan)

	return DetailModel{
		deps:   deps,
		loader: detail.NewLoader(),
		gameID: gameID,
		spin:   sp,
	}
}

// Init starts the aggregate fetch
func (m DetailModel) Init() tea.Cmd {
	seq := m.loader.Begin(m.gameID)
	client := m.deps.Client
	id := m.gameID
	load := func() tea.Msg {
		det, err := client.GameDetail(context.Background(), id)
		return detailDoneMsg{seq: seq, det: det, err: err}
	}
	return tea.Batch(m.spin.Tick, load)
}

// Update handles messages
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case detailDoneMsg:
		// Finish drops responses for a superseded request.
		m.loader.Finish(msg.seq, msg.det, msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.loader.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, func() tea.Msg { return QuitAppMsg{} }
		}
		if key.Matches(msg, detailKeyMap.Back) {
			return m, func() tea.Msg { return NavigateMsg{Target: "watchlist"} }
		}
	}

	return m, nil
}

// View renders the detail aggregate, a loading spinner, or the error,
// never a mix of partial data.
func (m DetailModel) View() string {
	style := lipgloss.NewStyle().Padding(1, 2)

	if m.loader.Loading() {
		return style.Render(m.spin.View() + " loading game details…")
	}
	if err := m.loader.Err(); err != nil {
		var b strings.Builder
		b.WriteString(tui.StyleError.Render(fmt.Sprintf("could not load details: %v", err.Err)))
		b.WriteString("\n\n")
		b.WriteString(tui.StyleHelp.Render("esc back"))
		return style.Render(b.String())
	}

	det := m.loader.Detail()
	if det == nil {
		return style.Render(tui.StyleHelp.Render("nothing loaded"))
	}

	symbol := m.deps.Cfg.CurrencySymbol()
	var b strings.Builder

	b.WriteString(tui.StyleHeader.Render(det.Game.Title))
	if det.Game.StoreURL != "" {
		b.WriteString("\n")
		b.WriteString(tui.StyleHelp.Render(det.Game.StoreURL))
	}
	b.WriteString("\n\n")

	if det.Metadata != nil && len(det.Metadata.Tags) > 0 {
		b.WriteString(tui.StyleStore.Render(strings.Join(det.Metadata.Tags, " · ")))
		b.WriteString("\n\n")
	}

	b.WriteString(tui.StyleHeader.Render("Current prices"))
	b.WriteString("\n")
	if len(det.CurrentPrices) == 0 {
		b.WriteString(tui.StyleHelp.Render("  no price data yet — try a refresh"))
		b.WriteString("\n")
	} else {
		for _, p := range det.CurrentPrices {
			line := fmt.Sprintf("  %-20s %10s", p.StoreName, fmt.Sprintf("%s%.2f", symbol, p.Price))
			if p.ListPrice != nil && *p.ListPrice > p.Price {
				line += tui.StyleHelp.Render(fmt.Sprintf("  (list %s%.2f)", symbol, *p.ListPrice))
			}
			line += tui.StyleHelp.Render("  " + util.Ago(p.Timestamp.Time))
			b.WriteString(tui.StyleNormal.Render(line))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(tui.StyleHeader.Render("Price history"))
	b.WriteString("\n")
	if !m.loader.HasHistory() {
		b.WriteString(tui.StyleHelp.Render("  not enough history yet"))
	} else {
		chartWidth := m.width - 6
		if chartWidth < 10 {
			chartWidth = 60
		}
		b.WriteString("  " + tui.Sparkline(det.History, chartWidth))
	}
	b.WriteString("\n")

	if det.Metadata != nil && det.Metadata.Description != "" {
		b.WriteString("\n")
		b.WriteString(tui.StyleHelp.Render(wrap(det.Metadata.Description, m.width-6)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.StyleHelp.Render("esc back · ctrl+c quit"))
	return style.Render(b.String())
}

// wrap does crude word wrapping for the description paragraph.
func wrap(s string, width int) string {
	if width < 20 {
		width = 72
	}
	words := strings.Fields(s)
	var b strings.Builder
	line := 0
	for i, w := range words {
		if line+len(w)+1 > width && line > 0 {
			b.WriteString("\n")
			line = 0
		} else if i > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(w)
		line += len(w)
	}
	return b.String()
}
