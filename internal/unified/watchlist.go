package unified

import (
	"context"
	"fmt"
	"strings"

	"github.com/dealwatch/dealwatch/internal/api"
	"github.com/dealwatch/dealwatch/internal/tui"
	"github.com/dealwatch/dealwatch/internal/util"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// watchlistReloadedMsg reports a store reload attempt
type watchlistReloadedMsg struct {
	err error
}

// WatchlistModel shows the tracked games as a table
type WatchlistModel struct {
	deps  Deps
	table table.Model

	// games mirrors the rows currently in the table, in row order, so a
	// selection maps back to a game id even while a reload is in flight.
	games []api.GameSummary

	loading       bool
	loadErr       error
	width, height int
}

var watchlistKeyMap = tui.NewStandardKeys()

// NewWatchlistModel creates the watchlist view
func NewWatchlistModel(deps Deps) WatchlistModel {
	columns := []table.Column{
		{Title: "Title", Width: 38},
		{Title: "Best", Width: 10},
		{Title: "Store", Width: 16},
		{Title: "Updated", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(tui.ColorGray).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(tui.ColorYellow).
		Bold(true)
	t.SetStyles(styles)

	m := WatchlistModel{
		deps:    deps,
		table:   t,
		loading: true,
	}
	m.rebuildRows()
	return m
}

// Init reloads the watchlist from the server
func (m WatchlistModel) Init() tea.Cmd {
	store := m.deps.Store
	return func() tea.Msg {
		return watchlistReloadedMsg{err: store.Reload(context.Background())}
	}
}

func (m *WatchlistModel) rebuildRows() {
	m.games = m.deps.Store.Games()

	symbol := m.deps.Cfg.CurrencySymbol()
	rows := make([]table.Row, len(m.games))
	for i, g := range m.games {
		updated := "—"
		if g.LastUpdated != nil && !g.LastUpdated.IsZero() {
			updated = util.Ago(g.LastUpdated.Time)
		}
		store := g.BestStore
		if store == "" {
			store = "—"
		}
		rows[i] = table.Row{
			g.Title,
			util.FormatPrice(symbol, g.BestPrice),
			store,
			updated,
		}
	}
	m.table.SetRows(rows)
}

// Update handles messages
func (m WatchlistModel) Update(msg tea.Msg) (WatchlistModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		tableHeight := msg.Height - 8
		if tableHeight < 4 {
			tableHeight = 4
		}
		m.table.SetHeight(tableHeight)
		return m, nil

	case watchlistReloadedMsg:
		m.loading = false
		m.loadErr = msg.err
		if msg.err == nil {
			// On failure the store retained its snapshot, so the table
			// keeps showing the previous rows.
			m.rebuildRows()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, func() tea.Msg { return QuitAppMsg{} }
		}
		switch {
		case key.Matches(msg, watchlistKeyMap.Back):
			return m, func() tea.Msg { return NavigateMsg{Target: "hub"} }

		case key.Matches(msg, watchlistKeyMap.Reload):
			m.loading = true
			m.loadErr = nil
			return m, m.Init()

		case key.Matches(msg, watchlistKeyMap.Select):
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.games) {
				return m, nil
			}
			id := m.games[idx].ID
			return m, func() tea.Msg { return NavigateMsg{Target: "detail", GameID: id} }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the watchlist table
func (m WatchlistModel) View() string {
	var b strings.Builder

	b.WriteString(tui.StyleHeader.Render("Watchlist"))
	if m.loading {
		b.WriteString(tui.StyleHelp.Render("  reloading…"))
	}
	b.WriteString("\n")

	if m.loadErr != nil {
		b.WriteString(tui.StyleError.Render(fmt.Sprintf("reload failed: %v", m.loadErr)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.games) == 0 && !m.loading {
		b.WriteString(tui.StyleHelp.Render("nothing tracked yet — add games from the search view"))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(tui.StyleHelp.Render("enter details · r reload · esc back"))

	style := lipgloss.NewStyle().Padding(1, 2)
	return style.Render(b.String())
}
