package unified

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dealwatch/dealwatch/internal/api"
	"github.com/dealwatch/dealwatch/internal/tui"
	"github.com/dealwatch/dealwatch/internal/tui/delegate"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuItem represents an action in the hub menu
type MenuItem struct {
	Key         string
	Label       string
	Description string
}

// FilterValue implements list.Item
func (m MenuItem) FilterValue() string {
	return m.Label + " " + m.Description
}

var menuItems = []MenuItem{
	{Key: "search", Label: "Search Catalog", Description: "Find games and add them to your watchlist"},
	{Key: "watchlist", Label: "Watchlist", Description: "Tracked games with their best prices"},
	{Key: "refresh", Label: "Refresh Prices", Description: "Ask the server to re-poll every store"},
	{Key: "quit", Label: "Quit", Description: "Exit dealwatch"},
}

// hubStatusMsg reports the initial watchlist load and server health check
type hubStatusMsg struct {
	healthy bool
	tracked int
	err     error
}

// hubRefreshDoneMsg reports a bulk price refresh
type hubRefreshDoneMsg struct {
	summary *api.RefreshSummary
	err     error
}

// HubModel is the entry menu with server status
type HubModel struct {
	deps Deps
	list list.Model

	width, height int
	loading       bool
	refreshing    bool
	healthy       bool
	statusErr     error
	refreshNote   string
}

var hubKeyMap = tui.NewStandardKeys()

// renderMenuItem renders a menu item in the hub
func renderMenuItem(w io.Writer, m list.Model, index int, item list.Item) {
	menuItem, ok := item.(MenuItem)
	if !ok {
		return
	}

	display := fmt.Sprintf("%-18s %s", menuItem.Label, tui.StyleHelp.Render(menuItem.Description))
	if index == m.Index() {
		_, _ = fmt.Fprint(w, tui.StyleHighlight.Render("› "+display))
	} else {
		_, _ = fmt.Fprint(w, "  "+tui.StyleNormal.Render(display))
	}
}

// NewHubModel creates the hub view
func NewHubModel(deps Deps) HubModel {
	items := make([]list.Item, len(menuItems))
	for i, it := range menuItems {
		items[i] = it
	}

	l := list.New(items, delegate.New(renderMenuItem), 60, len(menuItems)+2)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	return HubModel{
		deps:    deps,
		list:    l,
		loading: true,
	}
}

// Init kicks off the watchlist load and health check
func (m HubModel) Init() tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx := context.Background()
		healthErr := deps.Client.Health(ctx)
		reloadErr := deps.Store.Reload(ctx)

		msg := hubStatusMsg{
			healthy: healthErr == nil,
			tracked: deps.Store.Len(),
		}
		if reloadErr != nil {
			msg.err = reloadErr
		} else if healthErr != nil {
			msg.err = healthErr
		}
		return msg
	}
}

func (m HubModel) refreshCmd() tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		summary, err := deps.Client.RefreshPrices(context.Background())
		if err == nil {
			// Pick up the refreshed best prices right away.
			_ = deps.Store.Reload(context.Background())
		}
		return hubRefreshDoneMsg{summary: summary, err: err}
	}
}

// Update handles messages
func (m HubModel) Update(msg tea.Msg) (HubModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case hubStatusMsg:
		m.loading = false
		m.healthy = msg.healthy
		m.statusErr = msg.err
		return m, nil

	case hubRefreshDoneMsg:
		m.refreshing = false
		if msg.err != nil {
			m.refreshNote = tui.StyleError.Render(fmt.Sprintf("refresh failed: %v", msg.err))
		} else {
			m.refreshNote = tui.StyleTracked.Render(fmt.Sprintf(
				"refreshed %d games, %d new snapshots",
				msg.summary.GamesProcessed, msg.summary.SnapshotsInserted))
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		// Backing out of the hub is quitting; there is nowhere further up.
		case key.Matches(msg, hubKeyMap.Quit), key.Matches(msg, hubKeyMap.Back):
			return m, func() tea.Msg { return QuitAppMsg{} }

		case key.Matches(msg, hubKeyMap.Select):
			item, ok := m.list.SelectedItem().(MenuItem)
			if !ok {
				return m, nil
			}
			switch item.Key {
			case "quit":
				return m, func() tea.Msg { return QuitAppMsg{} }
			case "refresh":
				if m.refreshing {
					return m, nil
				}
				m.refreshing = true
				m.refreshNote = ""
				return m, m.refreshCmd()
			default:
				return m, func() tea.Msg { return NavigateMsg{Target: item.Key} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the hub
func (m HubModel) View() string {
	var b strings.Builder

	b.WriteString(tui.StyleHeader.Render("dealwatch"))
	b.WriteString(tui.StyleHelp.Render("  " + m.deps.Client.BaseURL()))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(tui.StyleHelp.Render("checking server…"))
	case m.statusErr != nil:
		b.WriteString(tui.StyleError.Render(fmt.Sprintf("server trouble: %v", m.statusErr)))
	default:
		b.WriteString(tui.StyleTracked.Render("● online"))
		b.WriteString(tui.StyleHelp.Render(fmt.Sprintf("  %d tracked", m.deps.Store.Len())))
	}
	b.WriteString("\n")

	if m.refreshing {
		b.WriteString(tui.StyleHelp.Render("refreshing prices…"))
		b.WriteString("\n")
	} else if m.refreshNote != "" {
		b.WriteString(m.refreshNote)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(tui.StyleHelp.Render("enter select · q quit"))

	style := lipgloss.NewStyle().Padding(1, 2)
	return style.Render(b.String())
}
