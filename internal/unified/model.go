package unified

import (
	"github.com/dealwatch/dealwatch/internal/api"
	"github.com/dealwatch/dealwatch/internal/config"
	"github.com/dealwatch/dealwatch/internal/watchlist"
	tea "github.com/charmbracelet/bubbletea"
)

// View represents the current active view
type View string

const (
	ViewHub       View = "hub"
	ViewSearch    View = "search"
	ViewWatchlist View = "watchlist"
	ViewDetail    View = "detail"
)

// Deps bundles what every view needs: the remote client, the config,
// and the one shared watchlist store. There is exactly one store, so
// membership checks across views all read the same snapshot.
type Deps struct {
	Client *api.Client
	Cfg    *config.Config
	Store  *watchlist.Store
}

// Model is the unified TUI orchestrator that manages view switching
type Model struct {
	deps        Deps
	currentView View
	width       int
	height      int

	// View models
	hub    HubModel
	search SearchModel
	watch  WatchlistModel
	detail DetailModel
}

// New creates a new unified model starting at the hub
func New(deps Deps) Model {
	return Model{
		deps:        deps,
		currentView: ViewHub,
		hub:         NewHubModel(deps),
	}
}

func (m Model) Init() tea.Cmd {
	return m.hub.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.updateCurrentView(msg)

	case NavigateMsg:
		return m.handleNavigation(msg)

	case QuitAppMsg:
		return m, tea.Quit

	default:
		return m.updateCurrentView(msg)
	}
}

func (m Model) View() string {
	switch m.currentView {
	case ViewHub:
		return m.hub.View()
	case ViewSearch:
		return m.search.View()
	case ViewWatchlist:
		return m.watch.View()
	case ViewDetail:
		return m.detail.View()
	default:
		return "Unknown view"
	}
}

func (m Model) updateCurrentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewHub:
		m.hub, cmd = m.hub.Update(msg)
	case ViewSearch:
		m.search, cmd = m.search.Update(msg)
	case ViewWatchlist:
		m.watch, cmd = m.watch.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	}

	return m, cmd
}

func (m Model) handleNavigation(msg NavigateMsg) (tea.Model, tea.Cmd) {
	size := tea.WindowSizeMsg{Width: m.width, Height: m.height}

	switch msg.Target {
	case "search":
		m.currentView = ViewSearch
		m.search = NewSearchModel(m.deps)
		init := m.search.Init()
		m.search, _ = m.search.Update(size)
		return m, init

	case "watchlist":
		m.currentView = ViewWatchlist
		m.watch = NewWatchlistModel(m.deps)
		init := m.watch.Init()
		m.watch, _ = m.watch.Update(size)
		return m, init

	case "detail":
		// A fresh loader per mount: aggregates never leak across views.
		m.currentView = ViewDetail
		m.detail = NewDetailModel(m.deps, msg.GameID)
		init := m.detail.Init()
		m.detail, _ = m.detail.Update(size)
		return m, init

	case "hub":
		m.currentView = ViewHub
		m.hub = NewHubModel(m.deps)
		init := m.hub.Init()
		m.hub, _ = m.hub.Update(size)
		return m, init

	default:
		// Unknown target, stay on current view
		return m, nil
	}
}
