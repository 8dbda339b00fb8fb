package unified

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dealwatch/dealwatch/internal/api"
	"github.com/dealwatch/dealwatch/internal/search"
	"github.com/dealwatch/dealwatch/internal/tui"
	"github.com/dealwatch/dealwatch/internal/tui/delegate"
	"github.com/dealwatch/dealwatch/internal/util"
	"github.com/dealwatch/dealwatch/internal/watchlist"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// searchDoneMsg carries a completed remote search together with the
// sequence number it was issued under.
type searchDoneMsg struct {
	seq     uint64
	results []api.SearchResult
	err     error
}

// addDoneMsg reports an add-to-watchlist attempt
type addDoneMsg struct {
	apiGameID string
	err       error
}

// resultItem wraps a search hit for the result list. Membership is NOT
// stored here; it is derived from the watchlist store at render time,
// so a reload flips every card at once.
type resultItem struct {
	result api.SearchResult
}

func (r resultItem) FilterValue() string {
	return r.result.Title
}

// SearchModel is the search view: query input on top, result cards below
type SearchModel struct {
	deps    Deps
	session *search.Session

	input textinput.Model
	list  list.Model

	inputFocused  bool
	status        string
	width, height int
}

var searchKeyMap = tui.NewStandardKeys()

// NewSearchModel creates the search view
func NewSearchModel(deps Deps) SearchModel {
	ti := textinput.New()
	ti.Placeholder = "search for a game…"
	ti.CharLimit = 120
	ti.Width = 46
	ti.Focus()

	store := deps.Store
	symbol := deps.Cfg.CurrencySymbol()
	render := func(w io.Writer, m list.Model, index int, item list.Item) {
		renderResultItem(w, m, index, item, store, symbol)
	}

	l := list.New(nil, delegate.New(render), 60, 12)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	return SearchModel{
		deps:         deps,
		session:      search.NewSession(),
		input:        ti,
		list:         l,
		inputFocused: true,
	}
}

func renderResultItem(w io.Writer, m list.Model, index int, item list.Item, store *watchlist.Store, symbol string) {
	it, ok := item.(resultItem)
	if !ok {
		return
	}

	price := tui.StyleHelp.Render("price unknown")
	if it.result.CheapestPrice != nil {
		price = tui.StylePrice.Render("from " + util.FormatPrice(symbol, it.result.CheapestPrice))
	}

	marker := tui.StyleHelp.Render("  add")
	if store.IsTracked(it.result.APIGameID) {
		marker = tui.StyleTracked.Render("  ✓ in watchlist")
	}

	display := fmt.Sprintf("%-40s %s%s", truncate(it.result.Title, 40), price, marker)
	if index == m.Index() {
		_, _ = fmt.Fprint(w, tui.StyleHighlight.Render("› "+display))
	} else {
		_, _ = fmt.Fprint(w, "  "+tui.StyleNormal.Render(display))
	}
}

// truncate shortens a title to the given display width, ellipsizing
// without splitting runes. Widths are cell counts, not bytes, so CJK
// titles truncate where they render, not where they encode.
func truncate(s string, n int) string {
	return runewidth.Truncate(s, n, "…")
}

// Init focuses the query input
func (m SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// searchCmd runs one remote search for the given issued sequence number
func (m SearchModel) searchCmd(seq uint64, query string) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		results, err := client.Search(context.Background(), query)
		return searchDoneMsg{seq: seq, results: results, err: err}
	}
}

// addCmd runs one idempotent add; the store reloads itself on success
func (m SearchModel) addCmd(apiGameID string) tea.Cmd {
	store := m.deps.Store
	return func() tea.Msg {
		err := store.Add(context.Background(), apiGameID)
		return addDoneMsg{apiGameID: apiGameID, err: err}
	}
}

// Update handles messages
func (m SearchModel) Update(msg tea.Msg) (SearchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := msg.Height - 9
		if listHeight < 4 {
			listHeight = 4
		}
		m.list.SetSize(msg.Width-4, listHeight)
		return m, nil

	case searchDoneMsg:
		// Stale completions (a newer search was issued) are dropped here.
		if !m.session.Finish(msg.seq, msg.results, msg.err) {
			return m, nil
		}
		if msg.err == nil {
			m.setResults(m.session.Results())
			if len(msg.results) > 0 {
				m.inputFocused = false
			}
		}
		return m, nil

	case addDoneMsg:
		if msg.err != nil {
			m.status = tui.StyleError.Render(fmt.Sprintf("could not add %s: %v — press enter to retry", msg.apiGameID, msg.err))
		} else {
			m.status = tui.StyleTracked.Render("✓ added to watchlist")
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, func() tea.Msg { return QuitAppMsg{} }
		}

		if m.inputFocused {
			switch msg.String() {
			case "esc":
				return m, func() tea.Msg { return NavigateMsg{Target: "hub"} }
			case "enter":
				seq, query, err := m.session.Begin(m.input.Value())
				if err != nil {
					// Rejected locally; nothing goes out.
					m.status = tui.StyleHelp.Render("type something to search")
					return m, nil
				}
				m.status = ""
				return m, m.searchCmd(seq, query)
			case "down", "tab":
				if len(m.list.Items()) > 0 {
					m.inputFocused = false
					m.input.Blur()
					return m, nil
				}
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, searchKeyMap.Back):
			m.inputFocused = true
			return m, m.input.Focus()

		case key.Matches(msg, searchKeyMap.Add):
			item, ok := m.list.SelectedItem().(resultItem)
			if !ok {
				return m, nil
			}
			if m.deps.Store.IsTracked(item.result.APIGameID) {
				// Affordance is disabled once tracked.
				m.status = tui.StyleHelp.Render("already in watchlist")
				return m, nil
			}
			m.status = tui.StyleHelp.Render("adding " + item.result.Title + "…")
			return m, m.addCmd(item.result.APIGameID)

		default:
			if msg.String() == "/" {
				m.inputFocused = true
				return m, m.input.Focus()
			}
		}
	}

	var cmd tea.Cmd
	if m.inputFocused {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m *SearchModel) setResults(results []api.SearchResult) {
	items := make([]list.Item, len(results))
	for i, r := range results {
		items[i] = resultItem{result: r}
	}
	m.list.SetItems(items)
	m.list.ResetSelected()
}

// View renders the search view
func (m SearchModel) View() string {
	var b strings.Builder

	b.WriteString(tui.StyleHeader.Render("Search Catalog"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if err := m.session.Err(); err != nil {
		// Prior results (if any) stay on screen under the banner.
		b.WriteString(tui.StyleError.Render(fmt.Sprintf("search failed: %v", err)))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.session.Searching():
		b.WriteString(tui.StyleHelp.Render("searching…"))
	case len(m.list.Items()) == 0:
		b.WriteString(tui.StyleHelp.Render("find a game to start tracking prices"))
	default:
		b.WriteString(m.list.View())
	}

	b.WriteString("\n\n")
	b.WriteString(tui.StyleHelp.Render("enter add · / edit query · esc back · ctrl+c quit"))

	style := lipgloss.NewStyle().Padding(1, 2)
	return style.Render(b.String())
}
