// Package delegate provides a minimal list.ItemDelegate built around a
// single render function, for list views that only customize item
// rendering.
package delegate

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one list item.
// It receives the writer, list model, item index, and the item itself.
type RenderFunc func(w io.Writer, m list.Model, index int, item list.Item)

// Base is a one-line, zero-spacing delegate with a pluggable renderer.
type Base struct {
	renderFn RenderFunc
}

// New creates a delegate with the given render function.
func New(renderFn RenderFunc) Base {
	return Base{renderFn: renderFn}
}

// Height implements list.ItemDelegate
func (d Base) Height() int { return 1 }

// Spacing implements list.ItemDelegate
func (d Base) Spacing() int { return 0 }

// Update implements list.ItemDelegate; item-level update logic is not
// needed here.
func (d Base) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

// Render implements list.ItemDelegate
func (d Base) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if d.renderFn != nil {
		d.renderFn(w, m, index, item)
	}
}
