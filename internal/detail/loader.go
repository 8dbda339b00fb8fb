// Package detail manages the request lifecycle for one game's detail
// aggregate. Aggregation is server-side; the loader's job is to bind
// exactly one in-flight request to the requested id and discard late
// responses after the user has navigated elsewhere.
package detail

import (
	"fmt"
	"sync"

	"github.com/dealwatch/dealwatch/internal/api"
)

// LoadError is a failed detail fetch for a specific game.
type LoadError struct {
	ID  int
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading detail for game %d: %v", e.ID, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader tracks loading/error/success for detail fetches. Either the
// full aggregate is available or an error is, never a partial mix and
// never data belonging to a previously requested id.
type Loader struct {
	mu sync.Mutex

	seq     uint64
	id      int // id belonging to seq
	loading bool

	detail *api.GameDetail
	err    *LoadError
}

// NewLoader creates an empty loader. Detail views create a fresh loader
// per mount; aggregates are never carried across views.
func NewLoader() *Loader {
	return &Loader{}
}

// Begin registers a fetch for the given id, superseding any fetch still
// in flight, and returns its sequence number. Any previously held
// aggregate or error is discarded immediately so a view can never show
// another id's data while the new fetch runs.
func (l *Loader) Begin(id int) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	l.id = id
	l.loading = true
	l.detail = nil
	l.err = nil
	return l.seq
}

// Finish applies a completed fetch. Stale completions (a later Begin
// has run) are dropped; Finish reports whether it was applied.
func (l *Loader) Finish(seq uint64, d *api.GameDetail, err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		return false
	}
	l.loading = false
	if err != nil {
		l.detail = nil
		l.err = &LoadError{ID: l.id, Err: err}
		return true
	}
	l.detail = d
	l.err = nil
	return true
}

// Loading reports whether a fetch is in flight.
func (l *Loader) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Detail returns the loaded aggregate, or nil while loading or after a
// failure.
func (l *Loader) Detail() *api.GameDetail {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.detail
}

// Err returns the terminal error state, or nil.
func (l *Loader) Err() *LoadError {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// ID returns the most recently requested game id.
func (l *Loader) ID() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.id
}

// HasHistory reports whether the loaded aggregate carries any history
// points. Views use it to show an "not enough history" notice instead
// of a chart.
func (l *Loader) HasHistory() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.detail != nil && len(l.detail.History) > 0
}
