// Package search drives one catalog search at a time. Responses may
// complete out of issue order; the session tags every search with a
// monotonically increasing sequence number and only the most recently
// issued search may ever update the visible result set.
package search

import (
	"errors"
	"strings"
	"sync"

	"github.com/dealwatch/dealwatch/internal/api"
)

// ErrEmptyQuery is returned for empty or whitespace-only queries, which
// are rejected locally and never reach the network.
var ErrEmptyQuery = errors.New("empty search query")

// Session reconciles overlapping search requests.
type Session struct {
	mu sync.Mutex

	seq     uint64 // most recently issued sequence number
	pending string // query belonging to seq

	query     string // query the visible results belong to
	results   []api.SearchResult
	err       error
	searching bool
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// Begin validates and registers a new search, superseding any search
// still in flight. It returns the issued sequence number and the
// trimmed query to send to the service.
func (s *Session) Begin(query string) (uint64, string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, "", ErrEmptyQuery
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.pending = query
	s.searching = true
	s.err = nil
	return s.seq, query, nil
}

// Finish applies a completed search. Completions whose sequence number
// is not the most recently issued are stale and dropped, whatever their
// outcome; Finish reports whether the completion was applied.
//
// An applied success replaces the result set wholesale. An applied
// failure retains the previous results and sets the error state, so the
// caller can keep showing what it had alongside the error.
func (s *Session) Finish(seq uint64, results []api.SearchResult, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return false
	}
	s.searching = false
	if err != nil {
		s.err = err
		return true
	}
	s.query = s.pending
	s.results = results
	s.err = nil
	return true
}

// Results returns the visible result set.
func (s *Session) Results() []api.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// Query returns the query the visible results belong to.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Err returns the current error state, cleared by the next Begin.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Searching reports whether the most recently issued search is still in
// flight.
func (s *Session) Searching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searching
}
