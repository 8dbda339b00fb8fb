package watchlist

import (
	"context"
	"fmt"
	"sync"

	"github.com/dealwatch/dealwatch/internal/api"
)

// Service is the slice of the remote client the store depends on.
type Service interface {
	ListGames(ctx context.Context) ([]api.GameSummary, error)
	AddGame(ctx context.Context, apiGameID string) (*api.GameSummary, error)
}

// Store is the in-memory reflection of the user's watchlist. It is the
// single source of truth for membership: every consumer reads the same
// snapshot, and the snapshot is only ever replaced wholesale by Reload.
//
// Bubbletea commands run on their own goroutines, so the store is safe
// for concurrent use. Readers always see either the previous complete
// snapshot or the new one, never a partial replacement.
type Store struct {
	svc Service

	mu        sync.Mutex
	reloadSeq uint64 // most recently issued reload
	games     []api.GameSummary
	index     map[string]struct{} // by APIGameID
	loaded    bool
	inflight  map[string]struct{} // adds in progress, by APIGameID
}

// New creates an empty store backed by the given service client.
func New(svc Service) *Store {
	return &Store{
		svc:      svc,
		inflight: make(map[string]struct{}),
	}
}

// Reload fetches the full watchlist and swaps it in atomically. On
// failure the previous snapshot is retained untouched, never cleared.
//
// Reloads may overlap and complete out of issue order. Each carries an
// issuance sequence number; only the most recently issued reload may
// swap its snapshot in, so a slow response from an older reload never
// overwrites a newer one. A superseded reload is dropped and returns
// nil, the latest reload's outcome decides the visible state.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	s.reloadSeq++
	seq := s.reloadSeq
	s.mu.Unlock()

	games, err := s.svc.ListGames(ctx)
	if err != nil {
		return fmt.Errorf("reloading watchlist: %w", err)
	}

	index := make(map[string]struct{}, len(games))
	for _, g := range games {
		index[g.APIGameID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.reloadSeq {
		return nil
	}
	s.games = games
	s.index = index
	s.loaded = true
	return nil
}

// IsTracked reports whether a catalog id appears in the current
// snapshot. Membership is derived, never cached apart from the snapshot.
func (s *Store) IsTracked(apiGameID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.index[apiGameID]
	return ok
}

// Games returns the current snapshot. Callers must treat it as
// read-only; it is replaced, not mutated, by the next Reload.
func (s *Store) Games() []api.GameSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.games
}

// ByID returns the tracked game with the given service-assigned id, or nil.
func (s *Store) ByID(id int) *api.GameSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.games {
		if s.games[i].ID == id {
			g := s.games[i]
			return &g
		}
	}
	return nil
}

// Len returns the number of tracked games.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.games)
}

// Loaded reports whether at least one Reload has succeeded.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}
