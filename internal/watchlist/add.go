package watchlist

import (
	"context"
	"errors"
	"fmt"
)

// ErrAddInFlight is returned when an add for the same catalog id is
// still running in this session.
var ErrAddInFlight = errors.New("add already in progress")

// AddError is a failed add-to-watchlist operation. It carries the
// originating catalog id so the caller can offer a retry.
type AddError struct {
	APIGameID string
	Err       error
}

func (e *AddError) Error() string {
	return fmt.Sprintf("adding %q to watchlist: %v", e.APIGameID, e.Err)
}

func (e *AddError) Unwrap() error {
	return e.Err
}

// Add tracks a new game. Already-tracked ids are a no-op. On success the
// watchlist is reloaded before Add returns, so membership reflects the
// new entry by the time any dependent state updates; on failure
// membership is left untouched.
func (s *Store) Add(ctx context.Context, apiGameID string) error {
	s.mu.Lock()
	if _, tracked := s.index[apiGameID]; tracked {
		s.mu.Unlock()
		return nil
	}
	if _, running := s.inflight[apiGameID]; running {
		s.mu.Unlock()
		return &AddError{APIGameID: apiGameID, Err: ErrAddInFlight}
	}
	s.inflight[apiGameID] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, apiGameID)
		s.mu.Unlock()
	}()

	if _, err := s.svc.AddGame(ctx, apiGameID); err != nil {
		return &AddError{APIGameID: apiGameID, Err: err}
	}

	// The add is not complete until membership reflects it.
	if err := s.Reload(ctx); err != nil {
		return &AddError{APIGameID: apiGameID, Err: err}
	}
	return nil
}
