package watchlist_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dealwatch/dealwatch/internal/api"
	"github.com/dealwatch/dealwatch/internal/watchlist"
)

// fakeService is an in-memory stand-in for the remote service.
type fakeService struct {
	mu        sync.Mutex
	games     []api.GameSummary
	listErr   error
	addErr    error
	listCalls int
	addCalls  []string

	// blockAdd, when set, makes AddGame signal on started and wait for
	// release, holding an add in flight.
	blockAdd bool
	started  chan struct{}
	release  chan struct{}

	// blockList does the same for the next ListGames call. The response
	// snapshot is taken when the call arrives, so a held call answers
	// with the watchlist as it was at issue time.
	blockList   bool
	listStarted chan struct{}
	listRelease chan struct{}
}

func (f *fakeService) ListGames(ctx context.Context) ([]api.GameSummary, error) {
	f.mu.Lock()
	f.listCalls++
	err := f.listErr
	out := make([]api.GameSummary, len(f.games))
	copy(out, f.games)
	block := f.blockList
	f.blockList = false
	f.mu.Unlock()

	if block {
		f.listStarted <- struct{}{}
		<-f.listRelease
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (f *fakeService) AddGame(ctx context.Context, apiGameID string) (*api.GameSummary, error) {
	f.mu.Lock()
	block := f.blockAdd
	f.mu.Unlock()
	if block {
		f.started <- struct{}{}
		<-f.release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.addCalls = append(f.addCalls, apiGameID)
	if f.addErr != nil {
		return nil, f.addErr
	}
	g := api.GameSummary{ID: len(f.games) + 1, APIGameID: apiGameID, Title: apiGameID}
	f.games = append(f.games, g)
	return &g, nil
}

func (f *fakeService) listCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func TestReload_PopulatesMembership(t *testing.T) {
	svc := &fakeService{games: []api.GameSummary{
		{ID: 1, APIGameID: "p1", Title: "Portal"},
		{ID: 2, APIGameID: "hl2", Title: "Half-Life 2"},
	}}
	store := watchlist.New(svc)

	if store.IsTracked("p1") {
		t.Error("nothing should be tracked before the first reload")
	}
	if err := store.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if !store.IsTracked("p1") || !store.IsTracked("hl2") {
		t.Error("reloaded entries should be tracked")
	}
	if store.IsTracked("doom") {
		t.Error("doom was never added")
	}
	if store.Len() != 2 {
		t.Errorf("Len = %d, want 2", store.Len())
	}
}

func TestReload_ReplacesWholesale(t *testing.T) {
	svc := &fakeService{games: []api.GameSummary{{ID: 1, APIGameID: "p1", Title: "Portal"}}}
	store := watchlist.New(svc)
	if err := store.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	// Server-side the entry disappears; the next reload must drop it.
	svc.mu.Lock()
	svc.games = []api.GameSummary{{ID: 2, APIGameID: "hl2", Title: "Half-Life 2"}}
	svc.mu.Unlock()

	if err := store.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if store.IsTracked("p1") {
		t.Error("p1 should no longer be tracked after the reload that excludes it")
	}
	if !store.IsTracked("hl2") {
		t.Error("hl2 should be tracked")
	}
}

func TestReload_FailureRetainsSnapshot(t *testing.T) {
	svc := &fakeService{games: []api.GameSummary{{ID: 1, APIGameID: "p1", Title: "Portal"}}}
	store := watchlist.New(svc)
	if err := store.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	svc.mu.Lock()
	svc.listErr = errors.New("boom")
	svc.mu.Unlock()

	if err := store.Reload(context.Background()); err == nil {
		t.Fatal("expected reload error")
	}
	// Previous snapshot stays visible, never silently cleared.
	if !store.IsTracked("p1") {
		t.Error("failed reload must not clear membership")
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
}

// Reloads overlap freely in the TUI (hub status check, watchlist
// refresh, add follow-ups run as separate goroutines). A reload issued
// before an add completes may resolve after it; its pre-add snapshot
// must never replace the newer one and un-track the added game.
func TestReload_StaleResponseDoesNotOverwriteNewerSnapshot(t *testing.T) {
	svc := &fakeService{
		blockList:   true,
		listStarted: make(chan struct{}),
		listRelease: make(chan struct{}),
	}
	store := watchlist.New(svc)

	done := make(chan error, 1)
	go func() {
		done <- store.Reload(context.Background())
	}()

	// Wait until the first reload is held in flight with an empty
	// watchlist snapshot.
	select {
	case <-svc.listStarted:
	case <-time.After(time.Second):
		t.Fatal("first reload never reached the service")
	}

	// The add and its follow-up reload complete while the older reload
	// is still outstanding.
	if err := store.Add(context.Background(), "p1"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !store.IsTracked("p1") {
		t.Fatal("p1 should be tracked when Add returns")
	}

	// The older-issued reload finally lands. Its snapshot predates the
	// add and must be dropped, not swapped in.
	close(svc.listRelease)
	if err := <-done; err != nil {
		t.Fatalf("superseded reload: %v", err)
	}
	if !store.IsTracked("p1") {
		t.Error("stale reload must not overwrite the newer snapshot")
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
}

func TestByID(t *testing.T) {
	svc := &fakeService{games: []api.GameSummary{{ID: 4, APIGameID: "p1", Title: "Portal"}}}
	store := watchlist.New(svc)
	if err := store.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if g := store.ByID(4); g == nil || g.Title != "Portal" {
		t.Errorf("ByID(4) = %+v, want Portal", g)
	}
	if g := store.ByID(99); g != nil {
		t.Errorf("ByID(99) = %+v, want nil", g)
	}
}
