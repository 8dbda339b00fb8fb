package watchlist_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dealwatch/dealwatch/internal/watchlist"
)

func TestAdd_TracksAfterReload(t *testing.T) {
	svc := &fakeService{}
	store := watchlist.New(svc)
	if err := store.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	before := svc.listCount()

	if err := store.Add(context.Background(), "p1"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	// The add is only complete once the follow-up reload resolved.
	if svc.listCount() != before+1 {
		t.Errorf("expected exactly one reload during Add, got %d", svc.listCount()-before)
	}
	if !store.IsTracked("p1") {
		t.Error("p1 should be tracked when Add returns")
	}
}

func TestAdd_AlreadyTrackedIsNoop(t *testing.T) {
	svc := &fakeService{}
	store := watchlist.New(svc)
	if err := store.Add(context.Background(), "p1"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	calls := len(svc.addCalls)
	if err := store.Add(context.Background(), "p1"); err != nil {
		t.Fatalf("second Add: %v", err)
	}
	if len(svc.addCalls) != calls {
		t.Error("adding a tracked id must not hit the service again")
	}
}

func TestAdd_FailureCarriesCatalogID(t *testing.T) {
	svc := &fakeService{addErr: errors.New("boom")}
	store := watchlist.New(svc)

	err := store.Add(context.Background(), "p1")
	var addErr *watchlist.AddError
	if !errors.As(err, &addErr) {
		t.Fatalf("expected *AddError, got %v", err)
	}
	if addErr.APIGameID != "p1" {
		t.Errorf("APIGameID = %q, want %q", addErr.APIGameID, "p1")
	}
	// Membership untouched on failure.
	if store.IsTracked("p1") {
		t.Error("failed add must not mutate membership")
	}
}

func TestAdd_ReloadFailureReportsAsAddError(t *testing.T) {
	svc := &fakeService{}
	store := watchlist.New(svc)

	// The creation succeeds but the follow-up reload fails: the add is
	// not complete, and the caller hears about it.
	reloadBoom := errors.New("list boom")
	svc.mu.Lock()
	svc.listErr = reloadBoom
	svc.mu.Unlock()

	err := store.Add(context.Background(), "p1")
	var addErr *watchlist.AddError
	if !errors.As(err, &addErr) {
		t.Fatalf("expected *AddError, got %v", err)
	}
	if !errors.Is(err, reloadBoom) {
		t.Errorf("AddError should wrap the reload failure, got %v", err)
	}
	if store.IsTracked("p1") {
		t.Error("membership must not reflect an incomplete add")
	}
}

func TestAdd_SameIDConcurrentlyIsRejected(t *testing.T) {
	svc := &fakeService{
		blockAdd: true,
		started:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	store := watchlist.New(svc)

	done := make(chan error, 1)
	go func() {
		done <- store.Add(context.Background(), "p1")
	}()

	// Wait until the first add is held in flight inside the service.
	select {
	case <-svc.started:
	case <-time.After(time.Second):
		t.Fatal("first add never reached the service")
	}

	err := store.Add(context.Background(), "p1")
	if !errors.Is(err, watchlist.ErrAddInFlight) {
		t.Errorf("expected ErrAddInFlight for the overlapping add, got %v", err)
	}

	close(svc.release)
	if err := <-done; err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if !store.IsTracked("p1") {
		t.Error("first add should have completed")
	}
}
