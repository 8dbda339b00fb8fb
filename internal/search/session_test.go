package search_test

import (
	"errors"
	"testing"

	"github.com/dealwatch/dealwatch/internal/api"
	"github.com/dealwatch/dealwatch/internal/search"
)

func results(titles ...string) []api.SearchResult {
	out := make([]api.SearchResult, len(titles))
	for i, title := range titles {
		out[i] = api.SearchResult{APIGameID: title, Title: title}
	}
	return out
}

func TestBegin_RejectsEmptyQuery(t *testing.T) {
	s := search.NewSession()
	for _, q := range []string{"", "   ", "\t\n"} {
		if _, _, err := s.Begin(q); !errors.Is(err, search.ErrEmptyQuery) {
			t.Errorf("Begin(%q) = %v, want ErrEmptyQuery", q, err)
		}
	}
	if s.Searching() {
		t.Error("a rejected query must not leave the session searching")
	}
}

func TestBegin_TrimsQuery(t *testing.T) {
	s := search.NewSession()
	_, query, err := s.Begin("  portal  ")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if query != "portal" {
		t.Errorf("query = %q, want %q", query, "portal")
	}
}

func TestFinish_AppliesLatest(t *testing.T) {
	s := search.NewSession()
	seq, _, _ := s.Begin("portal")
	if !s.Finish(seq, results("Portal"), nil) {
		t.Fatal("completion for the latest search should apply")
	}
	if got := s.Results(); len(got) != 1 || got[0].Title != "Portal" {
		t.Errorf("Results = %+v", got)
	}
	if s.Query() != "portal" {
		t.Errorf("Query = %q, want %q", s.Query(), "portal")
	}
	if s.Searching() {
		t.Error("session should be idle after a finished search")
	}
}

// The key ordering property: q1 issued, q2 issued, q2's response arrives
// first: the visible set reflects q2, and q1's late response never
// overwrites it.
func TestFinish_LateResponseOfSupersededSearchIsDropped(t *testing.T) {
	s := search.NewSession()
	seq1, _, _ := s.Begin("portal")
	seq2, _, _ := s.Begin("doom")

	if !s.Finish(seq2, results("Doom", "Doom II"), nil) {
		t.Fatal("latest search should apply")
	}
	if s.Finish(seq1, results("Portal"), nil) {
		t.Error("superseded search must be dropped")
	}

	got := s.Results()
	if len(got) != 2 || got[0].Title != "Doom" {
		t.Errorf("visible results = %+v, want doom's", got)
	}
	if s.Query() != "doom" {
		t.Errorf("Query = %q, want %q", s.Query(), "doom")
	}
}

func TestFinish_StaleFailureIsDroppedToo(t *testing.T) {
	s := search.NewSession()
	seq1, _, _ := s.Begin("portal")
	seq2, _, _ := s.Begin("doom")

	if s.Finish(seq1, nil, errors.New("boom")) {
		t.Error("a stale failure must not surface")
	}
	if s.Err() != nil {
		t.Errorf("Err = %v, want nil", s.Err())
	}
	if !s.Finish(seq2, results("Doom"), nil) {
		t.Fatal("latest search should still apply")
	}
}

// Failure policy: an applied failure retains the previous result set and
// sets the error state.
func TestFinish_FailureRetainsPreviousResults(t *testing.T) {
	s := search.NewSession()
	seq, _, _ := s.Begin("portal")
	s.Finish(seq, results("Portal"), nil)

	seq2, _, _ := s.Begin("doom")
	boom := errors.New("boom")
	if !s.Finish(seq2, nil, boom) {
		t.Fatal("latest failure should apply")
	}
	if !errors.Is(s.Err(), boom) {
		t.Errorf("Err = %v, want boom", s.Err())
	}
	if got := s.Results(); len(got) != 1 || got[0].Title != "Portal" {
		t.Errorf("previous results should be retained, got %+v", got)
	}
	// The retained results still belong to the old query, and the
	// session says so.
	if s.Query() != "portal" {
		t.Errorf("Query = %q, want %q", s.Query(), "portal")
	}
}

func TestBegin_ClearsErrorState(t *testing.T) {
	s := search.NewSession()
	seq, _, _ := s.Begin("portal")
	s.Finish(seq, nil, errors.New("boom"))

	if _, _, err := s.Begin("doom"); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if s.Err() != nil {
		t.Error("a new search clears the previous error state")
	}
	if !s.Searching() {
		t.Error("session should be searching after Begin")
	}
}
