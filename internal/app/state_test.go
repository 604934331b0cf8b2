package app

import (
	"errors"
	"testing"

	"wandergenie/internal/modules/layout"
	"wandergenie/internal/modules/plan"
)

func twoDayPlan() *plan.TravelPlan {
	return &plan.TravelPlan{
		Destination: "Jaipur",
		Duration:    2,
		Currency:    "INR",
		Itinerary: []plan.DayItinerary{
			{Day: 1, Activities: []plan.Activity{{Name: "Amber Fort"}, {Name: "Jaigarh Fort"}}},
			{Day: 2, Activities: []plan.Activity{{Name: "City Palace"}, {Name: "Hawa Mahal"}}},
		},
	}
}

func withArt(nodes []layout.Node, url string) []layout.Node {
	out := make([]layout.Node, len(nodes))
	copy(out, nodes)
	for i := range out {
		u := url
		out[i].ImageURL = &u
	}
	return out
}

func TestState_Lifecycle(t *testing.T) {
	s := NewState(6)
	if got := s.Snapshot().Status; got != StatusIdle {
		t.Fatalf("initial status = %s", got)
	}
	if err := s.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if got := s.Snapshot().Status; got != StatusLoading {
		t.Fatalf("status after Begin = %s", got)
	}

	gen, base := s.SetPlan(twoDayPlan())
	if gen == 0 {
		t.Error("generation token should advance from zero")
	}
	if len(base) != 4 {
		t.Errorf("base nodes = %d, want 4", len(base))
	}
	snap := s.Snapshot()
	if snap.Status != StatusReady || snap.Plan == nil || snap.Plan.Destination != "Jaipur" {
		t.Errorf("snapshot after SetPlan = %#v", snap)
	}
	m := s.MapSnapshot()
	if len(m.Nodes) != 4 || m.Path == "" || !m.ArtPending {
		t.Errorf("map snapshot = %#v", m)
	}
}

// TestState_DoubleSubmit: a second Begin while loading is rejected.
func TestState_DoubleSubmit(t *testing.T) {
	s := NewState(6)
	if err := s.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := s.Begin(); !errors.Is(err, ErrRequestInFlight) {
		t.Errorf("second Begin: got %v, want ErrRequestInFlight", err)
	}
	// After a result lands, a new request is allowed again.
	s.SetPlan(twoDayPlan())
	if err := s.Begin(); err != nil {
		t.Errorf("Begin after ready: %v", err)
	}
}

// TestState_StaleArtDiscarded: a batch keyed to a superseded generation must
// never cross-write into the newer node list.
func TestState_StaleArtDiscarded(t *testing.T) {
	s := NewState(6)
	gen1, base1 := s.SetPlan(twoDayPlan())

	// The plan is replaced before the first art batch settles.
	gen2, _ := s.SetPlan(twoDayPlan())
	if gen2 == gen1 {
		t.Fatal("generation token did not advance")
	}

	if applied := s.CompleteArt(gen1, withArt(base1, "stale")); applied {
		t.Error("stale batch was applied")
	}
	for _, n := range s.MapSnapshot().Nodes {
		if n.ImageURL != nil {
			t.Errorf("stale art leaked into node %q", n.Name)
		}
	}
	if !s.MapSnapshot().ArtPending {
		t.Error("art should still be pending for the current generation")
	}

	if applied := s.CompleteArt(gen2, withArt(base1, "fresh")); !applied {
		t.Error("current batch was rejected")
	}
	m := s.MapSnapshot()
	if m.ArtPending {
		t.Error("art still pending after current batch applied")
	}
	for _, n := range m.Nodes {
		if n.ImageURL == nil || *n.ImageURL != "fresh" {
			t.Errorf("node %q art = %v, want fresh", n.Name, n.ImageURL)
		}
	}
}

// TestState_FailClearsPlan: failure replaces the plan with an error marker
// and invalidates any in-flight art batch.
func TestState_FailClearsPlan(t *testing.T) {
	s := NewState(6)
	gen, base := s.SetPlan(twoDayPlan())
	if err := s.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	s.Fail("Something went wrong while generating your plan. Please try again.")

	snap := s.Snapshot()
	if snap.Status != StatusFailed || snap.Plan != nil || snap.Error == "" {
		t.Errorf("snapshot after Fail = %#v", snap)
	}
	m := s.MapSnapshot()
	if len(m.Nodes) != 0 || m.Path != "" || m.ArtPending {
		t.Errorf("map snapshot after Fail = %#v", m)
	}
	if applied := s.CompleteArt(gen, withArt(base, "late")); applied {
		t.Error("art batch for a cleared plan was applied")
	}
}

func TestState_NodeCapRespected(t *testing.T) {
	s := NewState(3)
	_, base := s.SetPlan(twoDayPlan())
	if len(base) != 3 {
		t.Errorf("base nodes = %d, want 3 (configured cap)", len(base))
	}
}
