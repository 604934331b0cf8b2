// README: Single current-plan state container with stale art-batch discard.
package app

import (
	"errors"
	"sync"

	"wandergenie/internal/modules/layout"
	"wandergenie/internal/modules/plan"
)

// Status is the presentation state machine: idle -> loading -> ready/failed.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// ErrRequestInFlight rejects a second generation while one is outstanding.
var ErrRequestInFlight = errors.New("a plan request is already in flight")

// State owns the single current TravelPlan and its derived map nodes. Both
// are replaced wholesale, never patched: the node list is a cache keyed by
// the identity of its plan, and the art generation counter gates write-backs
// so a superseded illustration batch can never cross-write into a newer plan.
type State struct {
	mu       sync.RWMutex
	status   Status
	plan     *plan.TravelPlan
	nodes    []layout.Node
	pathData string
	errMsg   string

	artGen     uint64
	artPending bool
	maxNodes   int
}

func NewState(maxNodes int) *State {
	if maxNodes <= 0 {
		maxNodes = layout.DefaultMaxNodes
	}
	return &State{status: StatusIdle, maxNodes: maxNodes}
}

// Begin moves the state machine to loading, failing if a request is already
// outstanding.
func (s *State) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusLoading {
		return ErrRequestInFlight
	}
	s.status = StatusLoading
	s.errMsg = ""
	return nil
}

// SetPlan swaps in a freshly validated plan, recomputes the layout wholesale
// and opens a new art generation. It returns the generation token and the
// base nodes the illustration fan-out must be keyed on.
func (s *State) SetPlan(p *plan.TravelPlan) (uint64, []layout.Node) {
	nodes := layout.Nodes(p.Itinerary, s.maxNodes)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusReady
	s.plan = p
	s.nodes = nodes
	s.pathData = layout.PathData(nodes)
	s.errMsg = ""
	s.artGen++
	s.artPending = len(nodes) > 0

	base := make([]layout.Node, len(nodes))
	copy(base, nodes)
	return s.artGen, base
}

// CompleteArt writes back an illustrated node batch. A batch from a
// superseded generation is discarded; it reports whether the batch was applied.
func (s *State) CompleteArt(gen uint64, nodes []layout.Node) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.artGen {
		return false
	}
	s.nodes = nodes
	s.artPending = false
	return true
}

// Fail clears the current plan and records a user-facing error marker. The
// art generation advances so any in-flight batch for the cleared plan is
// discarded on arrival.
func (s *State) Fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusFailed
	s.plan = nil
	s.nodes = nil
	s.pathData = ""
	s.errMsg = msg
	s.artGen++
	s.artPending = false
}

type Snapshot struct {
	Status Status           `json:"status"`
	Plan   *plan.TravelPlan `json:"plan,omitempty"`
	Error  string           `json:"error,omitempty"`
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Status: s.status, Plan: s.plan, Error: s.errMsg}
}

type MapSnapshot struct {
	Nodes      []layout.Node `json:"nodes"`
	Path       string        `json:"path"`
	ArtPending bool          `json:"artPending"`
}

func (s *State) MapSnapshot() MapSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nodes := make([]layout.Node, len(s.nodes))
	copy(nodes, s.nodes)
	return MapSnapshot{Nodes: nodes, Path: s.pathData, ArtPending: s.artPending}
}
