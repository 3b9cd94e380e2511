package delaystar

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/tovenja/frontier/search"
)

// Search is one A*-with-Delay engine instance. Construct with New, seed
// with Init (or use SearchAll), then drive with Step until a terminal
// status. The zero value is not usable.
//
// A Search may be re-seeded with Init any number of times; each Init
// fully resets the frontiers, counters and the reopen alternation bit.
type Search[S comparable] struct {
	env  search.Environment[S]
	opts Options
	log  logrus.FieldLogger

	start S
	goal  S

	open       *search.Heap[S] // keyed by f, ties toward larger g
	fQueue     *search.Heap[S] // keyed by g; holds nodes with f < threshold
	delayQueue *search.Heap[S] // keyed by g; holds improved ex-closed nodes
	closed     map[S]search.Node[S]

	// threshold is F: the largest f-cost ever drawn from open. It never
	// decreases across steps.
	threshold float64
	canReopen bool

	initialized bool
	status      search.Status
	path        []S
	cost        float64
	stats       Stats
}

// New constructs an engine over env. Returns ErrNilEnvironment when env
// is nil.
func New[S comparable](env search.Environment[S], opts ...Option) (*Search[S], error) {
	if env == nil {
		return nil, ErrNilEnvironment
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Search[S]{
		env:        env,
		opts:       cfg,
		log:        cfg.Logger,
		open:       search.NewHeap(search.ByF[S]),
		fQueue:     search.NewHeap(search.ByG[S]),
		delayQueue: search.NewHeap(search.ByG[S]),
		closed:     make(map[S]search.Node[S]),
	}, nil
}

// Init seeds the engine with a (start, goal) problem and resets all
// frontiers, counters and the reopen bit. It returns false when the
// problem is trivial or degenerate: start == goal yields the one-state
// path immediately, and a sentinel-invalid endpoint (when the
// environment exposes one) yields the empty path. In both cases the
// engine is already in a terminal state and Step is a no-op.
func (s *Search[S]) Init(start, goal S) bool {
	s.stats = Stats{}
	s.open.Reset()
	s.fQueue.Reset()
	s.delayQueue.Reset()
	clear(s.closed)
	s.threshold = 0
	s.canReopen = false
	s.path = nil
	s.cost = 0
	s.initialized = true
	s.start, s.goal = start, goal

	if inv, ok := s.env.(search.InvalidStater[S]); ok {
		if bad := inv.InvalidState(); start == bad || goal == bad {
			s.status = search.StatusSucceeded
			return false
		}
	}
	if start == goal {
		s.status = search.StatusSucceeded
		s.path = []S{start}
		return false
	}

	s.status = search.StatusInProgress
	s.open.Push(search.NewNode(s.env.Heuristic(start, goal), 0, start, start))

	return true
}

// Step advances the search by one expansion. It selects the next node
// from the three active frontiers under the canReopen alternation rule,
// expands it, and reports the resulting status. Once a terminal status
// is reached further calls return it unchanged.
func (s *Search[S]) Step() (search.Status, error) {
	if !s.initialized {
		return search.StatusExhausted, ErrNotInitialized
	}
	if s.status != search.StatusInProgress {
		return s.status, nil
	}

	var top search.Node[S]
	switch {
	case s.canReopen && s.delayQueue.Len() > 0 && s.fQueue.Len() > 0:
		// Both reopened and low-f work available: take the smaller g.
		dTop, _ := s.delayQueue.Peek()
		fTop, _ := s.fQueue.Peek()
		if search.Less(dTop.G, fTop.G) {
			top = s.delayQueue.Pop()
			s.canReopen = false
			s.stats.NodesReopened++
		} else {
			top = s.fQueue.Pop()
			s.canReopen = true
		}
	case s.canReopen && s.delayQueue.Len() > 0:
		top = s.delayQueue.Pop()
		s.canReopen = false
		s.stats.NodesReopened++
	case s.fQueue.Len() > 0:
		top = s.fQueue.Pop()
		s.canReopen = true
	case s.open.Len() > 0:
		// Pop first, then advance the threshold to the popped f-cost.
		// The threshold only ratchets upward: a g-improvement may have
		// dragged this node's f below F since insertion.
		top = s.open.Pop()
		s.canReopen = true
		if search.Greater(top.F, s.threshold) {
			s.threshold = top.F
			s.log.WithField("F", top.F).Debug("threshold advanced")
		}
	default:
		s.status = search.StatusExhausted
		s.path = nil
		return s.status, nil
	}

	return s.expand(top), nil
}

// expand runs the expansion body on the selected node: goal test,
// successor updates, pathmax at the parent, closed insertion.
func (s *Search[S]) expand(top search.Node[S]) search.Status {
	if s.env.IsGoal(top.State, s.goal) {
		s.closed[top.State] = top
		s.path = s.extractPath(top.State)
		s.cost = top.G
		s.status = search.StatusSucceeded
		return s.status
	}

	s.stats.NodesExpanded++
	s.log.WithFields(logrus.Fields{
		"state": top.State, "g": top.G, "h": top.H(), "f": top.F,
	}).Debug("expanding node")

	minCost := math.Inf(1)
	for _, nb := range s.env.Successors(top.State) {
		s.stats.NodesTouched++
		if c := s.handleNeighbor(nb, top); search.Less(c, minCost) {
			minCost = c
		}
	}

	// Pathmax at the parent: h may not undercut the best edge + child h.
	if search.Less(top.H(), minCost) {
		top.F = top.G + minCost
	}
	s.closed[top.State] = top

	return s.status
}

// handleNeighbor dispatches one successor on its frontier membership and
// returns edge cost + the neighbour's (possibly updated) heuristic, the
// contribution tracked for the parent pathmax rule.
func (s *Search[S]) handleNeighbor(nb S, top search.Node[S]) float64 {
	if n, ok := s.open.Find(nb); ok {
		return s.improveQueued(s.open, n, top)
	}
	if n, ok := s.closed[nb]; ok {
		return s.updateClosed(n, top)
	}
	if n, ok := s.delayQueue.Find(nb); ok {
		return s.improveQueued(s.delayQueue, n, top)
	}
	if n, ok := s.fQueue.Find(nb); ok {
		return s.improveQueued(s.fQueue, n, top)
	}

	return s.addNew(nb, top)
}

// improveQueued applies a g-improvement to a node sitting in any of the
// three queues: f shifts by the g delta, the parent is rewritten, and
// the queue re-orders via decrease-key.
func (s *Search[S]) improveQueued(q *search.Heap[S], n, top search.Node[S]) float64 {
	edge := s.env.EdgeCost(top.State, n.State)
	if search.Less(top.G+edge, n.G) {
		n.F -= n.G
		n.G = top.G + edge
		n.F += n.G
		n.Parent = top.State
		q.Update(n)
	}

	return edge + n.F - n.G
}

// updateClosed handles a successor found in the closed map. A g-improved
// node migrates to the delay queue (with pathmax applied when the parent
// carries the stronger heuristic); otherwise a stronger parent heuristic
// still rewrites the child's h in place.
func (s *Search[S]) updateClosed(n, top search.Node[S]) float64 {
	edge := s.env.EdgeCost(top.State, n.State)
	switch {
	case search.Less(top.G+edge, n.G):
		if search.Greater(top.H(), n.H()) {
			// Pathmax: child h becomes parent h - edge.
			n.G = top.G + edge
			n.F = top.H() - edge + n.G
		} else {
			h := n.H()
			n.G = top.G + edge
			n.F = h + n.G
		}
		n.Parent = top.State
		delete(s.closed, n.State)
		s.delayQueue.Push(n)
		s.log.WithFields(logrus.Fields{
			"state": n.State, "g": n.G, "f": n.F,
		}).Debug("moving node from closed to delay queue")
	case search.Greater(top.H(), n.H()):
		n.F = top.H() - edge + n.G
		s.closed[n.State] = n
	}

	return edge + n.F - n.G
}

// addNew creates a node for an unseen state and routes it to fQueue when
// its f falls strictly below the current threshold, else to open.
func (s *Search[S]) addNew(nb S, top search.Node[S]) float64 {
	edge := s.env.EdgeCost(top.State, nb)
	g := top.G + edge
	h := s.env.Heuristic(nb, s.goal)
	n := search.NewNode(g+h, g, nb, top.State)
	if search.Less(n.F, s.threshold) {
		s.fQueue.Push(n)
	} else {
		s.open.Push(n)
	}

	return edge + h
}

// extractPath walks backpointers through closed from the goal node to the
// self-referencing root and returns the path in start→goal order.
func (s *Search[S]) extractPath(goalState S) []S {
	var rev []S
	n, ok := s.closed[goalState]
	for ok {
		rev = append(rev, n.State)
		if n.IsRoot() {
			break
		}
		n, ok = s.closed[n.Parent]
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// SearchAll runs the search to termination and returns the path (possibly
// empty) together with the terminal status.
func (s *Search[S]) SearchAll(start, goal S) ([]S, search.Status, error) {
	if !s.Init(start, goal) {
		return s.path, s.status, nil
	}
	for {
		st, err := s.Step()
		if err != nil {
			return nil, st, err
		}
		if st != search.StatusInProgress {
			return s.path, st, nil
		}
	}
}

// Path returns the reconstructed start→goal path, or nil when no path
// has been found yet.
func (s *Search[S]) Path() []S { return s.path }

// Cost returns the g-cost of the found path (0 until success).
func (s *Search[S]) Cost() float64 { return s.cost }

// Status returns the current search status.
func (s *Search[S]) Status() search.Status { return s.status }

// Stats returns the expansion counters of the current run.
func (s *Search[S]) Stats() Stats { return s.stats }

// Threshold returns F, the monotonically non-decreasing f-threshold: the
// largest f-cost drawn from the open queue so far.
func (s *Search[S]) Threshold() float64 { return s.threshold }
