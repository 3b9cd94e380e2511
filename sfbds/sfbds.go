package sfbds

import (
	"container/heap"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/tovenja/frontier/search"
)

// Search is one SFBDS engine instance. Construct with New, seed with
// Init (or use SearchAll), then drive with Step until a terminal status.
// The zero value is not usable.
type Search[S comparable] struct {
	env  search.Environment[S]
	opts Options
	log  logrus.FieldLogger
	rng  *rand.Rand

	start S
	goal  S

	open   pairHeap[S]
	closed map[pairKey[S]]pairNode[S]

	// Per-side best-g maps; consulted only under WithDominancePruning.
	distFromStart map[S]float64
	distFromGoal  map[S]float64

	// sanityF ratchets over popped f-costs; BPMX keeps pops
	// non-decreasing, so a drop marks a defective heuristic.
	sanityF float64

	initialized bool
	status      search.Status
	err         error
	path        []S
	cost        float64
	stats       Stats

	lastExpanded  S
	lastStartSide bool

	succScratch []pairNode[S]
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
	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}

	return &Search[S]{
		env:           env,
		opts:          cfg,
		log:           cfg.Logger,
		rng:           rand.New(rand.NewSource(seed)),
		closed:        make(map[pairKey[S]]pairNode[S]),
		distFromStart: make(map[S]float64),
		distFromGoal:  make(map[S]float64),
	}, nil
}

// Init seeds the engine with a (start, goal) problem and resets all
// state. It returns false when the problem is trivial or degenerate:
// start == goal yields the one-state path immediately, and a
// sentinel-invalid endpoint (when the environment exposes one) yields
// the empty path.
func (s *Search[S]) Init(start, goal S) bool {
	s.stats = Stats{}
	s.open = s.open[:0]
	clear(s.closed)
	clear(s.distFromStart)
	clear(s.distFromGoal)
	s.path = nil
	s.cost = 0
	s.err = nil
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
	root := pairNode[S]{s1: start, s2: goal, f: s.env.Heuristic(start, goal)}
	s.sanityF = root.f
	heap.Push(&s.open, root)

	return true
}

// Step pops pairs until one is eligible, expands its chosen side, runs
// the two BPMX passes, and pushes the successors. Once a terminal status
// or a fault is reached further calls return it unchanged.
func (s *Search[S]) Step() (search.Status, error) {
	if !s.initialized {
		return search.StatusExhausted, ErrNotInitialized
	}
	if s.err != nil || s.status != search.StatusInProgress {
		return s.status, s.err
	}

	var (
		q, old   pairNode[S]
		inClosed bool
	)
	for {
		if s.open.Len() == 0 {
			s.status = search.StatusExhausted
			s.path = nil
			return s.status, nil
		}
		q = heap.Pop(&s.open).(pairNode[S])
		s.stats.NodesPopped++

		if search.Greater(s.sanityF, q.f) {
			s.err = fmt.Errorf("%w: popped f-cost %v below watermark %v",
				ErrInvariantViolated, q.f, s.sanityF)
			return s.status, s.err
		}
		if search.Greater(q.f, s.sanityF) {
			s.sanityF = q.f
		}

		if q.s1 == q.s2 {
			return s.finish(q)
		}

		if s.opts.DominancePruning && s.pruneDominatedPop(q) {
			continue
		}

		old, inClosed = s.closedLookup(q.s1, q.s2)
		if inClosed && !search.Less(q.gTotal(), old.gTotal()) {
			s.stats.ClosedPrunes++
			continue
		}

		break
	}
	if inClosed {
		s.stats.NodesReopened++
	}

	expandStart := s.chooseSide(q)
	var from S
	if expandStart {
		from = q.s1
	} else {
		from = q.s2
	}
	neighbors := s.env.Successors(from)
	s.stats.NodesExpanded++
	s.lastExpanded, s.lastStartSide = from, expandStart
	s.log.WithFields(logrus.Fields{
		"s1": q.s1, "s2": q.s2, "g1": q.g1, "g2": q.g2, "f": q.f,
		"side": sideName(expandStart),
	}).Debug("expanding pair")

	// The pair's h, maximized against a prior closed entry on reopen and
	// then against h_child - edge over all successors (BPMX pass one).
	maxRootH := q.h()
	if inClosed && search.Greater(old.h(), maxRootH) {
		maxRootH = old.h()
	}

	succs := s.succScratch[:0]
	for _, nb := range neighbors {
		s.stats.SuccessorsTouched++

		var (
			succ    pairNode[S]
			transit float64
		)
		if expandStart {
			transit = s.env.EdgeCost(q.s1, nb)
			succ = pairNode[S]{
				s1:         nb,
				s2:         q.s2,
				p1:         q.s1,
				p2:         q.p2,
				comingFrom: updateComingFrom(q.comingFrom, true),
				g1:         q.g1 + transit,
				g2:         q.g2,
			}
		} else {
			transit = s.env.EdgeCost(q.s2, nb)
			succ = pairNode[S]{
				s1:         q.s1,
				s2:         nb,
				p1:         q.p1,
				p2:         q.s2,
				comingFrom: updateComingFrom(q.comingFrom, false),
				g1:         q.g1,
				g2:         q.g2 + transit,
			}
		}

		if s.opts.DominancePruning && s.pruneDominatedSuccessor(succ, expandStart) {
			continue
		}
		if e, ok := s.closedLookup(succ.s1, succ.s2); ok && !search.Less(succ.gTotal(), e.gTotal()) {
			continue
		}

		h := s.env.Heuristic(succ.s1, succ.s2)
		succ.f = succ.gTotal() + h
		succs = append(succs, succ)

		if search.Greater(h-transit, maxRootH) {
			maxRootH = h - transit
		}
	}

	if search.Less(q.f, q.gTotal()+maxRootH) {
		q.f = q.gTotal() + maxRootH
		s.stats.BPMXUpdates++
	}
	if inClosed {
		s.closedErase(old.s1, old.s2)
	}
	s.closed[pairKey[S]{q.s1, q.s2}] = q

	// BPMX pass two: lift weak successors to h_parent - edge, then push.
	for i := range succs {
		transit := succs[i].gTotal() - q.gTotal()
		if h := succs[i].h(); search.Less(h, maxRootH-transit) {
			s.stats.BPMXUpdates++
			succs[i].f = succs[i].gTotal() + maxRootH - transit
		}
		heap.Push(&s.open, succs[i])
	}
	s.succScratch = succs[:0]

	return s.status, nil
}

// finish handles a popped terminal pair: record the cost, trace the path.
func (s *Search[S]) finish(q pairNode[S]) (search.Status, error) {
	path, err := s.traceBack(q)
	if err != nil {
		s.err = err
		return s.status, s.err
	}
	s.path = path
	s.cost = q.gTotal()
	s.status = search.StatusSucceeded

	return s.status, nil
}

// pruneDominatedPop discards a popped pair whose projection to either
// side is worse than a previously recorded g to the same state.
func (s *Search[S]) pruneDominatedPop(q pairNode[S]) bool {
	if d, ok := s.distFromStart[q.s1]; ok && search.Less(d, q.g1) {
		s.stats.DistancePrunes++
		return true
	}
	s.distFromStart[q.s1] = q.g1
	if d, ok := s.distFromGoal[q.s2]; ok && search.Less(d, q.g2) {
		s.stats.DistancePrunes++
		return true
	}
	s.distFromGoal[q.s2] = q.g2

	return false
}

// pruneDominatedSuccessor is the successor-side counterpart of
// pruneDominatedPop, applied to the freshly advanced coordinate.
func (s *Search[S]) pruneDominatedSuccessor(succ pairNode[S], expandStart bool) bool {
	if expandStart {
		if d, ok := s.distFromStart[succ.s1]; ok && search.Less(d, succ.g1) {
			s.stats.DistanceSuccessorPrunes++
			return true
		}
		s.distFromStart[succ.s1] = succ.g1
		return false
	}
	if d, ok := s.distFromGoal[succ.s2]; ok && search.Less(d, succ.g2) {
		s.stats.DistanceSuccessorPrunes++
		return true
	}
	s.distFromGoal[succ.s2] = succ.g2

	return false
}

// closedLookup probes the unordered pair {a, b} in the closed map.
func (s *Search[S]) closedLookup(a, b S) (pairNode[S], bool) {
	if e, ok := s.closed[pairKey[S]{a, b}]; ok {
		return e, true
	}
	if e, ok := s.closed[pairKey[S]{b, a}]; ok {
		return e, true
	}
	var zero pairNode[S]

	return zero, false
}

// closedErase removes the unordered pair {a, b} in either orientation.
func (s *Search[S]) closedErase(a, b S) {
	delete(s.closed, pairKey[S]{a, b})
	delete(s.closed, pairKey[S]{b, a})
}

// traceBack reconstructs the solution from a terminal pair by following
// the parent dictated by each ancestor's coming-from bits: appending to
// the tail when the goal side was expanded, prepending to the head when
// the start side was, re-resolving the shrunken pair in closed after
// each step. It also counts the side switches that appear in the path.
func (s *Search[S]) traceBack(q pairNode[S]) ([]S, error) {
	if q.s1 != q.s2 {
		return nil, fmt.Errorf("%w: traceback requires a terminal pair", ErrInvariantViolated)
	}

	s.stats.JumpsInSolution = 0
	coming := q.comingFrom & sideGoalBit
	path := []S{q.s1}

	for q.comingFrom&maskParents != 0 {
		if q.comingFrom&sideGoalBit != coming {
			coming = q.comingFrom & sideGoalBit
			s.stats.JumpsInSolution++
		}

		if q.comingFrom&sideGoalBit != 0 {
			path = append(path, q.p2)
			q.s2 = q.p2
		} else {
			path = append([]S{q.p1}, path...)
			q.s1 = q.p1
		}

		e, ok := s.closedLookup(q.s1, q.s2)
		if !ok {
			return nil, fmt.Errorf("%w: missing ancestor pair in traceback", ErrInvariantViolated)
		}
		q = e
	}

	// The root pair carries no parent bits; if the walk ended while still
	// on the goal side, that final switch is part of the solution too.
	if coming != 0 {
		s.stats.JumpsInSolution++
	}

	return path, nil
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

// Cost returns g1 + g2 of the terminal pair (0 until success).
func (s *Search[S]) Cost() float64 { return s.cost }

// Status returns the current search status.
func (s *Search[S]) Status() search.Status { return s.status }

// Stats returns the counters of the current run.
func (s *Search[S]) Stats() Stats { return s.stats }

// LastExpanded returns the state whose successors were enumerated by the
// most recent expansion and whether it was the start-side coordinate.
func (s *Search[S]) LastExpanded() (S, bool) {
	return s.lastExpanded, s.lastStartSide
}

func sideName(startSide bool) string {
	if startSide {
		return "start"
	}
	return "goal"
}
