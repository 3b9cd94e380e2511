package sfbds_test

// graphEnv is a tiny explicit-graph environment for scenario tests:
// edges and heuristic values are spelled out per test. Heuristic defaults
// to 0 for unlisted pairs and is symmetrized, since pair-space lookups
// may present either orientation.
type graphEnv struct {
	succ map[string][]string
	cost map[[2]string]float64
	h    map[[2]string]float64
}

func newGraphEnv() *graphEnv {
	return &graphEnv{
		succ: make(map[string][]string),
		cost: make(map[[2]string]float64),
		h:    make(map[[2]string]float64),
	}
}

// edge registers an undirected edge of the given cost.
func (e *graphEnv) edge(a, b string, c float64) *graphEnv {
	e.arc(a, b, c)
	e.arc(b, a, c)
	return e
}

// arc registers a directed edge of the given cost.
func (e *graphEnv) arc(a, b string, c float64) *graphEnv {
	e.succ[a] = append(e.succ[a], b)
	e.cost[[2]string{a, b}] = c
	return e
}

// heur fixes h(a, b) in both orientations; unlisted pairs estimate 0.
func (e *graphEnv) heur(a, b string, v float64) *graphEnv {
	e.h[[2]string{a, b}] = v
	e.h[[2]string{b, a}] = v
	return e
}

func (e *graphEnv) Successors(s string) []string { return e.succ[s] }

func (e *graphEnv) EdgeCost(from, to string) float64 { return e.cost[[2]string{from, to}] }

func (e *graphEnv) Heuristic(from, to string) float64 {
	if from == to {
		return 0
	}
	return e.h[[2]string{from, to}]
}

func (e *graphEnv) IsGoal(s, goal string) bool { return s == goal }
