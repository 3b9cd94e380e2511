package sfbds

import "github.com/tovenja/frontier/search"

// chooseSide decides which endpoint of q to expand: true ⇒ s1 (start
// side), false ⇒ s2 (goal side). Modes 2, 4 and 5 read bit 2 of
// comingFrom to recover the prior direction; with no prior expansion a
// tie defaults to the start side. Mode 3 ignores the prior direction.
//
// A decision that switches sides relative to the prior direction counts
// one jump; decisions taken by the keep-direction shortcuts do not reach
// the jump accounting.
func (s *Search[S]) chooseSide(q pairNode[S]) bool {
	var result bool

	switch s.opts.Mode {
	case SideStart:
		return true

	case SideGoal:
		return false

	case SideSmallerBranching:
		numStart := len(s.env.Successors(q.s1))
		numGoal := len(s.env.Successors(q.s2))
		if numStart == numGoal && q.comingFrom&maskParents != 0 {
			return q.comingFrom&sideGoalBit == 0
		}
		result = numStart <= numGoal

	case SideRandomBranching:
		numStart := len(s.env.Successors(q.s1))
		numGoal := len(s.env.Successors(q.s2))
		result = s.rng.Float64()*float64(numStart+numGoal) < float64(numStart)

	case SideHigherAverageH:
		hStart := s.averageH(q.s1, q.s2)
		hGoal := s.averageH(q.s2, q.s1)
		if search.Eq(hStart, hGoal) && q.comingFrom&maskParents != 0 {
			return q.comingFrom&sideGoalBit == 0
		}
		result = hStart >= hGoal

	case SideJumpOnDegreeTwo:
		numStart := len(s.env.Successors(q.s1))
		numGoal := len(s.env.Successors(q.s2))
		switch {
		case numStart == 2 && numGoal == 2:
			result = q.comingFrom&sideGoalBit != 0
		case numStart == 2:
			result = false
		case numGoal == 2:
			result = true
		default:
			return q.comingFrom&sideGoalBit == 0
		}

	default:
		return true
	}

	if q.comingFrom&maskParents != 0 && (q.comingFrom&sideGoalBit != 0) == result {
		s.stats.Jumps++
	}

	return result
}

// averageH returns the mean heuristic from the successors of from to the
// opposite endpoint, or 0 when from has no successors.
func (s *Search[S]) averageH(from, opposite S) float64 {
	succs := s.env.Successors(from)
	if len(succs) == 0 {
		return 0
	}
	var sum float64
	for _, sc := range succs {
		sum += s.env.Heuristic(sc, opposite)
	}

	return sum / float64(len(succs))
}
