package sfbds_test

import (
	"testing"

	"github.com/tovenja/frontier/gridworld"
	"github.com/tovenja/frontier/search"
	"github.com/tovenja/frontier/sfbds"
)

// BenchmarkSearchAll_Modes measures a corner-to-corner search across an
// unobstructed 48×48 map for each side-selection mode.
func BenchmarkSearchAll_Modes(b *testing.B) {
	world, err := gridworld.NewOpen(48, 48, gridworld.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	start := gridworld.Cell{X: 0, Y: 0}
	goal := gridworld.Cell{X: 47, Y: 47}

	for _, bc := range []struct {
		name string
		mode sfbds.SideMode
	}{
		{"start", sfbds.SideStart},
		{"goal", sfbds.SideGoal},
		{"branching", sfbds.SideSmallerBranching},
		{"degree2", sfbds.SideJumpOnDegreeTwo},
	} {
		b.Run(bc.name, func(b *testing.B) {
			eng, err := sfbds.New[gridworld.Cell](world, sfbds.WithSideMode(bc.mode))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, st, err := eng.SearchAll(start, goal)
				if err != nil {
					b.Fatal(err)
				}
				if st != search.StatusSucceeded {
					b.Fatalf("unexpected status %v", st)
				}
			}
		})
	}
}
