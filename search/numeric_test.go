package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tovenja/frontier/search"
)

func TestNumeric_StrictOrdering(t *testing.T) {
	assert.True(t, search.Less(1.0, 2.0), "1 < 2")
	assert.False(t, search.Less(2.0, 1.0), "2 !< 1")
	assert.True(t, search.Greater(2.0, 1.0), "2 > 1")
	assert.False(t, search.Greater(1.0, 2.0), "1 !> 2")
}

func TestNumeric_ToleranceAbsorbsFloatNoise(t *testing.T) {
	// 0.1+0.2 != 0.3 in binary floating point; Eq must absorb the noise.
	a := 0.1 + 0.2
	assert.True(t, search.Eq(a, 0.3), "tolerant equality")
	assert.False(t, search.Less(a, 0.3), "not tolerantly less")
	assert.False(t, search.Greater(a, 0.3), "not tolerantly greater")
}

func TestNumeric_EqIsNegationOfBoth(t *testing.T) {
	pairs := [][2]float64{{0, 0}, {1, 1 + 1e-12}, {3.5, 2.5}, {-1, 1}}
	for _, p := range pairs {
		eq := search.Eq(p[0], p[1])
		assert.Equal(t, !search.Less(p[0], p[1]) && !search.Greater(p[0], p[1]), eq,
			"Eq(%v,%v) must be the negation of Less and Greater", p[0], p[1])
	}
}
