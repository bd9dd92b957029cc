package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"svw.info/routegen/internal/geom"
)

func TestDistance(t *testing.T) {
	cases := []struct {
		name                   string
		aCol, aRow, bCol, bRow int
		want                   float64
	}{
		{"same point", 5, 5, 5, 5, 0},
		{"horizontal", 1, 1, 4, 1, 3},
		{"vertical", 10, 2, 10, 9, 7},
		{"pythagorean", 0, 0, 3, 4, 5},
		{"symmetric", 3, 4, 0, 0, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, geom.Distance(tc.aCol, tc.aRow, tc.bCol, tc.bRow), 1e-9)
		})
	}
}

func TestReachableBoundaries(t *testing.T) {
	// (0,0) -> (3,4) is exactly 5 away.
	assert.True(t, geom.Reachable(0, 0, 3, 4, 2, 5), "distance equal to maxReach must be accepted")
	assert.False(t, geom.Reachable(0, 0, 3, 4, 2, 4.999), "distance above maxReach must be rejected")
	assert.True(t, geom.Reachable(0, 0, 3, 4, 5, 10), "distance equal to minReach must be accepted")
	assert.False(t, geom.Reachable(0, 0, 3, 4, 5.001, 10), "distance below minReach must be rejected")
}

func TestUpward(t *testing.T) {
	assert.True(t, geom.Upward(3, 4))
	assert.False(t, geom.Upward(4, 4), "same row is not upward")
	assert.False(t, geom.Upward(5, 4))
}

func TestHorizontalSide(t *testing.T) {
	assert.Equal(t, geom.Left, geom.HorizontalSide(10, 8))
	assert.Equal(t, geom.Right, geom.HorizontalSide(10, 12))
	assert.Equal(t, geom.Neutral, geom.HorizontalSide(10, 10))
}
