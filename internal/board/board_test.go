package board_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/routegen/internal/board"
	"svw.info/routegen/internal/domain"
)

func mustLoad(t *testing.T, layout string) *board.Board {
	t.Helper()
	b, err := board.Load(strings.NewReader(layout))
	require.NoError(t, err)
	return b
}

func TestLoadValidLayout(t *testing.T) {
	b := mustLoad(t, `
# comment and blank lines are skipped

10 12 h u jug 0
11 12 f
12 12 n
13 13 h l crimp 5
`)

	h, err := b.Lookup(10, 12)
	require.NoError(t, err)
	assert.Equal(t, domain.KindHand, h.Kind)
	assert.Equal(t, domain.DirUp, h.Direction)
	assert.Equal(t, domain.GripJug, h.Grip)
	assert.Equal(t, 0, h.BaseDifficulty)

	f, err := b.Lookup(11, 12)
	require.NoError(t, err)
	assert.Equal(t, domain.KindFoot, f.Kind)

	n, err := b.Lookup(12, 12)
	require.NoError(t, err)
	assert.Equal(t, domain.KindNone, n.Kind)

	// Cells absent from the layout read as none.
	empty, err := b.Lookup(1, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.KindNone, empty.Kind)

	assert.Len(t, b.HandHolds(), 2)
	assert.Len(t, b.HandHoldsInRows(12, 12), 1)
}

func TestLoadRejectsMalformedLines(t *testing.T) {
	cases := []struct {
		name   string
		layout string
	}{
		{"too few fields", "10 12"},
		{"column not a number", "x 12 h u jug 0"},
		{"column out of range", "36 12 h u jug 0"},
		{"row out of range", "10 0 h u jug 0"},
		{"unknown type", "10 12 z"},
		{"hand missing attributes", "10 12 h"},
		{"hand missing grip", "10 12 h u"},
		{"unknown direction", "10 12 h x jug 0"},
		{"unknown grip", "10 12 h u fist 0"},
		{"difficulty out of range", "10 12 h u jug 6"},
		{"difficulty not a number", "10 12 h u jug x"},
		{"foot with attributes", "10 12 f u"},
		{"duplicate position", "10 12 f\n10 12 h u jug 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := board.Load(strings.NewReader(tc.layout))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrLayout)
			var layoutErr *domain.LayoutError
			assert.True(t, errors.As(err, &layoutErr))
		})
	}
}

func TestLookupOutOfBounds(t *testing.T) {
	b := mustLoad(t, "10 12 f")
	for _, pos := range [][2]int{{0, 5}, {5, 0}, {36, 5}, {5, 36}, {-1, -1}} {
		_, err := b.Lookup(pos[0], pos[1])
		assert.ErrorIs(t, err, domain.ErrOutOfBounds, "lookup(%d,%d)", pos[0], pos[1])
	}
}

func TestBaseDifficulty(t *testing.T) {
	b := mustLoad(t, "10 12 h u sloper 3\n11 12 f")

	d, ok := b.BaseDifficulty(10, 12)
	assert.True(t, ok)
	assert.Equal(t, 3, d)

	_, ok = b.BaseDifficulty(11, 12)
	assert.False(t, ok, "foot holds carry no difficulty")
	_, ok = b.BaseDifficulty(1, 1)
	assert.False(t, ok)
}

func TestFootCandidatesAndNearestFeet(t *testing.T) {
	b := mustLoad(t, `
10 5 f
12 6 f
10 8 f
20 5 f
11 7 h u jug 1
`)
	cands := b.FootCandidates(8, 8, 14)
	assert.Len(t, cands, 3, "feet strictly below row 8 inside cols 8..14, hand holds count as feet")

	feet := b.NearestFeet(11, 9, 8, 8, 14, 2)
	require.Len(t, feet, 2)
	// (11,7) is the closest candidate, then (12,6).
	assert.Equal(t, 11, feet[0].Col)
	assert.Equal(t, 7, feet[0].Row)
	assert.Equal(t, 12, feet[1].Col)
}
