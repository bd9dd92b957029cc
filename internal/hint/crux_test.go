package hint_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/routegen/internal/board"
	"svw.info/routegen/internal/domain"
	"svw.info/routegen/internal/hint"
)

func mustBoard(t *testing.T, layout string) *board.Board {
	t.Helper()
	b, err := board.Load(strings.NewReader(layout))
	require.NoError(t, err)
	return b
}

func hold(col, row int, role domain.Role) domain.PlacedHold {
	return domain.PlacedHold{Col: col, Row: row, Type: role}
}

func TestCruxFlagsLongestMove(t *testing.T) {
	b := mustBoard(t, strings.Join([]string{
		"10 10 h u jug 0",
		"10 13 h u jug 0",
		"10 22 h u jug 0",
		"10 25 h u jug 0",
	}, "\n"))
	r := &domain.Route{Holds: []domain.PlacedHold{
		hold(10, 10, domain.RoleStart),
		hold(10, 13, domain.RoleHand),
		hold(10, 22, domain.RoleHand), // 9-unit reach, clearly the crux
		hold(10, 25, domain.RoleFinish),
	}}

	h, found, err := hint.NewCrux(b).Hint(context.Background(), r)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, h.Move)
	require.Len(t, h.Cells, 2)
	assert.Equal(t, 22, h.Cells[1].Row)
	assert.Contains(t, h.Message, "Crux")
}

func TestCruxWeighsHoldDifficulty(t *testing.T) {
	// Equal 3-unit moves; the one onto the difficulty-5 crimp wins.
	b := mustBoard(t, strings.Join([]string{
		"10 10 h u jug 0",
		"10 13 h u jug 0",
		"10 16 h u crimp 5",
		"10 19 h u jug 0",
	}, "\n"))
	r := &domain.Route{Holds: []domain.PlacedHold{
		hold(10, 10, domain.RoleStart),
		hold(10, 13, domain.RoleHand),
		hold(10, 16, domain.RoleHand),
		hold(10, 19, domain.RoleFinish),
	}}

	h, found, err := hint.NewCrux(b).Hint(context.Background(), r)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, h.Move)
	assert.Equal(t, 16, h.Cells[1].Row)
}

func TestCruxNeedsAtLeastOneMove(t *testing.T) {
	b := mustBoard(t, "10 10 h u jug 0\n")
	r := &domain.Route{Holds: []domain.PlacedHold{hold(10, 10, domain.RoleStart)}}

	_, found, err := hint.NewCrux(b).Hint(context.Background(), r)
	require.NoError(t, err)
	assert.False(t, found)
}
