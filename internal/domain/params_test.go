package domain_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"svw.info/routegen/internal/domain"
)

func TestRandomParamsStayInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		p := domain.RandomParams(rng)
		assert.GreaterOrEqual(t, p.MinReach, 2)
		assert.LessOrEqual(t, p.MaxReach, 20)
		assert.Less(t, p.MinReach, p.MaxReach)
		assert.GreaterOrEqual(t, p.MinMoves, 2)
		assert.LessOrEqual(t, p.MaxMoves, 20)
		assert.Less(t, p.MinMoves, p.MaxMoves)
	}
}

func TestDefaultParams(t *testing.T) {
	p := domain.DefaultParams()
	assert.Equal(t, 2, p.MinReach)
	assert.Equal(t, 12, p.MaxReach)
	assert.Equal(t, 2, p.MinMoves)
	assert.Equal(t, 12, p.MaxMoves)
	assert.True(t, p.AllowTwoFinishes)
	assert.False(t, p.AllowDownwardOrSideways)
}

func TestHandLineAndMoveCount(t *testing.T) {
	r := domain.Route{Holds: []domain.PlacedHold{
		{Col: 10, Row: 10, Type: domain.RoleStart},
		{Col: 11, Row: 8, Type: domain.RoleFoot},
		{Col: 11, Row: 13, Type: domain.RoleHand},
		{Col: 12, Row: 11, Type: domain.RoleFoot},
		{Col: 10, Row: 16, Type: domain.RoleHand},
		{Col: 11, Row: 19, Type: domain.RoleFinish},
	}}
	line := r.HandLine()
	assert.Len(t, line, 4)
	for _, h := range line {
		assert.NotEqual(t, domain.RoleFoot, h.Type)
	}
	assert.Equal(t, 2, r.MoveCount())
}
