package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/routegen/internal/domain"
	"svw.info/routegen/internal/validator"
)

func hold(col, row int, role domain.Role) domain.PlacedHold {
	return domain.PlacedHold{Col: col, Row: row, Type: role}
}

func TestValidateAcceptsConformingRoute(t *testing.T) {
	r := &domain.Route{Holds: []domain.PlacedHold{
		hold(10, 10, domain.RoleStart),
		hold(11, 8, domain.RoleFoot),
		hold(11, 13, domain.RoleHand),
		hold(10, 16, domain.RoleHand),
		hold(11, 19, domain.RoleFinish),
	}}
	p := domain.GenerationParams{MinReach: 2, MaxReach: 5, MinMoves: 2, MaxMoves: 4}

	ok, conflicts, err := validator.New().Validate(context.Background(), r, p)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidateFlagsReachViolation(t *testing.T) {
	r := &domain.Route{Holds: []domain.PlacedHold{
		hold(10, 10, domain.RoleStart),
		hold(10, 25, domain.RoleHand), // 15 rows away
		hold(10, 28, domain.RoleFinish),
	}}
	p := domain.GenerationParams{MinReach: 2, MaxReach: 5}

	ok, conflicts, err := validator.New().Validate(context.Background(), r, p)
	require.NoError(t, err)
	assert.False(t, ok)
	require.Len(t, conflicts, 1)
	assert.Equal(t, 25, conflicts[0].Row)
}

func TestValidateFlagsNonUpwardMove(t *testing.T) {
	r := &domain.Route{Holds: []domain.PlacedHold{
		hold(10, 10, domain.RoleStart),
		hold(13, 10, domain.RoleHand), // sideways
		hold(13, 13, domain.RoleFinish),
	}}
	p := domain.GenerationParams{MinReach: 2, MaxReach: 5}

	ok, conflicts, err := validator.New().Validate(context.Background(), r, p)
	require.NoError(t, err)
	assert.False(t, ok)
	require.Len(t, conflicts, 1)
	assert.Equal(t, 13, conflicts[0].Col)
	assert.Equal(t, 10, conflicts[0].Row)

	p.AllowDownwardOrSideways = true
	ok, conflicts, err = validator.New().Validate(context.Background(), r, p)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidateFlagsMiddleHoldAboveRowCap(t *testing.T) {
	r := &domain.Route{Holds: []domain.PlacedHold{
		hold(10, 28, domain.RoleStart),
		hold(10, 31, domain.RoleHand),
		hold(10, 34, domain.RoleHand), // middle hold at row >= 33
		hold(11, 35, domain.RoleFinish),
	}}
	p := domain.GenerationParams{MinReach: 1, MaxReach: 5, AllowDownwardOrSideways: true}

	ok, conflicts, err := validator.New().Validate(context.Background(), r, p)
	require.NoError(t, err)
	assert.False(t, ok)
	require.Len(t, conflicts, 1)
	assert.Equal(t, 34, conflicts[0].Row)
}
