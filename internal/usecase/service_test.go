package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/routegen/internal/domain"
	"svw.info/routegen/internal/ports"
	"svw.info/routegen/internal/usecase"
)

type stubGenerator struct {
	calls int
	route *domain.Route
	err   error
}

func (s *stubGenerator) Generate(ctx context.Context, p domain.GenerationParams) (*domain.Route, ports.Stats, error) {
	s.calls++
	return s.route, ports.Stats{Attempts: 1}, s.err
}

func TestGenerateValidatesParams(t *testing.T) {
	gen := &stubGenerator{route: &domain.Route{}}
	svc := usecase.NewService(gen, nil, nil, nil, nil)

	cases := []struct {
		name string
		p    domain.GenerationParams
	}{
		{"reach below range", domain.GenerationParams{MinReach: 1, MaxReach: 12, MinMoves: 2, MaxMoves: 12}},
		{"reach above range", domain.GenerationParams{MinReach: 2, MaxReach: 21, MinMoves: 2, MaxMoves: 12}},
		{"min reach above max", domain.GenerationParams{MinReach: 12, MaxReach: 4, MinMoves: 2, MaxMoves: 12}},
		{"min moves above max", domain.GenerationParams{MinReach: 2, MaxReach: 12, MinMoves: 10, MaxMoves: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Generate(context.Background(), tc.p)
			assert.ErrorIs(t, err, usecase.ErrInvalidParams)
		})
	}
	assert.Zero(t, gen.calls, "invalid parameters never reach the generator")
}

func TestGenerateForwardsValidParams(t *testing.T) {
	gen := &stubGenerator{route: &domain.Route{Holds: []domain.PlacedHold{{Col: 1, Row: 1, Type: domain.RoleStart}}}}
	svc := usecase.NewService(gen, nil, nil, nil, nil)

	r, st, err := svc.Generate(context.Background(), domain.DefaultParams())
	require.NoError(t, err)
	assert.Same(t, gen.route, r)
	assert.Equal(t, 1, st.Attempts)
	assert.Equal(t, 1, gen.calls)
}

func TestMissingDependencies(t *testing.T) {
	svc := usecase.NewService(nil, nil, nil, nil, nil)
	ctx := context.Background()

	_, _, err := svc.Generate(ctx, domain.DefaultParams())
	assert.Error(t, err)
	_, err = svc.Score(ctx, &domain.Route{})
	assert.Error(t, err)
	_, _, err = svc.Validate(ctx, &domain.Route{}, domain.DefaultParams())
	assert.Error(t, err)
	_, _, err = svc.Hint(ctx, &domain.Route{})
	assert.Error(t, err)
	assert.Error(t, svc.Save(ctx, &domain.SavedRoute{}))
	_, err = svc.Load(ctx, "id")
	assert.Error(t, err)
	_, err = svc.List(ctx)
	assert.Error(t, err)
}
