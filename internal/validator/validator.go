package validator

import (
	"context"

	"svw.info/routegen/internal/domain"
	"svw.info/routegen/internal/geom"
)

// ReachValidator re-checks a route's hand line against generation
// parameters and reports every hold that breaks a constraint: consecutive
// reach outside [minReach, maxReach], non-upward progression when downward
// and sideways moves are disallowed, or a middle hold at row 33 or above.
type ReachValidator struct{}

func New() *ReachValidator { return &ReachValidator{} }

func (v *ReachValidator) Validate(ctx context.Context, r *domain.Route, p domain.GenerationParams) (bool, []domain.PlacedHold, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	conf := make([]domain.PlacedHold, 0, 4)
	line := r.HandLine()

	for i := 0; i < len(line)-1; i++ {
		a, b := line[i], line[i+1]
		if !geom.Reachable(a.Col, a.Row, b.Col, b.Row, float64(p.MinReach), float64(p.MaxReach)) {
			conf = append(conf, b)
			continue
		}
		if !p.AllowDownwardOrSideways && !geom.Upward(a.Row, b.Row) {
			conf = append(conf, b)
		}
	}
	for _, h := range line {
		if h.Type == domain.RoleHand && h.Row >= 33 {
			conf = append(conf, h)
		}
	}
	return len(conf) == 0, conf, nil
}
