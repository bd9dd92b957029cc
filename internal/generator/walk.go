package generator

import (
	"context"
	"time"

	"svw.info/routegen/internal/domain"
	"svw.info/routegen/internal/geom"
	"svw.info/routegen/internal/ports"
)

const (
	// Start holds live in the mid-board band: low enough to reach from the
	// ground, high enough to hang from.
	startRowMin = 7
	startRowMax = 13

	// Middle moves never reach the top rows; those are reserved for finishes.
	middleRowCap = 33

	// Chance to annotate a foot hold after each accepted hand move.
	footProbability = 0.35

	// Column windows for foot placement around the active hand holds.
	startFootColRadius = 2
	footColRadius      = 3

	// Bounded retry budget per phase. Candidate sets are pre-filtered by
	// their predicates and sampled uniformly, so this cap only governs the
	// start pair search.
	maxPhaseAttempts = 200
)

// Generate produces a route satisfying the reach, progression and count
// constraints in p, or a *domain.GenerationError naming the phase that ran
// out of candidates. Failed generations return no partial route.
func (g *WalkGenerator) Generate(ctx context.Context, p domain.GenerationParams) (*domain.Route, ports.Stats, error) {
	begin := time.Now()
	st := ports.Stats{}

	route := &domain.Route{}

	last, err := g.startPhase(ctx, p, route, &st)
	if err != nil {
		return nil, stamp(st, begin), err
	}
	last, err = g.middlePhase(ctx, p, route, last, &st)
	if err != nil {
		return nil, stamp(st, begin), err
	}
	if err := g.finishPhase(ctx, p, route, last, &st); err != nil {
		return nil, stamp(st, begin), err
	}
	return route, stamp(st, begin), nil
}

func stamp(st ports.Stats, begin time.Time) ports.Stats {
	st.Duration = time.Since(begin)
	return st
}

// startPhase picks 1-2 mutually reachable hand holds in the start band and
// attaches the nearest 1-2 feet strictly below them. It returns the higher
// start hold as the anchor for the middle phase.
func (g *WalkGenerator) startPhase(ctx context.Context, p domain.GenerationParams, route *domain.Route, st *ports.Stats) (domain.Hold, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hold{}, err
	}
	cands := g.Board.HandHoldsInRows(startRowMin, startRowMax)
	if len(cands) == 0 {
		return domain.Hold{}, &domain.GenerationError{Phase: domain.PhaseStart, Attempts: st.Attempts}
	}
	shuffled := make([]domain.Hold, len(cands))
	copy(shuffled, cands)
	g.Rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	first := shuffled[0]
	var second *domain.Hold
	attempts := 0
pair:
	for i := 0; i < len(shuffled); i++ {
		for j := i + 1; j < len(shuffled); j++ {
			attempts++
			st.Attempts++
			if attempts > maxPhaseAttempts {
				break pair
			}
			if !reachable(shuffled[i], shuffled[j], p) {
				continue
			}
			// Under strict progression the start pair is part of the
			// upward hand line, so equal-row pairs are not usable.
			if !p.AllowDownwardOrSideways && shuffled[i].Row == shuffled[j].Row {
				continue
			}
			first = shuffled[i]
			second = &shuffled[j]
			break pair
		}
	}

	anchor := first
	loCol, hiCol, loRow := first.Col, first.Col, first.Row
	if second != nil {
		// The higher hold goes last so the hand line stays upward and the
		// middle phase continues from it.
		lower, higher := first, *second
		if lower.Row > higher.Row {
			lower, higher = higher, lower
		}
		route.Holds = append(route.Holds, placed(lower, domain.RoleStart), placed(higher, domain.RoleStart))
		anchor = higher
		loCol = minInt(first.Col, second.Col)
		hiCol = maxInt(first.Col, second.Col)
		loRow = minInt(first.Row, second.Row)
	} else {
		route.Holds = append(route.Holds, placed(first, domain.RoleStart))
	}

	feet := g.Board.NearestFeet(anchor.Col, anchor.Row, loRow, loCol-startFootColRadius, hiCol+startFootColRadius, 2)
	for _, f := range feet {
		route.Holds = append(route.Holds, placed(f, domain.RoleFoot))
	}
	return anchor, nil
}

// middlePhase walks n ~ U[minMoves, maxMoves] hand moves. Each step filters
// the board down to holds satisfying every move predicate and samples one
// uniformly; an empty candidate set aborts the whole generation.
func (g *WalkGenerator) middlePhase(ctx context.Context, p domain.GenerationParams, route *domain.Route, current domain.Hold, st *ports.Stats) (domain.Hold, error) {
	n := p.MinMoves + g.Rand.Intn(p.MaxMoves-p.MinMoves+1)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return domain.Hold{}, err
		}
		var cands []domain.Hold
		for _, h := range g.Board.HandHolds() {
			if h.Row >= middleRowCap {
				continue
			}
			if !p.AllowDownwardOrSideways && !geom.Upward(current.Row, h.Row) {
				continue
			}
			if !reachable(current, h, p) {
				continue
			}
			cands = append(cands, h)
		}
		st.Attempts++
		if len(cands) == 0 {
			return domain.Hold{}, &domain.GenerationError{Phase: domain.PhaseMiddle, Attempts: st.Attempts}
		}
		next := cands[g.Rand.Intn(len(cands))]
		route.Holds = append(route.Holds, placed(next, domain.RoleHand))
		current = next

		if g.Rand.Float64() < footProbability {
			feet := g.Board.FootCandidates(current.Row, current.Col-footColRadius, current.Col+footColRadius)
			if len(feet) > 0 {
				f := feet[g.Rand.Intn(len(feet))]
				route.Holds = append(route.Holds, placed(f, domain.RoleFoot))
			}
		}
	}
	return current, nil
}

// finishPhase places 1-2 hand holds strictly above the last middle hold,
// each reachable from it. A requested second finish must also be reachable
// from the first; if none is, the route keeps a single finish.
func (g *WalkGenerator) finishPhase(ctx context.Context, p domain.GenerationParams, route *domain.Route, last domain.Hold, st *ports.Stats) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var cands []domain.Hold
	for _, h := range g.Board.HandHolds() {
		if !geom.Upward(last.Row, h.Row) {
			continue
		}
		if !reachable(last, h, p) {
			continue
		}
		cands = append(cands, h)
	}
	st.Attempts++
	if len(cands) == 0 {
		return &domain.GenerationError{Phase: domain.PhaseFinish, Attempts: st.Attempts}
	}

	first := cands[g.Rand.Intn(len(cands))]
	route.Holds = append(route.Holds, placed(first, domain.RoleFinish))

	two := p.AllowTwoFinishes && g.Rand.Intn(2) == 1
	if !two {
		return nil
	}
	var seconds []domain.Hold
	for _, h := range cands {
		if h.Col == first.Col && h.Row == first.Row {
			continue
		}
		if !reachable(first, h, p) {
			continue
		}
		if !p.AllowDownwardOrSideways && !geom.Upward(first.Row, h.Row) {
			continue
		}
		seconds = append(seconds, h)
	}
	if len(seconds) > 0 {
		route.Holds = append(route.Holds, placed(seconds[g.Rand.Intn(len(seconds))], domain.RoleFinish))
	}
	return nil
}

func reachable(a, b domain.Hold, p domain.GenerationParams) bool {
	return geom.Reachable(a.Col, a.Row, b.Col, b.Row, float64(p.MinReach), float64(p.MaxReach))
}

func placed(h domain.Hold, role domain.Role) domain.PlacedHold {
	return domain.PlacedHold{Col: h.Col, Row: h.Row, Type: role}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
