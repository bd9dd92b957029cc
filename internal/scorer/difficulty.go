// Package scorer derives difficulty and flow from completed routes. Both
// estimators are pure functions of the route and the board: generation
// parameters are never consulted, so the same route always scores the same.
package scorer

import (
	"context"

	"gonum.org/v1/gonum/stat"

	"svw.info/routegen/internal/board"
	"svw.info/routegen/internal/domain"
	"svw.info/routegen/internal/geom"
)

const (
	weightHolds    = 0.40
	weightDistance = 0.30
	weightAngle    = 0.20
	weightFlow     = 0.10

	// Move distances are normalized over the typical 2..15 span before
	// being scaled onto the 0-5-ish term scale.
	distanceFloor = 2.0
	distanceSpan  = 13.0

	// Rows 1..5 are the steep overhang, rows 30..35 the slab.
	overhangRowMax = 5
	slabRowMin     = 30
	overhangAdjust = 0.5
	slabAdjust     = 0.3

	// Base difficulty assumed for hand-line positions the board does not
	// know as hand holds (imported routes against a different layout).
	defaultBaseDifficulty = 2.0
)

// Estimator scores routes against the board they were set on.
type Estimator struct {
	Board *board.Board
}

func New(b *board.Board) *Estimator { return &Estimator{Board: b} }

// Score computes the full score result for a route.
func (e *Estimator) Score(ctx context.Context, r *domain.Route) (domain.ScoreResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ScoreResult{}, err
	}
	score, label := e.EstimateDifficulty(r)
	flow, good := FlowScore(r)
	return domain.ScoreResult{
		Difficulty:      label,
		DifficultyLabel: label.String(),
		DifficultyScore: score,
		FlowScore:       flow,
		GoodFlow:        good,
	}, nil
}

// EstimateDifficulty maps a route's hand line to a numeric score and label.
// Terms, on a 0-5-ish scale before weighting: mean base difficulty (0.40),
// normalized mean move distance (0.30), wall-angle adjustment (0.20) and a
// flow penalty for zigzags and non-upward moves (0.10).
func (e *Estimator) EstimateDifficulty(r *domain.Route) (float64, domain.Difficulty) {
	line := r.HandLine()
	if len(line) < 2 {
		return 0, domain.Easy
	}

	holdTerm := e.meanBaseDifficulty(line)
	distTerm := normalizedMeanDistance(line) * 10
	angleTerm := angleFactor(line)
	penalty := flowPenalty(line)

	score := holdTerm*weightHolds + distTerm*weightDistance + angleTerm*weightAngle + penalty*weightFlow
	return score, labelFor(score)
}

func labelFor(score float64) domain.Difficulty {
	switch {
	case score < 2.0:
		return domain.Easy
	case score < 3.5:
		return domain.Intermediate
	case score < 4.8:
		return domain.Hard
	default:
		return domain.VeryHard
	}
}

func (e *Estimator) meanBaseDifficulty(line []domain.PlacedHold) float64 {
	diffs := make([]float64, len(line))
	for i, h := range line {
		if d, ok := e.Board.BaseDifficulty(h.Col, h.Row); ok {
			diffs[i] = float64(d)
		} else {
			diffs[i] = defaultBaseDifficulty
		}
	}
	return stat.Mean(diffs, nil)
}

func normalizedMeanDistance(line []domain.PlacedHold) float64 {
	dists := make([]float64, 0, len(line)-1)
	for i := 0; i < len(line)-1; i++ {
		dists = append(dists, geom.Distance(line[i].Col, line[i].Row, line[i+1].Col, line[i+1].Row))
	}
	mean := stat.Mean(dists, nil)
	return clamp((mean-distanceFloor)/distanceSpan, 0, 1)
}

// angleFactor averages the per-hold wall adjustment (+0.5 overhang, -0.3
// slab) and maps the -0.3..+0.5 range onto 0..5.
func angleFactor(line []domain.PlacedHold) float64 {
	adj := 0.0
	for _, h := range line {
		switch {
		case h.Row <= overhangRowMax:
			adj += overhangAdjust
		case h.Row >= slabRowMin:
			adj -= slabAdjust
		}
	}
	mean := adj / float64(len(line))
	return clamp((mean+slabAdjust)*(5.0/(overhangAdjust+slabAdjust)), 0, 5)
}

// flowPenalty grows with direct left/right reversals and non-upward moves,
// each contributing up to 2.5 on the 0-5 scale. Routes shorter than three
// hand holds carry no penalty.
func flowPenalty(line []domain.PlacedHold) float64 {
	if len(line) < 3 {
		return 0
	}
	reversals := 0
	for i := 0; i < len(line)-2; i++ {
		d1 := geom.HorizontalSide(line[i].Col, line[i+1].Col)
		d2 := geom.HorizontalSide(line[i+1].Col, line[i+2].Col)
		if d1 != geom.Neutral && d2 != geom.Neutral && d1 != d2 {
			reversals++
		}
	}
	nonUpward := 0
	for i := 0; i < len(line)-1; i++ {
		if !geom.Upward(line[i].Row, line[i+1].Row) {
			nonUpward++
		}
	}
	penalty := float64(reversals)/float64(len(line)-2)*2.5 +
		float64(nonUpward)/float64(len(line)-1)*2.5
	return clamp(penalty, 0, 5)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
