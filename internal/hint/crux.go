package hint

import (
	"context"
	"fmt"

	"svw.info/routegen/internal/board"
	"svw.info/routegen/internal/domain"
	"svw.info/routegen/internal/geom"
)

// Crux flags the single most demanding move of a route: the move whose
// combination of reach length, target-hold difficulty and direction reversal
// scores highest. Useful for setters deciding where to ease a sequence.
type Crux struct {
	Board *board.Board
}

func NewCrux(b *board.Board) *Crux { return &Crux{Board: b} }

// Hint returns the crux move, or found=false for routes with fewer than two
// hand holds (no move to flag).
func (c *Crux) Hint(ctx context.Context, r *domain.Route) (domain.Hint, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, err
	}
	line := r.HandLine()
	if len(line) < 2 {
		return domain.Hint{}, false, nil
	}

	best := -1
	bestScore := -1.0
	for i := 0; i < len(line)-1; i++ {
		score := c.moveScore(line, i)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}

	from, to := line[best], line[best+1]
	dist := geom.Distance(from.Col, from.Row, to.Col, to.Row)
	return domain.Hint{
		Message: fmt.Sprintf("Crux: move %d, %.1f-unit reach to (%d,%d)", best+1, dist, to.Col, to.Row),
		Cells:   []domain.PlacedHold{from, to},
		Move:    best + 1,
	}, true, nil
}

// moveScore weighs reach against the target hold's base difficulty, with a
// bump for moves that reverse the previous lateral direction.
func (c *Crux) moveScore(line []domain.PlacedHold, i int) float64 {
	from, to := line[i], line[i+1]
	score := geom.Distance(from.Col, from.Row, to.Col, to.Row)
	if d, ok := c.Board.BaseDifficulty(to.Col, to.Row); ok {
		score += float64(d)
	}
	if i > 0 {
		prev := geom.HorizontalSide(line[i-1].Col, from.Col)
		cur := geom.HorizontalSide(from.Col, to.Col)
		if prev != geom.Neutral && cur != geom.Neutral && prev != cur {
			score += 1.5
		}
	}
	return score
}
