// Package geom holds the distance and direction predicates shared by the
// generator, the validator and both estimators, so what generation permits
// and what scoring measures cannot drift apart.
package geom

import "math"

// Side is the horizontal relation of a move.
type Side int

const (
	Neutral Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "neutral"
	}
}

// Distance is the Euclidean distance between two grid positions.
func Distance(aCol, aRow, bCol, bRow int) float64 {
	dx := float64(aCol - bCol)
	dy := float64(aRow - bRow)
	return math.Sqrt(dx*dx + dy*dy)
}

// Reachable reports whether the distance between two positions lies within
// [minReach, maxReach], both ends inclusive.
func Reachable(aCol, aRow, bCol, bRow int, minReach, maxReach float64) bool {
	d := Distance(aCol, aRow, bCol, bRow)
	return d >= minReach && d <= maxReach
}

// Upward reports whether b is strictly higher than a.
func Upward(aRow, bRow int) bool { return bRow > aRow }

// HorizontalSide classifies the column change of a move from a to b.
func HorizontalSide(aCol, bCol int) Side {
	switch {
	case bCol < aCol:
		return Left
	case bCol > aCol:
		return Right
	default:
		return Neutral
	}
}
