package domain

import "math/rand"

// RandomParams picks generator parameters from the wide ranges the setter UI
// uses for its "randomize" action, so harder routes stay reachable:
// reach min 2..15 with max at least min+1 (and at least 8), moves likewise
// with max at least 10, two finishes at 50%, free direction at 20%.
func RandomParams(rng *rand.Rand) GenerationParams {
	minReach := 2 + rng.Intn(14)
	maxReach := randBetween(rng, maxInt(minReach+1, 8), 20)
	minMoves := 2 + rng.Intn(14)
	maxMoves := randBetween(rng, maxInt(minMoves+1, 10), 20)
	return GenerationParams{
		MinReach:                minReach,
		MaxReach:                maxReach,
		MinMoves:                minMoves,
		MaxMoves:                maxMoves,
		AllowTwoFinishes:        rng.Float64() < 0.5,
		AllowDownwardOrSideways: rng.Float64() < 0.2,
	}
}

func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
