package generator

import (
	"math/rand"

	"svw.info/routegen/internal/board"
)

// Rand is the randomness capability the generator depends on; *rand.Rand
// satisfies it, and tests may substitute deterministic sequences.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// WalkGenerator builds routes as a constrained random walk over the board,
// in three phases: start, middle, finish. Every phase is a bounded loop.
type WalkGenerator struct {
	Board *board.Board
	Rand  Rand
}

// New wires a generator over the given board with a seeded source.
func New(b *board.Board, seed int64) *WalkGenerator {
	return &WalkGenerator{Board: b, Rand: rand.New(rand.NewSource(seed))}
}

// NewWithRand wires a generator with an explicit randomness source.
func NewWithRand(b *board.Board, r Rand) *WalkGenerator {
	return &WalkGenerator{Board: b, Rand: r}
}
