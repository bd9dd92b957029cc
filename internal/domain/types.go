package domain

// BoardSize is the fixed edge length of the hold grid; coordinates run 1..35.
const BoardSize = 35

// Hold is one board position with its physical attributes.
// Direction, Grip and BaseDifficulty are meaningful only when Kind is KindHand.
type Hold struct {
	Col            int       `json:"col"`
	Row            int       `json:"row"`
	Kind           HoldKind  `json:"kind"`
	Direction      Direction `json:"direction,omitempty"`
	Grip           Grip      `json:"grip,omitempty"`
	BaseDifficulty int       `json:"baseDifficulty,omitempty"`
}

// PlacedHold is a hold position with its role inside a generated route.
type PlacedHold struct {
	Col  int  `json:"col"`
	Row  int  `json:"row"`
	Type Role `json:"type"`
}

// Route is an ordered sequence of placed holds. Exactly one ordered hand
// sequence (start/hand/finish roles) defines climbing progression; foot
// holds are annotations attached at their position in that order.
type Route struct {
	Holds []PlacedHold `json:"holds"`
}

// HandLine returns the start/hand/finish holds in climb order.
func (r *Route) HandLine() []PlacedHold {
	line := make([]PlacedHold, 0, len(r.Holds))
	for _, h := range r.Holds {
		if h.Type.IsHandLine() {
			line = append(line, h)
		}
	}
	return line
}

// MoveCount returns the number of middle hand moves (RoleHand only).
func (r *Route) MoveCount() int {
	n := 0
	for _, h := range r.Holds {
		if h.Type == RoleHand {
			n++
		}
	}
	return n
}

// Hint describes a crux suggestion for the UI.
type Hint struct {
	Message string       `json:"message,omitempty"`
	Cells   []PlacedHold `json:"cells,omitempty"`
	// Move is the 1-based index of the flagged move along the hand line.
	Move int `json:"move,omitempty"`
}

// GenerationParams are the per-request knobs of the route generator.
// They are passed by value and never mutated by the core.
type GenerationParams struct {
	MinReach                int  `json:"minReach" validate:"min=2,max=20,ltefield=MaxReach"`
	MaxReach                int  `json:"maxReach" validate:"min=2,max=20"`
	MinMoves                int  `json:"minMoves" validate:"min=2,max=20,ltefield=MaxMoves"`
	MaxMoves                int  `json:"maxMoves" validate:"min=2,max=20"`
	AllowDownwardOrSideways bool `json:"allowDownwardOrSideways"`
	AllowTwoFinishes        bool `json:"allowTwoFinishes"`
}

// DefaultParams mirrors the setter defaults: tight-to-moderate reaches,
// moderate length, single-direction progression, two finishes allowed.
func DefaultParams() GenerationParams {
	return GenerationParams{
		MinReach:         2,
		MaxReach:         12,
		MinMoves:         2,
		MaxMoves:         12,
		AllowTwoFinishes: true,
	}
}

// ScoreResult is derived from a route on demand, never stored on it.
type ScoreResult struct {
	Difficulty      Difficulty `json:"-"`
	DifficultyLabel string     `json:"difficulty"`
	DifficultyScore float64    `json:"difficultyScore"`
	FlowScore       float64    `json:"flowScore"`
	GoodFlow        bool       `json:"goodFlow"`
}

// SavedRoute is a persisted route with metadata.
type SavedRoute struct {
	ID         string       `json:"id,omitempty"`
	Name       string       `json:"name,omitempty"`
	Difficulty Difficulty   `json:"difficulty"`
	Score      float64      `json:"score,omitempty"`
	CreatedAt  int64        `json:"createdAt,omitempty"`
	Holds      []PlacedHold `json:"holds"`
}

// RouteMeta is a lightweight listing entry.
type RouteMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
