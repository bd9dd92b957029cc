package domain

// HoldKind is the physical kind of a board position.
type HoldKind int

const (
	KindNone HoldKind = iota
	KindHand
	KindFoot
)

func (k HoldKind) String() string {
	switch k {
	case KindHand:
		return "hand"
	case KindFoot:
		return "foot"
	default:
		return "none"
	}
}

// Direction is the orientation of a hand hold.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "up"
	}
}

// Grip classifies how a hand hold is gripped.
type Grip int

const (
	GripJug Grip = iota
	GripEdge
	GripCrimp
	GripSloper
	GripPinch
	GripSidepull
	GripUndercut
)

var gripNames = [...]string{"jug", "edge", "crimp", "sloper", "pinch", "sidepull", "undercut"}

func (g Grip) String() string {
	if g < 0 || int(g) >= len(gripNames) {
		return "jug"
	}
	return gripNames[g]
}

// Role is a hold's function within a generated route.
type Role string

const (
	RoleStart  Role = "start"
	RoleHand   Role = "hand"
	RoleFoot   Role = "foot"
	RoleFinish Role = "finish"
)

// Valid reports whether r is one of the four route roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStart, RoleHand, RoleFoot, RoleFinish:
		return true
	}
	return false
}

// IsHandLine reports whether the role belongs to the ordered hand sequence
// that defines climbing progression (feet are auxiliary annotations).
func (r Role) IsHandLine() bool {
	return r == RoleStart || r == RoleHand || r == RoleFinish
}

// Difficulty labels computed route grades.
type Difficulty int

const (
	Easy Difficulty = iota
	Intermediate
	Hard
	VeryHard
)

func (d Difficulty) String() string {
	switch d {
	case Intermediate:
		return "Intermediate"
	case Hard:
		return "Hard"
	case VeryHard:
		return "Very Hard"
	default:
		return "Easy"
	}
}

// Phase identifies the generation stage an error originated from.
type Phase string

const (
	PhaseStart  Phase = "start"
	PhaseMiddle Phase = "middle"
	PhaseFinish Phase = "finish"
)
