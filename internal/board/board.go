// Package board loads the wall layout into an immutable hold table.
// The board is built once at startup and only read afterwards, so any
// number of concurrent generation requests may share it without locking.
package board

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"svw.info/routegen/internal/domain"
	"svw.info/routegen/internal/geom"
)

type pos struct{ col, row int }

// Board maps grid positions to holds over the full 35x35 grid.
type Board struct {
	byPos map[pos]domain.Hold
	hands []domain.Hold
	feet  []domain.Hold // foot holds plus hand holds usable as feet
}

// Load parses one hold per line: "col row type [direction grip baseDifficulty]"
// with type h/f/n, direction u/r/d/l, grip one of the seven grip tokens and
// baseDifficulty 0..5. The trailing fields are required for hand holds and
// rejected for the others. Malformed lines yield a *domain.LayoutError.
func Load(r io.Reader) (*Board, error) {
	b := &Board{byPos: make(map[pos]domain.Hold)}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		h, err := parseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		p := pos{h.Col, h.Row}
		if _, dup := b.byPos[p]; dup {
			return nil, &domain.LayoutError{Line: lineNo, Reason: fmt.Sprintf("duplicate position %d %d", h.Col, h.Row)}
		}
		b.byPos[p] = h
		switch h.Kind {
		case domain.KindHand:
			b.hands = append(b.hands, h)
			b.feet = append(b.feet, h)
		case domain.KindFoot:
			b.feet = append(b.feet, h)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("board: read layout: %w", err)
	}
	return b, nil
}

func parseLine(line string, lineNo int) (domain.Hold, error) {
	fail := func(reason string) (domain.Hold, error) {
		return domain.Hold{}, &domain.LayoutError{Line: lineNo, Reason: reason}
	}
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return fail("expected at least 3 fields")
	}
	col, err := strconv.Atoi(parts[0])
	if err != nil {
		return fail("column is not an integer")
	}
	row, err := strconv.Atoi(parts[1])
	if err != nil {
		return fail("row is not an integer")
	}
	if !inGrid(col, row) {
		return fail(fmt.Sprintf("position %d %d outside 1..%d", col, row, domain.BoardSize))
	}

	h := domain.Hold{Col: col, Row: row}
	switch parts[2] {
	case "h":
		h.Kind = domain.KindHand
	case "f":
		h.Kind = domain.KindFoot
	case "n":
		h.Kind = domain.KindNone
	default:
		return fail("unknown hold type " + strconv.Quote(parts[2]))
	}

	if h.Kind != domain.KindHand {
		// Non-hand holds carry no direction/grip/difficulty.
		if len(parts) != 3 {
			return fail("direction/grip fields only allowed on hand holds")
		}
		return h, nil
	}
	if len(parts) != 6 {
		return fail("hand hold requires direction, grip and base difficulty")
	}
	dir, ok := parseDirection(parts[3])
	if !ok {
		return fail("unknown direction " + strconv.Quote(parts[3]))
	}
	grip, ok := parseGrip(parts[4])
	if !ok {
		return fail("unknown grip " + strconv.Quote(parts[4]))
	}
	diff, err := strconv.Atoi(parts[5])
	if err != nil || diff < 0 || diff > 5 {
		return fail("base difficulty must be an integer 0..5")
	}
	h.Direction = dir
	h.Grip = grip
	h.BaseDifficulty = diff
	return h, nil
}

func parseDirection(s string) (domain.Direction, bool) {
	switch s {
	case "u":
		return domain.DirUp, true
	case "r":
		return domain.DirRight, true
	case "d":
		return domain.DirDown, true
	case "l":
		return domain.DirLeft, true
	}
	return 0, false
}

func parseGrip(s string) (domain.Grip, bool) {
	switch s {
	case "jug":
		return domain.GripJug, true
	case "edge":
		return domain.GripEdge, true
	case "crimp":
		return domain.GripCrimp, true
	case "sloper":
		return domain.GripSloper, true
	case "pinch":
		return domain.GripPinch, true
	case "sidepull":
		return domain.GripSidepull, true
	case "undercut":
		return domain.GripUndercut, true
	}
	return 0, false
}

func inGrid(col, row int) bool {
	return col >= 1 && col <= domain.BoardSize && row >= 1 && row <= domain.BoardSize
}

// Lookup returns the hold at (col, row). Cells without an entry in the
// layout are KindNone. Coordinates outside 1..35 yield ErrOutOfBounds.
func (b *Board) Lookup(col, row int) (domain.Hold, error) {
	if !inGrid(col, row) {
		return domain.Hold{}, fmt.Errorf("%w: %d %d", domain.ErrOutOfBounds, col, row)
	}
	if h, ok := b.byPos[pos{col, row}]; ok {
		return h, nil
	}
	return domain.Hold{Col: col, Row: row, Kind: domain.KindNone}, nil
}

// BaseDifficulty returns the base difficulty of the hand hold at (col, row),
// or false when the position is not a hand hold.
func (b *Board) BaseDifficulty(col, row int) (int, bool) {
	h, ok := b.byPos[pos{col, row}]
	if !ok || h.Kind != domain.KindHand {
		return 0, false
	}
	return h.BaseDifficulty, true
}

// HandHolds returns all hand holds. Callers must not mutate the slice.
func (b *Board) HandHolds() []domain.Hold { return b.hands }

// HandHoldsInRows returns hand holds with row in [lo, hi].
func (b *Board) HandHoldsInRows(lo, hi int) []domain.Hold {
	var out []domain.Hold
	for _, h := range b.hands {
		if h.Row >= lo && h.Row <= hi {
			out = append(out, h)
		}
	}
	return out
}

// FootCandidates returns holds usable for feet (foot holds and hand holds)
// strictly below belowRow and within [leftCol, rightCol].
func (b *Board) FootCandidates(belowRow, leftCol, rightCol int) []domain.Hold {
	var out []domain.Hold
	for _, h := range b.feet {
		if h.Row < belowRow && h.Col >= leftCol && h.Col <= rightCol {
			out = append(out, h)
		}
	}
	return out
}

// NearestFeet returns up to n foot candidates strictly below belowRow and
// within the column window, ordered by distance to (col, row).
func (b *Board) NearestFeet(col, row, belowRow, leftCol, rightCol, n int) []domain.Hold {
	cands := b.FootCandidates(belowRow, leftCol, rightCol)
	sortByDistance(cands, col, row)
	if len(cands) > n {
		cands = cands[:n]
	}
	return cands
}

func sortByDistance(holds []domain.Hold, col, row int) {
	sort.Slice(holds, func(i, j int) bool {
		di := geom.Distance(holds[i].Col, holds[i].Row, col, row)
		dj := geom.Distance(holds[j].Col, holds[j].Row, col, row)
		return di < dj
	})
}
