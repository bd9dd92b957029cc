package storage

import (
	"encoding/json"
	"fmt"
	"io"

	"svw.info/routegen/internal/domain"
)

// WriteRoute serializes a route to the interchange format, a JSON object
// with an ordered "holds" array of {col,row,type}. Serialization failures
// wrap domain.ErrExport; they signal an invariant violation for any route
// the generator produced.
func WriteRoute(w io.Writer, r *domain.Route) error {
	for i, h := range r.Holds {
		if !h.Type.Valid() {
			return fmt.Errorf("%w: hold %d has invalid role %q", domain.ErrExport, i, h.Type)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExport, err)
	}
	return nil
}

// ReadRoute parses the interchange format back into a route, preserving
// hold order and rejecting unknown roles or off-board positions.
func ReadRoute(rd io.Reader) (*domain.Route, error) {
	var r domain.Route
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExport, err)
	}
	for i, h := range r.Holds {
		if !h.Type.Valid() {
			return nil, fmt.Errorf("%w: hold %d has invalid role %q", domain.ErrExport, i, h.Type)
		}
		if h.Col < 1 || h.Col > domain.BoardSize || h.Row < 1 || h.Row > domain.BoardSize {
			return nil, fmt.Errorf("%w: hold %d at %d %d outside the board", domain.ErrExport, i, h.Col, h.Row)
		}
	}
	return &r, nil
}
