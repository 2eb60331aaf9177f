// Package models defines the domain types shared across lineup:
// sides, piece types, squares, and placements.
package models

import "fmt"

// Placement identifies one asserted piece placement. The triple
// (Side, Piece, Square) is the canonical identity key used everywhere a
// placement is recorded, filtered, or reported.
type Placement struct {
	// Side is the color the placement was asserted for.
	Side Side `json:"side"`
	// Piece is the piece type token from the record.
	Piece PieceType `json:"piece"`
	// Square is the square token from the record. It may be invalid;
	// invalid placements keep their raw token for reporting.
	Square Square `json:"square"`
}

// String renders the placement as "{Side} {Piece} at {Square}".
func (p Placement) String() string {
	return fmt.Sprintf("%s %s at %s", p.Side, p.Piece, p.Square)
}
