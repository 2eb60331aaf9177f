package engine

import (
	"lineup/pkg/models"
)

// ConflictKind distinguishes the two ways a square can be contested.
type ConflictKind string

const (
	// ConflictContested marks a placement on a square shared with at
	// least one other piece type of the same side.
	ConflictContested ConflictKind = "contested"
	// ConflictDuplicate marks a piece type recorded more than once on
	// the same square.
	ConflictDuplicate ConflictKind = "duplicate"
)

// Conflict is one conflicting placement. A placement can carry both
// kinds when a duplicated type shares its square with another type.
type Conflict struct {
	models.Placement
	// Kind is the conflict classification.
	Kind ConflictKind `json:"kind"`
}

// conflicts scans the occupancy multiset for contested squares.
// Conflict scope is same-side only: this aggregate never sees the other
// side's records, so opposite-side pieces sharing a square are not
// flagged.
func (a *Aggregate) conflicts() []Conflict {
	var out []Conflict
	for sq, occupants := range a.Occupancy {
		multiType := len(occupants) > 1
		for piece, n := range occupants {
			p := models.Placement{Side: a.Side, Piece: piece, Square: sq}
			if multiType {
				out = append(out, Conflict{Placement: p, Kind: ConflictContested})
			}
			if n > 1 {
				out = append(out, Conflict{Placement: p, Kind: ConflictDuplicate})
			}
		}
	}
	return out
}
