package engine

import (
	"lineup/pkg/models"
)

// Aggregate accumulates one side's placement records: the occupancy
// multiset, observed piece counts, and invalid placements. Partial
// aggregates built from input partitions merge into an equivalent whole,
// so conflict detection and count deltas always run over the full
// record set.
type Aggregate struct {
	// Side is the color this aggregate covers.
	Side models.Side
	// Occupancy maps each square to the count of records per piece type.
	// Counts are kept per type (a multiset, not a set) so two same-type
	// records on one square remain distinguishable from one.
	Occupancy map[models.Square]map[models.PieceType]int
	// Observed counts every aggregated record per piece type, including
	// records that later turn out to be in conflict.
	Observed map[models.PieceType]int
	// Invalid holds records rejected before aggregation, keyed by their
	// full (side, piece, square) identity.
	Invalid []InvalidPlacement
}

// NewAggregate returns an empty aggregate for one side.
func NewAggregate(side models.Side) *Aggregate {
	return &Aggregate{
		Side:      side,
		Occupancy: make(map[models.Square]map[models.PieceType]int),
		Observed:  make(map[models.PieceType]int),
	}
}

// Record adds one valid placement record. The piece is counted toward
// the side's total tally regardless of any conflict on the square.
func (a *Aggregate) Record(p models.Placement) {
	occupants, ok := a.Occupancy[p.Square]
	if !ok {
		occupants = make(map[models.PieceType]int)
		a.Occupancy[p.Square] = occupants
	}
	occupants[p.Piece]++
	a.Observed[p.Piece]++
}

// RecordInvalid adds one placement rejected before aggregation. Invalid
// records never enter the occupancy map and never adjust piece counts.
func (a *Aggregate) RecordInvalid(p models.Placement, reason string) {
	a.Invalid = append(a.Invalid, InvalidPlacement{Placement: p, Reason: reason})
}

// Merge folds another partial aggregate for the same side into this one.
// Occupancy merges by summing per-type counts per square and observed
// counts sum, so a conflict spanning two partitions is detected exactly
// as if both records had been aggregated together.
func (a *Aggregate) Merge(other *Aggregate) {
	for sq, occupants := range other.Occupancy {
		dst, ok := a.Occupancy[sq]
		if !ok {
			dst = make(map[models.PieceType]int, len(occupants))
			a.Occupancy[sq] = dst
		}
		for piece, n := range occupants {
			dst[piece] += n
		}
	}
	for piece, n := range other.Observed {
		a.Observed[piece] += n
	}
	a.Invalid = append(a.Invalid, other.Invalid...)
}
