package engine

import (
	"sort"

	"lineup/internal/layout"
	"lineup/pkg/models"
)

// Invalid placement reasons.
const (
	// ReasonSquare marks a square token that is not a board square.
	ReasonSquare = "square not on board"
	// ReasonPiece marks a piece type rejected under strict checking.
	ReasonPiece = "unknown piece type"
)

// InvalidPlacement is a placement rejected before aggregation.
type InvalidPlacement struct {
	models.Placement
	// Reason says why the placement was rejected.
	Reason string `json:"reason"`
}

// CountDelta reports a piece type whose observed count diverged from
// the expected count.
type CountDelta struct {
	// Piece is the piece type.
	Piece models.PieceType `json:"piece"`
	// Count is the absolute size of the divergence.
	Count int `json:"count"`
}

// Report is one side's validation result. All sections are fully
// derived from a single run's records; a report holds no state shared
// with any other run. Section ordering within the report is fixed, and
// entries within each section are sorted by piece type name then square
// so repeated runs over the same input are byte-identical when rendered.
type Report struct {
	// Side is the color this report covers.
	Side models.Side `json:"side"`
	// ValidStarting lists sole-occupant placements on a starting square
	// for their piece type.
	ValidStarting []models.Placement `json:"valid_starting"`
	// ValidNonStarting lists sole-occupant placements on a legal board
	// square that is not a starting square for their piece type.
	ValidNonStarting []models.Placement `json:"valid_non_starting"`
	// Conflicts lists placements on contested squares.
	Conflicts []Conflict `json:"conflicts"`
	// Invalid lists placements rejected before aggregation.
	Invalid []InvalidPlacement `json:"invalid"`
	// Missing lists piece types observed fewer times than expected.
	Missing []CountDelta `json:"missing"`
	// Extra lists piece types observed more times than expected.
	Extra []CountDelta `json:"extra"`
}

// buildReport derives one side's report from its merged aggregate.
func buildReport(a *Aggregate, layouts *layout.Set) *Report {
	r := &Report{Side: a.Side}

	// One canonical identity key throughout: a sole occupant is
	// excluded from the valid sections if the same (side, piece,
	// square) triple was flagged invalid.
	flagged := make(map[models.Placement]bool, len(a.Invalid))
	for _, inv := range a.Invalid {
		flagged[inv.Placement] = true
	}

	for sq, occupants := range a.Occupancy {
		total := 0
		for _, n := range occupants {
			total += n
		}
		if total != 1 {
			continue
		}
		for piece := range occupants {
			p := models.Placement{Side: a.Side, Piece: piece, Square: sq}
			if flagged[p] {
				continue
			}
			if layouts.IsStarting(a.Side, piece, sq) {
				r.ValidStarting = append(r.ValidStarting, p)
			} else {
				r.ValidNonStarting = append(r.ValidNonStarting, p)
			}
		}
	}

	r.Conflicts = a.conflicts()
	r.Invalid = append(r.Invalid, a.Invalid...)

	// Count deltas exist only for piece types seeded in the layout's
	// expected-count table. Unrecognized types pass through the valid
	// and conflict sections but never surface here.
	for piece, expected := range layouts.Counts() {
		delta := expected - a.Observed[piece]
		switch {
		case delta > 0:
			r.Missing = append(r.Missing, CountDelta{Piece: piece, Count: delta})
		case delta < 0:
			r.Extra = append(r.Extra, CountDelta{Piece: piece, Count: -delta})
		}
	}

	sortPlacements(r.ValidStarting)
	sortPlacements(r.ValidNonStarting)
	sort.Slice(r.Conflicts, func(i, j int) bool {
		a, b := r.Conflicts[i], r.Conflicts[j]
		if a.Piece != b.Piece {
			return a.Piece < b.Piece
		}
		if a.Square != b.Square {
			return a.Square < b.Square
		}
		return a.Kind < b.Kind
	})
	sort.Slice(r.Invalid, func(i, j int) bool {
		a, b := r.Invalid[i], r.Invalid[j]
		if a.Piece != b.Piece {
			return a.Piece < b.Piece
		}
		return a.Square < b.Square
	})
	sortDeltas(r.Missing)
	sortDeltas(r.Extra)

	return r
}

// sortPlacements orders placements by piece type name then square.
func sortPlacements(ps []models.Placement) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Piece != ps[j].Piece {
			return ps[i].Piece < ps[j].Piece
		}
		return ps[i].Square < ps[j].Square
	})
}

// sortDeltas orders count deltas by piece type name.
func sortDeltas(ds []CountDelta) {
	sort.Slice(ds, func(i, j int) bool {
		return ds[i].Piece < ds[j].Piece
	})
}
