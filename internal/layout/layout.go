// Package layout holds the canonical starting layouts for both sides.
// A layout set is immutable configuration: it is constructed once at
// process start and passed by reference into every validation run.
package layout

import (
	"lineup/pkg/models"
)

// Set holds the starting squares and expected piece counts for both sides.
// The zero value is not usable; construct with Standard or LoadFile.
type Set struct {
	starting map[models.Side]map[models.PieceType]map[models.Square]bool
	counts   map[models.PieceType]int
}

// Standard returns the layout of a standard chess starting position.
func Standard() *Set {
	return newSet(map[models.Side]map[models.PieceType][]models.Square{
		models.SideWhite: {
			models.PieceRook:   {"A1", "H1"},
			models.PieceKnight: {"B1", "G1"},
			models.PieceBishop: {"C1", "F1"},
			models.PieceQueen:  {"D1"},
			models.PieceKing:   {"E1"},
			models.PiecePawn:   {"A2", "B2", "C2", "D2", "E2", "F2", "G2", "H2"},
		},
		models.SideBlack: {
			models.PieceRook:   {"A8", "H8"},
			models.PieceKnight: {"B8", "G8"},
			models.PieceBishop: {"C8", "F8"},
			models.PieceQueen:  {"D8"},
			models.PieceKing:   {"E8"},
			models.PiecePawn:   {"A7", "B7", "C7", "D7", "E7", "F7", "G7", "H7"},
		},
	}, nil)
}

// newSet builds a Set from per-side starting squares and count overrides.
// Counts default to the standard expected counts for the canonical types.
func newSet(starting map[models.Side]map[models.PieceType][]models.Square, countOverrides map[models.PieceType]int) *Set {
	s := &Set{
		starting: make(map[models.Side]map[models.PieceType]map[models.Square]bool),
		counts:   make(map[models.PieceType]int),
	}

	for _, p := range models.CanonicalPieces() {
		s.counts[p] = p.ExpectedCount()
	}
	for p, n := range countOverrides {
		s.counts[p] = n
	}

	for side, pieces := range starting {
		bySide := make(map[models.PieceType]map[models.Square]bool)
		for piece, squares := range pieces {
			set := make(map[models.Square]bool, len(squares))
			for _, sq := range squares {
				set[sq] = true
			}
			bySide[piece] = set
		}
		s.starting[side] = bySide
	}

	return s
}

// IsStarting returns true if the square is a starting square for the
// given side and piece type.
func (s *Set) IsStarting(side models.Side, piece models.PieceType, sq models.Square) bool {
	pieces, ok := s.starting[side]
	if !ok {
		return false
	}
	return pieces[piece][sq]
}

// Counts returns a fresh copy of the expected-count table, suitable for
// seeding a per-run delta table without mutating the layout set.
func (s *Set) Counts() map[models.PieceType]int {
	out := make(map[models.PieceType]int, len(s.counts))
	for p, n := range s.counts {
		out[p] = n
	}
	return out
}
