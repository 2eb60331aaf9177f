package models

// PieceType represents a kind of chess piece. It is an open string type:
// any token can be tracked as a piece type, but only the six canonical
// types carry an expected per-side count and can appear in missing/extra
// tallies.
type PieceType string

const (
	// PieceKing is the king, one per side.
	PieceKing PieceType = "King"
	// PieceQueen is the queen, one per side.
	PieceQueen PieceType = "Queen"
	// PieceRook is the rook, two per side.
	PieceRook PieceType = "Rook"
	// PieceBishop is the bishop, two per side.
	PieceBishop PieceType = "Bishop"
	// PieceKnight is the knight, two per side.
	PieceKnight PieceType = "Knight"
	// PiecePawn is the pawn, eight per side.
	PiecePawn PieceType = "Pawn"
)

// expectedCounts holds the per-side piece count of a standard chess set.
var expectedCounts = map[PieceType]int{
	PieceKing:   1,
	PieceQueen:  1,
	PieceRook:   2,
	PieceBishop: 2,
	PieceKnight: 2,
	PiecePawn:   8,
}

// CanonicalPieces returns the six canonical piece types.
func CanonicalPieces() []PieceType {
	return []PieceType{PieceKing, PieceQueen, PieceRook, PieceBishop, PieceKnight, PiecePawn}
}

// Known returns true if the piece type is one of the six canonical types.
func (p PieceType) Known() bool {
	_, ok := expectedCounts[p]
	return ok
}

// ExpectedCount returns the standard per-side count for this piece type,
// or 0 for unrecognized types.
func (p PieceType) ExpectedCount() int {
	return expectedCounts[p]
}
