// Package parse turns raw placement lines into classified placement
// records. Parsing is best-effort: lines that do not have the expected
// shape are dropped without a trace, while records with recognizable
// structure but bad data are classified so the engine can report them.
package parse

import (
	"strings"

	"lineup/pkg/models"
)

// Class is the classification outcome for one raw line.
type Class int

const (
	// ClassValid is a well-formed record ready for aggregation.
	ClassValid Class = iota
	// ClassInvalidSquare is a record whose square token is not a board
	// square. It is reported as an invalid placement, never aggregated.
	ClassInvalidSquare
	// ClassInvalidPiece is a record whose piece type is not canonical,
	// produced only when strict piece checking is enabled.
	ClassInvalidPiece
	// ClassDropped is a line with the wrong token count or an
	// unrecognized side. Dropped lines leave no report entry.
	ClassDropped
)

// Options controls parser behavior.
type Options struct {
	// StrictPieces rejects piece type tokens outside the six canonical
	// types. When false (the default), any token is tracked as a piece
	// type; unknown types simply never appear in missing/extra tallies.
	StrictPieces bool
}

// Line parses one raw placement line. The line must split on single
// spaces into exactly three tokens: side, piece type, square. Matching
// is case-sensitive throughout.
func Line(raw string, opts Options) (models.Placement, Class) {
	parts := strings.Split(raw, " ")
	if len(parts) != 3 {
		return models.Placement{}, ClassDropped
	}

	p := models.Placement{
		Side:   models.Side(parts[0]),
		Piece:  models.PieceType(parts[1]),
		Square: models.Square(parts[2]),
	}

	if !p.Side.Valid() {
		return models.Placement{}, ClassDropped
	}
	if !p.Square.Valid() {
		return p, ClassInvalidSquare
	}
	if opts.StrictPieces && !p.Piece.Known() {
		return p, ClassInvalidPiece
	}

	return p, ClassValid
}
