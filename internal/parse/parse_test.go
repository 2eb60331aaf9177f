package parse

import (
	"testing"

	"lineup/pkg/models"
)

func TestLineValid(t *testing.T) {
	p, class := Line("White Rook A1", Options{})
	if class != ClassValid {
		t.Fatalf("expected ClassValid, got %v", class)
	}
	if p.Side != models.SideWhite {
		t.Errorf("expected side White, got %s", p.Side)
	}
	if p.Piece != models.PieceRook {
		t.Errorf("expected piece Rook, got %s", p.Piece)
	}
	if p.Square != "A1" {
		t.Errorf("expected square A1, got %s", p.Square)
	}
}

func TestLineDropped(t *testing.T) {
	tests := []string{
		"",
		"White Rook",
		"White Rook A1 extra",
		"White  Rook A1", // double space yields four tokens
		"Red King E1",    // unrecognized side
		"white Rook A1",  // side matching is case-sensitive
	}

	for _, raw := range tests {
		if _, class := Line(raw, Options{}); class != ClassDropped {
			t.Errorf("Line(%q) = %v, want ClassDropped", raw, class)
		}
	}
}

func TestLineInvalidSquare(t *testing.T) {
	tests := []string{
		"White King Z9",
		"Black Pawn A0",
		"White Rook a1", // lowercase squares are invalid, not dropped
		"Black Queen D",
	}

	for _, raw := range tests {
		p, class := Line(raw, Options{})
		if class != ClassInvalidSquare {
			t.Errorf("Line(%q) = %v, want ClassInvalidSquare", raw, class)
			continue
		}
		// The raw token is preserved for reporting.
		if p.Square == "" {
			t.Errorf("Line(%q) lost its square token", raw)
		}
	}
}

func TestLineUnknownPiecePassthrough(t *testing.T) {
	p, class := Line("White Wizard D4", Options{})
	if class != ClassValid {
		t.Fatalf("expected passthrough for unknown piece, got %v", class)
	}
	if p.Piece != "Wizard" {
		t.Errorf("expected piece Wizard, got %s", p.Piece)
	}
}

func TestLineStrictPieces(t *testing.T) {
	if _, class := Line("White Wizard D4", Options{StrictPieces: true}); class != ClassInvalidPiece {
		t.Errorf("expected ClassInvalidPiece in strict mode, got %v", class)
	}
	if _, class := Line("White Queen D1", Options{StrictPieces: true}); class != ClassValid {
		t.Errorf("expected canonical piece to stay valid in strict mode, got %v", class)
	}
	// Square validity is checked before piece strictness.
	if _, class := Line("White Wizard Z9", Options{StrictPieces: true}); class != ClassInvalidSquare {
		t.Errorf("expected ClassInvalidSquare to win over strict piece check, got %v", class)
	}
}
