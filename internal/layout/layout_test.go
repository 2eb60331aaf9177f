package layout

import (
	"os"
	"path/filepath"
	"testing"

	"lineup/pkg/models"
)

func TestStandardStartingSquares(t *testing.T) {
	set := Standard()

	tests := []struct {
		side     models.Side
		piece    models.PieceType
		square   models.Square
		starting bool
	}{
		{models.SideWhite, models.PieceRook, "A1", true},
		{models.SideWhite, models.PieceRook, "H1", true},
		{models.SideWhite, models.PieceKing, "E1", true},
		{models.SideWhite, models.PieceQueen, "D1", true},
		{models.SideWhite, models.PiecePawn, "A2", true},
		{models.SideWhite, models.PiecePawn, "H2", true},
		{models.SideWhite, models.PiecePawn, "A1", false},
		{models.SideWhite, models.PieceRook, "A8", false},
		{models.SideBlack, models.PieceRook, "A8", true},
		{models.SideBlack, models.PieceKing, "E8", true},
		{models.SideBlack, models.PiecePawn, "C7", true},
		{models.SideBlack, models.PiecePawn, "C2", false},
		{models.SideBlack, models.PieceKnight, "G8", true},
		{models.SideWhite, models.PieceBishop, "C1", true},
		{models.SideWhite, models.PieceType("Wizard"), "D4", false},
	}

	for _, tc := range tests {
		got := set.IsStarting(tc.side, tc.piece, tc.square)
		if got != tc.starting {
			t.Errorf("IsStarting(%s, %s, %s) = %v, want %v", tc.side, tc.piece, tc.square, got, tc.starting)
		}
	}
}

func TestStandardCounts(t *testing.T) {
	set := Standard()
	counts := set.Counts()

	if counts[models.PiecePawn] != 8 {
		t.Errorf("expected 8 pawns, got %d", counts[models.PiecePawn])
	}
	if counts[models.PieceKing] != 1 {
		t.Errorf("expected 1 king, got %d", counts[models.PieceKing])
	}

	// Counts returns a copy; mutating it must not affect the set.
	counts[models.PieceKing] = 99
	if set.Counts()[models.PieceKing] != 1 {
		t.Error("mutating the returned count table leaked into the layout set")
	}
}

func TestLoadFileOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "layout.yaml")

	content := `
counts:
  Queen: 2
starting_positions:
  white:
    Queen: [D1, E1]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write layout file: %v", err)
	}

	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if set.Counts()[models.PieceQueen] != 2 {
		t.Errorf("expected queen count override 2, got %d", set.Counts()[models.PieceQueen])
	}
	if set.Counts()[models.PiecePawn] != 8 {
		t.Errorf("expected pawn count to stay 8, got %d", set.Counts()[models.PiecePawn])
	}

	if !set.IsStarting(models.SideWhite, models.PieceQueen, "E1") {
		t.Error("expected E1 to be a white queen starting square after override")
	}
	if set.IsStarting(models.SideWhite, models.PieceRook, "A1") {
		t.Error("white starting squares were fully replaced; Rook A1 must not remain")
	}

	// Black keeps the standard layout when absent from the file.
	if !set.IsStarting(models.SideBlack, models.PieceRook, "A8") {
		t.Error("expected black to keep standard starting squares")
	}
}

func TestLoadFileRejectsInvalidSquare(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "layout.yaml")

	content := `
starting_positions:
  white:
    Rook: [Z9]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write layout file: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for invalid starting square")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing layout file")
	}
}
