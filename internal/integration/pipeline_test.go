//go:build integration

package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lineup/internal/engine"
	"lineup/internal/ingest"
	"lineup/internal/layout"
	"lineup/internal/render"
	"lineup/internal/state"
	"lineup/pkg/models"
)

// TestFileToReportPipeline tests ingestion, validation, rendering, and
// history storage working together.
func TestFileToReportPipeline(t *testing.T) {
	tmpDir := t.TempDir()

	inputPath := filepath.Join(tmpDir, "placements.txt")
	input := strings.Join([]string{
		"White Rook A1",
		"White Rook H1",
		"White King E1",
		"White Knight C3",
		"White Bishop C3",
		"Black King Z9",
		"Black Pawn A7",
		"not a placement record",
		"",
	}, "\n")
	if err := os.WriteFile(inputPath, []byte(input), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	lines, err := ingest.File(inputPath)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	eng := engine.New(layout.Standard(), engine.Options{Workers: 2})
	res := eng.Validate(lines)

	white := res.Report(models.SideWhite)
	if len(white.ValidStarting) != 3 {
		t.Errorf("white valid starting = %d, want 3", len(white.ValidStarting))
	}
	if len(white.Conflicts) != 2 {
		t.Errorf("white conflicts = %d, want 2", len(white.Conflicts))
	}

	black := res.Report(models.SideBlack)
	if len(black.Invalid) != 1 {
		t.Errorf("black invalid = %d, want 1", len(black.Invalid))
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, res, render.FormatText, false); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "White Rook at A1") {
		t.Errorf("rendered report missing expected entry:\n%s", buf.String())
	}

	// Store the run and read it back.
	db, err := state.Open(filepath.Join(tmpDir, "lineup.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	run, err := state.NewRun(inputPath, len(lines), res)
	if err != nil {
		t.Fatalf("new run: %v", err)
	}
	if err := db.SaveRun(run); err != nil {
		t.Fatalf("save run: %v", err)
	}

	stored, err := db.GetRun(run.ID)
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	storedRes, err := stored.Result()
	if err != nil {
		t.Fatalf("stored result: %v", err)
	}

	var storedBuf bytes.Buffer
	if err := render.Render(&storedBuf, storedRes, render.FormatText, false); err != nil {
		t.Fatalf("render stored: %v", err)
	}
	if storedBuf.String() != buf.String() {
		t.Error("stored report renders differently from the original run")
	}
}

// TestCustomLayoutPipeline tests a layout override file flowing through
// validation.
func TestCustomLayoutPipeline(t *testing.T) {
	tmpDir := t.TempDir()

	layoutPath := filepath.Join(tmpDir, "layout.yaml")
	layoutYAML := `
counts:
  Queen: 2
starting_positions:
  white:
    Queen: [D1, E1]
`
	if err := os.WriteFile(layoutPath, []byte(layoutYAML), 0644); err != nil {
		t.Fatalf("write layout: %v", err)
	}

	layouts, err := layout.LoadFile(layoutPath)
	if err != nil {
		t.Fatalf("load layout: %v", err)
	}

	eng := engine.New(layouts, engine.Options{})
	res := eng.Validate([]string{"White Queen D1", "White Queen E1"})

	white := res.Report(models.SideWhite)
	if len(white.ValidStarting) != 2 {
		t.Errorf("valid starting = %v, want both queens", white.ValidStarting)
	}
	for _, d := range white.Extra {
		if d.Piece == models.PieceQueen {
			t.Error("two queens must not be extra under the override")
		}
	}
}
