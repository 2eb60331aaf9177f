package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"lineup/internal/engine"
	"lineup/internal/layout"
	"lineup/pkg/models"
)

func testResult(t *testing.T) *engine.Result {
	t.Helper()
	e := engine.New(layout.Standard(), engine.Options{})
	return e.Validate([]string{
		"White Rook A1",
		"White King E1",
		"White Pawn A3",
		"White Knight C3",
		"White Bishop C3",
		"Black King Z9",
	})
}

func TestTextSections(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, testResult(t), false); err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	out := buf.String()

	// Both side blocks, White first.
	whiteIdx := strings.Index(out, "WHITE PIECES:")
	blackIdx := strings.Index(out, "BLACK PIECES:")
	if whiteIdx < 0 || blackIdx < 0 || whiteIdx > blackIdx {
		t.Fatalf("expected WHITE block before BLACK block, got:\n%s", out)
	}

	wantLines := []string{
		"White King at E1",
		"White Rook at A1",
		"White Pawn at A3",
		"White Bishop at C3, contested by multiple pieces",
		"White Knight at C3, contested by multiple pieces",
		"Black King at Z9 (square not on board)",
		"1 missing White Queen",
		"8 missing Black Pawn",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// The empty Black conflict section carries its marker.
	black := out[blackIdx:]
	if !strings.Contains(black, "no conflicts") {
		t.Errorf("expected 'no conflicts' marker in Black block:\n%s", black)
	}
	// White has conflicts but no invalid entries.
	white := out[whiteIdx:blackIdx]
	if !strings.Contains(white, "none") {
		t.Errorf("expected 'none' marker for empty White invalid section:\n%s", white)
	}
}

func TestTextSectionOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, testResult(t), false); err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	out := buf.String()
	white := out[:strings.Index(out, "BLACK PIECES:")]

	sections := []string{
		"Valid starting positions:",
		"Valid non-starting positions:",
		"Conflicting positions:",
		"Invalid positions (not on board):",
		"Missing pieces:",
		"Extra pieces:",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(white, s)
		if idx < 0 {
			t.Fatalf("section %q missing from White block:\n%s", s, white)
		}
		if idx < last {
			t.Errorf("section %q out of order", s)
		}
		last = idx
	}
}

func TestJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, testResult(t)); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var decoded engine.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode rendered JSON: %v", err)
	}
	if len(decoded.Reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(decoded.Reports))
	}
	if decoded.Reports[0].Side != models.SideWhite {
		t.Errorf("expected White report first, got %s", decoded.Reports[0].Side)
	}
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := YAML(&buf, testResult(t)); err != nil {
		t.Fatalf("YAML failed: %v", err)
	}
	if !strings.Contains(buf.String(), "side: White") {
		t.Errorf("expected YAML side field, got:\n%s", buf.String())
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, testResult(t), "xml", false); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
