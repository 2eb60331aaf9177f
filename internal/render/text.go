package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"lineup/internal/engine"
)

// Text writes the result as a sectioned plain-text report, one block
// per side, sections in the fixed report order.
func Text(w io.Writer, res *engine.Result, useColor bool) error {
	header := color.New(color.Bold)
	section := color.New(color.FgCyan)
	problem := color.New(color.FgRed)
	if !useColor {
		header.DisableColor()
		section.DisableColor()
		problem.DisableColor()
	}

	for i, r := range res.Reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := header.Fprintf(w, "%s PIECES:\n", strings.ToUpper(string(r.Side))); err != nil {
			return err
		}

		section.Fprintln(w, "Valid starting positions:")
		for _, p := range r.ValidStarting {
			fmt.Fprintf(w, "  %s\n", p)
		}

		section.Fprintln(w, "Valid non-starting positions:")
		for _, p := range r.ValidNonStarting {
			fmt.Fprintf(w, "  %s\n", p)
		}

		section.Fprintln(w, "Conflicting positions:")
		if len(r.Conflicts) == 0 {
			fmt.Fprintln(w, "  no conflicts")
		}
		for _, c := range r.Conflicts {
			switch c.Kind {
			case engine.ConflictDuplicate:
				problem.Fprintf(w, "  %s, duplicated on the same square\n", c.Placement)
			default:
				problem.Fprintf(w, "  %s, contested by multiple pieces\n", c.Placement)
			}
		}

		section.Fprintln(w, "Invalid positions (not on board):")
		if len(r.Invalid) == 0 {
			fmt.Fprintln(w, "  none")
		}
		for _, inv := range r.Invalid {
			problem.Fprintf(w, "  %s (%s)\n", inv.Placement, inv.Reason)
		}

		section.Fprintln(w, "Missing pieces:")
		for _, d := range r.Missing {
			fmt.Fprintf(w, "  %d missing %s %s\n", d.Count, r.Side, d.Piece)
		}

		section.Fprintln(w, "Extra pieces:")
		for _, d := range r.Extra {
			fmt.Fprintf(w, "  %d extra %s %s\n", d.Count, r.Side, d.Piece)
		}
	}

	return nil
}
