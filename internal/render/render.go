// Package render serializes validation results. The engine's contract
// is the set of typed report entries; renderers only change their
// surface form (text, JSON, YAML).
package render

import (
	"fmt"
	"io"

	"lineup/internal/engine"
)

// Known output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Render writes the result to w in the given format.
func Render(w io.Writer, res *engine.Result, format string, useColor bool) error {
	switch format {
	case FormatText:
		return Text(w, res, useColor)
	case FormatJSON:
		return JSON(w, res)
	case FormatYAML:
		return YAML(w, res)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
