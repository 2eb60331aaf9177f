package render

import (
	"encoding/json"
	"io"

	"lineup/internal/engine"
)

// JSON writes the result as indented JSON.
func JSON(w io.Writer, res *engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
