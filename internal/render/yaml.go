package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"lineup/internal/engine"
)

// YAML writes the result as a YAML document.
func YAML(w io.Writer, res *engine.Result) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(res)
}
