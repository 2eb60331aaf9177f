package layout

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"lineup/pkg/models"
)

// layoutFile represents the YAML layout override file structure.
type layoutFile struct {
	Counts   map[string]int `yaml:"counts"`
	Starting struct {
		White map[string][]string `yaml:"white"`
		Black map[string][]string `yaml:"black"`
	} `yaml:"starting_positions"`
}

// LoadFile loads a layout set from a YAML override file. Sides absent
// from the file keep the standard starting squares; counts absent from
// the file keep the standard expected counts. Every square in the file
// must be a valid board square.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout file: %w", err)
	}

	var lf layoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse layout file %s: %w", path, err)
	}

	std := Standard()
	starting := map[models.Side]map[models.PieceType][]models.Square{
		models.SideWhite: std.startingSquares(models.SideWhite),
		models.SideBlack: std.startingSquares(models.SideBlack),
	}

	if len(lf.Starting.White) > 0 {
		white, err := parseSide(lf.Starting.White)
		if err != nil {
			return nil, fmt.Errorf("layout file %s: white: %w", path, err)
		}
		starting[models.SideWhite] = white
	}
	if len(lf.Starting.Black) > 0 {
		black, err := parseSide(lf.Starting.Black)
		if err != nil {
			return nil, fmt.Errorf("layout file %s: black: %w", path, err)
		}
		starting[models.SideBlack] = black
	}

	overrides := make(map[models.PieceType]int, len(lf.Counts))
	for piece, n := range lf.Counts {
		if n < 0 {
			return nil, fmt.Errorf("layout file %s: negative count for %s", path, piece)
		}
		overrides[models.PieceType(piece)] = n
	}

	return newSet(starting, overrides), nil
}

// parseSide converts one side's YAML mapping into typed starting squares.
func parseSide(raw map[string][]string) (map[models.PieceType][]models.Square, error) {
	out := make(map[models.PieceType][]models.Square, len(raw))
	for piece, squares := range raw {
		typed := make([]models.Square, 0, len(squares))
		for _, sq := range squares {
			square := models.Square(sq)
			if !square.Valid() {
				return nil, fmt.Errorf("invalid starting square %q for %s", sq, piece)
			}
			typed = append(typed, square)
		}
		out[models.PieceType(piece)] = typed
	}
	return out, nil
}

// startingSquares returns one side's starting squares as slices, for
// rebuilding a set with per-side overrides applied.
func (s *Set) startingSquares(side models.Side) map[models.PieceType][]models.Square {
	out := make(map[models.PieceType][]models.Square)
	for piece, squares := range s.starting[side] {
		for sq := range squares {
			out[piece] = append(out[piece], sq)
		}
	}
	return out
}
