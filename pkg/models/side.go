package models

// Side represents one of the two competing colors.
type Side string

const (
	// SideWhite is the white side.
	SideWhite Side = "White"
	// SideBlack is the black side.
	SideBlack Side = "Black"
)

// Sides lists both sides in report order (White first).
func Sides() []Side {
	return []Side{SideWhite, SideBlack}
}

// Valid returns true if the side is a recognized value.
// Records carrying any other side token are dropped before aggregation.
func (s Side) Valid() bool {
	return s == SideWhite || s == SideBlack
}
