package models

// Square represents a board coordinate token. A valid square is exactly
// two characters: an uppercase file letter A-H followed by a rank digit
// 1-8. The type also carries raw tokens that failed that check, so an
// invalid placement keeps the token it was asserted with ("Z9", "a1").
type Square string

// Valid returns true if the square is on the board. Matching is
// case-sensitive: "a1" is not a valid square.
func (sq Square) Valid() bool {
	if len(sq) != 2 {
		return false
	}
	return sq[0] >= 'A' && sq[0] <= 'H' && sq[1] >= '1' && sq[1] <= '8'
}

// File returns the file letter ('A'-'H') of a valid square, 0 otherwise.
func (sq Square) File() byte {
	if !sq.Valid() {
		return 0
	}
	return sq[0]
}

// Rank returns the rank digit ('1'-'8') of a valid square, 0 otherwise.
func (sq Square) Rank() byte {
	if !sq.Valid() {
		return 0
	}
	return sq[1]
}
