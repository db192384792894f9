package chess

import (
	"math/bits"
	"strings"
)

// SquareSet is a set of squares stored as a 64-bit mask, bit row*8+col.
type SquareSet uint64

func squareBit(sq Square) SquareSet {
	return SquareSet(1) << uint(sq.Row*BoardSize+sq.Col)
}

// NewSquareSet returns a set holding the given squares.
func NewSquareSet(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}

// Add returns the set with sq included. Off-board squares are ignored.
func (s SquareSet) Add(sq Square) SquareSet {
	if !onBoard(sq.Row, sq.Col) {
		return s
	}
	return s | squareBit(sq)
}

// Remove returns the set with sq excluded.
func (s SquareSet) Remove(sq Square) SquareSet {
	if !onBoard(sq.Row, sq.Col) {
		return s
	}
	return s &^ squareBit(sq)
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return onBoard(sq.Row, sq.Col) && s&squareBit(sq) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty returns true if the set holds no squares.
func (s SquareSet) IsEmpty() bool {
	return s == 0
}

// Squares returns the members ordered a1, b1, ..., h8.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for m := uint64(s); m != 0; m &= m - 1 {
		i := bits.TrailingZeros64(m)
		out = append(out, Square{Row: i / BoardSize, Col: i % BoardSize})
	}
	return out
}

// String returns the member names separated by spaces.
func (s SquareSet) String() string {
	names := make([]string, 0, s.Len())
	for _, sq := range s.Squares() {
		names = append(names, sq.String())
	}
	return strings.Join(names, " ")
}
