package chess

// Square is an on-board coordinate. Row 0 is rank 1, Col 0 is file 'a'.
// Off-board coordinates are never stored in a Square: constructors report
// them through a boolean instead.
type Square struct {
	Row int
	Col int
}

// NewSquare returns the square at (row, col), or false if it is off the board.
func NewSquare(row, col int) (Square, bool) {
	if !onBoard(row, col) {
		return Square{}, false
	}
	return Square{Row: row, Col: col}, true
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 || !IsFile(s[0]) || !IsRank(s[1]) {
		return Square{}, false
	}
	return Square{Row: int(s[1] - RankBase), Col: int(s[0] - FileBase)}, true
}

// MustSquare parses a square name and panics if it is invalid.
// Intended for tables and tests with literal names.
func MustSquare(s string) Square {
	sq, ok := ParseSquare(s)
	if !ok {
		panic("chess: invalid square " + s)
	}
	return sq
}

// Offset returns the square dRow rows and dCol columns away, or false if it
// falls off the board.
func (sq Square) Offset(dRow, dCol int) (Square, bool) {
	return NewSquare(sq.Row+dRow, sq.Col+dCol)
}

// File returns the file letter 'a'-'h'.
func (sq Square) File() byte {
	return byte(FileBase + sq.Col)
}

// Rank returns the rank digit '1'-'8'.
func (sq Square) Rank() byte {
	return byte(RankBase + sq.Row)
}

// String returns the algebraic name of the square, e.g. "e4".
func (sq Square) String() string {
	return string([]byte{sq.File(), sq.Rank()})
}

// IsLight returns true if the square is a light square.
func (sq Square) IsLight() bool {
	return (sq.Row+sq.Col)%2 == 1
}

func onBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Board is an 8x8 grid of optional pieces indexed [row][col].
// Board is a comparable value: two boards are equal when every cell holds
// the same piece.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingPosition returns a board with the standard initial arrangement.
func StartingPosition() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = W(backRank[col])
		b.Squares[1][col] = W(Pawn)
		b.Squares[6][col] = B(Pawn)
		b.Squares[7][col] = B(backRank[col])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// Get returns the piece at sq. Off-board squares always read as empty.
func (b *Board) Get(sq Square) Piece {
	if !onBoard(sq.Row, sq.Col) {
		return NoPiece
	}
	return b.Squares[sq.Row][sq.Col]
}

// Occupant returns the piece at sq and whether the square is occupied.
func (b *Board) Occupant(sq Square) (Piece, bool) {
	p := b.Get(sq)
	return p, !p.IsEmpty()
}

// Set places a piece at sq, or empties it when p is NoPiece.
// Writes to off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if onBoard(sq.Row, sq.Col) {
		b.Squares[sq.Row][sq.Col] = p
	}
}

// IsEmpty returns true if sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Squares == other.Squares
}

// PieceCount returns the number of occupied squares.
func (b *Board) PieceCount() int {
	n := 0
	b.Each(func(Square, Piece) { n++ })
	return n
}

// Each calls fn for every occupied square, rank 1 first, file a first.
func (b *Board) Each(fn func(sq Square, p Piece)) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.Squares[row][col]; !p.IsEmpty() {
				fn(Square{Row: row, Col: col}, p)
			}
		}
	}
}

// Find returns the first square holding p, or false if none does.
func (b *Board) Find(p Piece) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == p {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}
