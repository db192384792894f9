// Package chess provides core chess types and operations.
package chess

// Side represents the colour of a piece or player.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Letter returns the FEN active-colour letter for the side.
func (s Side) Letter() byte {
	if s == White {
		return 'w'
	}
	return 'b'
}

// PawnDirection returns +1 for White, -1 for Black.
func (s Side) PawnDirection() int {
	if s == White {
		return 1
	}
	return -1
}

// PawnRow returns the row pawns of this side start on.
func (s Side) PawnRow() int {
	if s == White {
		return 1
	}
	return 6
}

// BackRow returns the side's home rank as a row index.
func (s Side) BackRow() int {
	if s == White {
		return 0
	}
	return 7
}

// PieceKind represents a chess piece type.
// The zero value is NoKind and marks an empty square.
type PieceKind int

const (
	NoKind PieceKind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

var kindNames = [...]string{"none", "king", "queen", "rook", "bishop", "knight", "pawn"}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Code returns the lowercase single-letter code (k, q, r, b, n, p).
// NoKind has code 0.
func (k PieceKind) Code() byte {
	codes := [...]byte{0, 'k', 'q', 'r', 'b', 'n', 'p'}
	if k >= 0 && int(k) < len(codes) {
		return codes[k]
	}
	return 0
}

// Letter returns the uppercase SAN letter, e.g. 'N' for a knight.
func (k PieceKind) Letter() byte {
	c := k.Code()
	if c == 0 {
		return 0
	}
	return c - 'a' + 'A'
}

// KindFromCode converts a piece letter in either case to a kind.
// It returns NoKind for anything that is not a piece letter.
func KindFromCode(c byte) PieceKind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// IsPromotionTarget reports whether a pawn may promote to k.
func (k PieceKind) IsPromotionTarget() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// Piece is an immutable (kind, side) pair. The zero value is no piece.
type Piece struct {
	Kind PieceKind
	Side Side
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Side: White}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Side: Black}
}

// IsEmpty returns true if p is the empty-square value.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// FENLetter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) FENLetter() byte {
	if p.IsEmpty() {
		return 0
	}
	if p.Side == White {
		return p.Kind.Letter()
	}
	return p.Kind.Code()
}

// PieceFromFEN converts a FEN piece letter to a piece.
func PieceFromFEN(c byte) (Piece, bool) {
	kind := KindFromCode(c)
	if kind == NoKind {
		return NoPiece, false
	}
	side := White
	if c >= 'a' && c <= 'z' {
		side = Black
	}
	return Piece{Kind: kind, Side: side}, true
}

var glyphs = map[Piece]string{
	W(King): "♔", W(Queen): "♕", W(Rook): "♖", W(Bishop): "♗", W(Knight): "♘", W(Pawn): "♙",
	B(King): "♚", B(Queen): "♛", B(Rook): "♜", B(Bishop): "♝", B(Knight): "♞", B(Pawn): "♟",
}

// Glyph returns the Unicode chess symbol for the piece, or "" when empty.
func (p Piece) Glyph() string {
	return glyphs[p]
}

// String returns e.g. "white knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Side.String() + " " + p.Kind.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
)

// IsFile returns true if c is a valid file character.
func IsFile(c byte) bool {
	return c >= FileBase && c < FileBase+BoardSize
}

// IsRank returns true if c is a valid rank character.
func IsRank(c byte) bool {
	return c >= RankBase && c < RankBase+BoardSize
}
