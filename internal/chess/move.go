package chess

// Move is a coordinate ("UCI-style") move: origin, destination and an
// optional promotion kind (NoKind when absent).
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// NewMove creates a move without promotion.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// HasPromotion returns true if the move carries a promotion letter.
func (m Move) HasPromotion() bool {
	return m.Promotion != NoKind
}

// FileDelta returns the signed column difference between To and From.
func (m Move) FileDelta() int {
	return m.To.Col - m.From.Col
}

// String serialises the move as 4 or 5 characters, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	buf := make([]byte, 0, 5)
	buf = append(buf, m.From.File(), m.From.Rank(), m.To.File(), m.To.Rank())
	if m.HasPromotion() {
		buf = append(buf, m.Promotion.Code())
	}
	return string(buf)
}

// CastleSide identifies which way a king castled.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns the SAN castling token, or "" for NoCastle.
func (c CastleSide) String() string {
	switch c {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	default:
		return ""
	}
}

// MoveKind is the UI/sound category of an applied move.
type MoveKind int

const (
	PlainMove MoveKind = iota
	CaptureMove
	CastleMove
	PromotionMove
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case CaptureMove:
		return "capture"
	case CastleMove:
		return "castle"
	case PromotionMove:
		return "promotion"
	default:
		return "move"
	}
}

// MoveResult reports what happened when a move was applied.
type MoveResult struct {
	Move  Move
	Moved Piece

	// Captured is the piece removed from the board (NoPiece if none).
	// For en passant it is the pawn taken from CapturedSquare, which is not
	// the destination square.
	Captured       Piece
	CapturedSquare Square

	Castle   CastleSide
	RookFrom Square
	RookTo   Square

	EnPassant bool

	// Promotion is the kind placed on the destination (NoKind if none).
	Promotion PieceKind
}

// IsCapture returns true if a piece was removed from the board.
func (r MoveResult) IsCapture() bool {
	return !r.Captured.IsEmpty()
}

// IsCastle returns true if the move relocated a rook as part of castling.
func (r MoveResult) IsCastle() bool {
	return r.Castle != NoCastle
}

// IsPromotion returns true if a pawn was promoted.
func (r MoveResult) IsPromotion() bool {
	return r.Promotion != NoKind
}

// Kind returns the dominant category for display and sound selection.
// Promotion wins over capture, which wins over a plain move.
func (r MoveResult) Kind() MoveKind {
	switch {
	case r.IsPromotion():
		return PromotionMove
	case r.IsCastle():
		return CastleMove
	case r.IsCapture():
		return CaptureMove
	default:
		return PlainMove
	}
}
