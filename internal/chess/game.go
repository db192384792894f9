package chess

// CastlingRights records the four independent castling permissions.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the castling state of the initial position.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Has returns the right for the given side and wing.
func (c CastlingRights) Has(side Side, wing CastleSide) bool {
	switch {
	case side == White && wing == Kingside:
		return c.WhiteKingside
	case side == White && wing == Queenside:
		return c.WhiteQueenside
	case side == Black && wing == Kingside:
		return c.BlackKingside
	case side == Black && wing == Queenside:
		return c.BlackQueenside
	}
	return false
}

// Revoke clears the right for the given side and wing.
func (c *CastlingRights) Revoke(side Side, wing CastleSide) {
	switch {
	case side == White && wing == Kingside:
		c.WhiteKingside = false
	case side == White && wing == Queenside:
		c.WhiteQueenside = false
	case side == Black && wing == Kingside:
		c.BlackKingside = false
	case side == Black && wing == Queenside:
		c.BlackQueenside = false
	}
}

// RevokeSide clears both rights of one side.
func (c *CastlingRights) RevokeSide(side Side) {
	c.Revoke(side, Kingside)
	c.Revoke(side, Queenside)
}

// String returns the FEN castling field, "-" when no right remains.
func (c CastlingRights) String() string {
	buf := make([]byte, 0, 4)
	if c.WhiteKingside {
		buf = append(buf, 'K')
	}
	if c.WhiteQueenside {
		buf = append(buf, 'Q')
	}
	if c.BlackKingside {
		buf = append(buf, 'k')
	}
	if c.BlackQueenside {
		buf = append(buf, 'q')
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}

// GameState holds everything about a position that is not piece placement.
type GameState struct {
	SideToMove Side
	Castling   CastlingRights

	// Is an en passant capture possible? If so EPSquare is the square the
	// capturing pawn moves to.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current full move number, starting at 1.
	FullmoveNumber uint
}

// InitialState returns the state of the standard starting position.
func InitialState() GameState {
	return GameState{
		SideToMove:     White,
		Castling:       AllCastlingRights,
		FullmoveNumber: 1,
	}
}

// Ply returns the zero-based half-move index implied by the state.
func (s GameState) Ply() int {
	n := int(s.FullmoveNumber)
	if n < 1 {
		n = 1
	}
	ply := (n - 1) * 2
	if s.SideToMove == Black {
		ply++
	}
	return ply
}

// Position pairs a Board with its GameState.
type Position struct {
	Board Board
	State GameState
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p := &Position{State: InitialState()}
	p.Board.SetupInitialPosition()
	return p
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := &Position{}
	*newPos = *p
	return newPos
}
