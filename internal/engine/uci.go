package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// ParseMove parses a coordinate move of the form [a-h][1-8][a-h][1-8][qrbn]?.
// A promotion letter may be given in either case.
func ParseMove(s string) (chess.Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return chess.Move{}, fmt.Errorf("%q: wrong length: %w", s, errors.ErrMalformedMove)
	}
	from, ok := chess.ParseSquare(s[0:2])
	if !ok {
		return chess.Move{}, fmt.Errorf("%q: bad origin square: %w", s, errors.ErrMalformedMove)
	}
	to, ok := chess.ParseSquare(s[2:4])
	if !ok {
		return chess.Move{}, fmt.Errorf("%q: bad destination square: %w", s, errors.ErrMalformedMove)
	}

	move := chess.NewMove(from, to)
	if len(s) == 5 {
		kind := chess.KindFromCode(s[4])
		if !kind.IsPromotionTarget() {
			return chess.Move{}, fmt.Errorf("%q: bad promotion letter: %w", s, errors.ErrMalformedMove)
		}
		move.Promotion = kind
	}
	return move, nil
}

// ToCoordinate formats a coordinate move. Pass chess.NoKind for no promotion.
func ToCoordinate(from, to chess.Square, promotion chess.PieceKind) string {
	return chess.Move{From: from, To: to, Promotion: promotion}.String()
}
