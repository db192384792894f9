package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// CanReach reports whether the piece on from can move to to under the move
// generator's occupancy rules. Castling is never considered.
func CanReach(board *chess.Board, from, to chess.Square) bool {
	piece, ok := board.Occupant(from)
	if !ok {
		return false
	}
	return destinations(board, from, piece.Side, false).Has(to)
}
