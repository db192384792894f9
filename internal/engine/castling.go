package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

const (
	kingHomeCol      = 4
	kingsideRookCol  = 7
	queensideRookCol = 0
	kingsideKingCol  = 6
	queensideKingCol = 2
	kingsideRookTo   = 5
	queensideRookTo  = 3
)

// applyCastle relocates the rook for a king move of two files.
// Kingside (to column 6) moves the rook 7 -> 5, queenside (to column 2)
// moves it 0 -> 3, on the king's row. Without a same-side rook on the
// corner nothing but the king moves.
func applyCastle(board *chess.Board, king chess.Piece, move chess.Move, result *chess.MoveResult) {
	row := move.From.Row
	var rookFrom, rookTo chess.Square

	switch move.To.Col {
	case kingsideKingCol:
		rookFrom = chess.Square{Row: row, Col: kingsideRookCol}
		rookTo = chess.Square{Row: row, Col: kingsideRookTo}
		result.Castle = chess.Kingside
	case queensideKingCol:
		rookFrom = chess.Square{Row: row, Col: queensideRookCol}
		rookTo = chess.Square{Row: row, Col: queensideRookTo}
		result.Castle = chess.Queenside
	default:
		return
	}

	rook := board.Get(rookFrom)
	if rook.Kind != chess.Rook || rook.Side != king.Side {
		return
	}
	board.Set(rookFrom, chess.NoPiece)
	board.Set(rookTo, rook)
	result.RookFrom = rookFrom
	result.RookTo = rookTo
}

// CastleSideOf returns the castling wing implied by a king move, or
// NoCastle if the piece is not a king moving two files.
func CastleSideOf(piece chess.Piece, move chess.Move) chess.CastleSide {
	if piece.Kind != chess.King || abs(move.FileDelta()) != 2 {
		return chess.NoCastle
	}
	switch move.To.Col {
	case kingsideKingCol:
		return chess.Kingside
	case queensideKingCol:
		return chess.Queenside
	}
	return chess.NoCastle
}

// updateCastlingRights removes rights when a king moves or a rook leaves
// or is captured on its home corner.
func updateCastlingRights(state *chess.GameState, result chess.MoveResult) {
	if result.Moved.Kind == chess.King {
		state.Castling.RevokeSide(result.Moved.Side)
	}
	if result.Moved.Kind == chess.Rook {
		revokeCornerRight(state, result.Moved.Side, result.Move.From)
	}
	if result.Captured.Kind == chess.Rook {
		revokeCornerRight(state, result.Captured.Side, result.CapturedSquare)
	}
}

// revokeCornerRight clears the right tied to the rook corner sq.
func revokeCornerRight(state *chess.GameState, side chess.Side, sq chess.Square) {
	if sq.Row != side.BackRow() {
		return
	}
	switch sq.Col {
	case kingsideRookCol:
		state.Castling.Revoke(side, chess.Kingside)
	case queensideRookCol:
		state.Castling.Revoke(side, chess.Queenside)
	}
}
