package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// applyPromotion places the promoted piece on the destination square. The
// origin has already been cleared.
func applyPromotion(board *chess.Board, move chess.Move, side chess.Side, result *chess.MoveResult) {
	board.Set(move.To, chess.Piece{Kind: move.Promotion, Side: side})
	result.Promotion = move.Promotion
}

// applyEnPassant removes the pawn captured en passant. It sits on the
// origin row in the destination column, not on the destination square.
func applyEnPassant(board *chess.Board, move chess.Move, result *chess.MoveResult) {
	capturedSq := chess.Square{Row: move.From.Row, Col: move.To.Col}
	captured := board.Get(capturedSq)
	board.Set(capturedSq, chess.NoPiece)
	if !captured.IsEmpty() {
		result.Captured = captured
		result.CapturedSquare = capturedSq
		result.EnPassant = true
	}
}

// isDoublePush returns true if a pawn of side moved two rows from its
// starting row.
func isDoublePush(piece chess.Piece, move chess.Move) bool {
	return piece.Kind == chess.Pawn &&
		move.From.Col == move.To.Col &&
		move.From.Row == piece.Side.PawnRow() &&
		abs(move.To.Row-move.From.Row) == 2
}
