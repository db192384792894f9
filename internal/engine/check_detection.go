package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// IsInCheck returns true if the given side's king is attacked. A side with
// no king on the board is never in check.
func IsInCheck(board *chess.Board, side chess.Side) bool {
	kingSq, ok := board.Find(chess.Piece{Kind: chess.King, Side: side})
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSq, side.Opposite())
}

// IsSquareAttacked returns true if sq is attacked by any piece of byside.
func IsSquareAttacked(board *chess.Board, sq chess.Square, bySide chess.Side) bool {
	// Pawns attack from one row behind, relative to their direction.
	pawn := chess.Piece{Kind: chess.Pawn, Side: bySide}
	for _, dc := range []int{-1, 1} {
		if from, ok := sq.Offset(-bySide.PawnDirection(), dc); ok && board.Get(from) == pawn {
			return true
		}
	}

	if attackedByStep(board, sq, chess.Piece{Kind: chess.Knight, Side: bySide}, knightOffsets) {
		return true
	}
	if attackedByStep(board, sq, chess.Piece{Kind: chess.King, Side: bySide}, allDirs) {
		return true
	}

	queen := chess.Piece{Kind: chess.Queen, Side: bySide}
	if attackedBySlider(board, sq, chess.Piece{Kind: chess.Bishop, Side: bySide}, queen, diagonalDirs) {
		return true
	}
	return attackedBySlider(board, sq, chess.Piece{Kind: chess.Rook, Side: bySide}, queen, straightDirs)
}

func attackedByStep(board *chess.Board, sq chess.Square, attacker chess.Piece, offsets []offset) bool {
	for _, o := range offsets {
		if from, ok := sq.Offset(o.row, o.col); ok && board.Get(from) == attacker {
			return true
		}
	}
	return false
}

func attackedBySlider(board *chess.Board, sq chess.Square, slider, queen chess.Piece, dirs []offset) bool {
	for _, d := range dirs {
		from, ok := sq.Offset(d.row, d.col)
		for ok {
			if piece, occupied := board.Occupant(from); occupied {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			from, ok = from.Offset(d.row, d.col)
		}
	}
	return false
}
