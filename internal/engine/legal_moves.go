package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// StrictDestinations is the opt-in legality layer over LegalDestinations.
// It drops destinations that leave the mover's king attacked, only offers
// castling when the position's castling right remains and the king neither
// starts on nor crosses an attacked square, and adds the en passant
// destination recorded in the state.
func StrictDestinations(pos *chess.Position, from chess.Square) chess.SquareSet {
	piece, ok := pos.Board.Occupant(from)
	if !ok {
		return 0
	}
	side := piece.Side

	candidates := destinations(&pos.Board, from, side, true)
	if piece.Kind == chess.Pawn && pos.State.EnPassant {
		dir := side.PawnDirection()
		ep := pos.State.EPSquare
		if ep.Row == from.Row+dir && abs(ep.Col-from.Col) == 1 && pos.Board.IsEmpty(ep) {
			candidates = candidates.Add(ep)
		}
	}

	var legal chess.SquareSet
	for _, to := range candidates.Squares() {
		move := chess.NewMove(from, to)
		if wing := CastleSideOf(piece, move); wing != chess.NoCastle {
			if !canCastle(pos, side, wing) {
				continue
			}
		}
		if tryMove(&pos.Board, move, side) {
			legal = legal.Add(to)
		}
	}
	return legal
}

// canCastle checks the castling right and that the king does not castle
// out of or through check.
func canCastle(pos *chess.Position, side chess.Side, wing chess.CastleSide) bool {
	if !pos.State.Castling.Has(side, wing) {
		return false
	}
	row := side.BackRow()
	enemy := side.Opposite()
	if IsSquareAttacked(&pos.Board, chess.Square{Row: row, Col: kingHomeCol}, enemy) {
		return false
	}
	crossCol := kingsideRookTo
	if wing == chess.Queenside {
		crossCol = queensideRookTo
	}
	return !IsSquareAttacked(&pos.Board, chess.Square{Row: row, Col: crossCol}, enemy)
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, move chess.Move, side chess.Side) bool {
	testBoard := board.Copy()
	if _, err := ApplyMove(testBoard, move); err != nil {
		return false
	}
	return !IsInCheck(testBoard, side)
}

// HasLegalMoves returns true if the given side has at least one legal move.
func HasLegalMoves(pos *chess.Position, side chess.Side) bool {
	found := false
	pos.Board.Each(func(sq chess.Square, p chess.Piece) {
		if found || p.Side != side {
			return
		}
		if !StrictDestinations(pos, sq).IsEmpty() {
			found = true
		}
	})
	return found
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	side := pos.State.SideToMove
	return IsInCheck(&pos.Board, side) && !HasLegalMoves(pos, side)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	side := pos.State.SideToMove
	return !IsInCheck(&pos.Board, side) && !HasLegalMoves(pos, side)
}
