package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// ApplyToPosition applies a move to pos.Board and advances pos.State: the
// side to move flips, the fullmove number increments after Black, the
// halfmove clock resets on pawn moves and captures, the en passant target
// is set after a double push and castling rights are revoked as kings and
// rooks leave home.
//
// The move is not checked against the side to move; use ApplyStrict for that.
func ApplyToPosition(pos *chess.Position, move chess.Move) (chess.MoveResult, error) {
	result, err := ApplyMove(&pos.Board, move)
	if err != nil {
		return result, err
	}
	advanceState(&pos.State, result)
	return result, nil
}

// ApplyUCIToPosition parses a coordinate move and applies it to pos.
func ApplyUCIToPosition(pos *chess.Position, uci string) (chess.MoveResult, error) {
	move, err := ParseMove(uci)
	if err != nil {
		return chess.MoveResult{}, err
	}
	return ApplyToPosition(pos, move)
}

// ApplyStrict applies move only if it is legal for the side to move,
// including king safety. It returns ErrIllegalMove otherwise.
func ApplyStrict(pos *chess.Position, move chess.Move) (chess.MoveResult, error) {
	piece, ok := pos.Board.Occupant(move.From)
	if !ok {
		return chess.MoveResult{Move: move}, fmt.Errorf("%s: %w", move, errors.ErrNoPieceAtSource)
	}
	if piece.Side != pos.State.SideToMove {
		return chess.MoveResult{Move: move}, fmt.Errorf("%s: %s to move: %w", move, pos.State.SideToMove, errors.ErrIllegalMove)
	}
	if !StrictDestinations(pos, move.From).Has(move.To) {
		return chess.MoveResult{Move: move}, fmt.Errorf("%s: %w", move, errors.ErrIllegalMove)
	}
	if Promotes(piece, move) && !move.HasPromotion() {
		return chess.MoveResult{Move: move}, fmt.Errorf("%s: promotion piece required: %w", move, errors.ErrIllegalMove)
	}
	if err := CheckPromotionLetter(piece, move); err != nil {
		return chess.MoveResult{Move: move}, err
	}
	return ApplyToPosition(pos, move)
}

// Promotes reports whether move takes a pawn to its last rank.
func Promotes(piece chess.Piece, move chess.Move) bool {
	return piece.Kind == chess.Pawn && move.To.Row == piece.Side.Opposite().BackRow()
}

// CheckPromotionLetter returns ErrIllegalMove when move carries a promotion
// piece but does not take a pawn to its last rank.
func CheckPromotionLetter(piece chess.Piece, move chess.Move) error {
	if move.HasPromotion() && !Promotes(piece, move) {
		return fmt.Errorf("%s: nothing to promote: %w", move, errors.ErrIllegalMove)
	}
	return nil
}

// advanceState updates the non-placement state after an applied move.
func advanceState(state *chess.GameState, result chess.MoveResult) {
	mover := result.Moved.Side
	move := result.Move

	updateCastlingRights(state, result)

	state.EnPassant = false
	if isDoublePush(result.Moved, move) {
		// The skipped square.
		state.EnPassant = true
		state.EPSquare = chess.Square{Row: move.From.Row + sign(move.To.Row-move.From.Row), Col: move.From.Col}
	}

	if result.Moved.Kind == chess.Pawn || result.IsCapture() {
		state.HalfmoveClock = 0
	} else {
		state.HalfmoveClock++
	}

	if mover == chess.Black {
		state.FullmoveNumber++
	}
	state.SideToMove = mover.Opposite()
}
