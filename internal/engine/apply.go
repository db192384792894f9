package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// ApplyMove applies a coordinate move to the board in place and reports
// what happened. Nothing on the board changes when an error is returned.
//
// Castling and en passant are inferred from piece geometry only: a king
// moving two files relocates the rook, and a pawn moving diagonally onto an
// empty square removes the pawn beside its origin. Legality must be checked
// by the caller, e.g. with LegalDestinations.
func ApplyMove(board *chess.Board, move chess.Move) (chess.MoveResult, error) {
	result := chess.MoveResult{Move: move}

	if _, ok := chess.NewSquare(move.From.Row, move.From.Col); !ok {
		return result, fmt.Errorf("origin off board: %w", errors.ErrMalformedMove)
	}
	if _, ok := chess.NewSquare(move.To.Row, move.To.Col); !ok {
		return result, fmt.Errorf("destination off board: %w", errors.ErrMalformedMove)
	}

	piece, ok := board.Occupant(move.From)
	if !ok {
		logger.Warn().Str("move", move.String()).Msg("no piece at source square")
		return result, fmt.Errorf("%s: %w", move, errors.ErrNoPieceAtSource)
	}
	result.Moved = piece

	target := board.Get(move.To)
	if !target.IsEmpty() {
		result.Captured = target
		result.CapturedSquare = move.To
	}

	board.Set(move.From, chess.NoPiece)

	if move.HasPromotion() && piece.Kind == chess.Pawn {
		applyPromotion(board, move, piece.Side, &result)
		return result, nil
	}

	if piece.Kind == chess.King && abs(move.FileDelta()) == 2 {
		applyCastle(board, piece, move, &result)
	}

	if piece.Kind == chess.Pawn && move.FileDelta() != 0 && target.IsEmpty() {
		applyEnPassant(board, move, &result)
	}

	board.Set(move.To, piece)
	return result, nil
}

// ApplyUCI parses a coordinate move string and applies it to the board.
func ApplyUCI(board *chess.Board, uci string) (chess.MoveResult, error) {
	move, err := ParseMove(uci)
	if err != nil {
		return chess.MoveResult{}, err
	}
	return ApplyMove(board, move)
}

// ApplyMoveList applies space-separated coordinate moves in order and
// returns one result per applied move. It stops at the first failing move.
func ApplyMoveList(board *chess.Board, moves []string) ([]chess.MoveResult, error) {
	results := make([]chess.MoveResult, 0, len(moves))
	for i, uci := range moves {
		result, err := ApplyUCI(board, uci)
		if err != nil {
			return results, &errors.GameError{Err: err, PlyNum: i + 1, MoveText: uci}
		}
		results = append(results, result)
	}
	return results, nil
}
