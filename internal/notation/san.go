package notation

import (
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// ToAlgebraic renders a coordinate move as simplified SAN, given the board
// before the move: a piece letter (none for pawns), "x" on captures with
// pawn captures prefixed by the origin file, the destination, and "=Q"
// style promotion. Castling by king geometry renders as "O-O" or "O-O-O".
// No disambiguation or check suffix is produced; see ToSAN for that.
//
// A move whose origin is empty renders in coordinate form.
func ToAlgebraic(board *chess.Board, move chess.Move) string {
	piece, ok := board.Occupant(move.From)
	if !ok {
		return move.String()
	}
	if wing := engine.CastleSideOf(piece, move); wing != chess.NoCastle {
		return wing.String()
	}

	var sb strings.Builder
	writeMoveBody(&sb, board, piece, move, "")
	return sb.String()
}

// ToAlgebraicUCI parses a coordinate move string and renders it with
// ToAlgebraic.
func ToAlgebraicUCI(board *chess.Board, uci string) (string, error) {
	move, err := engine.ParseMove(uci)
	if err != nil {
		return "", err
	}
	return ToAlgebraic(board, move), nil
}

// ToSAN renders full SAN for a move in pos: like ToAlgebraic, plus file or
// rank disambiguation between pieces that can legally reach the same square
// and a "+" or "#" suffix. It uses the strict legality layer.
func ToSAN(pos *chess.Position, move chess.Move) string {
	piece, ok := pos.Board.Occupant(move.From)
	if !ok {
		return move.String()
	}

	var sb strings.Builder
	if wing := engine.CastleSideOf(piece, move); wing != chess.NoCastle {
		sb.WriteString(wing.String())
	} else {
		writeMoveBody(&sb, &pos.Board, piece, move, disambiguation(pos, piece, move))
	}

	next := pos.Copy()
	if _, err := engine.ApplyToPosition(next, move); err == nil {
		switch {
		case engine.IsCheckmate(next):
			sb.WriteByte('#')
		case engine.IsInCheck(&next.Board, next.State.SideToMove):
			sb.WriteByte('+')
		}
	}
	return sb.String()
}

// ToCoordinate formats a coordinate move. Pass chess.NoKind for no promotion.
func ToCoordinate(from, to chess.Square, promotion chess.PieceKind) string {
	return engine.ToCoordinate(from, to, promotion)
}

func writeMoveBody(sb *strings.Builder, board *chess.Board, piece chess.Piece, move chess.Move, hint string) {
	isPawn := piece.Kind == chess.Pawn
	if !isPawn {
		sb.WriteByte(piece.Kind.Letter())
		sb.WriteString(hint)
	}

	// A pawn changing file captures, en passant included.
	if !board.IsEmpty(move.To) || (isPawn && move.FileDelta() != 0) {
		if isPawn {
			sb.WriteByte(move.From.File())
		}
		sb.WriteByte('x')
	}

	sb.WriteString(move.To.String())

	if isPawn && move.HasPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(move.Promotion.Letter())
	}
}

// disambiguation returns the origin file, rank or square needed to tell
// the move apart from other same-kind pieces that can legally reach the
// destination.
func disambiguation(pos *chess.Position, piece chess.Piece, move chess.Move) string {
	if piece.Kind == chess.Pawn || piece.Kind == chess.King {
		return ""
	}

	var others []chess.Square
	pos.Board.Each(func(sq chess.Square, p chess.Piece) {
		if sq == move.From || p != piece {
			return
		}
		if engine.StrictDestinations(pos, sq).Has(move.To) {
			others = append(others, sq)
		}
	})
	if len(others) == 0 {
		return ""
	}

	var sameFile, sameRank bool
	for _, other := range others {
		if other.Col == move.From.Col {
			sameFile = true
		}
		if other.Row == move.From.Row {
			sameRank = true
		}
	}

	switch {
	case !sameFile:
		return string(move.From.File())
	case !sameRank:
		return string(move.From.Rank())
	default:
		return move.From.String()
	}
}
