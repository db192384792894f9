// Package engine provides board manipulation, move generation and FEN
// conversion for chess positions.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// InitialPlacement is the placement field of InitialFEN.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// Decode builds a board from the placement field of a FEN string.
// Any remaining fields are ignored; use ParseFEN to read them.
func Decode(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, &errors.DecodeError{FEN: fen, Reason: "empty FEN string"}
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		err.FEN = fen
		return nil, err
	}
	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// The first rank string is row 7, the eighth is row 0.
func parsePiecePositions(board *chess.Board, positions string) *errors.DecodeError {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.DecodeError{Reason: fmt.Sprintf("expected 8 ranks, got %d", len(ranks))}
	}

	for i, rankStr := range ranks {
		row := chess.BoardSize - 1 - i
		col := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
				if col > chess.BoardSize {
					return &errors.DecodeError{Rank: i + 1, Column: j + 1, Reason: "rank overflows 8 columns"}
				}
			default:
				piece, ok := chess.PieceFromFEN(c)
				if !ok {
					return &errors.DecodeError{Rank: i + 1, Column: j + 1, Reason: fmt.Sprintf("invalid piece character %q", c)}
				}
				if col >= chess.BoardSize {
					return &errors.DecodeError{Rank: i + 1, Column: j + 1, Reason: "rank overflows 8 columns"}
				}
				board.Squares[row][col] = piece
				col++
			}
		}
	}
	return nil
}

// ParseFEN decodes all six FEN fields into a Position. Missing trailing
// fields default to "w - - 0 1"; fields that are present must be well formed.
func ParseFEN(fen string) (*chess.Position, error) {
	board, err := Decode(fen)
	if err != nil {
		return nil, err
	}

	pos := &chess.Position{Board: *board}
	pos.State.FullmoveNumber = 1
	parts := strings.Fields(fen)

	if err := parseSideToMove(&pos.State, parts); err != nil {
		err.FEN = fen
		return nil, err
	}
	if err := parseCastlingRights(&pos.State, parts); err != nil {
		err.FEN = fen
		return nil, err
	}
	if err := parseEnPassant(&pos.State, parts); err != nil {
		err.FEN = fen
		return nil, err
	}
	if err := parseClocks(&pos.State, parts); err != nil {
		err.FEN = fen
		return nil, err
	}
	return pos, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(state *chess.GameState, parts []string) *errors.DecodeError {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		state.SideToMove = chess.White
	case "b":
		state.SideToMove = chess.Black
	default:
		return &errors.DecodeError{Reason: fmt.Sprintf("invalid side to move %q", parts[1])}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(state *chess.GameState, parts []string) *errors.DecodeError {
	state.Castling = chess.CastlingRights{}
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			state.Castling.WhiteKingside = true
		case 'Q':
			state.Castling.WhiteQueenside = true
		case 'k':
			state.Castling.BlackKingside = true
		case 'q':
			state.Castling.BlackQueenside = true
		default:
			return &errors.DecodeError{Reason: fmt.Sprintf("invalid castling field %q", parts[2])}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(state *chess.GameState, parts []string) *errors.DecodeError {
	state.EnPassant = false
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(parts[3])
	if !ok {
		return &errors.DecodeError{Reason: fmt.Sprintf("invalid en passant square %q", parts[3])}
	}
	state.EnPassant = true
	state.EPSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(state *chess.GameState, parts []string) *errors.DecodeError {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return &errors.DecodeError{Reason: fmt.Sprintf("invalid halfmove clock %q", parts[4])}
		}
		state.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return &errors.DecodeError{Reason: fmt.Sprintf("invalid fullmove number %q", parts[5])}
		}
		state.FullmoveNumber = uint(n)
	}
	return nil
}

// EncodeBoard returns the FEN placement field for board.
func EncodeBoard(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// EncodeFull returns a complete FEN string. An empty castling or enPassant
// argument is written as "-".
func EncodeFull(board *chess.Board, active chess.Side, castling, enPassant string, halfmoveClock, fullmoveNumber uint) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(active.Letter())
	sb.WriteByte(' ')
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)
	sb.WriteByte(' ')
	if enPassant == "" {
		enPassant = "-"
	}
	sb.WriteString(enPassant)
	fmt.Fprintf(&sb, " %d %d", halfmoveClock, fullmoveNumber)

	return sb.String()
}

// EncodePosition returns the full FEN string for pos.
func EncodePosition(pos *chess.Position) string {
	ep := "-"
	if pos.State.EnPassant {
		ep = pos.State.EPSquare.String()
	}
	return EncodeFull(&pos.Board, pos.State.SideToMove, pos.State.Castling.String(), ep,
		pos.State.HalfmoveClock, pos.State.FullmoveNumber)
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// NewInitialPosition creates a position with the standard starting setup.
func NewInitialPosition() *chess.Position {
	return chess.NewPosition()
}

// SideToMoveFromFEN returns the active colour of a FEN string, defaulting to
// White when the field is absent.
func SideToMoveFromFEN(fen string) (chess.Side, error) {
	var state chess.GameState
	if err := parseSideToMove(&state, strings.Fields(fen)); err != nil {
		err.FEN = fen
		return chess.White, err
	}
	return state.SideToMove, nil
}
