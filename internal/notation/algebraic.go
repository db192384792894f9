package notation

import (
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// sanMove holds the decoded parts of an algebraic token.
type sanMove struct {
	kind      chess.PieceKind
	target    chess.Square
	fromFile  int // -1 when not given
	fromRank  int // -1 when not given
	promotion chess.PieceKind
}

// AlgebraicToCoordinate resolves an algebraic token such as "Nbd7", "exd5",
// "e8=Q+" or "O-O" against board for side. Decorations are stripped, the
// target is the trailing square, and any remaining characters are file or
// rank hints. The board is scanned from a1 to h8 and the first piece of the
// right kind that can geometrically reach the target wins, so
// under-specified tokens are resolved without an ambiguity error.
//
// Tokens with no matching piece, or that do not parse, return an error
// wrapping errors.ErrNotFound.
func AlgebraicToCoordinate(token string, board *chess.Board, side chess.Side) (chess.Move, error) {
	text := stripDecorations(token)

	if wing, ok := castlingWing(text); ok {
		return castlingMove(token, board, side, wing)
	}

	sm, ok := decodeSAN(text)
	if !ok {
		return chess.Move{}, errors.Wrapf(errors.ErrNotFound, "malformed token %q", token)
	}

	var (
		move  chess.Move
		found bool
	)
	board.Each(func(from chess.Square, p chess.Piece) {
		if found || p.Side != side || p.Kind != sm.kind {
			return
		}
		if sm.fromFile >= 0 && from.Col != sm.fromFile {
			return
		}
		if sm.fromRank >= 0 && from.Row != sm.fromRank {
			return
		}
		if engine.CanReach(board, from, sm.target) || reachesEnPassant(board, from, sm.target, side) {
			move = chess.NewMove(from, sm.target)
			found = true
		}
	})
	if !found {
		return chess.Move{}, errors.Wrapf(errors.ErrNotFound, "%s token %q", side, token)
	}
	if sm.kind == chess.Pawn {
		move.Promotion = sm.promotion
	}
	return move, nil
}

// stripDecorations removes check, capture and annotation characters.
func stripDecorations(token string) string {
	token = strings.TrimSpace(token)
	token = strings.TrimSuffix(token, "e.p.")
	token = strings.TrimSuffix(token, "ep")

	var sb strings.Builder
	sb.Grow(len(token))
	for i := 0; i < len(token); i++ {
		c := token[i]
		if isCheck(c) || isAnnotation(c) {
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// castlingWing recognises O-O, 0-0, o-o and the dashless forms.
func castlingWing(text string) (chess.CastleSide, bool) {
	if text == "" || !isCastlingChar(text[0]) {
		return chess.NoCastle, false
	}
	count := 0
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case isCastlingChar(c):
			count++
		case c == '-':
		default:
			return chess.NoCastle, false
		}
	}
	switch count {
	case 2:
		return chess.Kingside, true
	case 3:
		return chess.Queenside, true
	}
	return chess.NoCastle, false
}

func castlingMove(token string, board *chess.Board, side chess.Side, wing chess.CastleSide) (chess.Move, error) {
	row := side.BackRow()
	from := chess.Square{Row: row, Col: 4}
	if board.Get(from) != (chess.Piece{Kind: chess.King, Side: side}) {
		return chess.Move{}, errors.Wrapf(errors.ErrNotFound, "%s token %q: no king on %s", side, token, from)
	}
	to := chess.Square{Row: row, Col: 6}
	if wing == chess.Queenside {
		to.Col = 2
	}
	return chess.NewMove(from, to), nil
}

// decodeSAN splits a decoration-free token into piece, hints, target and
// promotion.
func decodeSAN(text string) (sanMove, bool) {
	sm := sanMove{kind: chess.Pawn, fromFile: -1, fromRank: -1}

	// Promotion: "e8=Q", "e8Q" or "e8(Q)".
	text = strings.NewReplacer("(", "", ")", "").Replace(text)
	if i := strings.IndexByte(text, '='); i >= 0 {
		if i != len(text)-2 {
			return sm, false
		}
		sm.promotion = promotionFromLetter(text[i+1])
		if sm.promotion == chess.NoKind {
			return sm, false
		}
		text = text[:i]
	} else if n := len(text); n >= 3 && chess.IsRank(text[n-2]) && !chess.IsRank(text[n-1]) {
		sm.promotion = promotionFromLetter(text[n-1])
		if sm.promotion == chess.NoKind {
			return sm, false
		}
		text = text[:n-1]
	}

	if len(text) < 2 {
		return sm, false
	}
	target, ok := chess.ParseSquare(text[len(text)-2:])
	if !ok {
		return sm, false
	}
	sm.target = target

	prefix := text[:len(text)-2]
	if prefix != "" {
		if kind := pieceFromLetter(prefix[0]); kind != chess.NoKind {
			sm.kind = kind
			prefix = prefix[1:]
		}
	}

	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		switch {
		case chess.IsFile(c):
			sm.fromFile = int(c - chess.FileBase)
		case chess.IsRank(c):
			sm.fromRank = int(c - chess.RankBase)
		case isCapture(c):
		default:
			return sm, false
		}
	}
	return sm, true
}

// reachesEnPassant reports whether the pawn on from can capture en passant
// onto the empty target, judged from the board alone: an enemy pawn must
// stand beside it on the target's file.
func reachesEnPassant(board *chess.Board, from, target chess.Square, side chess.Side) bool {
	if board.Get(from).Kind != chess.Pawn || !board.IsEmpty(target) {
		return false
	}
	if target.Row-from.Row != side.PawnDirection() {
		return false
	}
	if d := target.Col - from.Col; d != 1 && d != -1 {
		return false
	}
	victim := board.Get(chess.Square{Row: from.Row, Col: target.Col})
	return victim == chess.Piece{Kind: chess.Pawn, Side: side.Opposite()}
}
