// Package notation converts between coordinate moves and algebraic
// notation, and splits PGN movetext into move tokens.
package notation

import "github.com/lgbarn/chesscore-go/internal/chess"

// pieceFromLetter returns the piece kind named by an algebraic piece letter.
// Lowercase letters are files, not pieces, except in promotion suffixes
// where promotionFromLetter is used instead.
func pieceFromLetter(c byte) chess.PieceKind {
	switch c {
	case 'K':
		return chess.King
	case 'Q', 'D': // D = Dutch/German Queen
		return chess.Queen
	case 'R', 'T': // T = Dutch/German Rook
		return chess.Rook
	case 'B', 'L': // L = Dutch/German Bishop
		return chess.Bishop
	case 'N', 'S': // S = German Knight
		return chess.Knight
	case 'P':
		return chess.Pawn
	}
	return chess.NoKind
}

// promotionFromLetter accepts a promotion letter in either case.
func promotionFromLetter(c byte) chess.PieceKind {
	if kind := pieceFromLetter(c); kind != chess.NoKind {
		if kind.IsPromotionTarget() {
			return kind
		}
		return chess.NoKind
	}
	if kind := chess.KindFromCode(c); kind.IsPromotionTarget() {
		return kind
	}
	return chess.NoKind
}

// isCapture returns true if c is a capture or separator character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// isAnnotation returns true for the suffix characters of !, ?, !! etc.
func isAnnotation(c byte) bool {
	return c == '!' || c == '?'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
