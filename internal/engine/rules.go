package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// HasInsufficientMaterial returns true if neither side has mating material.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceKind
	var whiteBishopOnLight, blackBishopOnLight bool
	sufficient := false

	board.Each(func(sq chess.Square, p chess.Piece) {
		switch p.Kind {
		case chess.King:
			return
		case chess.Pawn, chess.Rook, chess.Queen:
			sufficient = true
			return
		}
		if p.Side == chess.White {
			whitePieces = append(whitePieces, p.Kind)
			if p.Kind == chess.Bishop {
				whiteBishopOnLight = sq.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, p.Kind)
			if p.Kind == chess.Bishop {
				blackBishopOnLight = sq.IsLight()
			}
		}
	})
	if sufficient {
		return false
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return true // lone minor piece
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return true
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// IsStandardMaterial checks if the board has standard starting material.
// Puzzle and analysis setups frequently do not.
func IsStandardMaterial(board *chess.Board) bool {
	expected := map[chess.PieceKind]int{
		chess.Pawn: 8, chess.Rook: 2, chess.Knight: 2,
		chess.Bishop: 2, chess.Queen: 1, chess.King: 1,
	}
	actual := make(map[chess.Piece]int)
	board.Each(func(_ chess.Square, p chess.Piece) { actual[p]++ })

	for kind, n := range expected {
		if actual[chess.W(kind)] != n || actual[chess.B(kind)] != n {
			return false
		}
	}
	return true
}
