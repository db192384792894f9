package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

type offset struct {
	row, col int
}

var (
	knightOffsets = []offset{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}

	diagonalDirs = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	straightDirs = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	allDirs      = append(append([]offset{}, diagonalDirs...), straightDirs...)
)

// LegalDestinations returns the pseudo-legal destinations of the side's
// piece on from. Destinations are filtered by occupancy only: the result
// may leave the mover's own king in check. Castling destinations are
// offered from geometry alone. An empty set is returned when from does not
// hold a piece of side.
func LegalDestinations(board *chess.Board, from chess.Square, side chess.Side) chess.SquareSet {
	return destinations(board, from, side, true)
}

// PseudoLegalMoves returns every pseudo-legal move for side, with pawn moves
// to the last rank expanded into the four promotions.
func PseudoLegalMoves(board *chess.Board, side chess.Side) []chess.Move {
	var moves []chess.Move
	board.Each(func(from chess.Square, p chess.Piece) {
		if p.Side != side {
			return
		}
		for _, to := range destinations(board, from, side, true).Squares() {
			if p.Kind == chess.Pawn && to.Row == side.Opposite().BackRow() {
				for _, kind := range []chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight} {
					moves = append(moves, chess.Move{From: from, To: to, Promotion: kind})
				}
				continue
			}
			moves = append(moves, chess.NewMove(from, to))
		}
	})
	return moves
}

// destinations generates reachable squares; withCastling adds the king's
// castling destinations.
func destinations(board *chess.Board, from chess.Square, side chess.Side, withCastling bool) chess.SquareSet {
	piece, ok := board.Occupant(from)
	if !ok || piece.Side != side {
		return 0
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnDestinations(board, from, side)
	case chess.Knight:
		return stepDestinations(board, from, side, knightOffsets)
	case chess.Bishop:
		return slideDestinations(board, from, side, diagonalDirs)
	case chess.Rook:
		return slideDestinations(board, from, side, straightDirs)
	case chess.Queen:
		return slideDestinations(board, from, side, allDirs)
	case chess.King:
		set := stepDestinations(board, from, side, allDirs)
		if withCastling {
			set |= castlingDestinations(board, from, side)
		}
		return set
	}
	return 0
}

// pawnDestinations handles single and double pushes and diagonal captures.
// En passant is never offered here.
func pawnDestinations(board *chess.Board, from chess.Square, side chess.Side) chess.SquareSet {
	var set chess.SquareSet
	dir := side.PawnDirection()

	if one, ok := from.Offset(dir, 0); ok && board.IsEmpty(one) {
		set = set.Add(one)
		if from.Row == side.PawnRow() {
			if two, ok := from.Offset(2*dir, 0); ok && board.IsEmpty(two) {
				set = set.Add(two)
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		diag, ok := from.Offset(dir, dc)
		if !ok {
			continue
		}
		if target, occupied := board.Occupant(diag); occupied && target.Side != side {
			set = set.Add(diag)
		}
	}
	return set
}

// stepDestinations handles single-step pieces (knight, king).
func stepDestinations(board *chess.Board, from chess.Square, side chess.Side, offsets []offset) chess.SquareSet {
	var set chess.SquareSet
	for _, o := range offsets {
		to, ok := from.Offset(o.row, o.col)
		if !ok {
			continue
		}
		if target, occupied := board.Occupant(to); occupied && target.Side == side {
			continue
		}
		set = set.Add(to)
	}
	return set
}

// slideDestinations ray-casts along dirs. A ray stops at the first occupied
// square, which is included only when it holds an enemy piece.
func slideDestinations(board *chess.Board, from chess.Square, side chess.Side, dirs []offset) chess.SquareSet {
	var set chess.SquareSet
	for _, d := range dirs {
		to, ok := from.Offset(d.row, d.col)
		for ok {
			if target, occupied := board.Occupant(to); occupied {
				if target.Side != side {
					set = set.Add(to)
				}
				break
			}
			set = set.Add(to)
			to, ok = to.Offset(d.row, d.col)
		}
	}
	return set
}

// castlingDestinations offers g- and c-file destinations for a king on its
// home square when the squares between king and rook are empty and a rook
// of the same side sits in the corner. It does not know whether the king
// or rook have moved, nor whether any square is attacked.
func castlingDestinations(board *chess.Board, from chess.Square, side chess.Side) chess.SquareSet {
	var set chess.SquareSet
	row := side.BackRow()
	if from.Row != row || from.Col != kingHomeCol {
		return set
	}

	rook := chess.Piece{Kind: chess.Rook, Side: side}
	if board.Get(chess.Square{Row: row, Col: kingsideRookCol}) == rook &&
		rowEmpty(board, row, 5, 6) {
		set = set.Add(chess.Square{Row: row, Col: kingsideKingCol})
	}
	if board.Get(chess.Square{Row: row, Col: queensideRookCol}) == rook &&
		rowEmpty(board, row, 1, 3) {
		set = set.Add(chess.Square{Row: row, Col: queensideKingCol})
	}
	return set
}

// rowEmpty returns true if columns first..last on row are all empty.
func rowEmpty(board *chess.Board, row, first, last int) bool {
	for col := first; col <= last; col++ {
		if !board.IsEmpty(chess.Square{Row: row, Col: col}) {
			return false
		}
	}
	return true
}
