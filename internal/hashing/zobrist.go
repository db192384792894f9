// Package hashing provides Zobrist keys for positions, repetition counting
// and duplicate detection for replayed games.
package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// Fixed seeds keep keys stable across runs so hashes can be stored.
const (
	seedHi = 0x63686573735f7a6f
	seedLo = 0x627269737430312e
)

var (
	pieceKeys    [2][chess.Pawn + 1][64]uint64
	sideKey      uint64
	castlingKeys [16]uint64
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	initKeys()
}

func initKeys() {
	rng := rand.New(rand.NewPCG(seedHi, seedLo))
	for side := range pieceKeys {
		for kind := chess.King; kind <= chess.Pawn; kind++ {
			for sq := range pieceKeys[side][kind] {
				pieceKeys[side][kind][sq] = rng.Uint64()
			}
		}
	}
	sideKey = rng.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = rng.Uint64()
	}
}

// HashBoard returns the Zobrist key of the piece placement alone.
func HashBoard(board *chess.Board) uint64 {
	var hash uint64
	board.Each(func(sq chess.Square, p chess.Piece) {
		hash ^= pieceKeys[p.Side][p.Kind][sq.Row*chess.BoardSize+sq.Col]
	})
	return hash
}

// Hash returns the Zobrist key of a full position: placement, side to
// move, castling rights and the en passant file when a target is set.
// Clocks are not hashed.
func Hash(pos *chess.Position) uint64 {
	hash := HashBoard(&pos.Board)
	if pos.State.SideToMove == chess.Black {
		hash ^= sideKey
	}
	hash ^= castlingKeys[castlingIndex(pos.State.Castling)]
	if pos.State.EnPassant {
		hash ^= epFileKeys[pos.State.EPSquare.Col]
	}
	return hash
}

func castlingIndex(c chess.CastlingRights) int {
	idx := 0
	if c.WhiteKingside {
		idx |= 1
	}
	if c.WhiteQueenside {
		idx |= 2
	}
	if c.BlackKingside {
		idx |= 4
	}
	if c.BlackQueenside {
		idx |= 8
	}
	return idx
}
