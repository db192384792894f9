package replay

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/hashing"
)

// Ply is one applied half-move.
type Ply struct {
	Number int    `json:"ply"` // 1-based
	UCI    string `json:"uci"`
	SAN    string `json:"san"`
	FEN    string `json:"fen"` // position after the move
	Hash   uint64 `json:"hash"`

	Result chess.MoveResult `json:"-"`
}

// Analysis holds rule flags gathered while replaying.
type Analysis struct {
	HasFiftyMoveRule        bool `json:"fiftyMoveRule,omitempty"`
	Has75MoveRule           bool `json:"seventyFiveMoveRule,omitempty"`
	HasRepetition           bool `json:"threefoldRepetition,omitempty"`
	Has5FoldRepetition      bool `json:"fivefoldRepetition,omitempty"`
	HasUnderpromotion       bool `json:"underpromotion,omitempty"`
	HasInsufficientMaterial bool `json:"insufficientMaterial,omitempty"`
	HasMaterialOdds         bool `json:"materialOdds,omitempty"`
	Checkmate               bool `json:"checkmate,omitempty"`
	Stalemate               bool `json:"stalemate,omitempty"`
}

// Opening names the opening a game was classified as.
type Opening struct {
	ECO       string `json:"eco"`
	Name      string `json:"name,omitempty"`
	Variation string `json:"variation,omitempty"`
}

// History is the position history of a replayed record.
type History struct {
	GameID     string
	InitialFEN string
	Initial    *chess.Position
	Final      *chess.Position
	Plies      []Ply
	// Skipped holds PGN tokens that did not resolve to a move.
	Skipped  []string
	Analysis Analysis
	// Opening is set by an opening classifier, if one ran.
	Opening *Opening

	initialHash uint64
	captured    [2][]chess.Piece
}

func newHistory(id string, start *chess.Position, fen string) *History {
	return &History{
		GameID:      id,
		InitialFEN:  fen,
		Initial:     start.Copy(),
		Final:       start,
		initialHash: hashing.Hash(start),
	}
}

// Len returns the number of applied plies.
func (h *History) Len() int {
	return len(h.Plies)
}

// UCI returns the applied moves in coordinate form.
func (h *History) UCI() []string {
	out := make([]string, len(h.Plies))
	for i, p := range h.Plies {
		out[i] = p.UCI
	}
	return out
}

// SAN returns the applied moves in algebraic form.
func (h *History) SAN() []string {
	out := make([]string, len(h.Plies))
	for i, p := range h.Plies {
		out[i] = p.SAN
	}
	return out
}

// CapturedBy returns the pieces side has taken, in capture order.
func (h *History) CapturedBy(side chess.Side) []chess.Piece {
	return h.captured[side]
}

// LastMove returns the last applied move, or false for an empty history.
func (h *History) LastMove() (chess.Move, bool) {
	if len(h.Plies) == 0 {
		return chess.Move{}, false
	}
	return h.Plies[len(h.Plies)-1].Result.Move, true
}

// PositionAt returns a copy of the position after n plies, replaying from
// the initial position. n is clamped to the history length.
func (h *History) PositionAt(n int) *chess.Position {
	if n >= len(h.Plies) {
		return h.Final.Copy()
	}
	pos := h.Initial.Copy()
	for _, p := range h.Plies[:max(n, 0)] {
		applyRecorded(pos, p.Result)
	}
	return pos
}

// Snapshot is one entry of the deduplicated position view.
type Snapshot struct {
	Ply  int    `json:"ply"`
	FEN  string `json:"fen"`
	Hash uint64 `json:"hash"`
}

// Positions returns the initial position followed by each position after
// a ply, keeping only the first occurrence of every Zobrist key.
func (h *History) Positions() []Snapshot {
	seen := map[uint64]bool{h.initialHash: true}
	out := []Snapshot{{Ply: 0, FEN: h.InitialFEN, Hash: h.initialHash}}
	for _, p := range h.Plies {
		if seen[p.Hash] {
			continue
		}
		seen[p.Hash] = true
		out = append(out, Snapshot{Ply: p.Number, FEN: p.FEN, Hash: p.Hash})
	}
	return out
}

func (h *History) record(p Ply) {
	h.Plies = append(h.Plies, p)
	if p.Result.IsCapture() {
		mover := p.Result.Moved.Side
		h.captured[mover] = append(h.captured[mover], p.Result.Captured)
	}
}
