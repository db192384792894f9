package replay

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/notation"
)

// Replayer applies recorded moves to reconstruct position histories.
// A Replayer holds no per-game state and may be shared between goroutines.
type Replayer struct {
	logger zerolog.Logger
	strict bool
}

// Option configures a Replayer.
type Option func(*Replayer)

// WithLogger sets the logger used for skipped-move warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Replayer) {
		r.logger = l.With().Str("component", "replay").Logger()
	}
}

// WithStrict rejects moves that leave the mover's king in check or that
// are played by the wrong side, and renders full SAN with check marks.
func WithStrict(strict bool) Option {
	return func(r *Replayer) {
		r.strict = strict
	}
}

// New creates a Replayer. The default is permissive, with no logging.
func New(opts ...Option) *Replayer {
	r := &Replayer{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Replay reconstructs the history of a game record. Coordinate moves take
// precedence over PGN when both are present. A FEN that does not decode,
// or a coordinate move that is malformed or has no piece on its origin,
// stops the replay with a *errors.GameError.
func (r *Replayer) Replay(rec GameRecord) (*History, error) {
	if strings.TrimSpace(rec.Moves) == "" && rec.PGN != "" {
		return r.ReplayPGN(rec.ID, rec.InitialFEN, rec.PGN)
	}

	h, err := r.start(rec.ID, rec.InitialFEN)
	if err != nil {
		return nil, err
	}
	for _, uci := range strings.Fields(rec.Moves) {
		move, err := engine.ParseMove(uci)
		if err == nil {
			err = r.play(h, move)
		}
		if err != nil {
			return h, &errors.GameError{Err: err, GameID: rec.ID, PlyNum: h.Len() + 1, MoveText: uci}
		}
	}
	r.finish(h)
	return h, nil
}

// ReplayPGN reconstructs a history from PGN movetext starting at fen (the
// standard position when empty). Tokens that do not resolve to a move, or
// that the strict layer rejects, are logged and skipped.
func (r *Replayer) ReplayPGN(id, fen, movetext string) (*History, error) {
	return r.replayTokens(id, fen, notation.Tokenize(movetext), -1)
}

func (r *Replayer) replayTokens(id, fen string, tokens []string, limit int) (*History, error) {
	h, err := r.start(id, fen)
	if err != nil {
		return nil, err
	}
	for _, token := range tokens {
		if limit >= 0 && h.Len() >= limit {
			break
		}
		pos := h.Final
		move, err := notation.AlgebraicToCoordinate(token, &pos.Board, pos.State.SideToMove)
		if err == nil {
			err = r.play(h, move)
		}
		switch {
		case err == nil:
		case errors.Is(err, errors.ErrNotFound), errors.Is(err, errors.ErrIllegalMove):
			r.logger.Warn().
				Str("game", id).
				Int("ply", h.Len()+1).
				Str("token", token).
				Err(err).
				Msg("skipping unresolved move")
			h.Skipped = append(h.Skipped, token)
		default:
			return h, &errors.GameError{Err: err, GameID: id, PlyNum: h.Len() + 1, MoveText: token}
		}
	}
	r.finish(h)
	return h, nil
}

func (r *Replayer) start(id, fen string) (*History, error) {
	if fen == "" {
		fen = engine.InitialFEN
	}
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, &errors.GameError{Err: err, GameID: id}
	}
	h := newHistory(id, pos, engine.EncodePosition(pos))
	h.Analysis.HasMaterialOdds = !engine.IsStandardMaterial(&pos.Board)
	return h, nil
}

// play renders SAN, applies move to h.Final and records the ply.
func (r *Replayer) play(h *History, move chess.Move) error {
	pos := h.Final
	san := r.san(pos, move)

	var (
		result chess.MoveResult
		err    error
	)
	if r.strict {
		result, err = engine.ApplyStrict(pos, move)
	} else {
		result, err = engine.ApplyToPosition(pos, move)
	}
	if err != nil {
		return err
	}

	h.record(Ply{
		Number: h.Len() + 1,
		UCI:    move.String(),
		SAN:    san,
		FEN:    engine.EncodePosition(pos),
		Hash:   hashing.Hash(pos),
		Result: result,
	})
	return nil
}

func (r *Replayer) san(pos *chess.Position, move chess.Move) string {
	if r.strict {
		return notation.ToSAN(pos, move)
	}
	return notation.ToAlgebraic(&pos.Board, move)
}

// finish fills in the rule analysis.
func (r *Replayer) finish(h *History) {
	a := &h.Analysis
	reps := hashing.NewRepetitionCounter()
	reps.Add(h.initialHash)

	pos := h.Initial.Copy()
	for _, p := range h.Plies {
		applyRecorded(pos, p.Result)
		if pos.State.HalfmoveClock >= 100 {
			a.HasFiftyMoveRule = true
		}
		if pos.State.HalfmoveClock >= 150 {
			a.Has75MoveRule = true
		}
		if p.Result.IsPromotion() && p.Result.Promotion != chess.Queen {
			a.HasUnderpromotion = true
		}
		reps.Add(p.Hash)
	}
	a.HasRepetition = reps.HasThreefold()
	a.Has5FoldRepetition = reps.HasFivefold()
	a.HasInsufficientMaterial = engine.HasInsufficientMaterial(&h.Final.Board)
	a.Checkmate = engine.IsCheckmate(h.Final)
	a.Stalemate = engine.IsStalemate(h.Final)
}

// applyRecorded re-applies a move already known to succeed.
func applyRecorded(pos *chess.Position, result chess.MoveResult) {
	_, _ = engine.ApplyToPosition(pos, result.Move)
}
