package session

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/notation"
	"github.com/lgbarn/chesscore-go/internal/replay"
)

const subscriberBuffer = 8

// Session owns the single mutable position of one game. Authoritative
// server moves, local moves and premoves are all serialised through it.
type Session struct {
	id       string
	logger   zerolog.Logger
	replayer *replay.Replayer

	mu          sync.Mutex
	startFEN    string
	pos         *chess.Position
	moves       []string
	san         []string
	last        chess.MoveResult
	hasLast     bool
	premove     *chess.Move
	serverPlies int
	version     int

	subscribers map[int]chan Snapshot
	nextSub     int
	closed      bool
}

func newSession(id string, pos *chess.Position, logger zerolog.Logger, replayer *replay.Replayer) *Session {
	return &Session{
		id:          id,
		logger:      logger.With().Str("session", id).Logger(),
		replayer:    replayer,
		startFEN:    engine.EncodePosition(pos),
		pos:         pos,
		subscribers: make(map[int]chan Snapshot),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// ApplyServerMove applies an authoritative move from the game server. Any
// queued premove is then played if it is still pseudo-legal for the side
// to move, and discarded otherwise.
func (s *Session) ApplyServerMove(uci string) (Snapshot, error) {
	move, err := engine.ParseMove(uci)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.apply(move); err != nil {
		return Snapshot{}, err
	}
	s.serverPlies++
	s.playPremove()
	return s.publish(), nil
}

// PlayLocal applies a move made by the local player. The piece must belong
// to the side to move and the destination must be offered by the move
// generator.
func (s *Session) PlayLocal(uci string) (Snapshot, error) {
	move, err := engine.ParseMove(uci)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPlayable(move, s.pos.State.SideToMove); err != nil {
		return Snapshot{}, err
	}
	if err := s.apply(move); err != nil {
		return Snapshot{}, err
	}
	return s.publish(), nil
}

// QueuePremove stores a move for the side not to move, replacing any
// earlier premove. It is validated only when it is played.
func (s *Session) QueuePremove(uci string) (Snapshot, error) {
	move, err := engine.ParseMove(uci)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	waiting := s.pos.State.SideToMove.Opposite()
	piece, ok := s.pos.Board.Occupant(move.From)
	if !ok {
		return Snapshot{}, fmt.Errorf("premove %s: %w", move, errors.ErrNoPieceAtSource)
	}
	if piece.Side != waiting {
		return Snapshot{}, fmt.Errorf("premove %s: %s is to move: %w", move, s.pos.State.SideToMove, errors.ErrIllegalMove)
	}
	s.premove = &move
	return s.publish(), nil
}

// CancelPremove discards any queued premove.
func (s *Session) CancelPremove() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.premove = nil
	return s.publish()
}

// Sync replaces the session state with the server's view: a start FEN
// and every move played since. Updates covering fewer server moves than
// already applied are rejected with ErrStaleUpdate. On error the session
// is unchanged.
func (s *Session) Sync(fen string, moves []string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(moves) < s.serverPlies {
		return Snapshot{}, fmt.Errorf("sync with %d moves, have %d: %w", len(moves), s.serverPlies, errors.ErrStaleUpdate)
	}

	h, err := s.replayer.Replay(replay.GameRecord{ID: s.id, InitialFEN: fen, Moves: strings.Join(moves, " ")})
	if err != nil {
		return Snapshot{}, err
	}

	s.startFEN = h.InitialFEN
	s.pos = h.Final
	s.moves = h.UCI()
	s.san = h.SAN()
	s.serverPlies = len(moves)
	s.last, s.hasLast = chess.MoveResult{}, false
	if n := h.Len(); n > 0 {
		s.last, s.hasLast = h.Plies[n-1].Result, true
	}
	s.playPremove()
	return s.publish(), nil
}

// Destinations returns the generator's destinations for the piece on
// square, whichever side it belongs to.
func (s *Session) Destinations(square string) ([]string, error) {
	from, ok := chess.ParseSquare(square)
	if !ok {
		return nil, fmt.Errorf("square %q: %w", square, errors.ErrMalformedMove)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	piece, ok := s.pos.Board.Occupant(from)
	if !ok {
		return []string{}, nil
	}
	squares := engine.LegalDestinations(&s.pos.Board, from, piece.Side).Squares()
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.String()
	}
	return out, nil
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe returns a channel receiving a snapshot after every change and
// a function that ends the subscription. Slow subscribers miss updates
// rather than block the session.
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Snapshot, subscriberBuffer)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if ch, ok := s.subscribers[id]; ok {
				delete(s.subscribers, id)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// close ends every subscription. Later subscriptions get a closed channel.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
}

func (s *Session) checkPlayable(move chess.Move, side chess.Side) error {
	piece, ok := s.pos.Board.Occupant(move.From)
	if !ok {
		return fmt.Errorf("%s: %w", move, errors.ErrNoPieceAtSource)
	}
	if piece.Side != side {
		return fmt.Errorf("%s: %s is to move: %w", move, side, errors.ErrIllegalMove)
	}
	if !engine.LegalDestinations(&s.pos.Board, move.From, side).Has(move.To) {
		return fmt.Errorf("%s: %w", move, errors.ErrIllegalMove)
	}
	return engine.CheckPromotionLetter(piece, move)
}

// apply must be called with s.mu held.
func (s *Session) apply(move chess.Move) error {
	san := notation.ToAlgebraic(&s.pos.Board, move)
	result, err := engine.ApplyToPosition(s.pos, move)
	if err != nil {
		return err
	}
	s.moves = append(s.moves, move.String())
	s.san = append(s.san, san)
	s.last, s.hasLast = result, true
	return nil
}

// playPremove must be called with s.mu held.
func (s *Session) playPremove() {
	if s.premove == nil {
		return
	}
	move := *s.premove
	s.premove = nil

	if err := s.checkPlayable(move, s.pos.State.SideToMove); err != nil {
		s.logger.Debug().Str("premove", move.String()).Err(err).Msg("premove discarded")
		return
	}
	if err := s.apply(move); err != nil {
		s.logger.Warn().Str("premove", move.String()).Err(err).Msg("premove failed")
	}
}

// snapshot must be called with s.mu held.
func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		ID:         s.id,
		Version:    s.version,
		FEN:        engine.EncodePosition(s.pos),
		SideToMove: s.pos.State.SideToMove.String(),
		Status:     statusOf(s.pos),
		Moves:      append([]string{}, s.moves...),
		SAN:        append([]string{}, s.san...),
		Position:   s.pos.Copy(),
	}
	if s.hasLast {
		snap.LastMove = s.last.Move.String()
		snap.LastMoveKind = s.last.Kind().String()
	}
	if s.premove != nil {
		snap.Premove = s.premove.String()
	}
	return snap
}

// publish bumps the version and notifies subscribers. It must be called
// with s.mu held.
func (s *Session) publish() Snapshot {
	s.version++
	snap := s.snapshot()
	for id, ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			s.logger.Debug().Int("subscriber", id).Int("version", snap.Version).Msg("subscriber lagging, update dropped")
		}
	}
	return snap
}
