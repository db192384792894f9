package session

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

func newTestSession(t *testing.T, fen string) *Session {
	t.Helper()
	m := NewManager(zerolog.Nop(), nil)
	s, err := m.Create(fen)
	require.NoError(t, err)
	return s
}

func TestSession_ApplyServerMove(t *testing.T) {
	s := newTestSession(t, "")

	snap, err := s.ApplyServerMove("e2e4")
	require.NoError(t, err)

	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", snap.FEN)
	assert.Equal(t, "black", snap.SideToMove)
	assert.Equal(t, []string{"e2e4"}, snap.Moves)
	assert.Equal(t, []string{"e4"}, snap.SAN)
	assert.Equal(t, "e2e4", snap.LastMove)
	assert.Equal(t, "move", snap.LastMoveKind)
	assert.Equal(t, StatusActive, snap.Status)
	assert.Equal(t, 1, snap.Version)
	assert.Equal(t, snap.FEN, engine.EncodePosition(snap.Position))
}

func TestSession_ApplyServerMove_Errors(t *testing.T) {
	s := newTestSession(t, "")

	_, err := s.ApplyServerMove("e2")
	assert.ErrorIs(t, err, errors.ErrMalformedMove)

	_, err = s.ApplyServerMove("e4e5")
	assert.ErrorIs(t, err, errors.ErrNoPieceAtSource)

	snap := s.Snapshot()
	assert.Equal(t, engine.InitialFEN, snap.FEN)
	assert.Empty(t, snap.Moves)
	assert.Equal(t, 0, snap.Version)
}

func TestSession_PlayLocal(t *testing.T) {
	tests := []struct {
		name    string
		uci     string
		wantErr error
	}{
		{"legal pawn push", "e2e4", nil},
		{"knight", "g1f3", nil},
		{"wrong side", "e7e5", errors.ErrIllegalMove},
		{"not a destination", "e2e5", errors.ErrIllegalMove},
		{"empty source", "e4e5", errors.ErrNoPieceAtSource},
		{"malformed", "e2e9", errors.ErrMalformedMove},
		{"promotion letter short of the last rank", "e2e3q", errors.ErrIllegalMove},
		{"promotion letter on a knight", "g1f3q", errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, "")
			snap, err := s.PlayLocal(tt.uci)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, engine.InitialFEN, s.Snapshot().FEN)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{tt.uci}, snap.Moves)
		})
	}
}

func TestSession_PlayLocalPromotion(t *testing.T) {
	s := newTestSession(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	snap, err := s.PlayLocal("a7a8q")
	require.NoError(t, err)
	assert.Equal(t, "Q3k3/8/8/8/8/8/8/4K3 b - - 0 1", snap.FEN)
	assert.Equal(t, "promotion", snap.LastMoveKind)
}

func TestSession_Premove(t *testing.T) {
	t.Run("played after the server move", func(t *testing.T) {
		s := newTestSession(t, "")
		snap, err := s.QueuePremove("e7e5")
		require.NoError(t, err)
		assert.Equal(t, "e7e5", snap.Premove)

		snap, err = s.ApplyServerMove("e2e4")
		require.NoError(t, err)
		assert.Equal(t, []string{"e2e4", "e7e5"}, snap.Moves)
		assert.Empty(t, snap.Premove)
		assert.Equal(t, "white", snap.SideToMove)
	})

	t.Run("discarded when no longer pseudo-legal", func(t *testing.T) {
		s := newTestSession(t, "")
		_, err := s.ApplyServerMove("e2e4")
		require.NoError(t, err)

		_, err = s.QueuePremove("e4e5")
		require.NoError(t, err)

		snap, err := s.ApplyServerMove("e7e5")
		require.NoError(t, err)
		assert.Equal(t, []string{"e2e4", "e7e5"}, snap.Moves)
		assert.Empty(t, snap.Premove)
		assert.Equal(t, "white", snap.SideToMove)
	})

	t.Run("discarded with a stray promotion letter", func(t *testing.T) {
		s := newTestSession(t, "")
		_, err := s.QueuePremove("e7e6q")
		require.NoError(t, err)

		snap, err := s.ApplyServerMove("e2e4")
		require.NoError(t, err)
		assert.Equal(t, []string{"e2e4"}, snap.Moves)
		assert.Empty(t, snap.Premove)
		assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", snap.FEN)
	})

	t.Run("replaced by a later premove", func(t *testing.T) {
		s := newTestSession(t, "")
		_, err := s.QueuePremove("e7e5")
		require.NoError(t, err)
		snap, err := s.QueuePremove("d7d5")
		require.NoError(t, err)
		assert.Equal(t, "d7d5", snap.Premove)
	})

	t.Run("cancelled", func(t *testing.T) {
		s := newTestSession(t, "")
		_, err := s.QueuePremove("e7e5")
		require.NoError(t, err)
		assert.Empty(t, s.CancelPremove().Premove)

		snap, err := s.ApplyServerMove("e2e4")
		require.NoError(t, err)
		assert.Equal(t, []string{"e2e4"}, snap.Moves)
	})

	t.Run("rejected for the side to move", func(t *testing.T) {
		s := newTestSession(t, "")
		_, err := s.QueuePremove("e2e4")
		assert.ErrorIs(t, err, errors.ErrIllegalMove)

		_, err = s.QueuePremove("e5e4")
		assert.ErrorIs(t, err, errors.ErrNoPieceAtSource)
	})
}

func TestSession_Sync(t *testing.T) {
	s := newTestSession(t, "")

	snap, err := s.Sync("", []string{"e2e4", "e7e5", "g1f3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"e4", "e5", "Nf3"}, snap.SAN)
	assert.Equal(t, "g1f3", snap.LastMove)
	assert.Equal(t, "black", snap.SideToMove)

	_, err = s.Sync("", []string{"e2e4"})
	assert.ErrorIs(t, err, errors.ErrStaleUpdate)

	_, err = s.Sync("", []string{"e2e4", "e7e5", "g1f3", "zz"})
	assert.ErrorIs(t, err, errors.ErrMalformedMove)
	assert.Equal(t, snap.FEN, s.Snapshot().FEN, "failed sync changed the session")

	_, err = s.Sync("8/8/8", []string{"e2e4", "e7e5", "g1f3"})
	assert.ErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestSession_SyncPlaysPremove(t *testing.T) {
	s := newTestSession(t, "")
	_, err := s.QueuePremove("g8f6")
	require.NoError(t, err)

	snap, err := s.Sync(engine.InitialFEN, []string{"d2d4"})
	require.NoError(t, err)
	assert.Equal(t, []string{"d2d4", "g8f6"}, snap.Moves)
}

func TestSession_Status(t *testing.T) {
	s := newTestSession(t, "")
	snap, err := s.Sync("", []string{"f2f3", "e7e5", "g2g4", "d8h4"})
	require.NoError(t, err)
	assert.Equal(t, StatusCheckmate, snap.Status)

	s = newTestSession(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.Equal(t, StatusStalemate, s.Snapshot().Status)

	s = newTestSession(t, "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1")
	assert.Equal(t, StatusCheck, s.Snapshot().Status)
}

func TestSession_Destinations(t *testing.T) {
	s := newTestSession(t, "")

	got, err := s.Destinations("e2")
	require.NoError(t, err)
	assert.Equal(t, []string{"e3", "e4"}, got)

	got, err = s.Destinations("g8")
	require.NoError(t, err)
	assert.Equal(t, []string{"f6", "h6"}, got)

	got, err = s.Destinations("e4")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = s.Destinations("z9")
	assert.ErrorIs(t, err, errors.ErrMalformedMove)
}

func TestSession_Subscribe(t *testing.T) {
	s := newTestSession(t, "")
	updates, cancel := s.Subscribe()

	_, err := s.ApplyServerMove("e2e4")
	require.NoError(t, err)

	select {
	case snap := <-updates:
		assert.Equal(t, 1, snap.Version)
		assert.Equal(t, []string{"e2e4"}, snap.Moves)
	case <-time.After(time.Second):
		t.Fatal("no update received")
	}

	cancel()
	cancel()
	_, open := <-updates
	assert.False(t, open, "channel should be closed after cancel")

	_, err = s.ApplyServerMove("e7e5")
	require.NoError(t, err)
}

func TestSession_SlowSubscriberDoesNotBlock(t *testing.T) {
	s := newTestSession(t, "")
	_, cancel := s.Subscribe()
	defer cancel()

	moves := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for i := 0; i < 3*subscriberBuffer; i++ {
		_, err := s.ApplyServerMove(moves[i%len(moves)])
		require.NoError(t, err)
	}
	assert.Equal(t, 3*subscriberBuffer, s.Snapshot().Version)
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s := newTestSession(t, "")
	moves := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 40; i++ {
			_, _ = s.ApplyServerMove(moves[i%len(moves)])
		}
	}()
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 40; i++ {
				_ = s.Snapshot()
				_, _ = s.Destinations("g1")
			}
		}()
	}
	wg.Wait()

	assert.Len(t, s.Snapshot().Moves, 40)
}
