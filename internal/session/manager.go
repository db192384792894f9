// Package session keeps one authoritative position per live game and
// serialises server updates, local moves and premoves against it.
package session

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/replay"
)

// Manager holds the live sessions keyed by id.
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	logger   zerolog.Logger
	replayer *replay.Replayer
}

// NewManager creates an empty manager. Sync replays use replayer.
func NewManager(logger zerolog.Logger, replayer *replay.Replayer) *Manager {
	if replayer == nil {
		replayer = replay.New(replay.WithLogger(logger))
	}
	return &Manager{
		sessions: make(map[string]*Session),
		logger:   logger.With().Str("component", "session").Logger(),
		replayer: replayer,
	}
}

// Create starts a session from fen, or the standard position when fen is
// empty.
func (m *Manager) Create(fen string) (*Session, error) {
	if fen == "" {
		fen = engine.InitialFEN
	}
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	s := newSession(id, pos, m.logger, m.replayer)

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	m.logger.Info().Str("session", id).Str("fen", fen).Msg("session created")
	return s, nil
}

// Get returns the session with id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, errors.ErrSessionNotFound)
	}
	return s, nil
}

// Delete removes the session with id.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return fmt.Errorf("session %q: %w", id, errors.ErrSessionNotFound)
	}
	delete(m.sessions, id)
	s.close()
	m.logger.Info().Str("session", id).Msg("session deleted")
	return nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// IDs returns the live session ids in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
