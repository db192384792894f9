// Package matching selects replayed games by rule events, material and
// positions reached.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/replay"
)

// GameMatcher is implemented by every game criterion.
type GameMatcher interface {
	// Match returns true if the game matches the matcher's criteria.
	Match(h *replay.History) bool

	// Name returns a descriptive name for this matcher.
	Name() string
}

// MatchMode specifies how multiple matchers are combined.
type MatchMode int

const (
	// MatchAll requires all matchers to match (AND logic).
	MatchAll MatchMode = iota

	// MatchAny requires at least one matcher to match (OR logic).
	MatchAny
)

// CompositeMatcher combines multiple GameMatchers with AND or OR logic.
type CompositeMatcher struct {
	matchers []GameMatcher
	mode     MatchMode
}

// NewCompositeMatcher creates a new CompositeMatcher with the given mode and matchers.
func NewCompositeMatcher(mode MatchMode, matchers ...GameMatcher) *CompositeMatcher {
	return &CompositeMatcher{
		matchers: matchers,
		mode:     mode,
	}
}

// Match implements GameMatcher.
func (c *CompositeMatcher) Match(h *replay.History) bool {
	if len(c.matchers) == 0 {
		// AND of nothing is true, OR of nothing is false
		return c.mode == MatchAll
	}

	switch c.mode {
	case MatchAll:
		for _, m := range c.matchers {
			if !m.Match(h) {
				return false
			}
		}
		return true
	case MatchAny:
		for _, m := range c.matchers {
			if m.Match(h) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Name implements GameMatcher.
func (c *CompositeMatcher) Name() string {
	if len(c.matchers) == 0 {
		return "CompositeMatcher(empty)"
	}

	names := make([]string, len(c.matchers))
	for i, m := range c.matchers {
		names[i] = m.Name()
	}

	modeStr := "AND"
	if c.mode == MatchAny {
		modeStr = "OR"
	}

	return fmt.Sprintf("CompositeMatcher(%s: %s)", modeStr, strings.Join(names, ", "))
}

// Add adds a matcher to the composite.
func (c *CompositeMatcher) Add(m GameMatcher) {
	c.matchers = append(c.matchers, m)
}

// Len returns the number of matchers in the composite.
func (c *CompositeMatcher) Len() int {
	return len(c.matchers)
}

// eachBoard calls fn with the initial board and the board after every ply
// until fn returns true. It reports whether fn did.
func eachBoard(h *replay.History, fn func(*chess.Board) bool) bool {
	if fn(&h.Initial.Board) {
		return true
	}
	for _, p := range h.Plies {
		board, err := engine.Decode(p.FEN)
		if err != nil {
			return false
		}
		if fn(board) {
			return true
		}
	}
	return false
}
