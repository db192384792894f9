package matching

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/replay"
)

// PlyBounds matches games whose length lies in [Min, Max].
type PlyBounds struct {
	Min, Max uint
}

// Match implements GameMatcher.
func (b PlyBounds) Match(h *replay.History) bool {
	n := uint(h.Len())
	return n >= b.Min && n <= b.Max
}

// Name implements GameMatcher.
func (b PlyBounds) Name() string {
	return fmt.Sprintf("PlyBounds(%d-%d)", b.Min, b.Max)
}

// RuleMatcher matches games whose analysis has a flag set.
type RuleMatcher struct {
	name string
	flag func(a replay.Analysis) bool
}

// Match implements GameMatcher.
func (r RuleMatcher) Match(h *replay.History) bool {
	return r.flag(h.Analysis)
}

// Name implements GameMatcher.
func (r RuleMatcher) Name() string {
	return r.name
}

// Rule matchers, one per analysis flag.
var (
	Checkmate            = RuleMatcher{"Checkmate", func(a replay.Analysis) bool { return a.Checkmate }}
	Stalemate            = RuleMatcher{"Stalemate", func(a replay.Analysis) bool { return a.Stalemate }}
	Underpromotion       = RuleMatcher{"Underpromotion", func(a replay.Analysis) bool { return a.HasUnderpromotion }}
	Repetition           = RuleMatcher{"Repetition", func(a replay.Analysis) bool { return a.HasRepetition }}
	FiftyMoveRule        = RuleMatcher{"FiftyMoveRule", func(a replay.Analysis) bool { return a.HasFiftyMoveRule }}
	InsufficientMaterial = RuleMatcher{"InsufficientMaterial", func(a replay.Analysis) bool { return a.HasInsufficientMaterial }}
)

// FromConfig builds the AND of every filter enabled in f. With nothing
// enabled the result matches every game.
func FromConfig(f *config.FilterConfig) (*CompositeMatcher, error) {
	c := NewCompositeMatcher(MatchAll)
	if f.CheckPlyBounds {
		c.Add(PlyBounds{Min: f.MinPlies, Max: f.MaxPlies})
	}

	rules := []struct {
		on bool
		m  RuleMatcher
	}{
		{f.MatchCheckmate, Checkmate},
		{f.MatchStalemate, Stalemate},
		{f.MatchUnderpromotion, Underpromotion},
		{f.MatchRepetition, Repetition},
		{f.MatchFiftyMoveRule, FiftyMoveRule},
		{f.MatchInsufficientMaterial, InsufficientMaterial},
	}
	for _, r := range rules {
		if r.on {
			c.Add(r.m)
		}
	}

	if f.Material != "" {
		mm, err := NewMaterialMatcher(f.Material, f.MaterialExact)
		if err != nil {
			return nil, err
		}
		c.Add(mm)
	}

	if len(f.Positions) > 0 {
		pm := NewPositionMatcher()
		for _, p := range f.Positions {
			pm.Add(p)
		}
		c.Add(pm)
	}
	return c, nil
}
