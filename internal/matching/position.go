package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/replay"
)

// FENPattern represents a FEN pattern to match.
// Supports wildcards:
//   - ? matches any square (empty or occupied)
//   - ! matches any non-empty square
//   - * matches zero or more of anything
//   - A matches any white piece
//   - a matches any black piece
//   - _ matches empty square
type FENPattern struct {
	Pattern string
	Hash    uint64 // placement hash for exact FEN matches
	IsExact bool   // true if this is an exact FEN (no wildcards)
	ranks   []string
}

// PositionMatcher matches games that pass through a position.
type PositionMatcher struct {
	patterns    []*FENPattern
	exactHashes map[uint64]*FENPattern
}

// NewPositionMatcher creates a new position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{
		exactHashes: make(map[uint64]*FENPattern),
	}
}

// AddFEN adds an exact position. Only the placement field is compared.
func (pm *PositionMatcher) AddFEN(fen string) error {
	board, err := engine.Decode(fen)
	if err != nil {
		return err
	}

	hash := hashing.HashBoard(board)
	pattern := &FENPattern{
		Pattern: fen,
		Hash:    hash,
		IsExact: true,
	}

	pm.patterns = append(pm.patterns, pattern)
	pm.exactHashes[hash] = pattern
	return nil
}

// AddPattern adds a placement pattern with wildcards. With invert, the
// colour-swapped, vertically mirrored pattern is added too.
func (pm *PositionMatcher) AddPattern(pattern string, invert bool) {
	pm.patterns = append(pm.patterns, &FENPattern{
		Pattern: pattern,
		ranks:   strings.Split(pattern, "/"),
	})

	if invert {
		inverted := invertPattern(pattern)
		pm.patterns = append(pm.patterns, &FENPattern{
			Pattern: inverted,
			ranks:   strings.Split(inverted, "/"),
		})
	}
}

// Add adds s as an exact FEN when it decodes, and as a wildcard pattern
// otherwise. Blank input is ignored.
func (pm *PositionMatcher) Add(s string) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return
	}
	if err := pm.AddFEN(s); err != nil {
		pm.AddPattern(fields[0], false)
	}
}

// Match implements GameMatcher.
func (pm *PositionMatcher) Match(h *replay.History) bool {
	return pm.MatchGame(h) != nil
}

// Name implements GameMatcher.
func (pm *PositionMatcher) Name() string {
	return fmt.Sprintf("PositionMatcher(%d)", len(pm.patterns))
}

// MatchGame returns the first pattern matched by any position of the
// game, or nil.
func (pm *PositionMatcher) MatchGame(h *replay.History) *FENPattern {
	if len(pm.patterns) == 0 {
		return nil
	}

	var found *FENPattern
	eachBoard(h, func(board *chess.Board) bool {
		found = pm.matchPosition(board)
		return found != nil
	})
	return found
}

// matchPosition checks if a position matches any pattern.
func (pm *PositionMatcher) matchPosition(board *chess.Board) *FENPattern {
	if pattern, ok := pm.exactHashes[hashing.HashBoard(board)]; ok {
		return pattern
	}

	var ranks [8]string
	for _, pattern := range pm.patterns {
		if pattern.IsExact {
			continue
		}
		if ranks[0] == "" {
			ranks = boardToRanks(board)
		}
		if matchPattern(ranks, pattern) {
			return pattern
		}
	}
	return nil
}

// matchPattern checks board ranks (rank 1 first) against a pattern
// written rank 8 first.
func matchPattern(boardRanks [8]string, pattern *FENPattern) bool {
	if len(pattern.ranks) == 0 {
		return false
	}
	for i, patternRank := range pattern.ranks {
		if i >= 8 {
			break
		}
		if !matchRank(boardRanks[7-i], patternRank) {
			return false
		}
	}
	return true
}

// boardToRanks converts a board to rank strings (rank 1 first), with '_'
// for empty squares.
func boardToRanks(board *chess.Board) [8]string {
	var ranks [8]string
	for row := 0; row < chess.BoardSize; row++ {
		var sb strings.Builder
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				sb.WriteByte('_')
				continue
			}
			sb.WriteByte(piece.FENLetter())
		}
		ranks[row] = sb.String()
	}
	return ranks
}

// matchRank matches a board rank string against a pattern rank.
func matchRank(boardRank, patternRank string) bool {
	bi := 0
	pi := 0

	for pi < len(patternRank) {
		if bi >= len(boardRank) && patternRank[pi] != '*' {
			return false
		}

		c := patternRank[pi]

		switch c {
		case '*':
			pi++
			if pi >= len(patternRank) {
				return true
			}
			for bi <= len(boardRank) {
				if matchRank(boardRank[bi:], patternRank[pi:]) {
					return true
				}
				bi++
			}
			return false

		case '?':
			bi++
			pi++

		case '!':
			if boardRank[bi] == '_' {
				return false
			}
			bi++
			pi++

		case 'A':
			if boardRank[bi] < 'A' || boardRank[bi] > 'Z' {
				return false
			}
			bi++
			pi++

		case 'a':
			if boardRank[bi] < 'a' || boardRank[bi] > 'z' {
				return false
			}
			bi++
			pi++

		case '_':
			if boardRank[bi] != '_' {
				return false
			}
			bi++
			pi++

		case '1', '2', '3', '4', '5', '6', '7', '8':
			count := int(c - '0')
			for i := 0; i < count; i++ {
				if bi >= len(boardRank) || boardRank[bi] != '_' {
					return false
				}
				bi++
			}
			pi++

		default:
			if boardRank[bi] != c {
				return false
			}
			bi++
			pi++
		}
	}

	return bi == len(boardRank)
}

// invertPattern swaps colours and reverses the rank order of a pattern.
func invertPattern(pattern string) string {
	var result strings.Builder
	for _, c := range pattern {
		switch {
		case c >= 'A' && c <= 'Z':
			result.WriteRune(c + 32)
		case c >= 'a' && c <= 'z':
			result.WriteRune(c - 32)
		default:
			result.WriteRune(c)
		}
	}

	ranks := strings.Split(result.String(), "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	return strings.Join(ranks, "/")
}

// PatternCount returns the number of patterns.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.patterns)
}
