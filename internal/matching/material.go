package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/replay"
)

// MaterialMatcher matches games that reach a material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern    string
	exactMatch bool
	counts     [2]map[chess.PieceKind]int
}

// NewMaterialMatcher parses a pattern of the form "QRN:qrn": white pieces
// before the colon, black pieces after it. Letters follow FEN (K, Q, R,
// B, N, P). With exact, pieces not named must be absent; otherwise the
// named pieces are a minimum.
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{
		pattern:    pattern,
		exactMatch: exact,
		counts:     [2]map[chess.PieceKind]int{{}, {}},
	}

	white, black, _ := strings.Cut(pattern, ":")
	if err := mm.parseSide(white, chess.White); err != nil {
		return nil, err
	}
	if err := mm.parseSide(black, chess.Black); err != nil {
		return nil, err
	}
	return mm, nil
}

func (mm *MaterialMatcher) parseSide(s string, side chess.Side) error {
	for i := 0; i < len(s); i++ {
		piece, ok := chess.PieceFromFEN(s[i])
		if !ok || piece.Side != side {
			return fmt.Errorf("material pattern %q: unexpected %q: %w", mm.pattern, s[i], errors.ErrInvalidConfig)
		}
		mm.counts[side][piece.Kind]++
	}
	return nil
}

// Match reports whether any position of the game has the material.
func (mm *MaterialMatcher) Match(h *replay.History) bool {
	return eachBoard(h, mm.matchBoard)
}

// Name implements GameMatcher.
func (mm *MaterialMatcher) Name() string {
	return fmt.Sprintf("MaterialMatcher(%s)", mm.pattern)
}

func (mm *MaterialMatcher) matchBoard(board *chess.Board) bool {
	var have [2]map[chess.PieceKind]int
	have[chess.White] = map[chess.PieceKind]int{}
	have[chess.Black] = map[chess.PieceKind]int{}
	board.Each(func(_ chess.Square, p chess.Piece) {
		have[p.Side][p.Kind]++
	})

	for _, side := range []chess.Side{chess.White, chess.Black} {
		for kind, want := range mm.counts[side] {
			if have[side][kind] < want {
				return false
			}
			if mm.exactMatch && have[side][kind] != want {
				return false
			}
		}
		if !mm.exactMatch {
			continue
		}
		// no extra pieces beyond what's specified
		for kind, n := range have[side] {
			if n > 0 && mm.counts[side][kind] == 0 {
				return false
			}
		}
	}
	return true
}
