// Package replay reconstructs position histories from game and puzzle
// records.
package replay

// GameRecord is a game as delivered by a game server: an optional start
// position plus either space-separated coordinate moves or PGN movetext.
type GameRecord struct {
	ID         string `json:"id"`
	InitialFEN string `json:"initialFen,omitempty"`
	Moves      string `json:"moves,omitempty"`
	PGN        string `json:"pgn,omitempty"`
}

// PuzzleRecord is a tactics puzzle. The start position is either FEN, or
// the position reached after InitialPly+1 plies of the source game's PGN.
// Solution holds coordinate moves starting from that position.
type PuzzleRecord struct {
	ID         string   `json:"id"`
	FEN        string   `json:"fen,omitempty"`
	PGN        string   `json:"pgn,omitempty"`
	InitialPly int      `json:"initialPly,omitempty"`
	Solution   []string `json:"solution"`
	Rating     int      `json:"rating,omitempty"`
	Themes     []string `json:"themes,omitempty"`
}

// Record is one line of a JSON-lines input file. Exactly one of Game and
// Puzzle is expected to be set.
type Record struct {
	Game   *GameRecord   `json:"game,omitempty"`
	Puzzle *PuzzleRecord `json:"puzzle,omitempty"`
}

// ID returns the identifier of whichever record is set.
func (r Record) ID() string {
	switch {
	case r.Game != nil:
		return r.Game.ID
	case r.Puzzle != nil:
		return r.Puzzle.ID
	}
	return ""
}
