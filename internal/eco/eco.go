// Package eco classifies replayed games by ECO (Encyclopaedia of Chess
// Openings) code.
package eco

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/replay"
)

// HalfMoveLimit is the maximum distance from an ECO line for a match.
const HalfMoveLimit = 6

// tableSize is the size of the ECO hash table.
const tableSize = 4096

// Entry is one opening line of the book. Moves are coordinate moves;
// PGN is used when Moves is empty.
type Entry struct {
	ECO       string `json:"eco"`
	Name      string `json:"name"`
	Variation string `json:"variation,omitempty"`
	Moves     string `json:"moves,omitempty"`
	PGN       string `json:"pgn,omitempty"`

	requiredHash   uint64 // position after the last move
	cumulativeHash uint64 // XOR of every position along the line
	halfMoves      int
	next           *Entry
}

// Opening returns the classification recorded on a history.
func (e *Entry) Opening() *replay.Opening {
	return &replay.Opening{ECO: e.ECO, Name: e.Name, Variation: e.Variation}
}

// Classifier maps positions reached by book lines to their entries.
// Loading is not safe for concurrent use; Classify is, once loading is
// done.
type Classifier struct {
	table         [tableSize]*Entry
	maxHalfMoves  int
	entriesLoaded int
	replayer      *replay.Replayer
}

// NewClassifier creates an empty classifier.
func NewClassifier() *Classifier {
	return &Classifier{
		maxHalfMoves: HalfMoveLimit,
		replayer:     replay.New(),
	}
}

// LoadFromFile loads a JSON-lines opening book.
func (c *Classifier) LoadFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: book path is user-specified
	if err != nil {
		return fmt.Errorf("cannot open ECO file: %w", err)
	}
	defer file.Close() //nolint:errcheck // read-only

	return c.LoadFromReader(file)
}

// LoadFromReader loads one Entry per line. Blank lines and lines starting
// with '#' are skipped.
func (c *Classifier) LoadFromReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			return fmt.Errorf("ECO file line %d: %v: %w", lineNum, err, errors.ErrInvalidConfig)
		}
		if err := c.Add(e); err != nil {
			return fmt.Errorf("ECO file line %d: %w", lineNum, err)
		}
	}
	return scanner.Err()
}

// Add replays an entry's line and stores it. Entries without an ECO code
// or without moves are ignored.
func (c *Classifier) Add(e Entry) error {
	if e.ECO == "" {
		return nil
	}

	var h *replay.History
	var err error
	if strings.TrimSpace(e.Moves) != "" {
		h, err = c.replayer.Replay(replay.GameRecord{ID: e.ECO, Moves: e.Moves})
	} else {
		h, err = c.replayer.ReplayPGN(e.ECO, "", e.PGN)
	}
	if err != nil {
		return err
	}
	if h.Len() == 0 {
		return nil
	}

	entry := &e
	for _, p := range h.Plies {
		entry.cumulativeHash ^= p.Hash
	}
	entry.requiredHash = h.Plies[h.Len()-1].Hash
	entry.halfMoves = h.Len()

	ix := entry.requiredHash % tableSize
	for existing := c.table[ix]; existing != nil; existing = existing.next {
		if existing.requiredHash == entry.requiredHash &&
			existing.halfMoves == entry.halfMoves &&
			existing.cumulativeHash == entry.cumulativeHash {
			// first entry for a line wins
			return nil
		}
	}

	entry.next = c.table[ix]
	c.table[ix] = entry
	c.entriesLoaded++

	if entry.halfMoves+HalfMoveLimit > c.maxHalfMoves {
		c.maxHalfMoves = entry.halfMoves + HalfMoveLimit
	}
	return nil
}

// Classify returns the deepest book entry the game passes through, or
// nil. A position reached by a different move order still matches when
// its depth is within HalfMoveLimit of the book line.
func (c *Classifier) Classify(h *replay.History) *Entry {
	if c.entriesLoaded == 0 {
		return nil
	}

	var bestMatch *Entry
	var cumulativeHash uint64
	for i, p := range h.Plies {
		halfMoves := i + 1
		if halfMoves > c.maxHalfMoves {
			break
		}
		cumulativeHash ^= p.Hash
		if match := c.findMatch(p.Hash, cumulativeHash, halfMoves); match != nil {
			bestMatch = match
		}
	}
	return bestMatch
}

// Annotate sets h.Opening when the game is classified.
func (c *Classifier) Annotate(h *replay.History) bool {
	match := c.Classify(h)
	if match == nil {
		return false
	}
	h.Opening = match.Opening()
	return true
}

func (c *Classifier) findMatch(posHash, cumulativeHash uint64, halfMoves int) *Entry {
	var possible *Entry
	for entry := c.table[posHash%tableSize]; entry != nil; entry = entry.next {
		if entry.requiredHash != posHash {
			continue
		}
		if entry.halfMoves == halfMoves && entry.cumulativeHash == cumulativeHash {
			return entry
		}
		if abs(halfMoves-entry.halfMoves) <= HalfMoveLimit {
			possible = entry
		}
	}
	return possible
}

// EntriesLoaded returns the number of ECO entries loaded.
func (c *Classifier) EntriesLoaded() int {
	return c.entriesLoaded
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
