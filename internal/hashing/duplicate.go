package hashing

import "github.com/lgbarn/chesscore-go/internal/chess"

// Signature identifies a replayed game by its final position.
type Signature struct {
	// Hash is the Zobrist key of the final position
	Hash uint64
	// Plies is the number of half-moves replayed
	Plies int
}

// SignatureOf builds the signature of a game ending in pos.
func SignatureOf(pos *chess.Position, plies int) Signature {
	return Signature{Hash: Hash(pos), Plies: plies}
}

// DuplicateDetector tracks final positions of replayed games.
type DuplicateDetector struct {
	seen map[uint64][]Signature
	// exactMatch also requires equal ply counts
	exactMatch  bool
	maxCapacity int
	unique      int
	duplicates  int
}

// NewDuplicateDetector creates a detector. maxCapacity of 0 means
// unlimited; once full, new signatures are checked but no longer stored.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		seen:        make(map[uint64][]Signature),
		exactMatch:  exactMatch,
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether sig was seen before, recording it if not.
func (d *DuplicateDetector) CheckAndAdd(sig Signature) bool {
	for _, existing := range d.seen[sig.Hash] {
		if !d.exactMatch || existing.Plies == sig.Plies {
			d.duplicates++
			return true
		}
	}
	if d.IsFull() {
		return false
	}
	d.seen[sig.Hash] = append(d.seen[sig.Hash], sig)
	d.unique++
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicates
}

// UniqueCount returns the number of stored signatures.
func (d *DuplicateDetector) UniqueCount() int {
	return d.unique
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.unique >= d.maxCapacity
}

// Reset clears all stored signatures and counters.
func (d *DuplicateDetector) Reset() {
	d.seen = make(map[uint64][]Signature)
	d.unique = 0
	d.duplicates = 0
}
