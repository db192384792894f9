package hashing

// RepetitionCounter counts how often each position key has occurred.
type RepetitionCounter struct {
	counts map[uint64]int
	max    int
}

// NewRepetitionCounter creates an empty counter.
func NewRepetitionCounter() *RepetitionCounter {
	return &RepetitionCounter{counts: make(map[uint64]int)}
}

// Add records one occurrence of hash and returns its new count.
func (r *RepetitionCounter) Add(hash uint64) int {
	r.counts[hash]++
	n := r.counts[hash]
	if n > r.max {
		r.max = n
	}
	return n
}

// Count returns the number of occurrences of hash.
func (r *RepetitionCounter) Count(hash uint64) int {
	return r.counts[hash]
}

// MaxRepeats returns the highest count of any position.
func (r *RepetitionCounter) MaxRepeats() int {
	return r.max
}

// HasThreefold reports whether any position occurred at least three times.
func (r *RepetitionCounter) HasThreefold() bool {
	return r.max >= 3
}

// HasFivefold reports whether any position occurred at least five times.
func (r *RepetitionCounter) HasFivefold() bool {
	return r.max >= 5
}
