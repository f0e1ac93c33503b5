// Package hashing provides position signatures for repetition detection.
package hashing

// CountRepetitions counts how often sig occurs among the last window entries
// of history. A window of zero or less, or one larger than the history,
// covers the whole history.
func CountRepetitions(history []uint64, sig uint64, window int) int {
	start := 0
	if window > 0 && window < len(history) {
		start = len(history) - window
	}
	count := 0
	// Positions repeat with the same side to move, so only every other
	// entry counting back from the most recent can match.
	for i := len(history) - 2; i >= start; i -= 2 {
		if history[i] == sig {
			count++
		}
	}
	return count
}

// PositionCounter tallies how often each signature has been seen. It is not
// safe for concurrent use.
type PositionCounter struct {
	counts map[uint64]int
	max    int
}

// NewPositionCounter creates an empty counter.
func NewPositionCounter() *PositionCounter {
	return &PositionCounter{counts: make(map[uint64]int)}
}

// Add records one occurrence of sig and returns its new count.
func (c *PositionCounter) Add(sig uint64) int {
	c.counts[sig]++
	n := c.counts[sig]
	if n > c.max {
		c.max = n
	}
	return n
}

// Count returns the number of times sig has been recorded.
func (c *PositionCounter) Count(sig uint64) int {
	return c.counts[sig]
}

// MaxCount returns the highest count recorded for any signature.
func (c *PositionCounter) MaxCount() int {
	return c.max
}

// UniqueCount returns the number of distinct signatures recorded.
func (c *PositionCounter) UniqueCount() int {
	return len(c.counts)
}

// Reset clears the counter.
func (c *PositionCounter) Reset() {
	c.counts = make(map[uint64]int)
	c.max = 0
}
