package sessionid

import "sync"

// MaxSequence is the exclusive upper bound of sequence values.
const MaxSequence = 99

// Counter supplies sequence numbers that distinguish ids minted in the same millisecond.
type Counter interface {
	Next() int
}

// SequenceCounter is a mutex guarded counter cycling through [0, MaxSequence).
type SequenceCounter struct {
	mu    sync.Mutex
	value int
}

// NewSequenceCounter returns a counter whose first value is start.
// Out of range values wrap to 0 on the first call to Next.
func NewSequenceCounter(start int) *SequenceCounter {
	return &SequenceCounter{value: start}
}

// Next returns the current value and advances the counter.
func (c *SequenceCounter) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.value >= MaxSequence || c.value < 0 {
		c.value = 0
	}

	v := c.value
	c.value++
	return v
}

var defaultCounter = NewSequenceCounter(0)

// DefaultCounter returns the process-wide counter shared by generators
// created without WithCounter.
func DefaultCounter() *SequenceCounter {
	return defaultCounter
}
