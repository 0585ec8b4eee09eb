package sequence

import "sync/atomic"

// Sequence hands out bill numbers: strictly increasing, one per issued
// receipt, never reused or decremented. Implementations are injected
// into the billing layer; there is no package-level counter.
type Sequence interface {
	// Next returns the next number in the sequence.
	Next() int64
}

// Counter is an in-memory Sequence whose lifecycle is the process
// lifetime. The increment is atomic so issuing bills stays safe if
// billing is ever driven concurrently.
type Counter struct {
	n atomic.Int64
}

// NewCounter creates a Counter that will hand out start+1, start+2, ...
func NewCounter(start int64) *Counter {
	c := &Counter{}
	c.n.Store(start)
	return c
}

func (c *Counter) Next() int64 {
	return c.n.Add(1)
}

// Current returns the last number handed out without advancing.
func (c *Counter) Current() int64 {
	return c.n.Load()
}
