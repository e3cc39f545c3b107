package frame

import "sync"

// Commands buffers functions that must run between ticks rather than while a
// system is executing. It is safe for concurrent use.
type Commands struct {
	mu     sync.Mutex
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn for the next flush.
func (c *Commands) Defer(fn func()) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.defers = append(c.defers, fn)
	c.mu.Unlock()
}

// Len reports how many functions are waiting.
func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.defers)
}

// Flush runs the queued functions in the order they were deferred and resets
// the buffer. Functions deferred while flushing wait for the next flush.
func (c *Commands) Flush() int {
	c.mu.Lock()
	pending := c.defers
	c.defers = nil
	c.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
	return len(pending)
}
