package page

import "time"

// Debouncer collapses a burst of triggers into a single ready signal that
// fires once the burst has been quiet for Wait.
type Debouncer struct {
	Wait     time.Duration
	deadline time.Time
	pending  bool
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(wait time.Duration) *Debouncer {
	return &Debouncer{Wait: wait}
}

// Trigger records an event at now, pushing the deadline back.
func (d *Debouncer) Trigger(now time.Time) {
	d.deadline = now.Add(d.Wait)
	d.pending = true
}

// Ready reports true once per burst, on the first call at or after the
// deadline.
func (d *Debouncer) Ready(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	d.pending = false
	return true
}
