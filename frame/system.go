package frame

import "time"

// System is a unit of per-frame work run by a Loop.
// Systems are executed in registration order, once per frame, and never
// concurrently with each other.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *Frame)

// Execute calls f(frame).
func (f SystemFunc) Execute(frame *Frame) {
	f(frame)
}

// Frame describes the tick being executed.
type Frame struct {
	// Number counts frames from 1 for the lifetime of the Loop.
	Number int64

	// Now is the time the frame scheduler fired.
	Now time.Time

	// DeltaTime is the number of seconds since the previous frame, or 0 on
	// the first frame after Start.
	DeltaTime float64

	// Commands collects work to run once every system has executed.
	Commands *Commands
}
