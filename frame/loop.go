package frame

import (
	"reflect"
	"sync"
	"sync/atomic"
	"time"
)

// LoopStats provides statistics about loop execution.
type LoopStats struct {
	Frames      int64
	SystemCount int
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Loop owns the run state of an animation: while running it requests a frame
// from its Scheduler, executes every registered system when the frame fires,
// and requests the next frame. Stop withdraws the pending request.
type Loop struct {
	scheduler Scheduler
	systems   []System
	commands  *Commands
	frames    atomic.Int64

	statsMu     sync.Mutex
	systemStats []*systemStatsInternal

	mu      sync.Mutex
	running bool
	cancel  func()
	last    time.Time
}

// NewLoop creates a stopped loop driven by the given scheduler.
func NewLoop(scheduler Scheduler) *Loop {
	return &Loop{
		scheduler: scheduler,
		systems:   make([]System, 0),
		commands:  newCommands(),
	}
}

// Register appends a system to the loop. Systems run in registration order.
// Register must not be called while the loop is running.
func (l *Loop) Register(system System) {
	l.systems = append(l.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	l.statsMu.Lock()
	l.systemStats = append(l.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
	l.statsMu.Unlock()
}

// Post queues fn to run on the loop, before the systems of the next frame.
// Input and resize handlers use it so their effects land between ticks.
// Post is safe to call from any goroutine.
func (l *Loop) Post(fn func()) {
	l.commands.Defer(fn)
}

// Start requests the first frame. Starting a running loop does nothing.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return
	}
	l.running = true
	l.last = time.Time{}
	l.cancel = l.scheduler.RequestFrame(l.tick)
}

// Stop withdraws the pending frame request. A frame already executing
// finishes but does not request another.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.running {
		return
	}
	l.running = false
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// Running reports whether the loop will execute another frame.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

func (l *Loop) tick(now time.Time) {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.cancel = nil
	var dt float64
	if !l.last.IsZero() {
		dt = now.Sub(l.last).Seconds()
	}
	l.last = now
	l.mu.Unlock()

	l.run(now, dt)

	l.mu.Lock()
	if l.running {
		l.cancel = l.scheduler.RequestFrame(l.tick)
	}
	l.mu.Unlock()
}

// Once executes a single frame immediately with the given delta time,
// independent of the scheduler.
func (l *Loop) Once(dt float64) {
	l.run(time.Now(), dt)
}

func (l *Loop) run(now time.Time, dt float64) {
	l.commands.Flush()

	frame := &Frame{
		Number:    l.frames.Add(1),
		Now:       now,
		DeltaTime: dt,
		Commands:  newCommands(),
	}

	for i, system := range l.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		l.statsMu.Lock()
		stats := l.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
		l.statsMu.Unlock()
	}

	frame.Commands.Flush()
}

// Stats returns statistics about system execution.
func (l *Loop) Stats() *LoopStats {
	l.statsMu.Lock()
	defer l.statsMu.Unlock()

	stats := &LoopStats{
		Frames:      l.frames.Load(),
		SystemCount: len(l.systemStats),
		Systems:     make([]SystemStats, len(l.systemStats)),
	}

	for i, internal := range l.systemStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
