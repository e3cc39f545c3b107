package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/backdrop/frame"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Particles int
	Width     float64
	Height    float64
	Pointer   bool
	Distance  float64

	// Results
	TotalTicks    int64
	TotalTime     time.Duration
	TickTime      Stats
	Connections   Counts
	Systems       []frame.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Counts summarises the number of lines drawn per frame.
type Counts struct {
	Min     int
	Max     int
	Avg     float64
	Samples []int
}

func (c *Counts) Finalize() {
	if len(c.Samples) == 0 {
		return
	}

	total := 0
	c.Min = c.Samples[0]
	c.Max = c.Samples[0]
	for _, sample := range c.Samples {
		c.Min = min(c.Min, sample)
		c.Max = max(c.Max, sample)
		total += sample
	}
	c.Avg = float64(total) / float64(len(c.Samples))
}

func (r *Report) TicksPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.TotalTicks) / r.TotalTime.Seconds()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Particle Field Benchmark Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Particles:** {{.Particles}}
- **Surface:** {{.Width}} x {{.Height}}
- **Connection Distance:** {{.Distance}}
- **Moving Pointer:** {{.Pointer}}

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Time:** {{.TotalTime}}
- **Ticks per Second:** {{printf "%.1f" .TicksPerSecond}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}
- **Lines per Frame:**
  - **Avg:** {{printf "%.1f" .Connections.Avg}}
  - **Min:** {{.Connections.Min}}
  - **Max:** {{.Connections.Max}}

## Systems
| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
- Total GC Pause: {{ns .MemStatsEnd.PauseTotalNs}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
