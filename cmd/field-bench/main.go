package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/backdrop/field"
	"github.com/plus3/backdrop/frame"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the benchmark should run for.")
	particles := flag.Int("particles", 80, "The number of particles in the field.")
	width := flag.Float64("width", 1920, "The surface width in pixels.")
	height := flag.Float64("height", 1080, "The surface height in pixels.")
	distance := flag.Float64("distance", 150, "The maximum distance at which particles are connected.")
	pointer := flag.Bool("pointer", false, "Sweep the pointer across the field every frame.")
	seed := flag.Uint64("seed", 1, "Seed for particle generation.")
	flag.Parse()

	log.Println("Starting particle field benchmark...")

	cfg := field.DefaultConfig()
	cfg.ParticleCount = *particles
	cfg.ConnectionDistance = *distance

	surface := field.NewRecorder(*width, *height)
	f := field.New(surface, cfg, field.WithRand(rand.New(rand.NewPCG(*seed, *seed))))

	scheduler := frame.NewStepScheduler()
	loop := frame.NewLoop(scheduler)
	loop.Register(f)

	report := &Report{
		Duration:  *duration,
		Particles: *particles,
		Width:     *width,
		Height:    *height,
		Pointer:   *pointer,
		Distance:  f.Config().ConnectionDistance,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	loop.Start()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if *pointer {
				sweepPointer(f, report.TotalTicks)
			}

			tickStart := time.Now()
			scheduler.Step(tickStart)
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
			report.Connections.Samples = append(report.Connections.Samples, f.LastConnections)
			report.TotalTicks++
		}
	}

	loop.Stop()
	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	report.Connections.Finalize()
	report.Systems = loop.Stats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Benchmark finished.")

	fmt.Println("\n\n--- Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// sweepPointer moves the pointer along a circle around the center of the
// field, one degree per tick.
func sweepPointer(f *field.Field, tick int64) {
	w, h := f.Size()
	angle := float64(tick%360) * math.Pi / 180
	radius := math.Min(w, h) / 3
	f.PointerMove(w/2+radius*math.Cos(angle), h/2+radius*math.Sin(angle))
}
