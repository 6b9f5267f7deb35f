// Command backdrop-soak runs a headless scene for a fixed duration and
// prints a timing and leak report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/plus3/backdrop/bridge"
	"github.com/plus3/backdrop/internal/config"
	"github.com/plus3/backdrop/scene"
	"github.com/plus3/backdrop/surface/headless"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	fps := flag.Int("fps", 60, "Simulated frames per second.")
	resizeEvery := flag.Int("resize-every", 0, "Resize the viewport every n frames; 0 disables resizing.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	log.Println("Starting backdrop soak...")

	report, err := soak(cfg, *duration, *fps, *resizeEvery)
	if err != nil {
		log.Fatalf("Soak failed: %v", err)
	}
	report.GCPauseMetrics = *gcPauseMetrics

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.Leaked() {
		log.Fatalf("Teardown leaked: %d live handles, %d double frees, %d listeners",
			report.LiveHandles, report.DoubleFrees, report.Listeners)
	}
	log.Println("Soak complete.")
}

// soak drives one animator with a circling pointer until duration has passed.
// Frames are paced at fps; scene time advances by exactly 1/fps per frame
// even when a frame runs late.
func soak(cfg config.Config, duration time.Duration, fps, resizeEvery int) (*Report, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", fps)
	}

	device := headless.NewDevice()
	hub := bridge.NewHub()

	opts := []scene.Option{scene.WithLogger(log.Default())}
	if cfg.Seed != 0 {
		opts = append(opts, scene.WithSeed(cfg.Seed))
	}

	report := &Report{
		Duration: duration,
		FPS:      fps,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Seed:     cfg.Seed,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	a, err := scene.Initialize(device, hub, scene.Viewport{Width: cfg.Width, Height: cfg.Height}, opts...)
	if err != nil {
		return nil, err
	}
	report.Sprites = device.Last().Live()

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	step := 1 / float64(fps)
	startTime := time.Now()
	var frames int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		case <-ticker.C:
			frames++
			elapsed := float64(frames) * step

			angle := elapsed * 0.5
			vp := a.Viewport()
			hub.EmitPointer(
				float64(vp.Width)/2*(1+0.8*math.Cos(angle)),
				float64(vp.Height)/2*(1+0.8*math.Sin(angle)),
			)
			if resizeEvery > 0 && frames%int64(resizeEvery) == 0 {
				if (frames/int64(resizeEvery))%2 == 1 {
					hub.EmitResize(cfg.Width*3/2, cfg.Height*3/2)
				} else {
					hub.EmitResize(cfg.Width, cfg.Height)
				}
				report.Resizes++
			}

			tickStart := time.Now()
			a.Tick(elapsed)
			report.TickTime.Record(time.Since(tickStart))

			renderStart := time.Now()
			a.Render()
			report.RenderTime.Record(time.Since(renderStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = frames
	report.TickTime.Finalize()
	report.RenderTime.Finalize()
	report.LastFrame = device.Last().Frame()

	stats := a.Stats()
	report.Systems = append(report.Systems, stats.Update.Systems...)
	report.Systems = append(report.Systems, stats.Render.Systems...)

	runtime.ReadMemStats(&report.MemStatsEnd)

	a.Dispose()
	s := device.Last()
	report.LiveHandles = s.Live()
	report.DoubleFrees = s.DoubleFrees()
	report.Listeners = hub.Listeners()

	log.Println("Soak finished.")
	return report, nil
}
