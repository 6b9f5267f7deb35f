package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/backdrop/ecs"
	"github.com/plus3/backdrop/surface/headless"
)

type Report struct {
	// Configuration
	Duration time.Duration
	FPS      int
	Width    int
	Height   int
	Seed     uint64

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	TickTime       Stats
	RenderTime     Stats
	Systems        []ecs.SystemStats
	LastFrame      headless.FrameStats
	Resizes        int
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats

	// Teardown
	Sprites     int
	LiveHandles int
	DoubleFrees int
	Listeners   int
}

// Stats keeps running timing figures so a long soak holds no per-frame samples.
type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Count int64
	total time.Duration
}

func (s *Stats) Record(d time.Duration) {
	if s.Count == 0 {
		s.Min, s.Max = d, d
	}
	s.Min = min(s.Min, d)
	s.Max = max(s.Max, d)
	s.total += d
	s.Count++
}

func (s *Stats) Finalize() {
	if s.Count == 0 {
		return
	}
	s.Avg = s.total / time.Duration(s.Count)
}

// Leaked reports whether teardown left anything behind.
func (r *Report) Leaked() bool {
	return r.LiveHandles != 0 || r.DoubleFrees != 0 || r.Listeners != 0
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Backdrop Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Simulated FPS:** {{.FPS}}
- **Viewport:** {{.Width}}x{{.Height}}
- **Seed:** {{if .Seed}}{{.Seed}}{{else}}clock{{end}}

## Performance Results
- **Total Frames:** {{.TotalFrames}} ({{.Resizes}} resizes)
- **Total Time:** {{.TotalTime}}
- **Tick:** avg {{.TickTime.Avg}}, min {{.TickTime.Min}}, max {{.TickTime.Max}}
- **Render:** avg {{.RenderTime.Avg}}, min {{.RenderTime.Min}}, max {{.RenderTime.Max}}
- **Last Frame:** {{.LastFrame.Sprites}} sprites ({{.LastFrame.Additive}} additive), {{.LastFrame.Lines}} lines

## Systems
| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage
- Heap Alloc:  {{.MemStatsStart.HeapAlloc | mb}} MB (start) -> {{.MemStatsEnd.HeapAlloc | mb}} MB (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}} bytes
- Total Alloc: {{.MemStatsStart.TotalAlloc | mb}} MB (start) -> {{.MemStatsEnd.TotalAlloc | mb}} MB (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}} bytes
- Num GC:      {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}
## Teardown
- **Sprites Allocated:** {{.Sprites}}
- **Live Handles After Dispose:** {{.LiveHandles}}
- **Double Frees:** {{.DoubleFrees}}
- **Listeners After Dispose:** {{.Listeners}}
- **Result:** {{if .Leaked}}LEAK{{else}}clean{{end}}
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
