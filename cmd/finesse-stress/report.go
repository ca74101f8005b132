package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/kamstrup/intmap"
)

type Report struct {
	// Configuration
	Analyses int
	Seed     int64
	MaxStack int

	// Results
	TotalTime       time.Duration
	AnalysisTime    Stats
	Reachable       int64
	Unreachable     int64
	Faulty          int64
	ToppedOut       int64
	LengthHistogram *intmap.Map[uint32, int64]
	MaxLength       uint32
	GCPauseMetrics  bool
	MemStatsStart   runtime.MemStats
	MemStatsEnd     runtime.MemStats
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

// Histogram renders the optimal-length counts in ascending length order.
func (r *Report) Histogram() string {
	var sb strings.Builder
	for l := uint32(1); l <= r.MaxLength; l++ {
		if count, ok := r.LengthHistogram.Get(l); ok {
			fmt.Fprintf(&sb, "  - %d inputs: %d\n", l, count)
		}
	}
	return sb.String()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Finesse Engine Stress Test Report

## Test Configuration
- **Analyses:** {{.Analyses}}
- **Seed:** {{.Seed}}
- **Max Garbage Stack:** {{.MaxStack}}

## Results
- **Total Test Time:** {{.TotalTime}}
- **Reachable Targets:** {{.Reachable}}
- **Unreachable Targets:** {{.Unreachable}}
- **Faulty Sequences:** {{.Faulty}}
- **Topped-Out Boards:** {{.ToppedOut}}
- **Analysis Time:**
  - **Avg:** {{.AnalysisTime.Avg}}
  - **Min:** {{.AnalysisTime.Min}}
  - **Max:** {{.AnalysisTime.Max}}

## Optimal Sequence Lengths
{{.Histogram}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
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
