package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/pong"
)

type Report struct {
	// Configuration
	Duration    time.Duration
	Seed        int64
	KeyUpPolicy string

	// Results
	TotalTicks    int64
	TotalEvents   int64
	TotalTime     time.Duration
	UpdateTime    Stats
	Frames        int
	Rects         int
	Violations    int
	Final         [2]pong.Position
	Systems       []ecs.SystemStats
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
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Pong Soak Report

## Run
- **Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Key-up policy:** {{.KeyUpPolicy}}

## Results
- **Ticks:** {{.TotalTicks}} ({{.Frames}} frames, {{.Rects}} rects)
- **Key events:** {{.TotalEvents}}
- **Bounds violations:** {{.Violations}}
- **Wall time:** {{.TotalTime}}
- **Tick time:** avg {{.UpdateTime.Avg}}, min {{.UpdateTime.Min}}, max {{.UpdateTime.Max}}
{{range $i, $p := .Final}}
- Paddle {{inc $i}} final: ({{$p.X}}, {{$p.Y}})
{{- end}}

## Systems
{{range .Systems}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Memory (bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} -> {{.MemStatsEnd.HeapAlloc}} (delta {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}})
- Total Alloc: {{.MemStatsStart.TotalAlloc}} -> {{.MemStatsEnd.TotalAlloc}} (delta {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}})
- Num GC:      {{.MemStatsStart.NumGC}} -> {{.MemStatsEnd.NumGC}} (delta {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}})
`

var reportFuncs = template.FuncMap{
	"inc": func(i int) int {
		return i + 1
	},
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
