package ecs

import (
	"reflect"
	"time"
)

// SchedulerStats summarises scheduler execution.
type SchedulerStats struct {
	SystemCount int
	Frames      uint64
	Systems     []SystemStats
}

// SystemStats holds timings for one system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// binder is implemented by Query and Singleton fields.
type binder interface {
	bind(storage *Storage)
}

// refresher is implemented by Query fields.
type refresher interface {
	Refresh()
}

type registeredSystem struct {
	system  System
	queries []refresher
	stats   SystemStats
}

// Scheduler runs systems against one storage in registration order.
type Scheduler struct {
	storage  *Storage
	systems  []*registeredSystem
	commands Commands
	frames   uint64
}

// NewScheduler creates a scheduler for storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{storage: storage}
}

// Register appends system to the run order and binds its exported Query and
// Singleton fields to the scheduler's storage.
func (s *Scheduler) Register(system System) {
	entry := &registeredSystem{
		system: system,
		stats: SystemStats{
			Name:        systemName(system),
			MinDuration: time.Duration(1<<63 - 1),
		},
	}

	value := reflect.ValueOf(system)
	if value.Kind() == reflect.Pointer {
		value = value.Elem()
	}
	if value.Kind() == reflect.Struct {
		for i := 0; i < value.NumField(); i++ {
			field := value.Field(i)
			if !field.CanSet() || field.Kind() != reflect.Struct {
				continue
			}
			b, ok := field.Addr().Interface().(binder)
			if !ok {
				continue
			}
			b.bind(s.storage)
			if r, ok := b.(refresher); ok {
				entry.queries = append(entry.queries, r)
			}
		}
	}

	s.systems = append(s.systems, entry)
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Once runs every system once, then flushes queued commands.
func (s *Scheduler) Once(dt float64) {
	s.frames++
	frame := &UpdateFrame{
		DeltaTime: dt,
		Tick:      s.frames,
		Commands:  &s.commands,
		Storage:   s.storage,
	}

	for _, entry := range s.systems {
		start := time.Now()
		for _, q := range entry.queries {
			q.Refresh()
		}
		entry.system.Execute(frame)
		entry.record(time.Since(start))
	}

	s.commands.Flush(s.storage)
}

func (e *registeredSystem) record(d time.Duration) {
	e.stats.ExecutionCount++
	e.stats.LastDuration = d
	e.stats.TotalDuration += d
	e.stats.MinDuration = min(e.stats.MinDuration, d)
	e.stats.MaxDuration = max(e.stats.MaxDuration, d)
}

// Stats returns a snapshot of execution statistics.
func (s *Scheduler) Stats() SchedulerStats {
	stats := SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systems)),
	}
	for i, entry := range s.systems {
		st := entry.stats
		if st.ExecutionCount > 0 {
			st.AvgDuration = st.TotalDuration / time.Duration(st.ExecutionCount)
		}
		stats.Systems[i] = st
	}
	return stats
}
