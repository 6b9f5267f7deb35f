package ecs

import (
	"testing"
	"time"
)

func TestCollectStatsOrdering(t *testing.T) {
	storage := NewStorage()

	stats := storage.CollectStats()
	if stats.ArenaCount != 0 {
		t.Errorf("expected 0 arenas, got %d", stats.ArenaCount)
	}
	if stats.TotalEntityCount != 0 {
		t.Errorf("expected 0 entities, got %d", stats.TotalEntityCount)
	}

	strings := NewArena[string](storage, 4)
	ints := NewArena[int](storage, 2)
	strings.Spawn("hello")
	strings.Spawn("world")
	ints.Spawn(42)

	NewSingleton[float64](storage, 3.14)
	NewSingleton[bool](storage, true)

	stats = storage.CollectStats()

	if stats.ArenaCount != 2 {
		t.Errorf("expected 2 arenas, got %d", stats.ArenaCount)
	}
	if stats.TotalEntityCount != 3 {
		t.Errorf("expected 3 entities, got %d", stats.TotalEntityCount)
	}
	if stats.SingletonCount != 2 {
		t.Errorf("expected 2 singletons, got %d", stats.SingletonCount)
	}

	if len(stats.ArenaBreakdown) != 2 {
		t.Fatalf("expected 2 arena breakdown entries, got %d", len(stats.ArenaBreakdown))
	}
	if stats.ArenaBreakdown[0].ComponentType != "string" || stats.ArenaBreakdown[1].ComponentType != "int" {
		t.Errorf("arena breakdown not in registration order: %+v", stats.ArenaBreakdown)
	}
	if stats.ArenaBreakdown[0].Capacity != 4 {
		t.Errorf("expected capacity 4, got %d", stats.ArenaBreakdown[0].Capacity)
	}

	if len(stats.SingletonTypes) != 2 || stats.SingletonTypes[0] != "bool" || stats.SingletonTypes[1] != "float64" {
		t.Errorf("expected sorted singleton types, got %v", stats.SingletonTypes)
	}
}

type TestSystem struct {
	executeCount int
	sleepDur     time.Duration
}

func (s *TestSystem) Execute(frame *UpdateFrame) {
	s.executeCount++
	if s.sleepDur > 0 {
		time.Sleep(s.sleepDur)
	}
}

func TestSchedulerTimings(t *testing.T) {
	storage := NewStorage()
	scheduler := NewScheduler(storage)

	stats := scheduler.GetStats()
	if stats.SystemCount != 0 {
		t.Errorf("expected 0 systems, got %d", stats.SystemCount)
	}

	sys1 := &TestSystem{sleepDur: 1 * time.Millisecond}
	sys2 := &TestSystem{sleepDur: 2 * time.Millisecond}
	scheduler.Register(sys1)
	scheduler.Register(sys2)

	stats = scheduler.GetStats()
	for _, sysStats := range stats.Systems {
		if sysStats.MinDuration != 0 {
			t.Errorf("expected zero min duration before any run, got %v", sysStats.MinDuration)
		}
	}

	scheduler.Once(0.016)
	scheduler.Once(0.032)
	scheduler.Once(0.048)

	stats = scheduler.GetStats()

	if stats.TotalExecutions != 6 {
		t.Errorf("expected 6 total executions (2 systems * 3 runs), got %d", stats.TotalExecutions)
	}

	for _, sysStats := range stats.Systems {
		if sysStats.Name != "TestSystem" {
			t.Errorf("expected system name 'TestSystem', got '%s'", sysStats.Name)
		}
		if sysStats.ExecutionCount != 3 {
			t.Errorf("expected 3 executions, got %d", sysStats.ExecutionCount)
		}
		if sysStats.MinDuration == 0 || sysStats.LastDuration == 0 {
			t.Errorf("expected non-zero durations, got %+v", sysStats)
		}
		if sysStats.MinDuration > sysStats.AvgDuration {
			t.Errorf("min duration (%v) should be <= avg duration (%v)", sysStats.MinDuration, sysStats.AvgDuration)
		}
		if sysStats.AvgDuration > sysStats.MaxDuration {
			t.Errorf("avg duration (%v) should be <= max duration (%v)", sysStats.AvgDuration, sysStats.MaxDuration)
		}
	}

	if sys1.executeCount != 3 || sys2.executeCount != 3 {
		t.Errorf("expected both systems to execute 3 times, got %d and %d", sys1.executeCount, sys2.executeCount)
	}

	if scheduler.frame.Elapsed != 0.048 {
		t.Errorf("expected frame elapsed 0.048, got %v", scheduler.frame.Elapsed)
	}
	if d := scheduler.frame.DeltaTime; d < 0.0159 || d > 0.0161 {
		t.Errorf("expected frame delta ~0.016, got %v", d)
	}
}
