package collectors

import (
	"context"
	"runtime"
	"time"
)

// RuntimeCollector reports process-level runtime counters.
type RuntimeCollector struct {
	started time.Time
	now     func() time.Time
}

func NewRuntimeCollector() *RuntimeCollector {
	return &RuntimeCollector{
		started: time.Now(),
		now:     time.Now,
	}
}

func (c *RuntimeCollector) Collect(ctx context.Context) (map[string]any, error) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return map[string]any{
		"go_version":     runtime.Version(),
		"goroutines":     runtime.NumGoroutine(),
		"heap_alloc":     mem.HeapAlloc,
		"heap_sys":       mem.HeapSys,
		"gc_cycles":      mem.NumGC,
		"uptime_seconds": c.now().Sub(c.started).Seconds(),
	}, nil
}
