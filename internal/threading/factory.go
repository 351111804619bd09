package threading

import (
	"mazecaster/internal/threading/core"
	"mazecaster/internal/threading/monitoring"
)

// ThreadingComponents holds the render worker pool and the performance monitor.
type ThreadingComponents struct {
	RenderPool         *core.WorkerPool // nil when columns are cast on the caller's goroutine
	PerformanceMonitor *monitoring.PerformanceMonitor
}

// NewThreadingComponents creates the threading components. A render pool is
// only started when renderWorkers is greater than one.
func NewThreadingComponents(renderWorkers int) *ThreadingComponents {
	tc := &ThreadingComponents{
		PerformanceMonitor: monitoring.NewPerformanceMonitor(),
	}
	if renderWorkers > 1 {
		tc.RenderPool = core.NewWorkerPool(renderWorkers)
		tc.RenderPool.Start()
	}
	return tc
}

// Shutdown gracefully shuts down all threading components
func (tc *ThreadingComponents) Shutdown() {
	if tc.RenderPool != nil {
		tc.RenderPool.Stop()
	}
	if tc.PerformanceMonitor != nil {
		tc.PerformanceMonitor.Reset()
	}
}

// GetPerformanceMetrics returns current performance metrics
func (tc *ThreadingComponents) GetPerformanceMetrics() monitoring.FrameMetrics {
	if tc.PerformanceMonitor == nil {
		return monitoring.FrameMetrics{}
	}
	return tc.PerformanceMonitor.GetCurrentMetrics()
}
