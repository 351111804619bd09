package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// PerformanceMonitor tracks frame and raycast timings for the FPS overlay.
type PerformanceMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds, last frame

	// Rendering metrics
	raycastTime atomic.Uint64 // nanoseconds, last cast pass
	columnsCast atomic.Uint64

	// Statistics
	mutex          sync.RWMutex
	avgFrameTime   float64 // exponential moving average, nanoseconds
	avgRaycastTime float64
	startTime      time.Time

	smoothing float64
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime: time.Now(),
		smoothing: 0.1,
	}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	ft.monitor.RecordFrame(time.Since(ft.startTime))
}

// RecordFrame stores an externally measured frame duration.
func (pm *PerformanceMonitor) RecordFrame(d time.Duration) {
	pm.frameTime.Store(uint64(d.Nanoseconds()))
	count := pm.frameCount.Add(1)

	pm.mutex.Lock()
	pm.avgFrameTime = pm.blend(pm.avgFrameTime, float64(d.Nanoseconds()), count)
	pm.mutex.Unlock()
}

// RaycastTimer helps measure raycasting performance
type RaycastTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
	columns   int
}

// StartRaycast begins timing a cast pass over the given number of columns.
func (pm *PerformanceMonitor) StartRaycast(columns int) *RaycastTimer {
	return &RaycastTimer{
		monitor:   pm,
		startTime: time.Now(),
		columns:   columns,
	}
}

// EndRaycast completes raycast timing
func (rt *RaycastTimer) EndRaycast() {
	pm := rt.monitor
	elapsed := time.Since(rt.startTime)
	pm.raycastTime.Store(uint64(elapsed.Nanoseconds()))
	pm.columnsCast.Add(uint64(rt.columns))

	pm.mutex.Lock()
	pm.avgRaycastTime = pm.blend(pm.avgRaycastTime, float64(elapsed.Nanoseconds()), pm.frameCount.Load()+1)
	pm.mutex.Unlock()
}

// blend folds sample into an exponential moving average; the first sample seeds it.
func (pm *PerformanceMonitor) blend(avg, sample float64, count uint64) float64 {
	if count <= 1 || avg == 0 {
		return sample
	}
	return avg + (sample-avg)*pm.smoothing
}

// FrameMetrics is a snapshot for display.
type FrameMetrics struct {
	FramesPerSecond  float64
	AverageFrameTime time.Duration
	LastRaycastTime  time.Duration
	AverageRaycast   time.Duration
	FrameCount       uint64
	ColumnsCast      uint64
	MemoryUsageMB    uint64
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() FrameMetrics {
	pm.mutex.RLock()
	avgFrame := pm.avgFrameTime
	avgRaycast := pm.avgRaycastTime
	pm.mutex.RUnlock()

	fps := 0.0
	if avgFrame > 0 {
		fps = float64(time.Second) / avgFrame
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return FrameMetrics{
		FramesPerSecond:  fps,
		AverageFrameTime: time.Duration(avgFrame),
		LastRaycastTime:  time.Duration(pm.raycastTime.Load()),
		AverageRaycast:   time.Duration(avgRaycast),
		FrameCount:       pm.frameCount.Load(),
		ColumnsCast:      pm.columnsCast.Load(),
		MemoryUsageMB:    memStats.Alloc / 1024 / 1024,
	}
}

// Uptime returns the time since creation or the last Reset.
func (pm *PerformanceMonitor) Uptime() time.Duration {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()
	return time.Since(pm.startTime)
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
}

// CheckPerformanceAlerts returns a low_fps alert when the smoothed frame
// rate falls below minFPS.
func (pm *PerformanceMonitor) CheckPerformanceAlerts(minFPS float64) []PerformanceAlert {
	alerts := make([]PerformanceAlert, 0)

	metrics := pm.GetCurrentMetrics()
	if metrics.FrameCount > 0 && metrics.FramesPerSecond > 0 && metrics.FramesPerSecond < minFPS {
		alerts = append(alerts, PerformanceAlert{
			Type:      "low_fps",
			Message:   "Frame rate is below target",
			Value:     metrics.FramesPerSecond,
			Threshold: minFPS,
		})
	}

	return alerts
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.raycastTime.Store(0)
	pm.columnsCast.Store(0)

	pm.mutex.Lock()
	pm.avgFrameTime = 0
	pm.avgRaycastTime = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}
