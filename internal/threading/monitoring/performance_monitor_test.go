package monitoring

import (
	"sync"
	"testing"
	"time"
)

func TestNewPerformanceMonitor(t *testing.T) {
	pm := NewPerformanceMonitor()

	if pm == nil {
		t.Fatal("NewPerformanceMonitor returned nil")
	}

	if time.Since(pm.startTime) > time.Second {
		t.Error("Start time should be recent")
	}

	metrics := pm.GetCurrentMetrics()
	if metrics.FrameCount != 0 || metrics.FramesPerSecond != 0 {
		t.Errorf("Expected empty metrics, got %+v", metrics)
	}
}

func TestPerformanceMonitorFrameTiming(t *testing.T) {
	pm := NewPerformanceMonitor()

	frameTimer := pm.StartFrame()
	time.Sleep(10 * time.Millisecond)
	frameTimer.EndFrame()

	if pm.frameCount.Load() != 1 {
		t.Errorf("Expected frame count to be 1, got %d", pm.frameCount.Load())
	}

	minExpectedTime := uint64(10 * time.Millisecond)
	if frameTime := pm.frameTime.Load(); frameTime < minExpectedTime {
		t.Errorf("Expected frame time to be at least %d ns, got %d ns", minExpectedTime, frameTime)
	}
}

func TestPerformanceMonitorFPSEstimate(t *testing.T) {
	pm := NewPerformanceMonitor()

	for i := 0; i < 30; i++ {
		pm.RecordFrame(time.Second / 50)
	}

	metrics := pm.GetCurrentMetrics()
	if metrics.FramesPerSecond < 49.9 || metrics.FramesPerSecond > 50.1 {
		t.Errorf("Expected ~50 FPS for steady 20ms frames, got %v", metrics.FramesPerSecond)
	}
	if metrics.FrameCount != 30 {
		t.Errorf("Expected 30 frames, got %d", metrics.FrameCount)
	}
}

func TestPerformanceMonitorRaycastTiming(t *testing.T) {
	pm := NewPerformanceMonitor()

	timer := pm.StartRaycast(320)
	time.Sleep(time.Millisecond)
	timer.EndRaycast()

	metrics := pm.GetCurrentMetrics()
	if metrics.ColumnsCast != 320 {
		t.Errorf("Expected 320 columns cast, got %d", metrics.ColumnsCast)
	}
	if metrics.LastRaycastTime < time.Millisecond {
		t.Errorf("Expected raycast time of at least 1ms, got %v", metrics.LastRaycastTime)
	}
	if metrics.AverageRaycast == 0 {
		t.Error("Expected average raycast time to be seeded")
	}
}

func TestPerformanceMonitorAlerts(t *testing.T) {
	pm := NewPerformanceMonitor()

	if alerts := pm.CheckPerformanceAlerts(30); len(alerts) != 0 {
		t.Errorf("Expected no alerts before any frames, got %v", alerts)
	}

	pm.RecordFrame(100 * time.Millisecond)
	alerts := pm.CheckPerformanceAlerts(30)
	if len(alerts) != 1 || alerts[0].Type != "low_fps" {
		t.Fatalf("Expected one low_fps alert, got %v", alerts)
	}
	if alerts[0].Threshold != 30 {
		t.Errorf("Expected threshold 30, got %v", alerts[0].Threshold)
	}

	pm.Reset()
	for i := 0; i < 100; i++ {
		pm.RecordFrame(time.Second / 60)
	}
	if alerts := pm.CheckPerformanceAlerts(30); len(alerts) != 0 {
		t.Errorf("Expected no alerts at 60 FPS, got %v", alerts)
	}
}

func TestPerformanceMonitorConcurrency(t *testing.T) {
	pm := NewPerformanceMonitor()
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				frameTimer := pm.StartFrame()
				rt := pm.StartRaycast(10)
				rt.EndRaycast()
				frameTimer.EndFrame()
			}
		}()
	}
	wg.Wait()

	if pm.frameCount.Load() != 100 {
		t.Errorf("Expected 100 frames, got %d", pm.frameCount.Load())
	}
	if pm.columnsCast.Load() != 1000 {
		t.Errorf("Expected 1000 columns, got %d", pm.columnsCast.Load())
	}
}

func TestPerformanceMonitorReset(t *testing.T) {
	pm := NewPerformanceMonitor()
	pm.RecordFrame(time.Millisecond)
	pm.StartRaycast(4).EndRaycast()

	pm.Reset()

	metrics := pm.GetCurrentMetrics()
	if metrics.FrameCount != 0 || metrics.ColumnsCast != 0 || metrics.AverageFrameTime != 0 {
		t.Errorf("Expected counters cleared after Reset, got %+v", metrics)
	}
	if pm.Uptime() > time.Second {
		t.Error("Expected uptime to restart after Reset")
	}
}
