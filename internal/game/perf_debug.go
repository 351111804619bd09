package game

import (
	"log"
	"time"
)

const (
	perfLowFpsThreshold = 30.0
	perfLowFpsDuration  = 3 * time.Second
	perfLogInterval     = 3 * time.Second
)

// maybeLogPerfDrop logs once per interval while the frame rate has stayed
// below the threshold for a sustained period.
func (g *Game) maybeLogPerfDrop() {
	if !g.config.Display.ShowFPS {
		return
	}

	alerts := g.threading.PerformanceMonitor.CheckPerformanceAlerts(perfLowFpsThreshold)
	if len(alerts) == 0 {
		g.perfLowFpsSince = time.Time{}
		g.perfLastPerfLog = time.Time{}
		return
	}

	now := time.Now()
	if g.perfLowFpsSince.IsZero() {
		g.perfLowFpsSince = now
		return
	}

	if now.Sub(g.perfLowFpsSince) < perfLowFpsDuration {
		return
	}

	if !g.perfLastPerfLog.IsZero() && now.Sub(g.perfLastPerfLog) < perfLogInterval {
		return
	}
	g.perfLastPerfLog = now

	metrics := g.threading.GetPerformanceMetrics()
	log.Printf("[Perf] %.1f FPS (below %.0f) | avg cast %v over %d columns | workers=%d",
		alerts[0].Value, perfLowFpsThreshold, metrics.AverageRaycast, g.projector.Width, g.renderWorkers())
}

func (g *Game) renderWorkers() int {
	if g.threading.RenderPool == nil {
		return 1
	}
	return g.threading.RenderPool.NumWorkers()
}
