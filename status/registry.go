// Package status holds counters and gauges written by systems and read by the debug overlay
package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the simulation
const (
	KeyServes        = "ball.serves"
	KeyGoals         = "ball.goals"
	KeyPaddleHits    = "ball.paddle_hits"
	KeyWallBounces   = "ball.wall_bounces"
	KeySessions      = "session.started"
	KeyLiveEntities  = "session.entities"
	KeyEventsDropped = "event.dropped"
	KeyTicks         = "engine.ticks"
	KeyFPS           = "engine.fps"
)

// Registry is the central metrics facade
// Systems cache pointers during init; update loops write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Lines formats every metric as "key=value", ints first, for the debug overlay
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.1f", key, v.Load()))
	})
	return lines
}
