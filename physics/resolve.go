// Package physics resolves the motion of axis-aligned boxes against
// static obstacles using swept collision, so boxes never interpenetrate
// no matter how fast they move within a step.
package physics

import (
	"github.com/lixenwraith/cellworks/geom"
)

// step is the normalized time horizon of one simulation tick
var step = geom.Interval{Min: 0, Max: 1}

// CollisionTime returns the earliest fraction of the current step at
// which the moving box first touches any obstacle, or 1.0 when the whole
// step is free. Sweep results are clipped to [0,1] before aggregation, so
// degenerate windows from parallel motion never poison the minimum.
func CollisionTime(box geom.Box, vel geom.Vec, obstacles []geom.Box) float64 {
	t := 1.0
	for _, ob := range obstacles {
		hit := geom.SweepBoxStatic(box, vel, ob).Intersect(step)
		if hit.NonEmpty() && hit.Min < t {
			t = hit.Min
		}
	}
	return t
}

// Resolve advances box by vel for one normalized step, clipping motion at
// first contact. Returns the new box, the new velocity, and the collision
// time used.
//
// When contact happens immediately (t <= 0) and there is vertical motion,
// the vertical component is zeroed and the query retried once: a box
// pinned to a surface by gravity can still slide along it. Contact before
// the end of the step stops the box dead.
func Resolve(box geom.Box, vel geom.Vec, obstacles []geom.Box) (geom.Box, geom.Vec, float64) {
	for {
		t := CollisionTime(box, vel, obstacles)
		// Only the y-axis pins the box: drop it and requery. vel.Y is
		// zeroed at most once, so this loops at most twice.
		if t <= 0 && vel.Y != 0 {
			vel.Y = 0
			continue
		}
		box = box.Translate(vel.Scale(t))
		if t < 1 {
			vel = geom.Vec{}
		}
		return box, vel, t
	}
}
