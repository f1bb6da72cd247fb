package physics

import (
	"github.com/lixenwraith/cellworks/geom"
)

// Actor is a box with a velocity, reconstructed every frame from the
// caller's state. Resolve owns the motion; the caller owns the commit.
type Actor struct {
	Box geom.Box
	Vel geom.Vec
}

// Step integrates one tick against the given obstacles and commits the
// result back into the actor. Returns the collision time for callers
// that want to react to contact.
func (a *Actor) Step(obstacles []geom.Box) float64 {
	box, vel, t := Resolve(a.Box, a.Vel, obstacles)
	a.Box = box
	a.Vel = vel
	return t
}

// ApplyGravity accumulates gravitational acceleration over dt seconds
func ApplyGravity(vel geom.Vec, gravity geom.Vec, dt float64) geom.Vec {
	return vel.Add(gravity.Scale(dt))
}

// DampHorizontal scales the horizontal component, simulating drag
func DampHorizontal(vel geom.Vec, factor float64) geom.Vec {
	vel.X *= factor
	return vel
}

// ClampVertical limits the vertical component to [-limit, limit]
func ClampVertical(vel geom.Vec, limit float64) geom.Vec {
	if vel.Y > limit {
		vel.Y = limit
	} else if vel.Y < -limit {
		vel.Y = -limit
	}
	return vel
}
