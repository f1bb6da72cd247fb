// Package scene batches transformed triangles for deferred, depth-sorted
// drawing. A Stack of render states replaces the usual global
// transform/color state: callers own the stack, push before drawing a
// sub-object, and pop (or defer a Scope) to restore.
package scene

import (
	"github.com/lixenwraith/cellworks/render"
	"github.com/lixenwraith/cellworks/vmath"
)

// State is the current drawing context: a transform plus fill and stroke
// colors. Zero-alpha colors disable their respective geometry.
type State struct {
	Transform vmath.Mat4
	Fill      render.RGBA
	Stroke    render.RGBA
}

// NewState returns the default state: identity transform, white fill,
// black stroke
func NewState() State {
	return State{
		Transform: vmath.Identity,
		Fill:      render.White,
		Stroke:    render.Black,
	}
}

// Stack is an explicit render-state stack. The zero value is empty with
// a default current state.
type Stack struct {
	current State
	saved   []State
}

// NewStack creates a stack with the default state
func NewStack() *Stack {
	return &Stack{current: NewState()}
}

// State returns a pointer to the current state for in-place edits
func (s *Stack) State() *State {
	return &s.current
}

// Push saves the current state
func (s *Stack) Push() {
	s.saved = append(s.saved, s.current)
}

// Pop restores the most recently pushed state. Popping an empty stack is
// a programmer error and panics.
func (s *Stack) Pop() {
	if len(s.saved) == 0 {
		panic("scene: pop on empty state stack")
	}
	s.current = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

// Depth returns the number of saved states
func (s *Stack) Depth() int {
	return len(s.saved)
}

// Apply post-multiplies the current transform by m
func (s *Stack) Apply(m vmath.Mat4) {
	s.current.Transform = s.current.Transform.Mul(m)
}

// Scope pushes and returns the matching pop, meant for defer. The
// restore runs on every exit path, early returns included.
func (s *Stack) Scope() func() {
	s.Push()
	return s.Pop
}
