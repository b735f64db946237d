package mint

import "github.com/pkg/errors"

// State is the complete render context at one point in the drawing code.
type State struct {
	Color     Color
	Transform Transform
}

// DefaultState is opaque white with the identity transform.
func DefaultState() State {
	return State{Color: ColorWhite, Transform: IdentityTransform}
}

// Tint multiplies the state's color by c.
func (s *State) Tint(c Color) {
	s.Color = s.Color.Mul(c)
}

// Stack is a non-empty stack of render states. The base entry is permanent.
type Stack struct {
	states []State
}

// NewStack returns a stack holding only the default state.
func NewStack() *Stack {
	s := &Stack{}
	s.Reset()
	return s
}

// Reset drops every pushed state and restores the base to the default.
func (s *Stack) Reset() {
	s.states = append(s.states[:0], DefaultState())
}

// Push duplicates the top state.
func (s *Stack) Push() {
	s.states = append(s.states, s.states[len(s.states)-1])
}

// Pop removes the top state. Popping the base state returns
// ErrStackUnderflow and leaves the stack untouched.
func (s *Stack) Pop() error {
	if len(s.states) <= 1 {
		return errors.WithStack(ErrStackUnderflow)
	}
	s.states = s.states[:len(s.states)-1]
	return nil
}

// Top returns a pointer to the current state. The pointer is invalidated by
// the next Push.
func (s *Stack) Top() *State {
	return &s.states[len(s.states)-1]
}

// Current returns a copy of the current state.
func (s *Stack) Current() State {
	return s.states[len(s.states)-1]
}

// Depth returns the number of states on the stack, which is always at
// least 1.
func (s *Stack) Depth() int {
	return len(s.states)
}
