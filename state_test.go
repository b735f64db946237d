package mint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStackDefault(t *testing.T) {
	s := NewStack()
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, DefaultState(), s.Current())
	assert.Equal(t, ColorWhite, s.Current().Color)
	assert.Equal(t, IdentityTransform, s.Current().Transform)
}

func TestStackPushDuplicatesTop(t *testing.T) {
	s := NewStack()
	s.Top().Color = ColorBlack
	s.Top().Transform.Translate(Point{X: 1, Y: 2})

	s.Push()
	assert.Equal(t, 2, s.Depth())
	assert.Equal(t, ColorBlack, s.Current().Color)
	assert.Equal(t, Transform{1, 0, 0, 1, 1, 2}, s.Current().Transform)
}

func TestStackPopRestores(t *testing.T) {
	s := NewStack()
	s.Top().Color = NewColor(1, 0, 0, 1)
	saved := s.Current()

	s.Push()
	s.Top().Tint(NewColor(0, 1, 1, 0.5))
	s.Top().Transform.Scale(Size{Width: 4, Height: 4})
	s.Push()
	s.Top().Transform.Rotate(Degrees(90))

	require.NoError(t, s.Pop())
	require.NoError(t, s.Pop())
	assert.Equal(t, saved, s.Current())
}

func TestStackPopUnderflow(t *testing.T) {
	s := NewStack()
	s.Top().Color = ColorTransparent

	err := s.Pop()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStackUnderflow)
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, ColorTransparent, s.Current().Color)
}

func TestStackReset(t *testing.T) {
	s := NewStack()
	s.Push()
	s.Push()
	s.Top().Color = ColorBlack
	s.Reset()
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, DefaultState(), s.Current())
}

func TestStateTint(t *testing.T) {
	st := DefaultState()
	st.Tint(NewColor(0.5, 0.25, 1, 0.5))
	assert.Equal(t, NewColor(0.5, 0.25, 1, 0.5), st.Color)
	st.Tint(NewColor(0.5, 1, 1, 1))
	assert.Equal(t, NewColor(0.25, 0.25, 1, 0.5), st.Color)
}
