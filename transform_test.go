package mint

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Transform) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func assertPoint(t *testing.T, name string, got, want Point) {
	t.Helper()
	assertNear(t, name+".X", got.X, want.X)
	assertNear(t, name+".Y", got.Y, want.Y)
}

// --- Operations ---

func TestTransformIdentity(t *testing.T) {
	m := Transform{2, 3, 4, 5, 6, 7}
	m.Identity()
	assertMatrix(t, "identity", m, Transform{1, 0, 0, 1, 0, 0})
	assertPoint(t, "apply", m.Apply(Point{X: 3, Y: -4}), Point{X: 3, Y: -4})
}

func TestTransformTranslate(t *testing.T) {
	m := IdentityTransform
	m.Translate(Point{X: 10, Y: 20})
	assertMatrix(t, "translate", m, Transform{1, 0, 0, 1, 10, 20})
	assertPoint(t, "origin", m.Apply(Point{}), Point{X: 10, Y: 20})
}

func TestTransformScale(t *testing.T) {
	m := IdentityTransform
	m.Scale(Size{Width: 2, Height: 3})
	assertMatrix(t, "scale", m, Transform{2, 0, 0, 3, 0, 0})
	assertPoint(t, "unit", m.Apply(Point{X: 1, Y: 1}), Point{X: 2, Y: 3})
}

func TestTransformRotation90(t *testing.T) {
	m := IdentityTransform
	m.Rotate(Degrees(90))
	assertPoint(t, "x axis", m.Apply(Point{X: 1, Y: 0}), Point{X: 0, Y: 1})
	assertPoint(t, "y axis", m.Apply(Point{X: 0, Y: 1}), Point{X: -1, Y: 0})
}

func TestTransformOperationsComposeLocally(t *testing.T) {
	// Translate then scale: the scale applies inside the translated frame.
	m := IdentityTransform
	m.Translate(Point{X: 5, Y: 0})
	m.Scale(Size{Width: 2, Height: 2})
	assertPoint(t, "translate-scale", m.Apply(Point{X: 1, Y: 1}), Point{X: 7, Y: 2})

	// Rotate then translate: the offset is measured along the rotated axes.
	m = IdentityTransform
	m.Rotate(Degrees(90))
	m.Translate(Point{X: 1, Y: 0})
	assertPoint(t, "rotate-translate", m.Apply(Point{}), Point{X: 0, Y: 1})
}

func TestTransformRotateMatchesMul(t *testing.T) {
	m := IdentityTransform
	m.Translate(Point{X: 3, Y: -2})
	m.Scale(Size{Width: 2, Height: 0.5})

	sin, cos := math.Sincos(0.7)
	want := m.Mul(Transform{cos, sin, -sin, cos, 0, 0})

	m.Rotate(Radians(0.7))
	assertMatrix(t, "rotate", m, want)
}

// --- Mul / Invert ---

func TestTransformMulIdentity(t *testing.T) {
	m := Transform{2, 1, -1, 3, 4, 5}
	assertMatrix(t, "m*I", m.Mul(IdentityTransform), m)
	assertMatrix(t, "I*m", IdentityTransform.Mul(m), m)
}

func TestTransformMulOrder(t *testing.T) {
	var translate, scale Transform
	translate.Identity()
	translate.Translate(Point{X: 10, Y: 0})
	scale.Identity()
	scale.Scale(Size{Width: 2, Height: 2})

	// translate * scale applies the scale first.
	assertPoint(t, "t*s", translate.Mul(scale).Apply(Point{X: 1, Y: 0}), Point{X: 12, Y: 0})
	assertPoint(t, "s*t", scale.Mul(translate).Apply(Point{X: 1, Y: 0}), Point{X: 22, Y: 0})
}

func TestTransformInvert(t *testing.T) {
	m := IdentityTransform
	m.Translate(Point{X: 10, Y: -4})
	m.Rotate(Degrees(33))
	m.Scale(Size{Width: 3, Height: 0.25})

	assertMatrix(t, "m*inv", m.Mul(m.Invert()), IdentityTransform)
	assertMatrix(t, "inv*m", m.Invert().Mul(m), IdentityTransform)
}

func TestTransformInvertSingular(t *testing.T) {
	m := Transform{0, 0, 0, 0, 5, 5}
	assertMatrix(t, "singular", m.Invert(), IdentityTransform)
}

// --- Angle ---

func TestAngleUnits(t *testing.T) {
	assertNear(t, "180deg", Degrees(180).Radians(), math.Pi)
	assertNear(t, "pi rad", Radians(math.Pi/2).Degrees(), 90)
	assertNear(t, "zero", Angle{}.Radians(), 0)
}
