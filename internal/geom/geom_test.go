package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestVertexAngleDeg_RightAngle(t *testing.T) {
	a := r3.Vec{X: 1}
	b := r3.Vec{}
	c := r3.Vec{Y: 1}
	got := VertexAngleDeg(a, b, c)
	if math.Abs(got-90) > 1e-9 {
		t.Errorf("VertexAngleDeg = %v, want 90", got)
	}
}

func TestVertexAngleDeg_Collinear(t *testing.T) {
	a := r3.Vec{X: -1}
	b := r3.Vec{}
	c := r3.Vec{X: 2}
	got := VertexAngleDeg(a, b, c)
	if math.Abs(got-180) > 1e-9 {
		t.Errorf("VertexAngleDeg = %v, want 180", got)
	}
}

func TestVertexAngleDeg_ZeroLengthLimb(t *testing.T) {
	// A limb of zero length must yield 0, never an error or NaN.
	a := r3.Vec{X: 1}
	b := r3.Vec{X: 1}
	c := r3.Vec{Y: 5}
	if got := VertexAngleDeg(a, b, c); got != 0 {
		t.Errorf("VertexAngleDeg with coincident points = %v, want 0", got)
	}
}

func TestVertexAngleDeg_Bounds(t *testing.T) {
	// The vertex angle stays in [0,180] for arbitrary non-degenerate
	// triples, including near-parallel ones that stress the acos clamp.
	triples := [][3]r3.Vec{
		{{X: 1, Y: 2, Z: 3}, {X: 0.5, Y: -1, Z: 2}, {X: -3, Y: 0.25, Z: 1}},
		{{X: 1e-3, Y: 1e-3}, {}, {X: 2e-3, Y: 2e-3}},
		{{X: 1, Y: 1, Z: 1}, {X: 2, Y: 2, Z: 2}, {X: 3, Y: 3.0000001, Z: 3}},
	}
	for i, tr := range triples {
		got := VertexAngleDeg(tr[0], tr[1], tr[2])
		if got < 0 || got > 180 || math.IsNaN(got) {
			t.Errorf("triple %d: VertexAngleDeg = %v, want within [0,180]", i, got)
		}
	}
}

func TestMidpoint(t *testing.T) {
	got := Midpoint(r3.Vec{X: 2, Y: 4, Z: -2}, r3.Vec{X: 0, Y: 0, Z: 6})
	want := r3.Vec{X: 1, Y: 2, Z: 2}
	if got != want {
		t.Errorf("Midpoint = %v, want %v", got, want)
	}
}

func TestProjectOntoPlane(t *testing.T) {
	v := r3.Vec{X: 3, Y: 5, Z: -2}
	got := ProjectOntoPlane(v, r3.Vec{Y: 1})
	want := r3.Vec{X: 3, Y: 0, Z: -2}
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 || math.Abs(got.Z-want.Z) > 1e-12 {
		t.Errorf("ProjectOntoPlane = %v, want %v", got, want)
	}
}

func TestProjectOntoPlane_ZeroNormal(t *testing.T) {
	v := r3.Vec{X: 3, Y: 5, Z: -2}
	if got := ProjectOntoPlane(v, r3.Vec{}); got != v {
		t.Errorf("ProjectOntoPlane with zero normal = %v, want input %v", got, v)
	}
}

func TestSignedAngleDeg(t *testing.T) {
	u := r3.Vec{X: 1}
	v := r3.Vec{Z: -1}
	// Rotating +X toward -Z is counter-clockwise about +Y.
	got := SignedAngleDeg(u, v, Up)
	if math.Abs(got-90) > 1e-9 {
		t.Errorf("SignedAngleDeg = %v, want 90", got)
	}
	if got := SignedAngleDeg(v, u, Up); math.Abs(got+90) > 1e-9 {
		t.Errorf("SignedAngleDeg reversed = %v, want -90", got)
	}
}

func TestAngleBetweenDeg_ZeroVector(t *testing.T) {
	if got := AngleBetweenDeg(r3.Vec{}, r3.Vec{X: 1}); got != 0 {
		t.Errorf("AngleBetweenDeg with zero vector = %v, want 0", got)
	}
}

func TestUnit(t *testing.T) {
	u, ok := Unit(r3.Vec{X: 0, Y: 3, Z: 4})
	if !ok {
		t.Fatal("Unit returned not-ok for a non-zero vector")
	}
	if math.Abs(r3.Norm(u)-1) > 1e-12 {
		t.Errorf("Unit norm = %v, want 1", r3.Norm(u))
	}
	if _, ok := Unit(r3.Vec{}); ok {
		t.Error("Unit of zero vector should return ok=false")
	}
}
