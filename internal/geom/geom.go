// Package geom provides the vector and angle primitives shared by the
// KPI extraction and kinematic sequence engines. All functions fail
// soft: degenerate geometry (zero-length vectors, zero normals) yields a
// zero angle or an unchanged vector, never an error or NaN.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Epsilon is the squared-length floor below which a vector is treated as
// zero-length.
const Epsilon = 1e-9

// Up is the global vertical axis (+Y) under the capture coordinate
// convention.
var Up = r3.Vec{Y: 1}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(a, b))
}

// AngleBetweenRad returns the unsigned angle between u and v in radians,
// in [0,pi]. Either vector being zero-length yields 0.
func AngleBetweenRad(u, v r3.Vec) float64 {
	nu := r3.Norm(u)
	nv := r3.Norm(v)
	if nu < Epsilon || nv < Epsilon {
		return 0
	}
	cos := r3.Dot(u, v) / (nu * nv)
	// Clamp to the acos domain; accumulated float error can push the
	// ratio fractionally outside [-1,1].
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// AngleBetweenDeg returns the unsigned angle between u and v in degrees,
// in [0,180].
func AngleBetweenDeg(u, v r3.Vec) float64 {
	return AngleBetweenRad(u, v) * 180 / math.Pi
}

// VertexAngleRad returns the angle at vertex b formed by points a-b-c in
// radians. A zero-length limb yields 0.
func VertexAngleRad(a, b, c r3.Vec) float64 {
	return AngleBetweenRad(r3.Sub(a, b), r3.Sub(c, b))
}

// VertexAngleDeg returns the vertex angle at b in degrees, in [0,180].
func VertexAngleDeg(a, b, c r3.Vec) float64 {
	return VertexAngleRad(a, b, c) * 180 / math.Pi
}

// ProjectOntoPlane projects v onto the plane with the given normal. A
// zero-length normal returns v unchanged.
func ProjectOntoPlane(v, normal r3.Vec) r3.Vec {
	n := r3.Norm(normal)
	if n < Epsilon {
		return v
	}
	unit := r3.Scale(1/n, normal)
	return r3.Sub(v, r3.Scale(r3.Dot(v, unit), unit))
}

// Horizontal projects v onto the horizontal (XZ) plane.
func Horizontal(v r3.Vec) r3.Vec {
	return r3.Vec{X: v.X, Z: v.Z}
}

// SignedAngleDeg returns the angle between u and v in degrees with its
// sign taken from the cross product against axis: positive when the
// rotation from u to v is counter-clockwise about axis.
func SignedAngleDeg(u, v, axis r3.Vec) float64 {
	ang := AngleBetweenDeg(u, v)
	if r3.Dot(r3.Cross(u, v), axis) < 0 {
		return -ang
	}
	return ang
}

// Unit returns v normalized, and false when v is zero-length (the zero
// vector is returned in that case rather than NaN components).
func Unit(v r3.Vec) (r3.Vec, bool) {
	n := r3.Norm(v)
	if n < Epsilon {
		return r3.Vec{}, false
	}
	return r3.Scale(1/n, v), true
}
