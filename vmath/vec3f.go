package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector for physics-heavy calculations
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FLerp interpolates linearly between a and b by s in [0,1]
func V3FLerp(a, b Vec3F, s float64) Vec3F {
	return Vec3F{
		X: a.X + (b.X-a.X)*s,
		Y: a.Y + (b.Y-a.Y)*s,
		Z: a.Z + (b.Z-a.Z)*s,
	}
}

// V3FRotateAxis rotates v around unit axis by angle (Rodrigues formula)
// Axis must be normalized by the caller
func V3FRotateAxis(v, axis Vec3F, angle float64) Vec3F {
	sin, cos := math.Sincos(angle)
	cross := V3FCross(axis, v)
	dot := V3FDot(axis, v)
	return Vec3F{
		X: v.X*cos + cross.X*sin + axis.X*dot*(1-cos),
		Y: v.Y*cos + cross.Y*sin + axis.Y*dot*(1-cos),
		Z: v.Z*cos + cross.Z*sin + axis.Z*dot*(1-cos),
	}
}

// V3FFinite reports whether all components are finite (no NaN/Inf)
func V3FFinite(v Vec3F) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
