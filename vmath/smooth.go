package vmath

import "math"

// Scalar smoothing and clamping helpers shared by the simulation systems.
// All exponential approaches are frame-rate independent: the same rate
// converges identically whether driven by one 50ms tick or five 10ms ticks.

// DampFactor returns the blend factor for an exponential approach with the
// given rate (1/s) over dt seconds. Result is in [0,1]
func DampFactor(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

// Approach moves current toward target by an exponential damp at rate over dt
func Approach(current, target, rate, dt float64) float64 {
	return current + (target-current)*DampFactor(rate, dt)
}

// V3FApproach damps every component of current toward target
func V3FApproach(current, target Vec3F, rate, dt float64) Vec3F {
	f := DampFactor(rate, dt)
	return Vec3F{
		X: current.X + (target.X-current.X)*f,
		Y: current.Y + (target.Y-current.Y)*f,
		Z: current.Z + (target.Z-current.Z)*f,
	}
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b by s in [0,1]
func Lerp(a, b, s float64) float64 {
	return a + (b-a)*s
}
