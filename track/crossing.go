package track

import "math"

// Progress space is cyclic; every wrap-and-compare decision lives here so no
// other package re-derives modulo arithmetic. A tick's advance is always less
// than one full lap, so a swept interval is described by its endpoints alone.

// CrossingRule selects the half-open interval convention for a marker test.
// The two conventions are deliberate, not incidental: a checkpoint uses (a,b]
// so the crossing lands on the tick that reaches the line, while a pickup uses
// [a,b) so a racer parked exactly on a marker does not re-trigger every tick
type CrossingRule uint8

const (
	// RuleCheckpoint crosses when a < m <= b (forward, wrap-aware)
	RuleCheckpoint CrossingRule = iota

	// RulePickup crosses when a <= m < b (forward, wrap-aware)
	RulePickup
)

// Wrap normalizes t into [0,1)
func Wrap(t float64) float64 {
	t = math.Mod(t, 1)
	if t < 0 {
		t += 1
	}
	return t
}

// Crossed reports whether the forward swept interval from previous progress a
// to new progress b contains marker m under the given rule. All arguments are
// expected in [0,1); a > b means the sweep wrapped the lap boundary once
func Crossed(a, b, m float64, rule CrossingRule) bool {
	if a == b {
		// Stationary tick sweeps nothing
		return false
	}

	if a < b {
		switch rule {
		case RuleCheckpoint:
			return a < m && m <= b
		default:
			return a <= m && m < b
		}
	}

	// Wrapped: interval is (a,1) joined with the prefix ending at b
	switch rule {
	case RuleCheckpoint:
		return m > a || m <= b
	default:
		return m >= a || m < b
	}
}

// CrossedMarkers appends the indices of all markers swept by the interval, in
// marker order. Markers are fixed per session; only the sweep is dynamic. An
// unexpectedly large advance counts every strictly swept marker exactly once,
// never twice. An empty marker list yields no crossings
func CrossedMarkers(a, b float64, markers []float64, rule CrossingRule, out []int) []int {
	for i, m := range markers {
		if Crossed(a, b, m, rule) {
			out = append(out, i)
		}
	}
	return out
}
