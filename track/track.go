// Package track defines the raceway collaborator contract consumed by the
// simulation core, and the progress-space crossing arithmetic shared by lap
// and pickup detection. Progress t is normalized position along the closed
// curve, in [0,1), wrapping at the lap boundary.
package track

import (
	"github.com/lixenwraith/slipstream/vmath"
)

// Frame is an orthonormal banked basis at a curve point
// Ephemeral query result; never cached beyond one tick's use
type Frame struct {
	Position vmath.Vec3F
	Tangent  vmath.Vec3F // Forward along the curve
	Normal   vmath.Vec3F // Up, tilted with bank
	Binormal vmath.Vec3F // Right, completing the basis
}

// Finite reports whether every frame component is free of NaN/Inf
// A non-finite frame is a malformed query result and must not be consumed
func (f Frame) Finite() bool {
	return vmath.V3FFinite(f.Position) &&
		vmath.V3FFinite(f.Tangent) &&
		vmath.V3FFinite(f.Normal) &&
		vmath.V3FFinite(f.Binormal)
}

// CorridorStatus reports corridor membership at a query point
type CorridorStatus struct {
	Inside    bool
	Alignment float64 // Lateral centering quality in [0,1], 1 = perfectly centered
}

// Track is the geometry collaborator. Implementations are pure functions of
// progress; all queries are synchronous in-process calls
type Track interface {
	// Length returns the curve length in meters
	Length() float64

	// Width returns the full track width in meters
	Width() float64

	// PointAt returns the world position of the curve at progress t
	PointAt(t float64) vmath.Vec3F

	// FrameAt returns the banked orthonormal frame at progress t
	FrameAt(t float64) Frame

	// CorridorStatusAt reports corridor membership and alignment quality for
	// the given progress and lateral offset
	CorridorStatusAt(t, lateral float64) CorridorStatus

	// BoosterMarkers returns the ordered, immutable booster marker positions
	BoosterMarkers() []float64
}
