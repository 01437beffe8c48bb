package track

import (
	"math"

	"github.com/lixenwraith/slipstream/vmath"
)

// Circuit is a concrete closed raceway: an elliptical loop with vertical
// undulation and banked turns. It stands in for the full track generator,
// which lives outside this module; the simulation core only ever sees the
// Track interface. All queries are analytic except Length, which is sampled
// once at construction
type Circuit struct {
	radiusX float64
	radiusZ float64
	hillAmp float64
	bankMax float64 // Peak bank angle in radians
	width   float64

	length    float64
	corridors []Span
	markers   []float64
}

// Span is a wrap-aware progress interval [Start, End); Start > End means the
// span wraps the lap boundary
type Span struct {
	Start float64
	End   float64
}

// Contains reports wrap-aware membership of progress t
func (s Span) Contains(t float64) bool {
	if s.Start <= s.End {
		return t >= s.Start && t < s.End
	}
	return t >= s.Start || t < s.End
}

const circuitLengthSamples = 512

// NewCircuit builds a banked elliptical circuit. Markers must already be
// sorted ascending; corridor spans may wrap
func NewCircuit(radiusX, radiusZ, hillAmp, bankMax, width float64, corridors []Span, markers []float64) *Circuit {
	c := &Circuit{
		radiusX:   radiusX,
		radiusZ:   radiusZ,
		hillAmp:   hillAmp,
		bankMax:   bankMax,
		width:     width,
		corridors: corridors,
		markers:   markers,
	}

	// Arc length by piecewise linear sampling; exact enough for progress
	// deltas and far cheaper than adaptive quadrature
	prev := c.PointAt(0)
	for i := 1; i <= circuitLengthSamples; i++ {
		cur := c.PointAt(float64(i) / circuitLengthSamples)
		c.length += vmath.V3FMag(vmath.V3FSub(cur, prev))
		prev = cur
	}

	return c
}

// DefaultCircuit returns the sandbox raceway: a 2km-class loop with two
// corridors and six booster markers
func DefaultCircuit() *Circuit {
	return NewCircuit(
		380, 260, // Radii
		18,       // Hill amplitude
		0.45,     // Peak bank
		26,       // Width
		[]Span{{Start: 0.18, End: 0.32}, {Start: 0.70, End: 0.86}},
		[]float64{0.08, 0.25, 0.40, 0.55, 0.76, 0.91},
	)
}

func (c *Circuit) Length() float64 {
	return c.length
}

func (c *Circuit) Width() float64 {
	return c.width
}

// PointAt returns the centerline position at progress t
func (c *Circuit) PointAt(t float64) vmath.Vec3F {
	theta := 2 * math.Pi * Wrap(t)
	sin, cos := math.Sincos(theta)
	return vmath.Vec3F{
		X: c.radiusX * cos,
		Y: c.hillAmp * math.Sin(2*theta),
		Z: c.radiusZ * sin,
	}
}

// FrameAt returns the banked orthonormal frame at progress t. The unbanked
// basis is built from the analytic tangent and world up, then rolled around
// the tangent by the local bank angle
func (c *Circuit) FrameAt(t float64) Frame {
	tw := Wrap(t)
	theta := 2 * math.Pi * tw
	sin, cos := math.Sincos(theta)

	// d/dθ of PointAt
	tangent := vmath.V3FNormalize(vmath.Vec3F{
		X: -c.radiusX * sin,
		Y: 2 * c.hillAmp * math.Cos(2*theta),
		Z: c.radiusZ * cos,
	})

	up := vmath.Vec3F{Y: 1}
	binormal := vmath.V3FNormalize(vmath.V3FCross(tangent, up))
	normal := vmath.V3FCross(binormal, tangent)

	// Bank rolls into the turn, strongest where the ellipse curves hardest
	bank := c.bankMax * math.Sin(2*theta)
	if bank != 0 {
		normal = vmath.V3FRotateAxis(normal, tangent, bank)
		binormal = vmath.V3FRotateAxis(binormal, tangent, bank)
	}

	return Frame{
		Position: c.PointAt(tw),
		Tangent:  tangent,
		Normal:   normal,
		Binormal: binormal,
	}
}

// CorridorStatusAt reports membership in any corridor span and the lateral
// centering quality there. Alignment falls linearly from 1 at center to 0 at
// the track edge
func (c *Circuit) CorridorStatusAt(t, lateral float64) CorridorStatus {
	tw := Wrap(t)
	for _, span := range c.corridors {
		if span.Contains(tw) {
			half := c.width / 2
			align := 1 - math.Abs(lateral)/half
			return CorridorStatus{
				Inside:    true,
				Alignment: vmath.Clamp(align, 0, 1),
			}
		}
	}
	return CorridorStatus{}
}

// BoosterMarkers returns the ordered marker list; callers must not mutate it
func (c *Circuit) BoosterMarkers() []float64 {
	return c.markers
}
