package track

import (
	"math"
	"testing"

	"github.com/lixenwraith/slipstream/vmath"
)

func TestCircuitFrameOrthonormal(t *testing.T) {
	c := DefaultCircuit()

	for _, progress := range []float64{0, 0.1, 0.25, 0.33, 0.5, 0.66, 0.75, 0.9, 0.999} {
		f := c.FrameAt(progress)

		if !f.Finite() {
			t.Fatalf("Frame at t=%v is not finite", progress)
		}

		for name, v := range map[string]vmath.Vec3F{
			"tangent": f.Tangent, "normal": f.Normal, "binormal": f.Binormal,
		} {
			if mag := vmath.V3FMag(v); math.Abs(mag-1) > 1e-9 {
				t.Errorf("t=%v: %s magnitude %v, want 1", progress, name, mag)
			}
		}

		if dot := vmath.V3FDot(f.Tangent, f.Normal); math.Abs(dot) > 1e-9 {
			t.Errorf("t=%v: tangent·normal = %v, want 0", progress, dot)
		}
		if dot := vmath.V3FDot(f.Tangent, f.Binormal); math.Abs(dot) > 1e-9 {
			t.Errorf("t=%v: tangent·binormal = %v, want 0", progress, dot)
		}
		if dot := vmath.V3FDot(f.Normal, f.Binormal); math.Abs(dot) > 1e-9 {
			t.Errorf("t=%v: normal·binormal = %v, want 0", progress, dot)
		}
	}
}

func TestCircuitClosure(t *testing.T) {
	c := DefaultCircuit()
	start := c.PointAt(0)
	end := c.PointAt(0.9999999)
	if vmath.V3FMag(vmath.V3FSub(start, end)) > 0.01 {
		t.Errorf("Curve does not close: gap %v", vmath.V3FMag(vmath.V3FSub(start, end)))
	}
}

func TestCircuitLengthPlausible(t *testing.T) {
	c := DefaultCircuit()
	// An ellipse with radii 380/260 has circumference above the smaller
	// circle and below the larger
	if c.Length() < 2*math.Pi*260 || c.Length() > 2*math.Pi*380*1.2 {
		t.Errorf("Implausible arc length %v", c.Length())
	}
}

func TestCorridorStatus(t *testing.T) {
	c := DefaultCircuit()

	tests := []struct {
		name    string
		t       float64
		lateral float64
		inside  bool
	}{
		{"Inside first corridor centered", 0.25, 0, true},
		{"Inside first corridor offset", 0.25, 8, true},
		{"Outside corridors", 0.50, 0, false},
		{"Inside second corridor", 0.75, 0, true},
		{"Span start inclusive", 0.18, 0, true},
		{"Span end exclusive", 0.32, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := c.CorridorStatusAt(tt.t, tt.lateral)
			if st.Inside != tt.inside {
				t.Errorf("Inside = %v, want %v", st.Inside, tt.inside)
			}
			if st.Alignment < 0 || st.Alignment > 1 {
				t.Errorf("Alignment %v outside [0,1]", st.Alignment)
			}
		})
	}

	t.Run("Alignment decreases with offset", func(t *testing.T) {
		centered := c.CorridorStatusAt(0.25, 0).Alignment
		offset := c.CorridorStatusAt(0.25, 10).Alignment
		if offset >= centered {
			t.Errorf("Expected alignment to fall with offset: centered=%v offset=%v", centered, offset)
		}
	})
}

func TestSpanWrapped(t *testing.T) {
	s := Span{Start: 0.9, End: 0.1}
	if !s.Contains(0.95) || !s.Contains(0.05) {
		t.Error("Wrapped span must contain both sides of the boundary")
	}
	if s.Contains(0.5) {
		t.Error("Wrapped span must not contain mid-lap progress")
	}
}
