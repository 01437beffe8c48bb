package system

import (
	"testing"

	"github.com/lixenwraith/slipstream/component"
)

const paintLimit = 10.0

func TestPaintHysteresisBand(t *testing.T) {
	tests := []struct {
		name    string
		lateral float64
		current component.PaintState
		want    component.PaintState
	}{
		{"Centered stays neutral", 0, component.PaintNeutral, component.PaintNeutral},
		{"Below enter threshold stays neutral", 9.7, component.PaintNeutral, component.PaintNeutral},
		{"Exactly at enter threshold engages right", 9.8, component.PaintNeutral, component.PaintRight},
		{"Above enter threshold engages right", 9.9, component.PaintNeutral, component.PaintRight},
		{"Mirrored enter engages left", -9.8, component.PaintNeutral, component.PaintLeft},
		{"In rail above exit threshold holds", 7.0, component.PaintRight, component.PaintRight},
		{"In rail exactly at exit threshold holds", 5.0, component.PaintRight, component.PaintRight},
		{"In rail strictly under exit returns neutral", 4.999, component.PaintRight, component.PaintNeutral},
		{"Left rail at mirrored exit threshold holds", -5.0, component.PaintLeft, component.PaintLeft},
		{"Left rail strictly under exit returns neutral", -4.999, component.PaintLeft, component.PaintNeutral},
		{"Direct side flip without passing neutral", -9.9, component.PaintRight, component.PaintLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyPaint(tt.lateral, paintLimit, tt.current); got != tt.want {
				t.Errorf("ClassifyPaint(%v, %v) = %v, want %v", tt.lateral, tt.current, got, tt.want)
			}
		})
	}
}

// Re-evaluating an unchanged offset produces the same state every time
func TestPaintIdempotent(t *testing.T) {
	for _, lateral := range []float64{0, 4.9, 5.0, 7.3, 9.8, -9.8, -5.0} {
		first := ClassifyPaint(lateral, paintLimit, component.PaintNeutral)
		for i := 0; i < 5; i++ {
			if again := ClassifyPaint(lateral, paintLimit, first); again != first {
				t.Errorf("lateral %v: state changed from %v to %v on re-evaluation", lateral, first, again)
			}
		}
	}
}

func TestPaintZeroLimit(t *testing.T) {
	if got := ClassifyPaint(5, 0, component.PaintRight); got != component.PaintNeutral {
		t.Errorf("Expected neutral on degenerate limit, got %v", got)
	}
}
