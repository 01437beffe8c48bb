package system

import (
	"math"

	"github.com/lixenwraith/slipstream/component"
	"github.com/lixenwraith/slipstream/parameter"
)

// ClassifyPaint maps lateral offset against the clamp limit to the cosmetic
// rail state. Pure function: enter Left/Right when |offset| reaches the enter
// fraction of the limit on the matching side, return to Neutral only once
// |offset| falls strictly under the exit fraction. The asymmetric thresholds
// form a hysteresis band; re-evaluating an unchanged offset always yields the
// same state
func ClassifyPaint(lateral, limit float64, current component.PaintState) component.PaintState {
	if limit <= 0 {
		return component.PaintNeutral
	}

	enter := parameter.PaintEnterFraction * limit
	exit := parameter.PaintExitFraction * limit

	// Enter (or flip sides) wins over exit
	if lateral >= enter {
		return component.PaintRight
	}
	if lateral <= -enter {
		return component.PaintLeft
	}

	if current != component.PaintNeutral && math.Abs(lateral) < exit {
		return component.PaintNeutral
	}
	return current
}
