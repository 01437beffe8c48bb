// Package input translates terminal events into per-tick latched intent
// values. The simulation never reads ambient key state; the integrator
// receives one immutable Intent per tick.
package input

// Intent is the latched control state for one simulation tick
// Pure data struct with no function pointers or engine dependencies
type Intent struct {
	SteerLeft  bool
	SteerRight bool
	PitchUp    bool
	PitchDown  bool
	BoostHeld  bool

	// Raw free-look deltas accumulated since the previous latch; consumed by
	// the camera, not the integrator
	LookDX float64
	LookDY float64
}

// Steer collapses the latched steer pair to -1, 0, +1 (+1 = right)
// Opposing inputs cancel
func (in Intent) Steer() float64 {
	switch {
	case in.SteerLeft == in.SteerRight:
		return 0
	case in.SteerRight:
		return 1
	default:
		return -1
	}
}

// PitchAxis collapses the latched pitch pair to -1, 0, +1 (+1 = nose up)
func (in Intent) PitchAxis() float64 {
	switch {
	case in.PitchUp == in.PitchDown:
		return 0
	case in.PitchUp:
		return 1
	default:
		return -1
	}
}
