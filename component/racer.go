// Package component holds the plain data structs owned by the simulation
// systems. No logic beyond construction and snapshotting lives here.
package component

import (
	"time"

	"github.com/lixenwraith/slipstream/parameter"
	"github.com/lixenwraith/slipstream/track"
)

// PaintState is the cosmetic rail contact classification
type PaintState uint8

const (
	PaintNeutral PaintState = iota
	PaintLeft
	PaintRight
)

func (p PaintState) String() string {
	switch p {
	case PaintLeft:
		return "left"
	case PaintRight:
		return "right"
	default:
		return "neutral"
	}
}

// RacerState is the full simulation state of the vehicle. Exclusively owned
// and mutated by the racer system each tick; every other collaborator reads
// a post-tick snapshot.
//
// The three speed multiplier sources (manual boost, stacked track boosters,
// corridor bonus) stay separate named fields so each accumulation and decay
// curve remains independently testable
type RacerState struct {
	// Progress along the closed curve, in [0,1), wrapping at the lap boundary
	Progress float64

	// Lateral offset from centerline in meters, bounded by the clamp limit
	Lateral float64

	// Pitch is the nose angle in radians, bounded by ±PitchMax
	Pitch float64

	// Speed is the current forward speed in m/s, damped toward target
	Speed float64

	// BoostEnergy is the manual boost tank in [0,1]
	BoostEnergy float64

	// ManualActive is true while boost is held with energy remaining
	ManualActive bool

	// ActiveBoosters holds sim-time expiry stamps of picked-up track
	// boosters; N live entries stack the track multiplier to factor^N
	ActiveBoosters []time.Duration

	// CorridorFactor is the lag-smoothed corridor speed multiplier, >= 1
	CorridorFactor float64

	InCorridor bool
	Paint      PaintState

	LapCurrent int
	LapTotal   int
}

// NewRacerState creates the race-setup state: parked slightly behind the
// start line, full tank, neutral paint, lap counter ready to advance to 1 on
// the first checkpoint crossing
func NewRacerState(laps int) RacerState {
	if laps <= 0 {
		laps = parameter.RaceDefaultLaps
	}
	return RacerState{
		Progress:       track.Wrap(parameter.RaceStartOffset),
		BoostEnergy:    1,
		CorridorFactor: 1,
		LapTotal:       laps,
	}
}

// Snapshot returns a copy safe for read-only observers; the booster multiset
// is cloned so observers never alias the integrator's slice
func (r RacerState) Snapshot() RacerState {
	out := r
	if len(r.ActiveBoosters) > 0 {
		out.ActiveBoosters = make([]time.Duration, len(r.ActiveBoosters))
		copy(out.ActiveBoosters, r.ActiveBoosters)
	}
	return out
}
