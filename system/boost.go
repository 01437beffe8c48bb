package system

import (
	"math"
	"time"

	"github.com/lixenwraith/slipstream/component"
	"github.com/lixenwraith/slipstream/config"
	"github.com/lixenwraith/slipstream/track"
	"github.com/lixenwraith/slipstream/vmath"
)

// energyEpsilon snaps the tank to empty; linear drain in floats can leave a
// residue that would keep the multiplier active one tick past exhaustion
const energyEpsilon = 1e-9

// boostModel implements the bounded manual-boost resource and the two other
// speed multiplier sources. It owns no state of its own; everything lives in
// RacerState so the three curves stay independently observable
type boostModel struct {
	tune config.Tuning
}

// updateEnergy drains or regenerates the manual tank and recomputes
// activation. Drain is linear over the full-duration constant; regen is
// linear and capped at 1. A held boost with an empty tank neither drains nor
// refills. Energy never leaves [0,1] regardless of input history
func (b boostModel) updateEnergy(st *component.RacerState, held bool, dt float64) {
	if held && st.BoostEnergy > 0 {
		st.BoostEnergy = vmath.Clamp(st.BoostEnergy-dt/b.tune.BoostDurationSec, 0, 1)
		if st.BoostEnergy <= energyEpsilon {
			st.BoostEnergy = 0
		}
	} else if !held {
		st.BoostEnergy = vmath.Clamp(st.BoostEnergy+b.tune.BoostRegenPerSec*dt, 0, 1)
	}

	// Activation follows the post-drain tank: the multiplier drops the
	// instant the tank empties
	st.ManualActive = held && st.BoostEnergy > 0
}

// expireBoosters drops every stale entry (expiry <= now) from the multiset
func (b boostModel) expireBoosters(st *component.RacerState, now time.Duration) {
	live := st.ActiveBoosters[:0]
	for _, expiry := range st.ActiveBoosters {
		if expiry > now {
			live = append(live, expiry)
		}
	}
	st.ActiveBoosters = live
}

// manualFactor is the speed multiplier from the held boost
func (b boostModel) manualFactor(st *component.RacerState) float64 {
	if st.ManualActive {
		return b.tune.BoostMultiplier
	}
	return 1
}

// stackedFactor composes the track-granted boosters multiplicatively:
// N active pickups yield factor^N
func (b boostModel) stackedFactor(st *component.RacerState) float64 {
	n := len(st.ActiveBoosters)
	if n == 0 {
		return 1
	}
	return math.Pow(b.tune.TrackBoosterMultiplier, float64(n))
}

// updateCorridor smooths the corridor multiplier. Inside a corridor with
// sufficient alignment it accumulates toward a target proportional to
// alignment quality; otherwise it decays toward 1 at a faster rate. Both
// motions are exponential approaches, never a step
func (b boostModel) updateCorridor(st *component.RacerState, cs track.CorridorStatus, accumRate, decayRate, dt float64) {
	target := 1.0
	rate := decayRate
	if cs.Inside && cs.Alignment >= b.tune.CorridorAlignThreshold {
		target = 1 + b.tune.CorridorMaxBonus*cs.Alignment
		rate = accumRate
	}
	st.CorridorFactor = vmath.Approach(st.CorridorFactor, target, rate, dt)
}

// targetSpeed composes the three multiplier sources onto the base speed and
// applies the hard cap
func (b boostModel) targetSpeed(st *component.RacerState) float64 {
	raw := b.tune.BaseSpeed * b.manualFactor(st) * b.stackedFactor(st) * st.CorridorFactor
	return math.Min(b.tune.MaxSpeed, raw)
}
