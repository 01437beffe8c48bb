package system

import (
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/slipstream/component"
	"github.com/lixenwraith/slipstream/config"
	"github.com/lixenwraith/slipstream/event"
	"github.com/lixenwraith/slipstream/input"
	"github.com/lixenwraith/slipstream/parameter"
	"github.com/lixenwraith/slipstream/status"
	"github.com/lixenwraith/slipstream/track"
	"github.com/lixenwraith/slipstream/vmath"
)

// RacerSystem is the kinematic integrator: the single writer of RacerState.
// Each fixed tick it runs one pure transform of the state under the latched
// intent, emits one-shot events for every discrete detection, and leaves a
// post-tick banked frame for the read-only observers (camera, HUD, audio).
//
// Failure semantics: inputs are clamped, never rejected; a malformed frame
// query holds the last-good frame and logs once; an empty marker list makes
// pickup detection a permanent no-op
type RacerSystem struct {
	trk   track.Track
	queue *event.Queue
	tune  config.Tuning
	boost boostModel

	state component.RacerState

	lateralVel float64
	pitchVel   float64

	elapsed   time.Duration // Sim time since race start, drives booster expiry
	lastFrame track.Frame
	frameHeld bool // One-shot latch for malformed frame logging

	markerScratch []int

	// Cached metric pointers
	statSpeed       *status.AtomicFloat
	statEnergy      *status.AtomicFloat
	statCorridorMul *status.AtomicFloat
	statLap         *atomic.Int64
	statBoosters    *atomic.Int64
	statFrameFaults *atomic.Int64
	statInCorridor  *atomic.Bool
}

// NewRacerSystem creates the integrator bound to its track, event queue and
// metric registry
func NewRacerSystem(trk track.Track, queue *event.Queue, reg *status.Registry, tune config.Tuning) *RacerSystem {
	s := &RacerSystem{
		trk:   trk,
		queue: queue,
		tune:  tune,
		boost: boostModel{tune: tune},
		state: component.NewRacerState(tune.Laps),

		statSpeed:       reg.Floats.Get("racer.speed"),
		statEnergy:      reg.Floats.Get("boost.energy"),
		statCorridorMul: reg.Floats.Get("boost.corridor"),
		statLap:         reg.Ints.Get("racer.lap"),
		statBoosters:    reg.Ints.Get("boost.stacked"),
		statFrameFaults: reg.Ints.Get("racer.frame_faults"),
		statInCorridor:  reg.Bools.Get("racer.in_corridor"),
	}

	s.lastFrame = s.queryFrame(s.state.Progress)
	return s
}

// State returns a read-only snapshot of the post-tick racer state
func (s *RacerSystem) State() component.RacerState {
	return s.state.Snapshot()
}

// Frame returns the post-tick banked frame at the racer's progress
// Held at the last good value across malformed queries
func (s *RacerSystem) Frame() track.Frame {
	return s.lastFrame
}

// Elapsed returns sim time since race start
func (s *RacerSystem) Elapsed() time.Duration {
	return s.elapsed
}

// Reset synchronously reinitializes the race between ticks: every state
// field returns to its initial value and the booster multiset clears
func (s *RacerSystem) Reset() {
	s.state = component.NewRacerState(s.tune.Laps)
	s.lateralVel = 0
	s.pitchVel = 0
	s.elapsed = 0
	s.frameHeld = false
	s.lastFrame = s.queryFrame(s.state.Progress)
	s.emit(event.EventRaceReset, nil)
}

// Step advances the simulation by one fixed tick of dt seconds
func (s *RacerSystem) Step(in input.Intent, dt float64) {
	st := &s.state
	s.elapsed += time.Duration(dt * float64(time.Second))

	// 1. Expire stale track boosters
	s.boost.expireBoosters(st, s.elapsed)

	// 2. Manual boost drain/regen and activation
	s.boost.updateEnergy(st, in.BoostHeld, dt)

	// 3. Corridor membership and alignment multiplier at the pre-move position
	cs := s.trk.CorridorStatusAt(st.Progress, st.Lateral)
	if cs.Inside != st.InCorridor {
		st.InCorridor = cs.Inside
		if cs.Inside {
			s.emit(event.EventEnteredCorridor, nil)
		} else {
			s.emit(event.EventExitedCorridor, nil)
		}
	}
	s.boost.updateCorridor(st, cs, parameter.CorridorAccumRate, parameter.CorridorDecayRate, dt)

	// 4. Damp actual speed toward the composed target
	st.Speed = vmath.Approach(st.Speed, s.boost.targetSpeed(st), s.tune.SpeedDampRate, dt)

	// 5. Convert speed to a progress delta and wrap
	prev := st.Progress
	if length := s.trk.Length(); length > 0 {
		st.Progress = track.Wrap(prev + st.Speed*dt/length)
	}

	// 6. Discrete detections over the swept interval
	s.detectCheckpoint(prev, st.Progress)
	s.detectBoosters(prev, st.Progress)

	// 7. Lateral offset via damped velocity toward the steer target
	s.integrateLateral(in.Steer(), dt)

	// 8. Pitch, same scheme, recentering when unheld
	s.integratePitch(in.PitchAxis(), dt)

	// 9. Cosmetic rail paint reclassification
	s.classifyPaint()

	s.lastFrame = s.queryFrame(st.Progress)
	s.publishMetrics()
}

// detectCheckpoint tests the lap line at progress 0 under the checkpoint rule
func (s *RacerSystem) detectCheckpoint(a, b float64) {
	if !track.Crossed(a, b, 0.0, track.RuleCheckpoint) {
		return
	}
	st := &s.state
	st.LapCurrent = (st.LapCurrent % st.LapTotal) + 1
	s.emit(event.EventLapAdvanced, &event.LapAdvancedPayload{
		Lap:      st.LapCurrent,
		LapTotal: st.LapTotal,
	})
}

// detectBoosters tests every marker under the pickup rule. A crossing only
// collects when the racer's lateral offset lies within the centered pickup
// lane; off-center crossings are ignored
func (s *RacerSystem) detectBoosters(a, b float64) {
	markers := s.trk.BoosterMarkers()
	if len(markers) == 0 {
		return
	}

	s.markerScratch = track.CrossedMarkers(a, b, markers, track.RulePickup, s.markerScratch[:0])
	if len(s.markerScratch) == 0 {
		return
	}

	st := &s.state
	lane := s.tune.BoosterCenterLane * s.trk.Width() / 2
	if math.Abs(st.Lateral) > lane {
		return
	}

	duration := time.Duration(s.tune.TrackBoosterDurationSec * float64(time.Second))
	for _, idx := range s.markerScratch {
		st.ActiveBoosters = append(st.ActiveBoosters, s.elapsed+duration)
		s.emit(event.EventBoosterPickedUp, &event.BoosterPickedUpPayload{
			MarkerIndex: idx,
			Marker:      markers[idx],
			Stacked:     len(st.ActiveBoosters),
		})
	}
}

func (s *RacerSystem) integrateLateral(steer, dt float64) {
	st := &s.state
	limit := s.lateralLimit()

	targetVel := steer * parameter.LateralMaxSpeed
	s.lateralVel = vmath.Approach(s.lateralVel, targetVel, parameter.LateralDampRate, dt)

	st.Lateral += s.lateralVel * dt
	if st.Lateral >= limit {
		st.Lateral = limit
		s.lateralVel = 0
	} else if st.Lateral <= -limit {
		st.Lateral = -limit
		s.lateralVel = 0
	}
}

func (s *RacerSystem) integratePitch(axis, dt float64) {
	st := &s.state

	targetVel := axis * parameter.PitchMaxSpeed
	s.pitchVel = vmath.Approach(s.pitchVel, targetVel, parameter.PitchDampRate, dt)

	st.Pitch += s.pitchVel * dt
	if axis == 0 {
		// Nose drifts back to level when unheld
		st.Pitch = vmath.Approach(st.Pitch, 0, parameter.PitchCenterRate, dt)
	}

	if st.Pitch >= parameter.PitchMax {
		st.Pitch = parameter.PitchMax
		s.pitchVel = 0
	} else if st.Pitch <= -parameter.PitchMax {
		st.Pitch = -parameter.PitchMax
		s.pitchVel = 0
	}
}

func (s *RacerSystem) classifyPaint() {
	st := &s.state
	next := ClassifyPaint(st.Lateral, s.lateralLimit(), st.Paint)
	if next == st.Paint {
		return
	}
	prev := st.Paint
	st.Paint = next
	s.emit(event.EventPaintChanged, &event.PaintChangedPayload{
		Previous: uint8(prev),
		Current:  uint8(next),
	})
}

// lateralLimit is the offset clamp: a fraction of half track width
func (s *RacerSystem) lateralLimit() float64 {
	return parameter.LateralClampFraction * s.trk.Width() / 2
}

// queryFrame fetches the banked frame at t, holding the last-good frame on a
// malformed result. The fault is logged once per incident, never per tick
func (s *RacerSystem) queryFrame(t float64) track.Frame {
	f := s.trk.FrameAt(t)
	if f.Finite() {
		s.frameHeld = false
		return f
	}

	s.statFrameFaults.Add(1)
	if !s.frameHeld {
		s.frameHeld = true
		log.Printf("malformed frame query at t=%v, holding last-good frame", t)
	}
	return s.lastFrame
}

func (s *RacerSystem) publishMetrics() {
	st := &s.state
	s.statSpeed.Set(st.Speed)
	s.statEnergy.Set(st.BoostEnergy)
	s.statCorridorMul.Set(st.CorridorFactor)
	s.statLap.Store(int64(st.LapCurrent))
	s.statBoosters.Store(int64(len(st.ActiveBoosters)))
	s.statInCorridor.Store(st.InCorridor)
}

func (s *RacerSystem) emit(t event.EventType, payload any) {
	s.queue.Push(event.SimEvent{
		Type:      t,
		Payload:   payload,
		Timestamp: time.Now(),
	})
}
