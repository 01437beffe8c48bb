package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/slipstream/component"
	"github.com/lixenwraith/slipstream/config"
	"github.com/lixenwraith/slipstream/event"
	"github.com/lixenwraith/slipstream/input"
	"github.com/lixenwraith/slipstream/parameter"
	"github.com/lixenwraith/slipstream/status"
	"github.com/lixenwraith/slipstream/track"
	"github.com/lixenwraith/slipstream/vmath"
)

// mockTrack is a straight-line stand-in with scriptable corridor membership
// and frame faults
type mockTrack struct {
	length  float64
	width   float64
	markers []float64
	inside  bool
	align   float64
	fault   bool
}

func (m *mockTrack) Length() float64 { return m.length }
func (m *mockTrack) Width() float64  { return m.width }

func (m *mockTrack) PointAt(t float64) vmath.Vec3F {
	return vmath.Vec3F{X: t * m.length}
}

func (m *mockTrack) FrameAt(t float64) track.Frame {
	f := track.Frame{
		Position: m.PointAt(t),
		Tangent:  vmath.Vec3F{X: 1},
		Normal:   vmath.Vec3F{Y: 1},
		Binormal: vmath.Vec3F{Z: 1},
	}
	if m.fault {
		f.Tangent.X = math.NaN()
	}
	return f
}

func (m *mockTrack) CorridorStatusAt(t, lateral float64) track.CorridorStatus {
	return track.CorridorStatus{Inside: m.inside, Alignment: m.align}
}

func (m *mockTrack) BoosterMarkers() []float64 { return m.markers }

func newTestRacer(trk *mockTrack) (*RacerSystem, *event.Queue) {
	q := event.NewQueue()
	sys := NewRacerSystem(trk, q, status.NewRegistry(), config.Default())
	return sys, q
}

// countEvents drains the queue and tallies by type
func countEvents(q *event.Queue) map[event.EventType]int {
	counts := make(map[event.EventType]int)
	for _, ev := range q.Consume() {
		counts[ev.Type]++
	}
	return counts
}

// stepUntil advances the sim until the racer's progress has crossed target
// under the pickup rule, failing the test if maxTicks is exhausted first
func stepUntil(t *testing.T, sys *RacerSystem, in input.Intent, target float64, maxTicks int) {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		prev := sys.State().Progress
		sys.Step(in, 0.02)
		if track.Crossed(prev, sys.State().Progress, target, track.RulePickup) {
			return
		}
	}
	t.Fatalf("Racer never crossed %v within %d ticks", target, maxTicks)
}

func TestLapAdvancesExactlyOnceAcrossWrap(t *testing.T) {
	trk := &mockTrack{length: 1000, width: 20}
	sys, q := newTestRacer(trk)

	// Start sits just behind the lap line; the first crossing of 0 is lap 1
	stepUntil(t, sys, input.Intent{}, 0.0, 2000)
	counts := countEvents(q)
	if counts[event.EventLapAdvanced] != 1 {
		t.Errorf("Expected 1 lap event, got %d", counts[event.EventLapAdvanced])
	}
	if lap := sys.State().LapCurrent; lap != 1 {
		t.Errorf("Expected lap 1, got %d", lap)
	}

	// Next full circuit yields exactly one more
	stepUntil(t, sys, input.Intent{}, 0.0, 2000)
	counts = countEvents(q)
	if counts[event.EventLapAdvanced] != 1 {
		t.Errorf("Expected 1 lap event on second circuit, got %d", counts[event.EventLapAdvanced])
	}
	if lap := sys.State().LapCurrent; lap != 2 {
		t.Errorf("Expected lap 2, got %d", lap)
	}
}

func TestLapCounterWrapsAtTotal(t *testing.T) {
	trk := &mockTrack{length: 1000, width: 20}
	q := event.NewQueue()
	tune := config.Default()
	tune.Laps = 2
	sys := NewRacerSystem(trk, q, status.NewRegistry(), tune)

	for circuit := 0; circuit < 3; circuit++ {
		stepUntil(t, sys, input.Intent{}, 0.0, 2000)
	}
	// Laps go 1, 2, then wrap back to 1
	if lap := sys.State().LapCurrent; lap != 1 {
		t.Errorf("Expected lap counter wrapped to 1, got %d", lap)
	}
}

func TestBoosterPickupCenterLane(t *testing.T) {
	trk := &mockTrack{length: 1000, width: 20, markers: []float64{0.05, 0.50}}
	sys, q := newTestRacer(trk)

	stepUntil(t, sys, input.Intent{}, 0.05, 2000)
	counts := countEvents(q)
	if counts[event.EventBoosterPickedUp] != 1 {
		t.Errorf("Expected 1 pickup event, got %d", counts[event.EventBoosterPickedUp])
	}
	if n := len(sys.State().ActiveBoosters); n != 1 {
		t.Errorf("Expected 1 active booster, got %d", n)
	}
}

func TestBoosterPickupIgnoredOffCenter(t *testing.T) {
	trk := &mockTrack{length: 1000, width: 20, markers: []float64{0.50}}
	sys, q := newTestRacer(trk)

	// Hold steer right the whole way; the lateral offset saturates at the
	// clamp limit, well outside the centered pickup lane
	in := input.Intent{SteerRight: true}
	stepUntil(t, sys, in, 0.50, 4000)

	lane := config.Default().BoosterCenterLane * trk.width / 2
	if lat := sys.State().Lateral; math.Abs(lat) <= lane {
		t.Fatalf("Test setup failed: lateral %v still inside pickup lane %v", lat, lane)
	}
	counts := countEvents(q)
	if counts[event.EventBoosterPickedUp] != 0 {
		t.Errorf("Expected no pickup off-center, got %d events", counts[event.EventBoosterPickedUp])
	}
	if n := len(sys.State().ActiveBoosters); n != 0 {
		t.Errorf("Expected no active boosters, got %d", n)
	}
}

func TestLateralClampNeverExceeded(t *testing.T) {
	trk := &mockTrack{length: 1000, width: 20}
	sys, _ := newTestRacer(trk)
	limit := parameter.LateralClampFraction * trk.width / 2

	in := input.Intent{SteerRight: true}
	for i := 0; i < 500; i++ {
		sys.Step(in, 0.02)
		if lat := sys.State().Lateral; lat > limit || lat < -limit {
			t.Fatalf("Lateral %v exceeded clamp %v at tick %d", lat, limit, i)
		}
	}
	if lat := sys.State().Lateral; math.Abs(lat-limit) > 1e-9 {
		t.Errorf("Expected lateral saturated at %v, got %v", limit, lat)
	}
}

func TestPitchClampAndRecenter(t *testing.T) {
	trk := &mockTrack{length: 1000, width: 20}
	sys, _ := newTestRacer(trk)

	in := input.Intent{PitchUp: true}
	for i := 0; i < 500; i++ {
		sys.Step(in, 0.02)
		if p := sys.State().Pitch; p > parameter.PitchMax {
			t.Fatalf("Pitch %v exceeded clamp %v", p, parameter.PitchMax)
		}
	}
	if p := sys.State().Pitch; math.Abs(p-parameter.PitchMax) > 1e-9 {
		t.Errorf("Expected pitch saturated at %v, got %v", parameter.PitchMax, p)
	}

	// Released, the nose drifts back toward level
	for i := 0; i < 500; i++ {
		sys.Step(input.Intent{}, 0.02)
	}
	if p := sys.State().Pitch; math.Abs(p) > 0.01 {
		t.Errorf("Expected pitch recentered near 0, got %v", p)
	}
}

func TestCorridorEnterExitEvents(t *testing.T) {
	trk := &mockTrack{length: 1000, width: 20, align: 0.9}
	sys, q := newTestRacer(trk)

	sys.Step(input.Intent{}, 0.02)
	if counts := countEvents(q); counts[event.EventEnteredCorridor] != 0 {
		t.Errorf("Unexpected corridor entry while outside")
	}

	trk.inside = true
	for i := 0; i < 10; i++ {
		sys.Step(input.Intent{}, 0.02)
	}
	counts := countEvents(q)
	if counts[event.EventEnteredCorridor] != 1 {
		t.Errorf("Expected exactly 1 entry event, got %d", counts[event.EventEnteredCorridor])
	}
	if !sys.State().InCorridor {
		t.Errorf("Expected InCorridor true")
	}

	trk.inside = false
	for i := 0; i < 10; i++ {
		sys.Step(input.Intent{}, 0.02)
	}
	counts = countEvents(q)
	if counts[event.EventExitedCorridor] != 1 {
		t.Errorf("Expected exactly 1 exit event, got %d", counts[event.EventExitedCorridor])
	}
}

func TestFrameFaultHoldsLastGood(t *testing.T) {
	trk := &mockTrack{length: 1000, width: 20}
	sys, _ := newTestRacer(trk)

	sys.Step(input.Intent{}, 0.02)
	good := sys.Frame()
	if !good.Finite() {
		t.Fatalf("Expected finite frame before fault")
	}

	trk.fault = true
	for i := 0; i < 5; i++ {
		sys.Step(input.Intent{}, 0.02)
	}
	held := sys.Frame()
	if !held.Finite() {
		t.Fatalf("Held frame is not finite")
	}
	if held != good {
		t.Errorf("Expected last-good frame held across faults, got %+v", held)
	}

	// Recovery resumes live queries
	trk.fault = false
	sys.Step(input.Intent{}, 0.02)
	if sys.Frame() == good {
		t.Errorf("Expected fresh frame after recovery")
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	trk := &mockTrack{length: 1000, width: 20, markers: []float64{0.05}, inside: true, align: 0.8}
	sys, q := newTestRacer(trk)

	in := input.Intent{BoostHeld: true, SteerLeft: true}
	stepUntil(t, sys, in, 0.05, 2000)
	countEvents(q)

	sys.Reset()
	st := sys.State()
	fresh := component.NewRacerState(config.Default().Laps)
	if st.Progress != fresh.Progress {
		t.Errorf("Expected progress %v after reset, got %v", fresh.Progress, st.Progress)
	}
	if st.Speed != 0 || st.BoostEnergy != 1 || st.LapCurrent != 0 {
		t.Errorf("Reset left residual state: speed=%v energy=%v lap=%d", st.Speed, st.BoostEnergy, st.LapCurrent)
	}
	if len(st.ActiveBoosters) != 0 {
		t.Errorf("Expected booster multiset cleared, got %d entries", len(st.ActiveBoosters))
	}
	if st.Paint != component.PaintNeutral || st.InCorridor {
		t.Errorf("Reset left paint=%v inCorridor=%v", st.Paint, st.InCorridor)
	}
	counts := countEvents(q)
	if counts[event.EventRaceReset] != 1 {
		t.Errorf("Expected 1 reset event, got %d", counts[event.EventRaceReset])
	}
	if sys.Elapsed() != 0 {
		t.Errorf("Expected elapsed 0 after reset, got %v", sys.Elapsed())
	}
}

func TestEmptyMarkerListNeverPicksUp(t *testing.T) {
	trk := &mockTrack{length: 1000, width: 20}
	sys, q := newTestRacer(trk)

	stepUntil(t, sys, input.Intent{}, 0.0, 2000)
	counts := countEvents(q)
	if counts[event.EventBoosterPickedUp] != 0 {
		t.Errorf("Expected no pickups with empty marker list, got %d", counts[event.EventBoosterPickedUp])
	}
}
