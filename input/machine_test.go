package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/slipstream/parameter"
)

func keyEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestMachineHoldWindow(t *testing.T) {
	m := NewMachine()
	t0 := time.Now()

	m.HandleEvent(keyEvent('a'), t0)

	if in := m.Latch(t0); !in.SteerLeft {
		t.Error("Expected steer-left asserted immediately after press")
	}

	inside := t0.Add(parameter.InputHoldWindow / 2)
	if in := m.Latch(inside); !in.SteerLeft {
		t.Error("Expected steer-left still asserted inside hold window")
	}

	after := t0.Add(parameter.InputHoldWindow + time.Millisecond)
	if in := m.Latch(after); in.SteerLeft {
		t.Error("Expected steer-left cleared past hold window")
	}
}

func TestMachineRepeatExtendsHold(t *testing.T) {
	m := NewMachine()
	t0 := time.Now()

	m.HandleEvent(keyEvent(' '), t0)
	repeat := t0.Add(parameter.InputHoldWindow - 10*time.Millisecond)
	m.HandleEvent(keyEvent(' '), repeat)

	later := t0.Add(parameter.InputHoldWindow + 50*time.Millisecond)
	if in := m.Latch(later); !in.BoostHeld {
		t.Error("Expected key repeat to keep boost asserted")
	}
}

func TestIntentAxes(t *testing.T) {
	tests := []struct {
		name      string
		in        Intent
		steer     float64
		pitchAxis float64
	}{
		{"Neutral", Intent{}, 0, 0},
		{"Left", Intent{SteerLeft: true}, -1, 0},
		{"Right", Intent{SteerRight: true}, 1, 0},
		{"Opposing steer cancels", Intent{SteerLeft: true, SteerRight: true}, 0, 0},
		{"Nose up", Intent{PitchUp: true}, 0, 1},
		{"Nose down", Intent{PitchDown: true}, 0, -1},
		{"Opposing pitch cancels", Intent{PitchUp: true, PitchDown: true}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Steer(); got != tt.steer {
				t.Errorf("Steer() = %v, want %v", got, tt.steer)
			}
			if got := tt.in.PitchAxis(); got != tt.pitchAxis {
				t.Errorf("PitchAxis() = %v, want %v", got, tt.pitchAxis)
			}
		})
	}
}

func TestLookDeltaConsumedOnLatch(t *testing.T) {
	m := NewMachine()
	now := time.Now()

	m.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone), now)
	m.HandleEvent(tcell.NewEventMouse(14, 3, tcell.ButtonNone, tcell.ModNone), now)

	in := m.Latch(now)
	if in.LookDX != 4 || in.LookDY != -2 {
		t.Errorf("Expected look delta (4,-2), got (%v,%v)", in.LookDX, in.LookDY)
	}

	if in := m.Latch(now); in.LookDX != 0 || in.LookDY != 0 {
		t.Errorf("Expected look delta cleared after latch, got (%v,%v)", in.LookDX, in.LookDY)
	}
}

func TestQuitResetLatches(t *testing.T) {
	m := NewMachine()
	now := time.Now()

	m.HandleEvent(keyEvent('q'), now)
	m.HandleEvent(keyEvent('r'), now)

	if !m.QuitRequested() {
		t.Error("Expected quit latch set")
	}
	if m.QuitRequested() {
		t.Error("Expected quit latch cleared after read")
	}
	if !m.ResetRequested() {
		t.Error("Expected reset latch set")
	}
	if m.ResetRequested() {
		t.Error("Expected reset latch cleared after read")
	}
}
