package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/slipstream/parameter"
)

// action indexes the hold-latched controls
type action uint8

const (
	actionSteerLeft action = iota
	actionSteerRight
	actionPitchUp
	actionPitchDown
	actionBoost
	actionCount
)

// Machine converts tcell events into latched Intent values. Terminals report
// key repeats rather than releases, so each control stays asserted for a hold
// window after its most recent press; the repeat stream keeps a held key
// alive across latches
type Machine struct {
	lastPress [actionCount]time.Time

	lookDX float64
	lookDY float64

	mouseX, mouseY int
	mouseSeen      bool

	quit  bool
	reset bool
}

// NewMachine creates an input machine with no asserted controls
func NewMachine() *Machine {
	return &Machine{}
}

// HandleEvent consumes one terminal event. Key events stamp the matching
// action; mouse motion accumulates raw look deltas
func (m *Machine) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		m.handleKey(ev, now)
	case *tcell.EventMouse:
		x, y := ev.Position()
		if m.mouseSeen {
			m.lookDX += float64(x - m.mouseX)
			m.lookDY += float64(y - m.mouseY)
		}
		m.mouseX, m.mouseY = x, y
		m.mouseSeen = true
	}
}

func (m *Machine) handleKey(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		m.quit = true
		return
	case tcell.KeyLeft:
		m.lastPress[actionSteerLeft] = now
		return
	case tcell.KeyRight:
		m.lastPress[actionSteerRight] = now
		return
	case tcell.KeyUp:
		m.lastPress[actionPitchUp] = now
		return
	case tcell.KeyDown:
		m.lastPress[actionPitchDown] = now
		return
	}

	if ev.Key() != tcell.KeyRune {
		return
	}

	switch ev.Rune() {
	case 'a', 'A':
		m.lastPress[actionSteerLeft] = now
	case 'd', 'D':
		m.lastPress[actionSteerRight] = now
	case 'w', 'W':
		m.lastPress[actionPitchUp] = now
	case 's', 'S':
		m.lastPress[actionPitchDown] = now
	case ' ':
		m.lastPress[actionBoost] = now
	case 'q', 'Q':
		m.quit = true
	case 'r', 'R':
		m.reset = true
	}
}

// Latch returns the Intent for the upcoming tick and clears the accumulated
// look deltas. Hold-latched controls remain asserted while within the hold
// window of their last press
func (m *Machine) Latch(now time.Time) Intent {
	held := func(a action) bool {
		t := m.lastPress[a]
		return !t.IsZero() && now.Sub(t) < parameter.InputHoldWindow
	}

	in := Intent{
		SteerLeft:  held(actionSteerLeft),
		SteerRight: held(actionSteerRight),
		PitchUp:    held(actionPitchUp),
		PitchDown:  held(actionPitchDown),
		BoostHeld:  held(actionBoost),
		LookDX:     m.lookDX,
		LookDY:     m.lookDY,
	}

	m.lookDX = 0
	m.lookDY = 0

	return in
}

// QuitRequested reports and clears the quit latch
func (m *Machine) QuitRequested() bool {
	q := m.quit
	m.quit = false
	return q
}

// ResetRequested reports and clears the reset latch
func (m *Machine) ResetRequested() bool {
	r := m.reset
	m.reset = false
	return r
}
