package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/slipstream/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager manages all race audio. One-shot cues go straight into the
// mixer; the corridor hum is a looping streamer gated by a Ctrl.
//
// All methods degrade to no-ops when the speaker failed to initialize, so
// the simulation runs identically on machines without an audio device
type SoundManager struct {
	mu          sync.Mutex
	humStreamer *beep.Ctrl
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system. Safe to call twice
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferLen))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and clears the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.humStreamer != nil {
		sm.humStreamer.Paused = true
	}
	sm.mixer.Clear()

	// beep has no speaker Close(); a cleared mixer leaves no artifacts
	sm.initialized = false
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.humStreamer != nil {
		sm.humStreamer.Paused = true
	}
	return sm.muted
}

// PlayLapChime plays the lap completion arpeggio
func (sm *SoundManager) PlayLapChime() {
	sm.playOneShot(CreateLapChime(sampleRate))
}

// PlayPickupBlip plays the booster collection blip
func (sm *SoundManager) PlayPickupBlip() {
	sm.playOneShot(CreatePickupBlip(sampleRate))
}

// PlayRailScrape plays the rail contact scrape
func (sm *SoundManager) PlayRailScrape() {
	sm.playOneShot(CreateRailScrape(sampleRate))
}

// StartCorridorHum starts the looping corridor hum
// Already-running hum is left alone
func (sm *SoundManager) StartCorridorHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	if sm.humStreamer != nil && !sm.humStreamer.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: NewHumGenerator(sampleRate), Paused: false}
	sm.humStreamer = ctrl
	sm.mixer.Add(ctrl)
}

// StopCorridorHum pauses the corridor hum
func (sm *SoundManager) StopCorridorHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.humStreamer != nil {
		sm.humStreamer.Paused = true
	}
}

func (sm *SoundManager) playOneShot(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	sm.mixer.Add(s)
}
