package parameter

import "time"

// Audio Synthesis
const (
	// AudioSampleRate for all generated cues
	AudioSampleRate = 48000

	// AudioBufferLen is the speaker buffer duration; larger is safer on slow
	// terminals, smaller is snappier
	AudioBufferLen = 100 * time.Millisecond
)

// Cue Shapes
const (
	// AudioLapChimeLen is the duration of the lap completion arpeggio
	AudioLapChimeLen = 450 * time.Millisecond

	// AudioPickupBlipLen is the duration of the booster pickup blip
	AudioPickupBlipLen = 120 * time.Millisecond

	// AudioRailScrapeLen is the duration of the rail contact scrape
	AudioRailScrapeLen = 250 * time.Millisecond
)
