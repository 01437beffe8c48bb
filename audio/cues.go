package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/slipstream/parameter"
)

// Race cue generators. Every cue is synthesized, no sample assets

// CreateLapChime generates a rising three-note arpeggio for lap completion
func CreateLapChime(rate beep.SampleRate) beep.Streamer {
	noteLen := parameter.AudioLapChimeLen / 3
	attack := 5 * time.Millisecond
	release := 60 * time.Millisecond

	note := func(freq float64) beep.Streamer {
		osc := NewOscillator(freq, noteLen, WaveSquare, rate)
		return NewEnvelope(osc, noteLen, attack, release, rate)
	}

	// C6, E6, G6
	sequence := beep.Seq(note(1046.50), note(1318.51), note(1567.98))
	return newVolume(sequence, 0.5)
}

// CreatePickupBlip generates a bright two-tone blip for booster collection
func CreatePickupBlip(rate beep.SampleRate) beep.Streamer {
	half := parameter.AudioPickupBlipLen / 2
	attack := 2 * time.Millisecond
	release := 30 * time.Millisecond

	// B5 up to E6, the classic coin interval
	n1 := NewEnvelope(NewOscillator(987.77, half, WaveSquare, rate), half, attack, release, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, half, WaveSquare, rate), half, attack, release, rate)

	return newVolume(beep.Seq(n1, n2), 0.45)
}

// CreateRailScrape generates a harsh noise burst for rail contact
func CreateRailScrape(rate beep.SampleRate) beep.Streamer {
	length := parameter.AudioRailScrapeLen

	noise := NewOscillator(0, length, WaveNoise, rate)
	shaped := NewEnvelope(noise, length, 10*time.Millisecond, 150*time.Millisecond, rate)

	grind := NewOscillator(90, length, WaveSaw, rate)
	grindShaped := NewEnvelope(grind, length, 10*time.Millisecond, 150*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(shaped, 0.6),
		newVolume(grindShaped, 0.4),
	)
	return newVolume(mixed, 0.4)
}

// HumGenerator produces the looping corridor hum: a slow low-frequency sweep
// that runs while the racer stays inside a boost corridor
type HumGenerator struct {
	rate    beep.SampleRate
	pos     int
	samples int
}

// NewHumGenerator creates the corridor hum loop at a 1.5 second cycle
func NewHumGenerator(rate beep.SampleRate) *HumGenerator {
	return &HumGenerator{
		rate:    rate,
		samples: rate.N(1500 * time.Millisecond),
	}
}

func (g *HumGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.rate)

		// Frequency sweeps 70Hz to 130Hz and back over the cycle
		cyclePos := float64(g.pos%g.samples) / float64(g.samples)
		freq := 70 + 60*math.Sin(cyclePos*math.Pi)

		amplitude := 0.12 * (0.6 + 0.4*math.Sin(cyclePos*math.Pi*2))
		sample := amplitude * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HumGenerator) Err() error {
	return nil
}
