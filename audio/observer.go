package audio

import (
	"github.com/lixenwraith/slipstream/component"
	"github.com/lixenwraith/slipstream/event"
)

// Observer maps simulation events to audio cues. Read-only consumer
// registered on the host loop's event router
type Observer struct {
	sounds *SoundManager
}

// NewObserver creates the audio event observer
func NewObserver(sounds *SoundManager) *Observer {
	return &Observer{sounds: sounds}
}

// EventTypes implements event.Handler
func (o *Observer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventLapAdvanced,
		event.EventBoosterPickedUp,
		event.EventEnteredCorridor,
		event.EventExitedCorridor,
		event.EventPaintChanged,
		event.EventRaceReset,
	}
}

// HandleEvent implements event.Handler
func (o *Observer) HandleEvent(ev event.SimEvent) {
	switch ev.Type {
	case event.EventLapAdvanced:
		o.sounds.PlayLapChime()
	case event.EventBoosterPickedUp:
		o.sounds.PlayPickupBlip()
	case event.EventEnteredCorridor:
		o.sounds.StartCorridorHum()
	case event.EventExitedCorridor:
		o.sounds.StopCorridorHum()
	case event.EventPaintChanged:
		if p, ok := ev.Payload.(*event.PaintChangedPayload); ok {
			// Scrape on rail contact, silence on return to neutral
			if component.PaintState(p.Current) != component.PaintNeutral {
				o.sounds.PlayRailScrape()
			}
		}
	case event.EventRaceReset:
		o.sounds.StopCorridorHum()
	}
}
