package event

import (
	"time"
)

// EventType represents the type of simulation event
type EventType int

const (
	// EventLapAdvanced signals the swept progress interval crossed the lap checkpoint
	// Trigger: RacerSystem tick | Consumer: HUD, audio | Payload: *LapAdvancedPayload
	EventLapAdvanced EventType = iota

	// EventBoosterPickedUp signals a center-lane crossing of a booster marker
	// Trigger: RacerSystem tick | Consumer: HUD, audio | Payload: *BoosterPickedUpPayload
	EventBoosterPickedUp

	// EventEnteredCorridor signals corridor membership turned on this tick
	// Trigger: RacerSystem tick | Consumer: HUD, audio, camera | Payload: nil
	EventEnteredCorridor

	// EventExitedCorridor signals corridor membership turned off this tick
	// Trigger: RacerSystem tick | Consumer: HUD, audio, camera | Payload: nil
	EventExitedCorridor

	// EventPaintChanged signals a rail paint state transition
	// Trigger: RacerSystem tick (hysteresis classifier) | Consumer: HUD, audio
	// Payload: *PaintChangedPayload
	EventPaintChanged

	// EventRaceReset signals a synchronous between-tick state reinitialization
	// Trigger: host loop on player request | Consumer: HUD, audio | Payload: nil
	EventRaceReset
)

// SimEvent represents a single simulation event with metadata
type SimEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}

// LapAdvancedPayload carries the post-advance lap counter
type LapAdvancedPayload struct {
	Lap      int
	LapTotal int
}

// BoosterPickedUpPayload identifies the crossed marker
type BoosterPickedUpPayload struct {
	MarkerIndex int
	Marker      float64 // Progress value of the marker
	Stacked     int     // Active booster count after the pickup
}

// PaintChangedPayload carries the rail paint transition
type PaintChangedPayload struct {
	Previous uint8
	Current  uint8
}
