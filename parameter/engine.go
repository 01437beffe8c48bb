package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickInterval is the fixed simulation step (clock tick)
	TickInterval = 20 * time.Millisecond

	// MaxTicksPerFrame caps catch-up integration per frame; accumulated time
	// beyond the cap is discarded instead of spiraling under frame collapse
	MaxTicksPerFrame = 4
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
