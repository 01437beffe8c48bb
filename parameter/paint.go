package parameter

// Rail Paint Hysteresis
const (
	// PaintEnterFraction of the lateral clamp limit at which the matching
	// Left/Right rail state engages (inclusive)
	PaintEnterFraction = 0.98

	// PaintExitFraction of the limit under which the state returns to Neutral.
	// Return requires strictly below; sitting exactly on the threshold holds
	// the rail state. The band between exit and enter prevents rapid toggling
	PaintExitFraction = 0.50
)
