package parameter

import "time"

// Terminal Input Latching
const (
	// InputHoldWindow keeps a key-driven intent asserted after its last press.
	// Terminals deliver repeats, not releases; the window bridges the repeat
	// gap so a held key reads as continuously held
	InputHoldWindow = 150 * time.Millisecond
)
