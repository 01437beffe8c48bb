package parameter

import "time"

// Speed Model
const (
	// RacerBaseSpeed is the unboosted cruise speed in m/s
	RacerBaseSpeed = 210.0

	// RacerMaxSpeed is the hard cap applied after all multipliers
	RacerMaxSpeed = 360.0

	// RacerSpeedDampRate is the exponential approach rate of actual speed
	// toward target speed (1/s); prevents visible pops on multiplier changes
	RacerSpeedDampRate = 4.0
)

// Manual Boost
const (
	// BoostMultiplier is the speed factor while boost is held and energy > 0
	BoostMultiplier = 1.8

	// BoostDuration drains a full tank at continuous hold
	BoostDuration = 3 * time.Second

	// BoostRegenPerSec is the linear refill rate while boost is released
	BoostRegenPerSec = 0.2
)

// Track Boosters
const (
	// TrackBoosterMultiplier is the factor granted per active booster pickup;
	// N simultaneously active pickups stack to factor^N
	TrackBoosterMultiplier = 1.3

	// TrackBoosterDuration is the lifetime of one picked-up booster
	TrackBoosterDuration = 2 * time.Second

	// BoosterCenterLaneFraction is the share of full track width, centered,
	// within which a marker crossing counts as a pickup
	BoosterCenterLaneFraction = 0.4
)

// Corridor Bonus
const (
	// CorridorAlignThreshold is the minimum alignment quality that accumulates bonus
	CorridorAlignThreshold = 0.35

	// CorridorMaxBonus is the multiplier gained at perfect alignment (factor = 1 + bonus)
	CorridorMaxBonus = 0.5

	// CorridorAccumRate is the smoothing rate toward the alignment target (1/s)
	CorridorAccumRate = 3.0

	// CorridorDecayRate is the faster rate back toward 1.0 once outside or misaligned
	CorridorDecayRate = 7.0
)

// Lateral & Pitch Integration
const (
	// LateralClampFraction limits the offset to a share of half track width
	LateralClampFraction = 0.92

	// LateralMaxSpeed is the peak sideways speed in m/s at full steer
	LateralMaxSpeed = 28.0

	// LateralDampRate shapes the damped approach of lateral velocity (1/s)
	LateralDampRate = 10.0

	// PitchMax is the nose angle limit in radians
	PitchMax = 0.35

	// PitchMaxSpeed is the peak pitch rate in rad/s at full input
	PitchMaxSpeed = 1.6

	// PitchDampRate shapes the damped approach of pitch velocity (1/s)
	PitchDampRate = 8.0

	// PitchCenterRate recenters the nose when no pitch input is held (1/s)
	PitchCenterRate = 3.0
)

// Race Setup
const (
	// RaceStartOffset places the racer slightly behind the start line so the
	// first checkpoint crossing begins lap 1 cleanly
	RaceStartOffset = -0.004

	// RaceDefaultLaps is the lap count when no config override is present
	RaceDefaultLaps = 3
)
