// Package config loads optional runtime tuning overrides from a YAML file.
// Every field defaults to the compiled parameter constants; an absent file is
// not an error, a malformed one is.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/slipstream/parameter"
)

// Tuning carries the runtime-adjustable simulation knobs
type Tuning struct {
	BaseSpeed     float64 `yaml:"baseSpeed"`     // Unboosted cruise speed, m/s
	MaxSpeed      float64 `yaml:"maxSpeed"`      // Hard cap after all multipliers
	SpeedDampRate float64 `yaml:"speedDampRate"` // Approach rate toward target speed, 1/s

	BoostMultiplier  float64 `yaml:"boostMultiplier"`  // Manual boost speed factor
	BoostDurationSec float64 `yaml:"boostDurationSec"` // Full-tank drain time, seconds
	BoostRegenPerSec float64 `yaml:"boostRegenPerSec"` // Refill rate while released

	TrackBoosterMultiplier  float64 `yaml:"trackBoosterMultiplier"`  // Per-pickup factor, stacks as factor^N
	TrackBoosterDurationSec float64 `yaml:"trackBoosterDurationSec"` // Pickup lifetime, seconds
	BoosterCenterLane       float64 `yaml:"boosterCenterLane"`       // Centered fraction of width that collects

	CorridorMaxBonus       float64 `yaml:"corridorMaxBonus"`       // Multiplier gain at perfect alignment
	CorridorAlignThreshold float64 `yaml:"corridorAlignThreshold"` // Minimum alignment that accumulates

	Laps int `yaml:"laps"` // Laps per race
}

// Default returns the compiled tuning baseline
func Default() Tuning {
	return Tuning{
		BaseSpeed:     parameter.RacerBaseSpeed,
		MaxSpeed:      parameter.RacerMaxSpeed,
		SpeedDampRate: parameter.RacerSpeedDampRate,

		BoostMultiplier:  parameter.BoostMultiplier,
		BoostDurationSec: parameter.BoostDuration.Seconds(),
		BoostRegenPerSec: parameter.BoostRegenPerSec,

		TrackBoosterMultiplier:  parameter.TrackBoosterMultiplier,
		TrackBoosterDurationSec: parameter.TrackBoosterDuration.Seconds(),
		BoosterCenterLane:       parameter.BoosterCenterLaneFraction,

		CorridorMaxBonus:       parameter.CorridorMaxBonus,
		CorridorAlignThreshold: parameter.CorridorAlignThreshold,

		Laps: parameter.RaceDefaultLaps,
	}
}

// Load merges overrides from path onto the defaults. A missing file returns
// the defaults untouched; YAML fields left unset keep their default values
func Load(path string) (Tuning, error) {
	t := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}

	if err := yaml.Unmarshal(data, &t); err != nil {
		return Default(), fmt.Errorf("failed to parse tuning file: %w", err)
	}

	if err := t.validate(); err != nil {
		return Default(), err
	}
	return t, nil
}

func (t Tuning) validate() error {
	switch {
	case t.BaseSpeed <= 0:
		return fmt.Errorf("invalid tuning: baseSpeed %v must be positive", t.BaseSpeed)
	case t.MaxSpeed < t.BaseSpeed:
		return fmt.Errorf("invalid tuning: maxSpeed %v below baseSpeed %v", t.MaxSpeed, t.BaseSpeed)
	case t.BoostDurationSec <= 0:
		return fmt.Errorf("invalid tuning: boostDurationSec %v must be positive", t.BoostDurationSec)
	case t.BoostMultiplier < 1 || t.TrackBoosterMultiplier < 1:
		return fmt.Errorf("invalid tuning: boost multipliers must be >= 1")
	case t.BoosterCenterLane <= 0 || t.BoosterCenterLane > 1:
		return fmt.Errorf("invalid tuning: boosterCenterLane %v outside (0,1]", t.BoosterCenterLane)
	case t.Laps <= 0:
		return fmt.Errorf("invalid tuning: laps %d must be positive", t.Laps)
	}
	return nil
}
