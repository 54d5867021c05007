package config

import "fmt"

// PacePreset represents a named movement pace.
type PacePreset string

const (
	PaceRelaxed PacePreset = "relaxed"
	PaceNormal  PacePreset = "normal"
	PaceBrisk   PacePreset = "brisk"
)

// SpeedFactorForPace returns the speed multiplier for a pace preset.
func SpeedFactorForPace(preset PacePreset) (float64, error) {
	switch preset {
	case "", PaceNormal:
		return 1.0, nil
	case PaceRelaxed:
		return 0.6, nil
	case PaceBrisk:
		return 1.5, nil
	default:
		return 0, fmt.Errorf("config: unknown pace %q", preset)
	}
}

// ApplyPace scales player, pillar and transition timing by the preset.
// Pillar speed keeps its ratio to player speed.
func ApplyPace(cfg *GameConfig, preset PacePreset) error {
	factor, err := SpeedFactorForPace(preset)
	if err != nil {
		return err
	}
	cfg.Player.Speed *= factor
	cfg.Push.PillarSpeed *= factor
	cfg.Transition.Duration /= factor
	return nil
}
