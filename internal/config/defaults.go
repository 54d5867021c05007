package config

import (
	_ "embed"
)

//go:embed defaults/pusher.yaml
var defaultPusherYAML []byte

// Default returns the hard-coded configuration. It matches the embedded
// defaults/pusher.yaml and is used when that cannot be parsed.
func Default() GameConfig {
	return GameConfig{
		Sheet: SheetConfig{
			Columns:  12,
			Rows:     11,
			TileSize: 16,
			Gap:      1,
			Scale:    4,
		},
		Grid: GridConfig{
			Layers:           3,
			DecorationLayers: []int{0, 2},
			MaxColumns:       256,
			MaxRows:          256,
		},
		Player: PlayerConfig{
			SpawnCell:       CellConfig{X: 3, Y: 10},
			Speed:           200,
			AnimationPeriod: 0.25,
			LightRadius:     3,
			Sheet: SheetConfig{
				Columns:  3,
				Rows:     2,
				TileSize: 16,
				Gap:      0,
				Scale:    4,
			},
		},
		Push: PushConfig{
			PillarSpeed: 100,
		},
		Tiles: TilesConfig{
			Pushable:      []int{88},
			PressurePlate: []int{89},
			PortalRight:   []int{90},
		},
		Plates: PlatesConfig{
			Activation: ActivationPerPlate,
		},
		Transition: TransitionConfig{
			Duration:  3,
			MaxLevels: 3,
			Messages: map[int]string{
				2: "The first seal is broken",
				3: "Deeper still",
			},
		},
		Levels: LevelsConfig{
			Dir:     "levels",
			Pattern: "level_%02d.txt",
			Start:   1,
		},
		Camera: CameraConfig{
			Viewport: SizeConfig{W: 1024, H: 768},
		},
		Movement: MovementConfig{
			Mode: MovementGrid,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPusherYAML
}
