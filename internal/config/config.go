// Package config provides YAML-based configuration loading for the puzzle
// engine and its terminal front end.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vovakirdan/tile-pusher/internal/core"
)

// GameConfig contains all configuration for a play session.
type GameConfig struct {
	Sheet      SheetConfig      `yaml:"sheet"`
	Grid       GridConfig       `yaml:"grid"`
	Player     PlayerConfig     `yaml:"player"`
	Push       PushConfig       `yaml:"push"`
	Tiles      TilesConfig      `yaml:"tiles"`
	Plates     PlatesConfig     `yaml:"plates"`
	Transition TransitionConfig `yaml:"transition"`
	Levels     LevelsConfig     `yaml:"levels"`
	Camera     CameraConfig     `yaml:"camera"`
	Movement   MovementConfig   `yaml:"movement"`
}

// SheetConfig describes the tile sprite sheet layout.
type SheetConfig struct {
	Columns  int     `yaml:"columns"`
	Rows     int     `yaml:"rows"`
	TileSize int     `yaml:"tile_size"`
	Gap      int     `yaml:"gap"`
	Scale    float64 `yaml:"scale"`
}

// Sheet converts the section to engine sheet metadata.
func (s SheetConfig) Sheet() core.Sheet {
	return core.Sheet{
		Columns:  s.Columns,
		Rows:     s.Rows,
		TileSize: s.TileSize,
		Gap:      s.Gap,
		Scale:    s.Scale,
	}
}

// CellSize returns the world size of one grid cell.
func (s SheetConfig) CellSize() float64 {
	return s.Sheet().CellSize()
}

// GridConfig defines level extent and layer policy.
type GridConfig struct {
	Layers           int   `yaml:"layers"`
	DecorationLayers []int `yaml:"decoration_layers"` // layers without colliders
	MaxColumns       int   `yaml:"max_columns"`       // 0 = unlimited
	MaxRows          int   `yaml:"max_rows"`          // 0 = unlimited
	FixedColumns     int   `yaml:"fixed_columns"`     // 0 = derive from file
	FixedRows        int   `yaml:"fixed_rows"`        // 0 = derive from file
}

// CellConfig is a grid coordinate.
type CellConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// PlayerConfig defines the player actor.
type PlayerConfig struct {
	SpawnCell       CellConfig  `yaml:"spawn_cell"`
	Speed           float64     `yaml:"speed"`            // world units per second
	AnimationPeriod float64     `yaml:"animation_period"` // seconds per frame-set swap
	LightRadius     float64     `yaml:"light_radius"`     // cells
	Sheet           SheetConfig `yaml:"sheet"`
}

// PushConfig defines pushed-tile motion.
type PushConfig struct {
	PillarSpeed float64 `yaml:"pillar_speed"` // world units per second
}

// TilesConfig maps tile ids to puzzle kinds.
type TilesConfig struct {
	Pushable      []int          `yaml:"pushable"`
	PressurePlate []int          `yaml:"pressure_plate"`
	PortalRight   []int          `yaml:"portal_right"`
	Glyphs        map[int]string `yaml:"glyphs"` // optional terminal glyph per id
}

// Plate activation policies.
const (
	ActivationPerPlate   = "per_plate"
	ActivationCumulative = "cumulative"
)

// PlatesConfig defines pressure plate counting.
type PlatesConfig struct {
	Activation string `yaml:"activation"`
}

// TransitionConfig defines the level swap sequence.
type TransitionConfig struct {
	Duration  float64        `yaml:"duration"` // seconds, whole sequence
	MaxLevels int            `yaml:"max_levels"`
	Messages  map[int]string `yaml:"messages"` // target level id -> text
}

// LevelsConfig locates level files.
type LevelsConfig struct {
	Dir     string `yaml:"dir"`
	Pattern string `yaml:"pattern"` // fmt pattern taking the level id
	Start   int    `yaml:"start"`
}

// Path returns the file path of level id.
func (l LevelsConfig) Path(id int) string {
	return filepath.Join(l.Dir, fmt.Sprintf(l.Pattern, id))
}

// SizeConfig is a width/height pair in world units.
type SizeConfig struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// CameraConfig defines the visible region.
type CameraConfig struct {
	Viewport SizeConfig `yaml:"viewport"`
}

// Movement modes.
const (
	MovementGrid = "grid"
	MovementFree = "free"
)

// MovementConfig selects the player controller.
type MovementConfig struct {
	Mode string `yaml:"mode"`
}

// Validate reports the first invalid setting.
func (c GameConfig) Validate() error {
	var errs []error
	if c.Sheet.Columns <= 0 || c.Sheet.Rows <= 0 {
		errs = append(errs, errors.New("sheet columns and rows must be positive"))
	}
	if c.Sheet.TileSize <= 0 || c.Sheet.Scale <= 0 {
		errs = append(errs, errors.New("sheet tile_size and scale must be positive"))
	}
	if c.Sheet.Gap < 0 {
		errs = append(errs, errors.New("sheet gap must not be negative"))
	}
	if c.Grid.Layers <= 0 {
		errs = append(errs, errors.New("grid layers must be positive"))
	}
	for _, l := range c.Grid.DecorationLayers {
		if l < 0 || l >= c.Grid.Layers {
			errs = append(errs, fmt.Errorf("decoration layer %d out of range", l))
		}
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, errors.New("player speed must be positive"))
	}
	if c.Push.PillarSpeed <= 0 {
		errs = append(errs, errors.New("push pillar_speed must be positive"))
	}
	if c.Transition.Duration <= 0 {
		errs = append(errs, errors.New("transition duration must be positive"))
	}
	if c.Transition.MaxLevels <= 0 {
		errs = append(errs, errors.New("transition max_levels must be positive"))
	}
	switch c.Plates.Activation {
	case ActivationPerPlate, ActivationCumulative:
	default:
		errs = append(errs, fmt.Errorf("unknown plate activation %q", c.Plates.Activation))
	}
	switch c.Movement.Mode {
	case MovementGrid, MovementFree:
	default:
		errs = append(errs, fmt.Errorf("unknown movement mode %q", c.Movement.Mode))
	}
	if c.Levels.Pattern == "" {
		errs = append(errs, errors.New("levels pattern must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
