package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultMatchesEmbedded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	def := Default()

	if cfg.Sheet != def.Sheet {
		t.Errorf("sheet = %+v, expected %+v", cfg.Sheet, def.Sheet)
	}
	if cfg.Player.Speed != def.Player.Speed || cfg.Push.PillarSpeed != def.Push.PillarSpeed {
		t.Errorf("speeds = %v/%v, expected %v/%v",
			cfg.Player.Speed, cfg.Push.PillarSpeed, def.Player.Speed, def.Push.PillarSpeed)
	}
	if cfg.Player.SpawnCell != def.Player.SpawnCell {
		t.Errorf("spawn = %+v, expected %+v", cfg.Player.SpawnCell, def.Player.SpawnCell)
	}
	if cfg.Transition.Messages[2] != def.Transition.Messages[2] {
		t.Errorf("message 2 = %q", cfg.Transition.Messages[2])
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults invalid: %v", err)
	}
}

func TestDefaultCellSize(t *testing.T) {
	if got := Default().Sheet.CellSize(); got != 64 {
		t.Errorf("CellSize() = %v, expected 64", got)
	}
	if got := Default().Player.Speed; got <= Default().Push.PillarSpeed {
		t.Errorf("pillar speed should be slower than player speed, got player %v", got)
	}
}

func TestLoadCustomPathOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "player:\n  speed: 400\nplates:\n  activation: cumulative\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadWithSource(path)
	if err != nil {
		t.Fatalf("LoadWithSource() error: %v", err)
	}
	if src != path {
		t.Errorf("source = %q, expected %q", src, path)
	}
	if cfg.Player.Speed != 400 {
		t.Errorf("speed = %v, expected 400", cfg.Player.Speed)
	}
	if cfg.Plates.Activation != ActivationCumulative {
		t.Errorf("activation = %q", cfg.Plates.Activation)
	}
	if cfg.Sheet.Columns != 12 {
		t.Errorf("unset keys should keep defaults, columns = %d", cfg.Sheet.Columns)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("sheet: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
		errSub string
	}{
		{"defaults", func(*GameConfig) {}, ""},
		{"zero speed", func(c *GameConfig) { c.Player.Speed = 0 }, "player speed"},
		{"bad activation", func(c *GameConfig) { c.Plates.Activation = "sometimes" }, "plate activation"},
		{"bad movement", func(c *GameConfig) { c.Movement.Mode = "teleport" }, "movement mode"},
		{"decoration out of range", func(c *GameConfig) { c.Grid.DecorationLayers = []int{5} }, "decoration layer"},
		{"no levels", func(c *GameConfig) { c.Transition.MaxLevels = 0 }, "max_levels"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errSub == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.errSub)
			}
		})
	}
}

func TestLevelsPath(t *testing.T) {
	l := LevelsConfig{Dir: "levels", Pattern: "level_%02d.txt"}
	if got := l.Path(3); got != filepath.Join("levels", "level_03.txt") {
		t.Errorf("Path(3) = %q", got)
	}
}

func TestApplyPace(t *testing.T) {
	tests := []struct {
		preset PacePreset
		factor float64
		ok     bool
	}{
		{PaceNormal, 1.0, true},
		{"", 1.0, true},
		{PaceRelaxed, 0.6, true},
		{PaceBrisk, 1.5, true},
		{"ludicrous", 0, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			err := ApplyPace(&cfg, tc.preset)
			if !tc.ok {
				if err == nil {
					t.Error("expected error for unknown pace")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyPace() error: %v", err)
			}
			def := Default()
			if cfg.Player.Speed != def.Player.Speed*tc.factor {
				t.Errorf("player speed = %v", cfg.Player.Speed)
			}
			if cfg.Player.Speed/cfg.Push.PillarSpeed != def.Player.Speed/def.Push.PillarSpeed {
				t.Error("pace should keep the player/pillar speed ratio")
			}
		})
	}
}
