package game

import (
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/vovakirdan/tile-pusher/internal/config"
	"github.com/vovakirdan/tile-pusher/internal/core"
	"github.com/vovakirdan/tile-pusher/internal/level"
)

const tick = 1.0 / 60

// glyphs maps a test map character to a level cell token.
var glyphs = map[rune]string{
	'.': "0:-1:-1",   // floor
	'#': "-1:10:-1",  // wall
	'O': "0:88:-1",   // pushable
	'_': "89:-1:-1",  // plate
	'P': "89:88:-1",  // pushable resting on a plate
	'>': "-1:90:-1",  // portal
	' ': "-1:-1:-1",  // nothing
}

// grid converts rows of glyphs to the level text format.
func grid(rows ...string) string {
	var sb strings.Builder
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, r := range row {
			cells = append(cells, glyphs[r])
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func emptyGrid(columns, rows int) string {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat(".", columns)
	}
	return grid(lines...)
}

func testConfig() config.GameConfig {
	cfg := config.Default()
	cfg.Player.SpawnCell = config.CellConfig{X: 1, Y: 1}
	cfg.Transition.Messages = map[int]string{2: "onwards"}
	return cfg
}

func memoryLoader(cfg config.GameConfig, levels map[int]string) LoaderFunc {
	return func(id int) (*level.Level, error) {
		src, ok := levels[id]
		if !ok {
			return nil, &level.LoadError{Path: fmt.Sprintf("level %d", id), Err: fs.ErrNotExist}
		}
		return level.Parse([]byte(src), cfg.Sheet.Sheet(), LevelOptions(cfg, nil))
	}
}

func newSession(t *testing.T, cfg config.GameConfig, levels map[int]string) *GameState {
	t.Helper()
	g, err := New(cfg, Options{Loader: memoryLoader(cfg, levels), Start: 1})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g
}

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func update(t *testing.T, g *GameState, in core.InputFrame) StepResult {
	t.Helper()
	res, err := g.Update(tick, in)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	return res
}

// finishMove ticks with no input until the step in flight completes and
// returns every event seen on the way.
func finishMove(t *testing.T, g *GameState) []Event {
	t.Helper()
	var events []Event
	for i := 0; i < 1000 && g.Movement().Moving(); i++ {
		res := update(t, g, core.NewInputFrame())
		events = append(events, res.Events...)
	}
	if g.Movement().Moving() {
		t.Fatal("move did not complete")
	}
	return events
}

// stepDir issues one direction and waits for the step to finish.
func stepDir(t *testing.T, g *GameState, a core.Action) []Event {
	t.Helper()
	res := update(t, g, input(a))
	return append(res.Events, finishMove(t, g)...)
}

// finishTransition ticks until the session is back in play mode.
func finishTransition(t *testing.T, g *GameState) []Event {
	t.Helper()
	var events []Event
	for i := 0; i < 10000 && g.Mode() == ModeTransition; i++ {
		res := update(t, g, core.NewInputFrame())
		events = append(events, res.Events...)
	}
	if g.Mode() != ModePlay {
		t.Fatalf("mode = %v after transition", g.Mode())
	}
	return events
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
