package game

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tile-pusher/internal/collision"
	"github.com/vovakirdan/tile-pusher/internal/config"
	"github.com/vovakirdan/tile-pusher/internal/core"
	"github.com/vovakirdan/tile-pusher/internal/level"
)

var (
	ErrNotEditing   = errors.New("game: not in edit mode")
	ErrMoveInFlight = errors.New("game: move in flight")
	ErrOutOfBounds  = errors.New("game: cell outside level")
)

// Options configure a session beyond the game configuration.
type Options struct {
	Logger *log.Logger
	Loader LoaderFunc // nil loads from cfg.Levels
	Start  int        // 0 = cfg.Levels.Start
}

// GameState is the aggregate root of one play session. It owns exactly one
// level at a time and replaces it wholesale on every transition.
type GameState struct {
	cfg    config.GameConfig
	logger *log.Logger
	load   LoaderFunc
	kinds  Kinds

	level   *level.Level
	levelID int

	player core.Object
	spawn  core.Vec2

	move       *MovementController
	free       *FreeRoamController
	anim       *Animator
	triggers   *TriggerSystem
	transition *TransitionController
	modes      ModeMachine
	camera     Camera
	editor     Editor
	stats      Stats

	restarting bool
	err        error
	events     []Event
}

// New loads the start level and enters play mode.
func New(cfg config.GameConfig, opts Options) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	load := opts.Loader
	if load == nil {
		load = FileLoader(cfg, logger)
	}
	start := opts.Start
	if start <= 0 {
		start = cfg.Levels.Start
	}
	if cfg.Push.PillarSpeed >= cfg.Player.Speed {
		logger.Warn("pillar speed is not slower than player speed",
			"pillar", cfg.Push.PillarSpeed, "player", cfg.Player.Speed)
	}

	kinds := NewKinds(cfg.Tiles)
	cellSize := cfg.Sheet.CellSize()
	playerSheet := cfg.Player.Sheet.Sheet()

	g := &GameState{
		cfg:        cfg,
		logger:     logger,
		load:       load,
		kinds:      kinds,
		spawn:      core.V(float64(cfg.Player.SpawnCell.X)*cellSize, float64(cfg.Player.SpawnCell.Y)*cellSize),
		move:       NewMovementController(kinds, cellSize, cfg.Player.Speed, cfg.Push.PillarSpeed),
		free:       NewFreeRoamController(cfg.Player.Speed),
		anim:       NewAnimator(playerSheet, cfg.Player.AnimationPeriod),
		triggers:   NewTriggerSystem(kinds, cfg.Plates.Activation == config.ActivationCumulative),
		transition: NewTransitionController(cfg.Transition.Duration, cfg.Transition.Messages),
		camera:     NewCamera(core.V(cfg.Camera.Viewport.W, cfg.Camera.Viewport.H)),
	}
	g.player = core.Populate(g.spawn, playerSheet, core.Cell{}, false)
	g.anim.Reset(&g.player)

	lvl, err := load(start)
	if err != nil {
		logger.Error("cannot load start level", "level", start, "err", err)
		return nil, err
	}
	g.install(lvl, start)
	g.modes.Fire(ModeInit)
	g.events = g.events[:0]
	return g, nil
}

// Update advances the session by dt seconds. Within a tick the mode toggle
// is handled first, then restart and skip, then the active mode. After a
// failed level reload every call returns that error.
func (g *GameState) Update(dt float64, in core.InputFrame) (StepResult, error) {
	if g.err != nil {
		return StepResult{Mode: g.modes.Mode()}, g.err
	}
	g.events = nil

	if in.Has(core.ActionToggleMode) {
		g.toggleMode()
	}
	if in.Has(core.ActionRestart) {
		g.Restart()
	} else if in.Has(core.ActionSkipLevel) {
		g.SkipLevel()
	}

	switch g.modes.Mode() {
	case ModePlay:
		g.updatePlay(dt, in)
	case ModeEdit:
		g.updateEdit(in)
	case ModeTransition:
		if err := g.updateTransition(dt); err != nil {
			g.err = err
			return StepResult{Mode: g.modes.Mode(), Events: g.events}, err
		}
	}
	g.anim.Tick(dt, &g.player)

	return StepResult{Mode: g.modes.Mode(), Events: g.events}, nil
}

func (g *GameState) emit(e Event) {
	if e.Level == 0 {
		e.Level = g.levelID
	}
	g.events = append(g.events, e)
}

func (g *GameState) toggleMode() {
	mode := g.modes.Mode()
	if mode == ModeTransition || g.move.Moving() {
		return
	}
	if !g.modes.Fire(ModeToggle) {
		return
	}
	switch g.modes.Mode() {
	case ModeEdit:
		g.editor.Cursor = g.PlayerCell()
		g.logger.Debug("edit mode", "level", g.levelID)
	case ModePlay:
		g.triggers.Recount(g.level)
		g.resetPlayer()
		g.logger.Debug("play mode", "level", g.levelID)
	}
	g.emit(Event{Kind: EventModeChanged, Mode: g.modes.Mode()})
}

// Restart aborts any move in flight and swaps back into the current level.
func (g *GameState) Restart() {
	if g.modes.Mode() == ModeTransition || g.modes.Mode() == ModeNone {
		return
	}
	g.move.Cancel(&g.player)
	g.restarting = true
	g.beginTransition(g.levelID, false)
}

// SkipLevel swaps to the next level without completing this one.
func (g *GameState) SkipLevel() {
	if g.modes.Mode() == ModeTransition || g.modes.Mode() == ModeNone {
		return
	}
	g.move.Cancel(&g.player)
	g.beginTransition(g.nextLevelID(), false)
}

func (g *GameState) nextLevelID() int {
	return g.levelID%g.cfg.Transition.MaxLevels + 1
}

func (g *GameState) beginTransition(next int, showMessage bool) {
	if !g.transition.Begin(next, showMessage, g.levelID) {
		return
	}
	g.move.Reset()
	g.modes.Fire(ModeBeginTransition)
	g.logger.Debug("transition", "from", g.levelID, "to", next, "message", g.transition.Message())
	g.emit(Event{Kind: EventTransitionBegan, Mode: ModeTransition})
}

func (g *GameState) updatePlay(dt float64, in core.InputFrame) {
	g.stats.Elapsed += dt

	if g.cfg.Movement.Mode == config.MovementFree {
		g.updateFreeRoam(dt, in)
		return
	}

	step := g.move.Update(dt, g.level, &g.player, in.Direction())
	switch step.Outcome {
	case MoveStarted:
		g.anim.Face(step.Direction, &g.player)
		g.emit(Event{Kind: EventMoveStarted, Cell: g.PlayerCell()})
	case MoveRejected:
		g.emit(Event{Kind: EventMoveRejected, Cell: g.PlayerCell()})
	case MoveCompleted:
		g.stats.Moves++
		g.emit(Event{Kind: EventMoveCompleted, Cell: g.PlayerCell()})
		if step.Pushed {
			g.stats.Pushes++
			g.settle(step.Dest)
		}
		g.checkPortal()
	}
	g.followPlayer()
}

func (g *GameState) updateFreeRoam(dt float64, in core.InputFrame) {
	intent := Intent(in)
	if d := in.Direction(); d != core.DirNone {
		g.anim.Face(d, &g.player)
	}
	if g.free.Update(dt, g.level, &g.player, intent) > 0 {
		g.checkPortal()
	}
	g.followPlayer()
}

// settle runs plate triggers on the cell a pushed tile came to rest on.
func (g *GameState) settle(index int) {
	cell := g.level.Cell(index)
	g.emit(Event{Kind: EventPushCommitted, Cell: cell})
	switch g.triggers.OnTileSettled(g.level, index) {
	case PlateClicked:
		g.emit(Event{Kind: EventPlateClicked, Cell: cell})
	case PlatesSatisfied:
		g.logger.Info("all plates satisfied", "level", g.levelID, "plates", g.triggers.Total())
		g.emit(Event{Kind: EventLevelComplete, Cell: cell})
	}
}

func (g *GameState) checkPortal() {
	if !g.triggers.PortalAhead(g.level, g.PlayerCell()) {
		return
	}
	g.logger.Info("level finished", "level", g.levelID, "moves", g.stats.Moves, "pushes", g.stats.Pushes)
	g.emit(Event{Kind: EventPortalEntered, Cell: g.PlayerCell(), Stats: g.stats})
	g.beginTransition(g.nextLevelID(), true)
}

func (g *GameState) updateTransition(dt float64) error {
	change := g.transition.Advance(dt)
	if !change.Changed() {
		return nil
	}
	switch change.From {
	case PhasePauseMessage:
		next := g.transition.NextLevel()
		lvl, err := g.load(next)
		if err != nil {
			g.logger.Error("cannot load level", "level", next, "err", err)
			return fmt.Errorf("game: reload level %d: %w", next, err)
		}
		g.install(lvl, next)
	case PhaseFadeIn:
		g.modes.Fire(ModeTransitionDone)
		g.resetPlayer()
		g.emit(Event{Kind: EventTransitionDone, Mode: ModePlay})
	}
	return nil
}

// install replaces the level and resets everything derived from it.
func (g *GameState) install(lvl *level.Level, id int) {
	restarts := 0
	if g.restarting && id == g.levelID {
		restarts = g.stats.Restarts + 1
	}
	g.restarting = false

	g.level = lvl
	g.levelID = id
	g.move.Reset()
	g.triggers.Reset(lvl)
	g.camera.SetBounds(lvl.Extent())
	g.resetPlayer()
	g.stats = Stats{Level: id, Restarts: restarts}
	g.editor.clamp(lvl)

	for _, w := range lvl.Warnings() {
		g.logger.Debug("level warning", "level", id, "warning", w.String())
	}
	g.emit(Event{Kind: EventLevelLoaded, Level: id})
}

func (g *GameState) resetPlayer() {
	g.player.Transform.Position = g.spawn
	g.followPlayer()
}

func (g *GameState) followPlayer() {
	g.camera.Follow(collision.AbsoluteRect(g.player).Center())
}

// Mode returns the current mode.
func (g *GameState) Mode() Mode { return g.modes.Mode() }

// Level returns the current level.
func (g *GameState) Level() *level.Level { return g.level }

// LevelID returns the id of the current level.
func (g *GameState) LevelID() int { return g.levelID }

// Player returns the player object.
func (g *GameState) Player() core.Object { return g.player }

// PlayerCell returns the cell holding the player's position.
func (g *GameState) PlayerCell() core.Cell {
	return g.level.CellAt(g.player.Transform.Position)
}

// Spawn returns the player spawn position.
func (g *GameState) Spawn() core.Vec2 { return g.spawn }

// Movement returns the grid movement controller.
func (g *GameState) Movement() *MovementController { return g.move }

// Triggers returns the trigger system.
func (g *GameState) Triggers() *TriggerSystem { return g.triggers }

// Transition returns the transition controller.
func (g *GameState) Transition() *TransitionController { return g.transition }

// Camera returns the camera.
func (g *GameState) Camera() Camera { return g.camera }

// Stats returns the counters of the current level.
func (g *GameState) Stats() Stats { return g.stats }

// Err returns the error that stopped the session, if any.
func (g *GameState) Err() error { return g.err }

// LightRadius returns the visible radius around the player in world units.
// It becomes unlimited once every plate is satisfied.
func (g *GameState) LightRadius() float64 {
	if g.triggers.Satisfied() {
		return math.Inf(1)
	}
	return g.cfg.Player.LightRadius * g.cfg.Sheet.CellSize()
}
