package game

import (
	"math"

	"github.com/vovakirdan/tile-pusher/internal/collision"
	"github.com/vovakirdan/tile-pusher/internal/core"
	"github.com/vovakirdan/tile-pusher/internal/level"
)

// MoveState is the state of the grid-stepping controller.
type MoveState uint8

const (
	MoveIdle MoveState = iota
	MoveMoving
)

// String returns the string representation of a move state.
func (s MoveState) String() string {
	switch s {
	case MoveIdle:
		return "Idle"
	case MoveMoving:
		return "Moving"
	default:
		return "Unknown"
	}
}

// PushState tracks a pushed tile in flight. The grid keeps the tile at its
// source cell until the move completes; Position is where it is drawn.
type PushState struct {
	Armed      bool
	Layer      int
	Index      int
	Generation uint64
	Start      core.Vec2
	Target     core.Vec2
	Position   core.Vec2
	Elapsed    float64
	Duration   float64
}

// Done reports whether the push needs no more time.
func (p PushState) Done() bool {
	return !p.Armed || p.Elapsed >= p.Duration
}

// MoveOutcome is what one controller update did.
type MoveOutcome uint8

const (
	MoveNone MoveOutcome = iota
	MoveStarted
	MoveRejected
	MoveInProgress
	MoveCompleted
)

// MoveStep reports one controller update.
type MoveStep struct {
	Outcome   MoveOutcome
	Direction core.Direction
	Pushed    bool // push armed (Started) or committed (Completed)
	Layer     int
	Dest      int // settled cell index of a committed push
}

// MovementController steps the player half a cell at a time, pushing at
// most one tile per step.
type MovementController struct {
	kinds       Kinds
	cellSize    float64
	stepSize    float64
	speed       float64
	pillarSpeed float64

	state     MoveState
	start     core.Vec2
	target    core.Vec2
	elapsed   float64
	duration  float64
	direction core.Direction
	push      PushState
}

// NewMovementController creates an idle controller.
func NewMovementController(kinds Kinds, cellSize, speed, pillarSpeed float64) *MovementController {
	return &MovementController{
		kinds:       kinds,
		cellSize:    cellSize,
		stepSize:    cellSize / 2,
		speed:       speed,
		pillarSpeed: pillarSpeed,
	}
}

// State returns the current state.
func (m *MovementController) State() MoveState { return m.state }

// Moving reports whether a step is in flight.
func (m *MovementController) Moving() bool { return m.state == MoveMoving }

// Push returns the in-flight push, if any.
func (m *MovementController) Push() PushState { return m.push }

// StepSize returns the distance of one player step.
func (m *MovementController) StepSize() float64 { return m.stepSize }

// Start returns the position the current step began at.
func (m *MovementController) Start() core.Vec2 { return m.start }

// Target returns the position the current step ends at.
func (m *MovementController) Target() core.Vec2 { return m.target }

// Update starts a step on a direction intent when idle, or advances the
// step in flight. Intents are ignored while moving. A step never completes
// and starts in the same update.
func (m *MovementController) Update(dt float64, lvl *level.Level, player *core.Object, dir core.Direction) MoveStep {
	if m.state == MoveIdle {
		if dir == core.DirNone {
			return MoveStep{}
		}
		return m.begin(lvl, player, dir)
	}
	return m.advance(dt, lvl, player)
}

// Cancel aborts a step in flight. The player returns to where the step
// began and an armed push is dropped without touching the grid.
func (m *MovementController) Cancel(player *core.Object) bool {
	if m.state != MoveMoving {
		return false
	}
	player.Transform.Position = m.start
	m.Reset()
	return true
}

// Reset returns to idle without moving anything.
func (m *MovementController) Reset() {
	m.state = MoveIdle
	m.elapsed = 0
	m.duration = 0
	m.push = PushState{}
}

func (m *MovementController) begin(lvl *level.Level, player *core.Object, dir core.Direction) MoveStep {
	target := player.Transform.Position.Add(dir.Vec().Scale(m.stepSize))
	push, ok := m.validate(lvl, *player, target, dir)
	if !ok {
		return MoveStep{Outcome: MoveRejected, Direction: dir}
	}

	m.state = MoveMoving
	m.start = player.Transform.Position
	m.target = target
	m.elapsed = 0
	m.duration = m.stepSize / m.speed
	m.direction = dir
	m.push = push
	if push.Armed {
		m.push.Elapsed = 0
		m.push.Duration = m.cellSize / m.pillarSpeed
	}
	return MoveStep{Outcome: MoveStarted, Direction: dir, Pushed: push.Armed, Layer: push.Layer}
}

// validate checks the player rectangle at target against every collider.
// Any non-pushable collider rejects, as does touching more than one pushable.
func (m *MovementController) validate(lvl *level.Level, player core.Object, target core.Vec2, dir core.Direction) (PushState, bool) {
	player.Transform.Position = target
	rect := collision.AbsoluteRect(player)

	var push PushState
	found, blocked := false, false
	lvl.Each(func(layer, index int, t *level.Tile) {
		if blocked || !collision.OverlapsRect(t.Object, rect) {
			return
		}
		if !m.kinds.Pushable[t.ID] || found {
			blocked = true
			return
		}
		found = true
		push = PushState{
			Armed: true,
			Layer: layer,
			Index: index,
			Start: t.Object.Transform.Position,
		}
	})

	switch {
	case blocked:
		return PushState{}, false
	case !found:
		return PushState{}, true
	case !m.canPush(lvl, &push, dir):
		return PushState{}, false
	}
	return push, true
}

// canPush reports whether the armed tile may move one cell along dir and
// fills in its target.
func (m *MovementController) canPush(lvl *level.Level, push *PushState, dir core.Direction) bool {
	src := lvl.Cell(push.Index)
	dx, dy := dir.Delta()
	dst := src.Add(dx, dy)
	if !lvl.InBounds(dst.X, dst.Y) {
		return false
	}
	// A pushable resting on a plate is anchored.
	if lvl.HasID(push.Index, m.kinds.Plate) {
		return false
	}

	moved := lvl.Tile(push.Layer, push.Index).Object
	push.Target = push.Start.Add(dir.Vec().Scale(m.cellSize))
	moved.Transform.Position = push.Target
	rect := collision.AbsoluteRect(moved)

	open := true
	lvl.Each(func(layer, index int, t *level.Tile) {
		if !open || (layer == push.Layer && index == push.Index) {
			return
		}
		if collision.OverlapsRect(t.Object, rect) {
			open = false
		}
	})

	push.Generation = lvl.Generation()
	push.Position = push.Start
	return open
}

func progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return elapsed / duration
}

func (m *MovementController) advance(dt float64, lvl *level.Level, player *core.Object) MoveStep {
	m.elapsed = min(m.elapsed+dt, m.duration)
	player.Transform.Position = core.Lerp(m.start, m.target, progress(m.elapsed, m.duration))

	if m.push.Armed && m.push.Elapsed < m.push.Duration {
		m.push.Elapsed = min(m.push.Elapsed+dt, m.push.Duration)
		m.push.Position = core.Lerp(m.push.Start, m.push.Target, progress(m.push.Elapsed, m.push.Duration))
	}

	if m.elapsed < m.duration || !m.push.Done() {
		return MoveStep{Outcome: MoveInProgress, Direction: m.direction, Pushed: m.push.Armed}
	}
	return m.complete(lvl, player)
}

func (m *MovementController) complete(lvl *level.Level, player *core.Object) MoveStep {
	player.Transform.Position = m.target
	step := MoveStep{Outcome: MoveCompleted, Direction: m.direction}

	if m.push.Armed {
		if dst, ok := m.commitPush(lvl); ok {
			step.Pushed = true
			step.Layer = m.push.Layer
			step.Dest = dst
		}
	}
	m.Reset()
	return step
}

// commitPush moves the pushed tile's record to its destination cell.
// It refuses when the level was replaced since the push was armed.
func (m *MovementController) commitPush(lvl *level.Level) (int, bool) {
	if lvl.Generation() != m.push.Generation {
		return 0, false
	}
	src := lvl.Tile(m.push.Layer, m.push.Index)
	if src == nil || !m.kinds.Pushable[src.ID] {
		return 0, false
	}
	cs := lvl.CellSize()
	dx := int(math.Round(m.push.Target.X / cs))
	dy := int(math.Round(m.push.Target.Y / cs))
	if !lvl.InBounds(dx, dy) {
		return 0, false
	}
	dst := lvl.Index(dx, dy)
	if err := lvl.MoveTile(m.push.Layer, m.push.Index, dst); err != nil {
		return 0, false
	}
	return dst, true
}
