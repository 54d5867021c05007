package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - move / cursor left
	ActionRight             // D, Right arrow - move / cursor right
	ActionUp                // W, Up arrow - move / cursor up
	ActionDown              // S, Down arrow - move / cursor down
	ActionToggleMode        // Tab - swap play and edit
	ActionRestart           // R - restart current level
	ActionSkipLevel         // N - debug skip to next level
	ActionSave              // Ctrl+S - save level (edit only)
	ActionPlace             // Space/Enter - place tile at cursor (edit only)
	ActionErase             // X/Backspace - erase tile at cursor (edit only)
	ActionNextLayer         // L - cycle edit layer
	ActionNextTile          // ] - next tile id
	ActionPrevTile          // [ - previous tile id
	ActionQuit              // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionToggleMode:
		return "ToggleMode"
	case ActionRestart:
		return "Restart"
	case ActionSkipLevel:
		return "SkipLevel"
	case ActionSave:
		return "Save"
	case ActionPlace:
		return "Place"
	case ActionErase:
		return "Erase"
	case ActionNextLayer:
		return "NextLayer"
	case ActionNextTile:
		return "NextTile"
	case ActionPrevTile:
		return "PrevTile"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction is one of the four axis-aligned movement intents.
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Vec returns the unit vector for the direction. Up decreases Y.
func (d Direction) Vec() Vec2 {
	switch d {
	case DirLeft:
		return Vec2{X: -1}
	case DirRight:
		return Vec2{X: 1}
	case DirUp:
		return Vec2{Y: -1}
	case DirDown:
		return Vec2{Y: 1}
	default:
		return Vec2{}
	}
}

// Delta returns the (dx, dy) grid offset for one step.
func (d Direction) Delta() (dx, dy int) {
	v := d.Vec()
	return int(v.X), int(v.Y)
}

// Horizontal reports whether the direction moves along X.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction collapses the directional actions into one intent.
// Horizontal input wins over vertical; right wins over left and down over up.
func (f InputFrame) Direction() Direction {
	switch {
	case f.Has(ActionRight):
		return DirRight
	case f.Has(ActionLeft):
		return DirLeft
	case f.Has(ActionDown):
		return DirDown
	case f.Has(ActionUp):
		return DirUp
	default:
		return DirNone
	}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
