package game

// Mode is the top-level session mode.
type Mode uint8

const (
	ModeNone Mode = iota
	ModePlay
	ModeEdit
	ModeTransition
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "None"
	case ModePlay:
		return "Play"
	case ModeEdit:
		return "Edit"
	case ModeTransition:
		return "Transition"
	default:
		return "Unknown"
	}
}

// ModeEvent drives the mode machine.
type ModeEvent uint8

const (
	ModeInit ModeEvent = iota
	ModeToggle
	ModeBeginTransition
	ModeTransitionDone
)

type modeKey struct {
	from  Mode
	event ModeEvent
}

// modeTable lists every allowed mode change. TRANSITION is entered only by
// beginning a level swap and always exits to PLAY.
var modeTable = map[modeKey]Mode{
	{ModeNone, ModeInit}:                 ModePlay,
	{ModePlay, ModeToggle}:               ModeEdit,
	{ModeEdit, ModeToggle}:               ModePlay,
	{ModePlay, ModeBeginTransition}:      ModeTransition,
	{ModeEdit, ModeBeginTransition}:      ModeTransition,
	{ModeTransition, ModeTransitionDone}: ModePlay,
}

// ModeMachine holds the current mode.
type ModeMachine struct {
	mode Mode
}

// Mode returns the current mode.
func (m *ModeMachine) Mode() Mode { return m.mode }

// Fire applies ev and reports whether the mode changed.
func (m *ModeMachine) Fire(ev ModeEvent) bool {
	next, ok := modeTable[modeKey{m.mode, ev}]
	if !ok {
		return false
	}
	m.mode = next
	return true
}
