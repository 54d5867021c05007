package game

import (
	"time"

	"github.com/vovakirdan/tile-pusher/internal/core"
)

// EventKind identifies something that happened during Update.
type EventKind uint8

const (
	EventMoveStarted EventKind = iota
	EventMoveRejected
	EventMoveCompleted
	EventPushCommitted
	EventPlateClicked
	EventLevelComplete // every plate satisfied
	EventPortalEntered // level finished through a portal
	EventTransitionBegan
	EventLevelLoaded
	EventTransitionDone
	EventModeChanged
	EventLevelSaved
	EventEditRejected
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMoveStarted:
		return "MoveStarted"
	case EventMoveRejected:
		return "MoveRejected"
	case EventMoveCompleted:
		return "MoveCompleted"
	case EventPushCommitted:
		return "PushCommitted"
	case EventPlateClicked:
		return "PlateClicked"
	case EventLevelComplete:
		return "LevelComplete"
	case EventPortalEntered:
		return "PortalEntered"
	case EventTransitionBegan:
		return "TransitionBegan"
	case EventLevelLoaded:
		return "LevelLoaded"
	case EventTransitionDone:
		return "TransitionDone"
	case EventModeChanged:
		return "ModeChanged"
	case EventLevelSaved:
		return "LevelSaved"
	case EventEditRejected:
		return "EditRejected"
	default:
		return "Unknown"
	}
}

// Event is one notification from the session.
type Event struct {
	Kind  EventKind
	Level int
	Cell  core.Cell
	Mode  Mode
	Stats Stats
	Err   error
}

// Stats are the per-level session counters.
type Stats struct {
	Level    int
	Moves    int
	Pushes   int
	Restarts int
	Elapsed  float64 // seconds spent in play mode
}

// Duration returns Elapsed as a time.Duration.
func (s Stats) Duration() time.Duration {
	return time.Duration(s.Elapsed * float64(time.Second))
}

// StepResult is returned by GameState.Update after each tick.
type StepResult struct {
	Mode   Mode
	Events []Event
}

// Has reports whether an event of kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
