package game

import "fmt"

// Phase is a step of the level swap sequence.
type Phase uint8

const (
	PhaseNone Phase = iota
	PhaseFadeOut
	PhasePauseMessage
	PhaseFadeIn
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "None"
	case PhaseFadeOut:
		return "FadeOut"
	case PhasePauseMessage:
		return "PauseMessage"
	case PhaseFadeIn:
		return "FadeIn"
	default:
		return "Unknown"
	}
}

// phaseNext is the only way phases advance.
var phaseNext = map[Phase]Phase{
	PhaseFadeOut:      PhasePauseMessage,
	PhasePauseMessage: PhaseFadeIn,
	PhaseFadeIn:       PhaseNone,
}

// PhaseChange reports a phase boundary crossed during Advance.
type PhaseChange struct {
	From, To Phase
}

// Changed reports whether a boundary was crossed.
func (c PhaseChange) Changed() bool {
	return c.From != c.To
}

// TransitionController runs fade-out, message pause and fade-in.
type TransitionController struct {
	total    float64
	messages map[int]string

	phase           Phase
	elapsed         float64
	fadeDuration    float64
	messageDuration float64
	message         string
	nextLevel       int
}

// NewTransitionController creates an idle controller. total is the length
// of the whole sequence; messages maps a target level id to its text.
func NewTransitionController(total float64, messages map[int]string) *TransitionController {
	return &TransitionController{total: total, messages: messages}
}

// Begin starts a sequence towards nextLevel. It returns false and changes
// nothing when a sequence is already running. finished names the level
// being left and fills the generic message.
func (t *TransitionController) Begin(nextLevel int, showMessage bool, finished int) bool {
	if t.phase != PhaseNone {
		return false
	}
	if showMessage {
		t.fadeDuration = t.total / 3
		t.messageDuration = 2 * t.total / 3
		t.message = t.messages[nextLevel]
		if t.message == "" {
			t.message = fmt.Sprintf("Level %d complete", finished)
		}
	} else {
		t.fadeDuration = 2 * t.total / 3
		t.messageDuration = t.total / 3
		t.message = ""
	}
	t.phase = PhaseFadeOut
	t.elapsed = 0
	t.nextLevel = nextLevel
	return true
}

// Advance moves time forward and crosses at most one phase boundary.
func (t *TransitionController) Advance(dt float64) PhaseChange {
	from := t.phase
	if from == PhaseNone {
		return PhaseChange{}
	}
	t.elapsed += dt
	if t.elapsed < t.Duration() {
		return PhaseChange{From: from, To: from}
	}
	t.phase = phaseNext[from]
	t.elapsed = 0
	return PhaseChange{From: from, To: t.phase}
}

// Cancel drops a running sequence.
func (t *TransitionController) Cancel() {
	t.phase = PhaseNone
	t.elapsed = 0
	t.message = ""
}

// Active reports whether a sequence is running.
func (t *TransitionController) Active() bool { return t.phase != PhaseNone }

// Phase returns the current phase.
func (t *TransitionController) Phase() Phase { return t.phase }

// NextLevel returns the level the sequence leads to.
func (t *TransitionController) NextLevel() int { return t.nextLevel }

// Message returns the text shown during the pause.
func (t *TransitionController) Message() string { return t.message }

// Elapsed returns time spent in the current phase.
func (t *TransitionController) Elapsed() float64 { return t.elapsed }

// Duration returns the length of the current phase.
func (t *TransitionController) Duration() float64 {
	switch t.phase {
	case PhaseFadeOut, PhaseFadeIn:
		return t.fadeDuration
	case PhasePauseMessage:
		return t.messageDuration
	default:
		return 0
	}
}

// Ratio returns elapsed/duration of the current phase in [0, 1].
func (t *TransitionController) Ratio() float64 {
	d := t.Duration()
	if d <= 0 {
		return 0
	}
	return min(t.elapsed/d, 1)
}

// Darkness returns how much of the screen is faded, from 0 to 1.
func (t *TransitionController) Darkness() float64 {
	switch t.phase {
	case PhaseFadeOut:
		return t.Ratio()
	case PhasePauseMessage:
		return 1
	case PhaseFadeIn:
		return 1 - t.Ratio()
	default:
		return 0
	}
}
