package core

// Action is a key press translated into game terms.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionQuit // Ends the session, never reaches the game
)

var actionNames = [...]string{
	ActionNone:  "None",
	ActionUp:    "Up",
	ActionDown:  "Down",
	ActionLeft:  "Left",
	ActionRight: "Right",
	ActionQuit:  "Quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the input of a single frame. At most one key is polled
// per frame, so it holds one action; the zero value means no key.
type InputFrame struct {
	Action Action
}

// NewInputFrame creates a frame with no key.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records the frame's action. A later Set replaces an earlier one.
func (f *InputFrame) Set(a Action) {
	f.Action = a
}

// Has reports whether a is the frame's action.
func (f InputFrame) Has(a Action) bool {
	return f.Action == a
}

// InputQueue holds keys between frames in arrival order.
// Poll never blocks: it returns ActionNone when nothing is pending.
type InputQueue struct {
	pending []Action
}

// Push appends a key. ActionNone is dropped.
func (q *InputQueue) Push(a Action) {
	if a != ActionNone {
		q.pending = append(q.pending, a)
	}
}

// Poll removes and returns the oldest key.
func (q *InputQueue) Poll() Action {
	if len(q.pending) == 0 {
		return ActionNone
	}
	a := q.pending[0]
	q.pending = q.pending[1:]
	return a
}

// Len returns the number of pending keys.
func (q *InputQueue) Len() int {
	return len(q.pending)
}
