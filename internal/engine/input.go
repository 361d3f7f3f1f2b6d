package engine

import (
	"github.com/charmbracelet/log"
)

// Key codes the game reacts to.
const (
	KeyArrowRight = "ArrowRight"
	KeyArrowDown  = "ArrowDown"
	KeySpace      = "Space"
)

// KeyPress is a raw key event tagged by its code.
type KeyPress struct {
	Code string
	Down bool
}

// KeyDown builds a key-down event.
func KeyDown(code string) KeyPress {
	return KeyPress{Code: code, Down: true}
}

// KeyUp builds a key-up event.
func KeyUp(code string) KeyPress {
	return KeyPress{Code: code}
}

// KeyState tracks which key codes are currently held.
type KeyState struct {
	pressed map[string]struct{}
}

// NewKeyState creates an empty key state.
func NewKeyState() *KeyState {
	return &KeyState{pressed: make(map[string]struct{})}
}

// IsPressed reports whether code is currently held.
func (k *KeyState) IsPressed(code string) bool {
	_, ok := k.pressed[code]
	return ok
}

// SetPressed marks code as held.
func (k *KeyState) SetPressed(code string) {
	k.pressed[code] = struct{}{}
}

// SetReleased marks code as released.
func (k *KeyState) SetReleased(code string) {
	delete(k.pressed, code)
}

// Apply folds one event into the state.
func (k *KeyState) Apply(e KeyPress) {
	if e.Down {
		k.SetPressed(e.Code)
	} else {
		k.SetReleased(e.Code)
	}
}

// InputQueue is a bounded, non-blocking queue of key events between the
// host's input handler and the loop.
type InputQueue struct {
	events chan KeyPress
	closed bool
	logger *log.Logger
}

// NewInputQueue creates a queue holding at most size pending events.
func NewInputQueue(size int, logger *log.Logger) *InputQueue {
	if size <= 0 {
		size = 64
	}
	if logger == nil {
		logger = log.Default()
	}
	return &InputQueue{
		events: make(chan KeyPress, size),
		logger: logger,
	}
}

// Send enqueues an event without blocking. It reports false (and logs) when
// the event was dropped because the queue is full or closed.
func (q *InputQueue) Send(e KeyPress) bool {
	if q.closed {
		q.logger.Warn("could not send key event", "code", e.Code, "error", "queue closed")
		return false
	}
	select {
	case q.events <- e:
		return true
	default:
		q.logger.Warn("could not send key event", "code", e.Code, "error", "queue full")
		return false
	}
}

// Close stops accepting events. Pending events can still be drained.
func (q *InputQueue) Close() {
	if q.closed {
		return
	}
	q.closed = true
	close(q.events)
}

// Drain applies every pending event to state until the queue is empty or
// closed and returns how many events were applied.
func (q *InputQueue) Drain(state *KeyState) int {
	n := 0
	for {
		select {
		case e, ok := <-q.events:
			if !ok {
				return n
			}
			state.Apply(e)
			n++
		default:
			return n
		}
	}
}
