package tui

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-walk/internal/engine"
)

// holdTracker turns key presses into down/up pairs. Terminals report no
// key release, so a code counts as held until hold has passed since its
// last press; auto-repeat keeps extending it.
type holdTracker struct {
	hold      time.Duration
	deadlines map[string]time.Time
}

func newHoldTracker(hold time.Duration) *holdTracker {
	return &holdTracker{hold: hold, deadlines: make(map[string]time.Time)}
}

// Press records a press of code at now. It returns the key-down event to
// send when code was not held yet.
func (h *holdTracker) Press(code string, now time.Time) (engine.KeyPress, bool) {
	_, held := h.deadlines[code]
	h.deadlines[code] = now.Add(h.hold)
	if held {
		return engine.KeyPress{}, false
	}
	return engine.KeyDown(code), true
}

// Expire returns key-up events for every code whose hold ran out by now,
// in code order.
func (h *holdTracker) Expire(now time.Time) []engine.KeyPress {
	var codes []string
	for code, deadline := range h.deadlines {
		if !now.Before(deadline) {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	events := make([]engine.KeyPress, 0, len(codes))
	for _, code := range codes {
		delete(h.deadlines, code)
		events = append(events, engine.KeyUp(code))
	}
	return events
}

// Held reports whether code is currently held.
func (h *holdTracker) Held(code string) bool {
	_, ok := h.deadlines[code]
	return ok
}
