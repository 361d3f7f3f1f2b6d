package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-walk/internal/engine"
)

func TestHoldTrackerPressAndExpire(t *testing.T) {
	base := time.Unix(0, 0)
	h := newHoldTracker(100 * time.Millisecond)

	e, ok := h.Press(engine.KeySpace, base)
	if !ok || e != engine.KeyDown(engine.KeySpace) {
		t.Fatalf("Press() = %+v, %v, expected key down", e, ok)
	}

	// Auto-repeat extends the hold without a second key down.
	if _, ok := h.Press(engine.KeySpace, base.Add(80*time.Millisecond)); ok {
		t.Error("Press() while held returned a key down")
	}

	if got := h.Expire(base.Add(150 * time.Millisecond)); len(got) != 0 {
		t.Errorf("Expire() = %+v before the extended deadline, expected none", got)
	}
	if !h.Held(engine.KeySpace) {
		t.Error("Held() = false, expected true")
	}

	got := h.Expire(base.Add(180 * time.Millisecond))
	if len(got) != 1 || got[0] != engine.KeyUp(engine.KeySpace) {
		t.Errorf("Expire() = %+v, expected one key up", got)
	}
	if h.Held(engine.KeySpace) {
		t.Error("Held() = true after release")
	}

	if _, ok := h.Press(engine.KeySpace, base.Add(time.Second)); !ok {
		t.Error("Press() after release did not return a key down")
	}
}

func TestHoldTrackerExpireOrder(t *testing.T) {
	base := time.Unix(0, 0)
	h := newHoldTracker(10 * time.Millisecond)
	h.Press(engine.KeySpace, base)
	h.Press(engine.KeyArrowRight, base)
	h.Press(engine.KeyArrowDown, base)

	got := h.Expire(base.Add(time.Second))
	expected := []string{engine.KeyArrowDown, engine.KeyArrowRight, engine.KeySpace}
	if len(got) != len(expected) {
		t.Fatalf("Expire() = %+v, expected %d events", got, len(expected))
	}
	for i, code := range expected {
		if got[i].Code != code || got[i].Down {
			t.Errorf("event %d = %+v, expected key up %s", i, got[i], code)
		}
	}
}

func TestKeyMapCode(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected string
		ok       bool
	}{
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, engine.KeyArrowRight, true},
		{"l", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}, engine.KeyArrowRight, true},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, engine.KeyArrowDown, true},
		{"j", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, engine.KeyArrowDown, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, engine.KeySpace, true},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, engine.KeySpace, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, "", false},
		{"x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, ok := keys.Code(tc.msg)
			if code != tc.expected || ok != tc.ok {
				t.Errorf("Code(%q) = %q, %v, expected %q, %v", tc.msg.String(), code, ok, tc.expected, tc.ok)
			}
		})
	}
}
