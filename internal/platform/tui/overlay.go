package tui

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

// ErrNoControls is returned by Show for markup without any button.
var ErrNoControls = errors.New("tui: fragment has no buttons")

// Button is a clickable control parsed from markup.
type Button struct {
	ID    string
	Label string
}

// Overlay implements engine.UI as buttons drawn over the game. It parses
// the markup the game shows and keeps one click channel per control id.
// It is used from the Bubble Tea goroutine only.
type Overlay struct {
	buttons   []Button
	focus     int
	listeners map[string]chan struct{}
	hitboxes  map[string]core.Rect
}

var _ engine.UI = (*Overlay)(nil)

// NewOverlay creates an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{
		listeners: make(map[string]chan struct{}),
		hitboxes:  make(map[string]core.Rect),
	}
}

// Show replaces the current buttons with those in fragment.
func (o *Overlay) Show(fragment string) error {
	buttons, err := parseButtons(fragment)
	if err != nil {
		return err
	}
	o.buttons = buttons
	o.focus = 0
	clear(o.hitboxes)
	return nil
}

// Hide removes all buttons.
func (o *Overlay) Hide() error {
	o.buttons = nil
	o.focus = 0
	clear(o.hitboxes)
	return nil
}

// OnClick returns the click channel for id. Clicks that arrive while an
// earlier one is still unread are dropped.
func (o *Overlay) OnClick(id string) (<-chan struct{}, error) {
	if id == "" {
		return nil, fmt.Errorf("tui: empty control id")
	}
	ch, ok := o.listeners[id]
	if !ok {
		ch = make(chan struct{}, 1)
		o.listeners[id] = ch
	}
	return ch, nil
}

// Visible reports whether any button is shown.
func (o *Overlay) Visible() bool {
	return len(o.buttons) > 0
}

// Buttons returns the shown buttons.
func (o *Overlay) Buttons() []Button {
	return o.buttons
}

// Click activates the shown button with id.
func (o *Overlay) Click(id string) bool {
	for _, b := range o.buttons {
		if b.ID != id {
			continue
		}
		ch, ok := o.listeners[id]
		if !ok {
			return false
		}
		select {
		case ch <- struct{}{}:
		default:
		}
		return true
	}
	return false
}

// Activate clicks the focused button.
func (o *Overlay) Activate() bool {
	if !o.Visible() {
		return false
	}
	return o.Click(o.buttons[o.focus].ID)
}

// FocusNext moves focus to the next button.
func (o *Overlay) FocusNext() {
	if o.Visible() {
		o.focus = (o.focus + 1) % len(o.buttons)
	}
}

// ClickAt clicks the button drawn over the screen cell (x, y).
func (o *Overlay) ClickAt(x, y int) bool {
	for _, b := range o.buttons {
		if box, ok := o.hitboxes[b.ID]; ok && box.Contains(x, y) {
			return o.Click(b.ID)
		}
	}
	return false
}

// Draw paints the buttons stacked in the middle of screen.
func (o *Overlay) Draw(screen *core.Screen) {
	if !o.Visible() {
		return
	}

	const height = 3
	top := (screen.Height() - len(o.buttons)*height) / 2
	for i, b := range o.buttons {
		width := len([]rune(b.Label)) + 4
		box := core.NewRect((screen.Width()-width)/2, top+i*height, width, height)

		color := core.ColorWhite
		if i == o.focus {
			color = core.ColorYellow
		}
		screen.FillRect(box, ' ', core.ColorDefault)
		screen.DrawBox(box, color)
		screen.DrawColoredText(box.X()+2, box.Y()+1, b.Label, color)
		o.hitboxes[b.ID] = box
	}
}

// parseButtons extracts <button id="..."> elements from an HTML fragment.
func parseButtons(fragment string) ([]Button, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot parse fragment: %w", err)
	}

	var buttons []Button
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Button {
			if id := attr(n, "id"); id != "" {
				buttons = append(buttons, Button{ID: id, Label: strings.TrimSpace(text(n))})
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}

	if len(buttons) == 0 {
		return nil, ErrNoControls
	}
	return buttons, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(text(c))
	}
	return sb.String()
}
