package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

// Fallback terminal size used before the first WindowSizeMsg.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ErrNoGame is returned when Options carry no game constructor.
var ErrNoGame = errors.New("tui: no game constructor")

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configure the game screen.
type Options struct {
	// NewGame builds the game around the overlay the screen draws.
	NewGame       func(ui engine.UI) engine.Game
	FrameInterval time.Duration
	Hold          time.Duration
	QueueSize     int
	ShowFrameRate bool
	Width, Height int
	// ScreenshotDir defaults to ~/.walk/screenshots.
	ScreenshotDir string
	Logger        *log.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
}

func (o Options) withDefaults() Options {
	if o.FrameInterval <= 0 {
		o.FrameInterval = time.Second / 30
	}
	if o.Hold <= 0 {
		o.Hold = 150 * time.Millisecond
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	return o
}

// Model is the Bubble Tea model running the game.
type Model struct {
	opts     Options
	loop     *engine.Loop
	screen   *core.Screen
	overlay  *Overlay
	holds    *holdTracker
	keys     KeyMap
	help     help.Model
	start    time.Time
	quitting bool
}

// NewModel initializes the game and returns the model driving it.
func NewModel(ctx context.Context, opts Options) (Model, error) {
	opts = opts.withDefaults()
	if opts.NewGame == nil {
		return Model{}, ErrNoGame
	}

	screen := core.NewScreen(opts.Width, playHeight(opts.Height))
	overlay := NewOverlay()
	loop, err := engine.Start(ctx, opts.NewGame(overlay), NewCanvas(screen), 0,
		engine.WithLogger(opts.Logger),
		engine.WithFrameRate(opts.ShowFrameRate),
		engine.WithInputQueueSize(opts.QueueSize),
	)
	if err != nil {
		return Model{}, err
	}

	return Model{
		opts:    opts,
		loop:    loop,
		screen:  screen,
		overlay: overlay,
		holds:   newHoldTracker(opts.Hold),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		start:   opts.Clock(),
	}, nil
}

// playHeight leaves the last row for the help line.
func playHeight(height int) int {
	return max(height-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.FrameInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.overlay.ClickAt(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("could not save screenshot", "error", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NewGame):
		m.overlay.Activate()
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		m.overlay.FocusNext()
		return m, nil
	}

	if code, ok := m.keys.Code(msg); ok {
		if e, down := m.holds.Press(code, m.opts.Clock()); down {
			m.loop.Input().Send(e)
		}
	}
	return m, nil
}

// handleResize resizes the screen; the world is rescaled, never reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one loop frame, draws the overlay over the result and
// then releases expired keys, so each press reaches at least one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.opts.Clock()
	m.loop.Frame(now.Sub(m.start))
	m.overlay.Draw(m.screen)

	for _, e := range m.holds.Expire(now) {
		m.loop.Input().Send(e)
	}

	return m, tickCmd(m.opts.FrameInterval)
}

// saveScreenshot writes the current screen to a text file.
func (m Model) saveScreenshot() (string, error) {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".walk", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := m.opts.Clock().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("walk_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// Screen returns the screen buffer the game draws into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Game returns the running game.
func (m Model) Game() engine.Game {
	return m.loop.Game()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the game.
func Run(ctx context.Context, opts Options) error {
	model, err := NewModel(ctx, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
