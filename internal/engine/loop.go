package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// FrameSize is the fixed simulation step.
const FrameSize = time.Second / 60

// ErrNilGame is returned by Start when no game is given.
var ErrNilGame = errors.New("engine: game is nil")

// Loop is a fixed-timestep scheduler. The host calls Frame once per display
// refresh with a monotonic timestamp; Frame runs as many fixed updates as
// the elapsed time allows and then exactly one draw pass.
type Loop struct {
	game        Game
	renderer    Renderer
	input       *InputQueue
	keys        *KeyState
	lastFrame   time.Duration
	accumulated time.Duration
	logger      *log.Logger
	showFPS     bool
	queueSize   int
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger used for steady-state failures.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithFrameRate enables the frame-rate overlay.
func WithFrameRate(enabled bool) Option {
	return func(l *Loop) {
		l.showFPS = enabled
	}
}

// WithInputQueueSize sets the capacity of the key event queue.
func WithInputQueueSize(size int) Option {
	return func(l *Loop) {
		l.queueSize = size
	}
}

// Start initializes game and returns a loop whose clock starts at now.
// Initialization failures are returned; nothing after this point fails.
func Start(ctx context.Context, game Game, renderer Renderer, now time.Duration, opts ...Option) (*Loop, error) {
	if game == nil {
		return nil, ErrNilGame
	}

	l := &Loop{
		renderer:  renderer,
		keys:      NewKeyState(),
		lastFrame: now,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.input = NewInputQueue(l.queueSize, l.logger)

	initialized, err := game.Initialize(ctx)
	if err != nil {
		return nil, fmt.Errorf("engine: could not initialize game: %w", err)
	}
	l.game = initialized

	return l, nil
}

// Input returns the queue the host pushes key events into.
func (l *Loop) Input() *InputQueue {
	return l.input
}

// Game returns the running game.
func (l *Loop) Game() Game {
	return l.game
}

// Frame runs one host callback and returns the number of fixed updates run.
func (l *Loop) Frame(now time.Duration) int {
	l.input.Drain(l.keys)

	frameTime := now - l.lastFrame
	l.accumulated += frameTime

	ticks := 0
	for l.accumulated > FrameSize {
		l.game.Update(l.keys)
		l.accumulated -= FrameSize
		ticks++
	}
	l.lastFrame = now

	l.draw(frameTime)
	return ticks
}

// draw runs one draw pass; a panicking renderer is logged, never fatal.
func (l *Loop) draw(frameTime time.Duration) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("draw pass failed", "panic", r)
		}
	}()

	l.game.Draw(l.renderer)
	if l.showFPS {
		if err := drawFrameRate(l.renderer, frameTime); err != nil {
			l.logger.Error("could not draw frame rate", "error", err)
		}
	}
}
