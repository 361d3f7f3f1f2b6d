package engine

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-walk/internal/core"
)

// fakeGame records the calls made by the loop.
type fakeGame struct {
	initErr     error
	initialized bool
	updates     int
	draws       int
	rightHeld   []bool
	panicOnDraw bool
}

func (g *fakeGame) Initialize(context.Context) (Game, error) {
	if g.initErr != nil {
		return nil, g.initErr
	}
	g.initialized = true
	return g, nil
}

func (g *fakeGame) Update(keys *KeyState) {
	g.updates++
	g.rightHeld = append(g.rightHeld, keys.IsPressed(KeyArrowRight))
}

func (g *fakeGame) Draw(Renderer) {
	g.draws++
	if g.panicOnDraw {
		panic("canvas exploded")
	}
}

// nopRenderer counts text draws and ignores everything else.
type nopRenderer struct {
	texts []string
}

func (r *nopRenderer) Clear(core.Rect)                             {}
func (r *nopRenderer) DrawImage(ImageHandle, core.Rect, core.Rect) {}
func (r *nopRenderer) DrawEntireImage(ImageHandle, core.Point)     {}

func (r *nopRenderer) DrawText(text string, _ core.Point) error {
	r.texts = append(r.texts, text)
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func startLoop(t *testing.T, g *fakeGame, opts ...Option) *Loop {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	l, err := Start(context.Background(), g, &nopRenderer{}, 0, opts...)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return l
}

func TestStartInitializesGame(t *testing.T) {
	g := &fakeGame{}
	startLoop(t, g)
	if !g.initialized {
		t.Error("Start should initialize the game")
	}
}

func TestStartReturnsInitializeError(t *testing.T) {
	boom := errors.New("assets missing")
	_, err := Start(context.Background(), &fakeGame{initErr: boom}, &nopRenderer{}, 0, WithLogger(quietLogger()))
	if !errors.Is(err, boom) {
		t.Fatalf("Start() error = %v, expected to wrap %v", err, boom)
	}

	if _, err := Start(context.Background(), nil, &nopRenderer{}, 0); !errors.Is(err, ErrNilGame) {
		t.Errorf("Start(nil) error = %v, expected ErrNilGame", err)
	}
}

func TestFrameRunsFixedSteps(t *testing.T) {
	tests := []struct {
		name      string
		timestamp []time.Duration
		ticks     []int
	}{
		{
			name:      "three frames worth of time",
			timestamp: []time.Duration{3*FrameSize + 1},
			ticks:     []int{3},
		},
		{
			name:      "exactly one frame waits for more time",
			timestamp: []time.Duration{FrameSize, 2 * FrameSize},
			ticks:     []int{0, 1},
		},
		{
			name:      "remainder carries over",
			timestamp: []time.Duration{FrameSize / 2, FrameSize + 1, 2*FrameSize + 2},
			ticks:     []int{0, 1, 1},
		},
		{
			name:      "no time elapsed",
			timestamp: []time.Duration{0},
			ticks:     []int{0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &fakeGame{}
			l := startLoop(t, g)
			total := 0
			for i, now := range tc.timestamp {
				got := l.Frame(now)
				if got != tc.ticks[i] {
					t.Errorf("Frame(%v) ran %d ticks, expected %d", now, got, tc.ticks[i])
				}
				total += got
			}
			if g.updates != total {
				t.Errorf("game saw %d updates, loop reported %d", g.updates, total)
			}
			if g.draws != len(tc.timestamp) {
				t.Errorf("expected exactly one draw per frame, got %d draws for %d frames", g.draws, len(tc.timestamp))
			}
		})
	}
}

func TestFrameOneSecondIsSixtyTicks(t *testing.T) {
	g := &fakeGame{}
	l := startLoop(t, g)

	now := time.Duration(0)
	for i := 0; i < 100; i++ {
		now += 10 * time.Millisecond
		l.Frame(now)
	}

	if g.updates != 60 {
		t.Errorf("1s of callbacks should run 60 updates, got %d", g.updates)
	}
	if g.draws != 100 {
		t.Errorf("expected 100 draws, got %d", g.draws)
	}
}

func TestFrameInputSnapshot(t *testing.T) {
	g := &fakeGame{}
	l := startLoop(t, g)

	l.Input().Send(KeyDown(KeyArrowRight))
	l.Frame(4*FrameSize + 1)

	if len(g.rightHeld) != 4 {
		t.Fatalf("expected 4 updates, got %d", len(g.rightHeld))
	}
	for i, held := range g.rightHeld {
		if !held {
			t.Errorf("update %d did not see ArrowRight held", i)
		}
	}

	l.Input().Send(KeyUp(KeyArrowRight))
	l.Frame(5*FrameSize + 2)
	if g.rightHeld[len(g.rightHeld)-1] {
		t.Error("key up should be observed on the next frame")
	}
}

func TestFrameSurvivesDrawPanic(t *testing.T) {
	g := &fakeGame{panicOnDraw: true}
	l := startLoop(t, g)

	l.Frame(FrameSize + 1)
	l.Frame(2*FrameSize + 2)

	if g.draws != 2 || g.updates != 2 {
		t.Errorf("loop should keep running after a draw panic, updates=%d draws=%d", g.updates, g.draws)
	}
}

func TestFrameRateOverlay(t *testing.T) {
	resetFrameRate()
	defer resetFrameRate()

	g := &fakeGame{}
	r := &nopRenderer{}
	l, err := Start(context.Background(), g, r, 0, WithLogger(quietLogger()), WithFrameRate(true))
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	now := time.Duration(0)
	for i := 0; i < 31; i++ {
		now += 40 * time.Millisecond
		l.Frame(now)
	}

	if len(r.texts) != 31 {
		t.Fatalf("expected one overlay per frame, got %d", len(r.texts))
	}
	if last := r.texts[len(r.texts)-1]; last != "Frame Rate 26" {
		t.Errorf("overlay = %q, expected %q", last, "Frame Rate 26")
	}
}
