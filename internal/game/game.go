package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-walk/internal/assets"
	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
	"github.com/vovakirdan/tui-walk/internal/game/rhb"
)

// ErrAlreadyInitialized is returned by Initialize on a game that is running.
var ErrAlreadyInitialized = errors.New("game: already initialized")

// Asset and sound names.
const (
	CharacterSheet = "rhb.json"
	CharacterImage = "rhb.png"
	TilesSheet     = "tiles.json"
	TilesImage     = "tiles.png"
	BackgroundName = "BG.png"
	StoneName      = "Stone.png"

	JumpSoundName       = "jump"
	BackgroundMusicName = "background"
)

// hudPosition is where the distance counter is drawn.
var hudPosition = core.Point{X: 10, Y: 20}

// Recorder stores the result of a finished run and returns its identifier.
type Recorder interface {
	RecordRun(distance, ticks, segments int) (string, error)
}

// WalkTheDog is the runner as an engine.Game.
type WalkTheDog struct {
	machine machine

	loader   engine.AssetLoader
	audio    engine.Audio
	ui       engine.UI
	recorder Recorder
	tuning   Tuning
	seed     int64
	logger   *log.Logger
}

var _ engine.Game = (*WalkTheDog)(nil)

// Option configures a WalkTheDog.
type Option func(*WalkTheDog)

// WithRecorder saves each finished run.
func WithRecorder(r Recorder) Option {
	return func(g *WalkTheDog) { g.recorder = r }
}

// WithTuning overrides the world generation tuning.
func WithTuning(t Tuning) Option {
	return func(g *WalkTheDog) { g.tuning = t }
}

// WithSeed fixes the segment generator seed. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(g *WalkTheDog) { g.seed = seed }
}

// WithLogger sets the logger used for collaborator failures.
func WithLogger(l *log.Logger) Option {
	return func(g *WalkTheDog) { g.logger = l }
}

// New creates an uninitialized game. Initialize must be called (the engine
// loop does this) before the game updates or draws anything.
func New(loader engine.AssetLoader, audio engine.Audio, ui engine.UI, opts ...Option) *WalkTheDog {
	g := &WalkTheDog{
		loader: loader,
		audio:  audio,
		ui:     ui,
		tuning: DefaultTuning(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// loaded is everything Initialize fetches before building the world.
type loaded struct {
	character  *engine.SpriteSheet
	tiles      *engine.SpriteSheet
	background engine.ImageHandle
	stone      engine.ImageHandle
	jump       engine.Sound
	music      engine.Sound
}

func (g *WalkTheDog) load(ctx context.Context) (loaded, error) {
	var l loaded
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		sheet, err := assets.LoadSheet(ctx, g.loader, CharacterSheet, CharacterImage)
		l.character = sheet
		return err
	})
	eg.Go(func() error {
		sheet, err := assets.LoadSheet(ctx, g.loader, TilesSheet, TilesImage)
		l.tiles = sheet
		return err
	})
	eg.Go(func() error {
		img, err := g.loader.LoadImage(ctx, BackgroundName)
		l.background = img
		return err
	})
	eg.Go(func() error {
		img, err := g.loader.LoadImage(ctx, StoneName)
		l.stone = img
		return err
	})
	eg.Go(func() error {
		s, err := g.audio.LoadSound(ctx, JumpSoundName)
		l.jump = s
		return err
	})
	eg.Go(func() error {
		s, err := g.audio.LoadSound(ctx, BackgroundMusicName)
		l.music = s
		return err
	})

	if err := eg.Wait(); err != nil {
		return loaded{}, err
	}
	return l, nil
}

// Initialize loads the assets, starts the music and returns a game standing
// at the start line.
func (g *WalkTheDog) Initialize(ctx context.Context) (engine.Game, error) {
	if g.machine != nil {
		return nil, ErrAlreadyInitialized
	}

	l, err := g.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("game: could not load assets: %w", err)
	}

	if err := g.audio.PlayLoopingSound(l.music); err != nil {
		return nil, fmt.Errorf("game: could not start music: %w", err)
	}

	seed := g.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world := newWalk(worldAssets{
		boy:           rhb.New(l.character, g.audio, l.jump),
		background:    l.background,
		stone:         l.stone,
		obstacleSheet: l.tiles,
	}, rand.New(rand.NewSource(seed)), g.tuning, g.ui, g.logger)

	next := *g
	next.machine = Ready{w: world}
	g.logger.Debug("game initialized", "seed", seed)
	return &next, nil
}

// Update runs one fixed-step tick.
func (g *WalkTheDog) Update(keys *engine.KeyState) {
	if g.machine == nil {
		return
	}
	before := g.machine.phase()
	g.machine = step(g.machine, keys)
	if before == PhaseWalking && g.machine.phase() == PhaseGameOver {
		g.recordRun()
	}
}

func (g *WalkTheDog) recordRun() {
	distance, ticks, segments := g.machine.walk().Stats()
	g.logger.Info("run over", "distance", distance, "ticks", ticks, "segments", segments)
	if g.recorder == nil {
		return
	}
	id, err := g.recorder.RecordRun(distance, ticks, segments)
	if err != nil {
		g.logger.Error("could not record run", "error", err)
		return
	}
	g.logger.Debug("run recorded", "id", id)
}

// Draw renders the world and the distance counter.
func (g *WalkTheDog) Draw(r engine.Renderer) {
	r.Clear(core.NewRect(0, 0, 600, rhb.Height))
	if g.machine == nil {
		return
	}
	g.machine.draw(r)

	distance, _, _ := g.machine.walk().Stats()
	if err := r.DrawText(fmt.Sprintf("Distance %d", distance), hudPosition); err != nil {
		g.logger.Debug("could not draw hud", "error", err)
	}
}

// Phase returns the top-level state, or "" before Initialize.
func (g *WalkTheDog) Phase() Phase {
	if g.machine == nil {
		return ""
	}
	return g.machine.phase()
}

// Walk returns the current world, or nil before Initialize.
func (g *WalkTheDog) Walk() *Walk {
	if g.machine == nil {
		return nil
	}
	return g.machine.walk()
}
