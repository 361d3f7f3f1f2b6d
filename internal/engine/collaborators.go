package engine

import (
	"context"

	"github.com/vovakirdan/tui-walk/internal/core"
)

// Renderer draws images onto the host's drawing surface.
// Failures are the renderer's business; nothing it does feeds back into
// simulation state.
type Renderer interface {
	Clear(r core.Rect)
	DrawImage(img ImageHandle, frame, destination core.Rect)
	DrawEntireImage(img ImageHandle, position core.Point)
	DrawText(text string, location core.Point) error
}

// Sound is a loaded sound handle. Copies share the underlying data.
type Sound struct {
	Name string
	Data any
}

// Audio plays sounds loaded through it.
type Audio interface {
	LoadSound(ctx context.Context, name string) (Sound, error)
	PlaySound(s Sound) error
	PlayLoopingSound(s Sound) error
}

// AssetLoader resolves named assets. Both calls may block on I/O.
type AssetLoader interface {
	LoadImage(ctx context.Context, name string) (ImageHandle, error)
	LoadJSON(ctx context.Context, name string) ([]byte, error)
}

// UI is the control surface shown on top of the game (e.g. a restart button).
type UI interface {
	// Show replaces the current controls with the given markup fragment.
	Show(fragment string) error
	// Hide removes all controls.
	Hide() error
	// OnClick returns a channel receiving a value each time the control with
	// the given id is activated.
	OnClick(id string) (<-chan struct{}, error)
}
