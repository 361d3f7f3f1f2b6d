// Package assets provides the runner's embedded asset pack and a loader that
// resolves image and JSON names against it.
package assets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

//go:embed data
var embedded embed.FS

const manifestFile = "images.yaml"

// ErrUnknownImage is returned for images missing from the manifest.
var ErrUnknownImage = errors.New("assets: unknown image")

// Glyph tells the terminal renderer how to paint an image.
type Glyph struct {
	Rune   rune
	Color  core.Color
	Stride int // Paint only every Stride pixels (0 = solid)
}

// imageSpec is one manifest entry.
type imageSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Glyph  string `yaml:"glyph"`
	Color  string `yaml:"color"`
	Stride int    `yaml:"stride"`
}

type manifest struct {
	Images map[string]imageSpec `yaml:"images"`
}

// Loader implements engine.AssetLoader over a file system.
type Loader struct {
	fsys   fs.FS
	images map[string]imageSpec
}

var _ engine.AssetLoader = (*Loader)(nil)

// New returns a loader over the embedded asset pack.
func New() (*Loader, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open embedded pack: %w", err)
	}
	return NewFromFS(sub)
}

// NewFromFS returns a loader over fsys, which must contain images.yaml.
func NewFromFS(fsys fs.FS) (*Loader, error) {
	data, err := fs.ReadFile(fsys, manifestFile)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read %s: %w", manifestFile, err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: cannot parse %s: %w", manifestFile, err)
	}

	return &Loader{fsys: fsys, images: m.Images}, nil
}

// LoadImage resolves an image by name.
func (l *Loader) LoadImage(ctx context.Context, name string) (engine.ImageHandle, error) {
	if err := ctx.Err(); err != nil {
		return engine.ImageHandle{}, err
	}

	entry, ok := l.images[name]
	if !ok {
		return engine.ImageHandle{}, fmt.Errorf("%w %q", ErrUnknownImage, name)
	}

	glyph, _ := utf8.DecodeRuneInString(entry.Glyph)
	if entry.Glyph == "" {
		glyph = '#'
	}

	return engine.ImageHandle{
		Name:   name,
		Width:  entry.Width,
		Height: entry.Height,
		Data: Glyph{
			Rune:   glyph,
			Color:  core.ParseColor(entry.Color),
			Stride: entry.Stride,
		},
	}, nil
}

// LoadJSON returns the raw bytes of a JSON asset.
func (l *Loader) LoadJSON(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(l.fsys, path.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read %s: %w", name, err)
	}
	return data, nil
}

// LoadSheet loads a sprite-sheet JSON and its image and pairs them.
func LoadSheet(ctx context.Context, loader engine.AssetLoader, jsonName, imageName string) (*engine.SpriteSheet, error) {
	raw, err := loader.LoadJSON(ctx, jsonName)
	if err != nil {
		return nil, err
	}
	sheet, err := engine.DecodeSheet(raw)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", jsonName, err)
	}
	img, err := loader.LoadImage(ctx, imageName)
	if err != nil {
		return nil, err
	}
	return engine.NewSpriteSheet(sheet, img), nil
}

// Images returns the names of all images in the manifest.
func (l *Loader) Images() []string {
	names := make([]string, 0, len(l.images))
	for name := range l.images {
		names = append(names, name)
	}
	return names
}
