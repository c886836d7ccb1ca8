// Package engine implements the atlas packing core: a staging buffer
// for source pixel data, a guillotine rectangle packer, and the
// compositor that blits placed textures into the final bitmap.
package engine

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/piwi3910/SpritePack/internal/model"
)

// Atlas owns the state of one packing run: the ordered texture list
// and the staging buffer holding their concatenated RGBA pixel data.
// The lifecycle is strictly create, Add each source, Pack once,
// Generate once, discard. An Atlas is not safe for concurrent use and
// is not reusable across runs.
type Atlas struct {
	Settings model.PackSettings
	Textures []model.Texture

	buffer []byte
}

// New creates an empty Atlas for the given settings.
func New(settings model.PackSettings) *Atlas {
	return &Atlas{
		Settings: settings,
		buffer:   make([]byte, 0, settings.AtlasSize*settings.AtlasSize*model.Channels),
	}
}

// Add registers a source image from raw RGBA bytes. The pixel data is
// copied into the staging buffer at the next free offset; offsets
// partition the buffer in insertion order with no gaps.
func (a *Atlas) Add(name string, w, h int, pix []byte) (model.Texture, error) {
	if w <= 0 || h <= 0 {
		return model.Texture{}, fmt.Errorf("invalid dimensions %dx%d for %q", w, h, name)
	}
	if len(pix) != w*h*model.Channels {
		return model.Texture{}, fmt.Errorf("pixel data for %q is %d bytes, want %d",
			name, len(pix), w*h*model.Channels)
	}

	t := model.NewTexture(name, w, h, len(a.buffer))
	a.buffer = append(a.buffer, pix...)
	a.Textures = append(a.Textures, t)
	return t, nil
}

// AddImage registers any decoded image, converting it to straight
// alpha RGBA first.
func (a *Atlas) AddImage(name string, img image.Image) (model.Texture, error) {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != b.Dx()*model.Channels || b.Min != (image.Point{}) {
		converted := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(converted, converted.Bounds(), img, b.Min, draw.Src)
		nrgba = converted
	}
	return a.Add(name, b.Dx(), b.Dy(), nrgba.Pix)
}

// Pack assigns a position to every staged texture. After a successful
// return the texture list is in final packing order.
func (a *Atlas) Pack() error {
	return Pack(a.Textures, a.Settings)
}

// Generate composites the staged pixel data into a fresh atlas bitmap.
// Must be called after a successful Pack.
func (a *Atlas) Generate() *image.NRGBA {
	return Composite(a.buffer, a.Textures, a.Settings.AtlasSize, a.Settings.Expand)
}

// Meta returns the serializable placement metadata in packing order.
func (a *Atlas) Meta() model.AtlasMeta {
	meta := model.AtlasMeta{
		W:        a.Settings.AtlasSize,
		H:        a.Settings.AtlasSize,
		N:        len(a.Textures),
		Textures: make([]model.MetaEntry, len(a.Textures)),
	}
	for i, t := range a.Textures {
		meta.Textures[i] = model.MetaEntry{
			Name: t.Name,
			X:    t.Rect.X,
			Y:    t.Rect.Y,
			W:    t.Rect.W,
			H:    t.Rect.H,
		}
	}
	return meta
}

// Buffer exposes the staging buffer for compositing and tests.
func (a *Atlas) Buffer() []byte {
	return a.buffer
}
