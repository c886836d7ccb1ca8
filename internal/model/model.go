package model

import "github.com/google/uuid"

// Channels is the number of bytes per pixel (RGBA).
const Channels = 4

// MinImages is the minimum number of decoded source images required
// before a pack run is worth starting. Fewer than this and an atlas
// provides no benefit over the loose files.
const MinImages = 3

// Rect represents an axis-aligned rectangle in pixels. It is used both
// for free space still available in the atlas and for the bounds of a
// placed texture.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Area returns the rectangle area in square pixels.
func (r Rect) Area() int {
	return r.W * r.H
}

// Intersects reports whether two rectangles overlap (not just touch).
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Contains reports whether o lies entirely within r.
func (r Rect) Contains(o Rect) bool {
	return r.X <= o.X && r.Y <= o.Y &&
		o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}

// Texture is a source image staged for packing. Rect.W/Rect.H are
// fixed at registration time; Rect.X/Rect.Y are zero until the packer
// assigns a position. BufferOffset is the byte offset of this
// texture's pixel data in the shared staging buffer.
type Texture struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Rect         Rect   `json:"rect"`
	BufferOffset int    `json:"buffer_offset"`
}

func NewTexture(name string, w, h, offset int) Texture {
	return Texture{
		ID:           uuid.New().String()[:8],
		Name:         name,
		Rect:         Rect{W: w, H: h},
		BufferOffset: offset,
	}
}

// PackSettings holds the packer configuration.
type PackSettings struct {
	AtlasSize int `json:"atlas_size"` // Square atlas side length in pixels
	Expand    int `json:"expand"`     // Edge pixels repeated on each side of a texture
	Border    int `json:"border"`     // Empty space between textures

	// AreaSlack caps the padded area sum at AreaSlack * size^2 before
	// packing starts. The packer cannot reach 100% utilization, so the
	// pre-check rejects inputs that are certain to need a bigger atlas.
	// Packing may still fail below the cap for pathological shapes.
	AreaSlack float64 `json:"area_slack"`
}

func DefaultSettings() PackSettings {
	return PackSettings{
		AtlasSize: 4096,
		Expand:    0,
		Border:    0,
		AreaSlack: 0.85,
	}
}

// Padding returns the combined per-texture margin: edge expansion on
// both sides plus the inter-texture border.
func (s PackSettings) Padding() int {
	return 2*s.Expand + s.Border
}

// MetaEntry describes one placed texture in the serialized metadata.
// The short key names are part of the wire format.
type MetaEntry struct {
	Name string `json:"n"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	W    int    `json:"w"`
	H    int    `json:"h"`
}

// AtlasMeta is the serializable description of a generated atlas.
// Textures are listed in final packing order, not insertion order.
type AtlasMeta struct {
	W        int         `json:"w"`
	H        int         `json:"h"`
	N        int         `json:"n"`
	Textures []MetaEntry `json:"textures"`
}

// UsedArea returns the total pixel area covered by placed textures,
// excluding padding.
func (m AtlasMeta) UsedArea() int {
	var total int
	for _, t := range m.Textures {
		total += t.W * t.H
	}
	return total
}

// Efficiency returns the atlas usage percentage.
func (m AtlasMeta) Efficiency() float64 {
	if m.W == 0 || m.H == 0 {
		return 0
	}
	return float64(m.UsedArea()) / float64(m.W*m.H) * 100.0
}
