package engine

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/piwi3910/SpritePack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtlas_AddPartitionsBuffer(t *testing.T) {
	a := New(testSettings(64, 0, 0))

	t1, err := a.Add("one", 4, 4, solidPixels(4, 4, [4]byte{1, 1, 1, 1}))
	require.NoError(t, err)
	t2, err := a.Add("two", 2, 8, solidPixels(2, 8, [4]byte{2, 2, 2, 2}))
	require.NoError(t, err)
	t3, err := a.Add("three", 3, 3, solidPixels(3, 3, [4]byte{3, 3, 3, 3}))
	require.NoError(t, err)

	// Offsets partition the staging buffer in insertion order with no
	// gaps or overlaps.
	assert.Equal(t, 0, t1.BufferOffset)
	assert.Equal(t, 4*4*model.Channels, t2.BufferOffset)
	assert.Equal(t, (4*4+2*8)*model.Channels, t3.BufferOffset)
	assert.Len(t, a.Buffer(), (4*4+2*8+3*3)*model.Channels)

	// Fresh textures have no position yet.
	assert.Equal(t, 0, t1.Rect.X)
	assert.Equal(t, 0, t1.Rect.Y)
	assert.Equal(t, 4, t1.Rect.W)
	assert.NotEmpty(t, t1.ID)
}

func TestAtlas_AddRejectsBadInput(t *testing.T) {
	a := New(testSettings(64, 0, 0))

	_, err := a.Add("short", 4, 4, make([]byte, 7))
	assert.Error(t, err)

	_, err = a.Add("empty", 0, 4, nil)
	assert.Error(t, err)
}

func TestAtlas_AddImageConvertsToRGBA(t *testing.T) {
	a := New(testSettings(64, 0, 0))

	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 100})
	img.SetGray(1, 1, color.Gray{Y: 200})

	tex, err := a.AddImage("gray", img)
	require.NoError(t, err)
	assert.Equal(t, 2, tex.Rect.W)
	assert.Equal(t, 2, tex.Rect.H)

	buf := a.Buffer()
	require.Len(t, buf, 2*2*model.Channels)
	assert.Equal(t, byte(100), buf[0], "gray converts to equal RGB")
	assert.Equal(t, byte(100), buf[1])
	assert.Equal(t, byte(255), buf[3], "opaque alpha")
}

func TestAtlas_EndToEnd(t *testing.T) {
	// Scenario: 8x16, 16x8 and 8x8 sprites into a 32px atlas with no
	// padding. All three place, the bitmap is 32x32, the metadata has
	// three entries and every source byte survives the round trip.
	a := New(testSettings(32, 0, 0))

	colors := map[string][4]byte{
		"tall": {255, 0, 0, 255},
		"wide": {0, 255, 0, 255},
		"box":  {0, 0, 255, 255},
	}
	_, err := a.Add("tall", 8, 16, solidPixels(8, 16, colors["tall"]))
	require.NoError(t, err)
	_, err = a.Add("wide", 16, 8, solidPixels(16, 8, colors["wide"]))
	require.NoError(t, err)
	_, err = a.Add("box", 8, 8, solidPixels(8, 8, colors["box"]))
	require.NoError(t, err)

	require.NoError(t, a.Pack())
	assertNoOverlapAndContained(t, a.Textures, a.Settings)

	bitmap := a.Generate()
	require.Equal(t, 32, bitmap.Bounds().Dx())
	require.Equal(t, 32, bitmap.Bounds().Dy())

	meta := a.Meta()
	assert.Equal(t, 32, meta.W)
	assert.Equal(t, 3, meta.N)
	require.Len(t, meta.Textures, 3)

	// Source pixels must appear unchanged at each placement.
	var placedArea int
	for _, e := range meta.Textures {
		want := colors[e.Name]
		for y := 0; y < e.H; y++ {
			row := bitmap.PixOffset(e.X, e.Y+y)
			for x := 0; x < e.W; x++ {
				got := bitmap.Pix[row+x*model.Channels : row+x*model.Channels+model.Channels]
				require.True(t, bytes.Equal(want[:], got),
					"sprite %q pixel (%d,%d)", e.Name, x, y)
			}
		}
		placedArea += e.W * e.H
	}
	assert.Equal(t, 8*16+16*8+8*8, placedArea)

	// Meta order matches the packed texture order.
	assert.Equal(t, "tall", meta.Textures[0].Name, "tallest sprite first")
}

func TestAtlas_GenerateDeterministic(t *testing.T) {
	build := func() []byte {
		a := New(testSettings(64, 2, 1))
		for i, wh := range [][2]int{{8, 16}, {16, 8}, {8, 8}, {4, 12}} {
			pix := solidPixels(wh[0], wh[1], [4]byte{byte(i * 50), byte(255 - i*50), 7, 255})
			_, err := a.Add(stringIndex(i), wh[0], wh[1], pix)
			require.NoError(t, err)
		}
		require.NoError(t, a.Pack())
		return a.Generate().Pix
	}

	first := build()
	for i := 0; i < 3; i++ {
		assert.True(t, bytes.Equal(first, build()), "same inputs must produce identical atlases")
	}
}
