package demo

import (
	"math/rand"
	"testing"

	"github.com/piwi3910/SpritePack/internal/engine"
	"github.com/piwi3910/SpritePack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxSolidFill(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	src := Box("box", 4, 3, rng)

	assert.Equal(t, 4, src.W)
	assert.Equal(t, 3, src.H)
	require.Len(t, src.Pix, 4*3*model.Channels)

	first := src.Pix[:model.Channels]
	assert.Equal(t, byte(255), first[3], "demo boxes are opaque")
	for i := model.Channels; i < len(src.Pix); i += model.Channels {
		assert.Equal(t, first, src.Pix[i:i+model.Channels], "fill must be uniform")
	}
}

func TestBoxesSeededReproducible(t *testing.T) {
	a := Boxes(rand.New(rand.NewSource(42)))
	b := Boxes(rand.New(rand.NewSource(42)))

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].W, b[i].W)
		assert.Equal(t, a[i].H, b[i].H)
		assert.Equal(t, a[i].Pix, b[i].Pix)
	}
}

func TestBoxesSizeDistribution(t *testing.T) {
	sources := Boxes(rand.New(rand.NewSource(7)))

	// The fixed tail of the distribution alone guarantees hundreds of
	// small boxes.
	assert.GreaterOrEqual(t, len(sources), 850)

	names := map[string]bool{}
	for _, s := range sources {
		assert.Greater(t, s.W, 0)
		assert.Greater(t, s.H, 0)
		assert.LessOrEqual(t, s.W, 400)
		assert.LessOrEqual(t, s.H, 400)
		assert.False(t, names[s.Name], "duplicate name %q", s.Name)
		names[s.Name] = true
	}
}

func TestDemoSetPacksIntoDefaultDemoAtlas(t *testing.T) {
	sources := Boxes(rand.New(rand.NewSource(3)))

	settings := model.DefaultSettings()
	settings.AtlasSize = AtlasSize
	atlas := engine.New(settings)
	for _, src := range sources {
		_, err := atlas.Add(src.Name, src.W, src.H, src.Pix)
		require.NoError(t, err)
	}

	require.NoError(t, atlas.Pack())
	bitmap := atlas.Generate()
	assert.Equal(t, AtlasSize, bitmap.Bounds().Dx())
}
