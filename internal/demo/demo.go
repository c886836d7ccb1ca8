// Package demo generates random solid-color boxes for exercising the
// packer without a sprite directory on hand.
package demo

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/piwi3910/SpritePack/internal/importer"
	"github.com/piwi3910/SpritePack/internal/model"
)

// AtlasSize is the default atlas side length for demo runs, small
// enough to eyeball the result.
const AtlasSize = 960

// Box returns a w x h source filled with a single random saturated
// color. Hue is drawn from rng so a seeded run is reproducible.
func Box(name string, w, h int, rng *rand.Rand) importer.Source {
	c := colorful.Hsl(rng.Float64()*360.0, 1.0, 0.7)
	r, g, b := c.Clamped().RGB255()

	pix := make([]byte, w*h*model.Channels)
	for i := 0; i < len(pix); i += model.Channels {
		pix[i+0] = r
		pix[i+1] = g
		pix[i+2] = b
		pix[i+3] = 255
	}
	return importer.Source{Name: name, W: w, H: h, Pix: pix}
}

// Boxes returns a randomized demo set: a handful of large boxes that
// may or may not appear, then progressively larger counts of smaller
// ones. The size mix is skewed toward small sprites the way real
// sprite folders tend to be.
func Boxes(rng *rand.Rand) []importer.Source {
	var sources []importer.Source
	add := func(w, h int) {
		name := fmt.Sprintf("box_%03d", len(sources))
		sources = append(sources, Box(name, w, h, rng))
	}

	if rng.Float64() > 0.5 {
		add(400, 80)
	}
	if rng.Float64() > 0.5 {
		add(80, 400)
	}
	if rng.Float64() > 0.5 {
		add(250, 250)
	}
	if rng.Float64() > 0.5 {
		add(100, 250)
	}
	if rng.Float64() > 0.5 {
		add(250, 100)
	}
	for i := rng.Intn(20); i >= 0; i-- {
		add(100, 100)
	}
	for i := rng.Intn(10); i >= 0; i-- {
		add(60, 60)
	}
	for i := rng.Intn(30); i >= 0; i-- {
		add(50, 50)
	}
	for i := rng.Intn(40); i >= 0; i-- {
		add(50, 20)
	}
	for i := 50 + rng.Intn(50); i >= 0; i-- {
		add(20, 50)
	}
	for i := 300 + rng.Intn(200); i >= 0; i-- {
		add(10, 10)
	}
	for i := 500 + rng.Intn(500); i >= 0; i-- {
		add(5, 5)
	}
	return sources
}
