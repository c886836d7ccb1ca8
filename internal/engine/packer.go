package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/SpritePack/internal/model"
)

// Pack computes a position for every texture inside a square atlas of
// settings.AtlasSize, mutating Rect.X/Rect.Y in place. It maintains a
// list of free rectangles, scanned most-recently-split first, and
// splits the chosen space guillotine-style on each placement.
//
// The pass is greedy and deterministic: textures are sorted tallest
// first (stable on ties), the first free space that fits wins, and
// there is no backtracking. On error the positions already written are
// meaningless and the caller discards the run.
func Pack(textures []model.Texture, settings model.PackSettings) error {
	size := settings.AtlasSize
	padding := settings.Padding()

	// Pre-checks before any placement. The area cap is a heuristic:
	// exceeding it is certain failure, staying below it is no promise.
	var area int
	for _, t := range textures {
		if t.Rect.W+padding > size || t.Rect.H+padding > size {
			return fmt.Errorf("%w: %q is %dx%d with %dpx padding, atlas is %dpx",
				model.ErrOversizedTexture, t.Name, t.Rect.W, t.Rect.H, padding, size)
		}
		area += (t.Rect.W + padding) * (t.Rect.H + padding)
	}
	if float64(area) > float64(size*size)*settings.AreaSlack {
		return fmt.Errorf("%w: need %dpx², atlas offers %.0fpx² (%d x %d at %.0f%% utilization)",
			model.ErrInsufficientSpace, area,
			float64(size*size)*settings.AreaSlack, size, size, settings.AreaSlack*100)
	}

	// Tallest first improves shelf utilization for a greedy first-fit
	// strategy. Stable sort keeps insertion order on equal heights.
	sort.SliceStable(textures, func(i, j int) bool {
		return textures[i].Rect.H > textures[j].Rect.H
	})

	spaces := make([]model.Rect, 1, len(textures)+1)
	spaces[0] = model.Rect{X: 0, Y: 0, W: size, H: size}

	for i := range textures {
		if !place(&textures[i], &spaces, settings.Expand, padding) {
			return fmt.Errorf("%w: %q (%dx%d)", model.ErrNoFitFound,
				textures[i].Name, textures[i].Rect.W, textures[i].Rect.H)
		}
	}
	return nil
}

// place scans the free-space list from the end backward, so freshly
// split fragments are tried before the larger original regions, and
// consumes the first space that fits. Returns false if nothing fits.
func place(t *model.Texture, spaces *[]model.Rect, expand, padding int) bool {
	free := *spaces
	w := t.Rect.W + padding
	h := t.Rect.H + padding

	for j := len(free) - 1; j >= 0; j-- {
		space := free[j]
		if w > space.W || h > space.H {
			continue
		}

		// The texture lands in the space's top-left corner, inset by
		// the expand margin so the replicated edge pixels stay inside
		// the consumed footprint.
		t.Rect.X = space.X + expand
		t.Rect.Y = space.Y + expand

		switch {
		case w == space.W && h == space.H:
			// Perfect fit: swap-remove the space. The resulting list
			// order feeds every later scan.
			last := len(free) - 1
			free[j] = free[last]
			*spaces = free[:last]

		case h == space.H:
			// Height matches: the space becomes a thinner strip to the
			// right of the texture.
			free[j].X += w
			free[j].W -= w

		case w == space.W:
			// Width matches: the space becomes a shorter strip below.
			free[j].Y += h
			free[j].H -= h

		default:
			// Split the remainder in two: a new space to the right,
			// only as tall as the texture, and the original shrunk to
			// the full-width strip below. The shapes and their order
			// in the list determine every later placement.
			free = append(free, model.Rect{
				X: space.X + w,
				Y: space.Y,
				W: space.W - w,
				H: h,
			})
			free[j].Y += h
			free[j].H -= h
			*spaces = free
		}
		return true
	}
	return false
}
