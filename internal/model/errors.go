package model

import "errors"

// Sentinel errors for a packing run. All are fatal: the engine does
// not retry with a different size or ordering. Callers wanting a
// retry loop adjust the settings and start a fresh run.
var (
	// ErrOversizedTexture is returned when a single texture, including
	// its padding, cannot fit in the atlas at all.
	ErrOversizedTexture = errors.New("texture larger than atlas size")

	// ErrInsufficientSpace is returned when the padded area sum exceeds
	// the AreaSlack share of the atlas area before placement starts.
	ErrInsufficientSpace = errors.New("total texture area cannot fit in atlas")

	// ErrNoFitFound is returned when greedy placement exhausts all free
	// spaces for some texture.
	ErrNoFitFound = errors.New("no free space fits texture")

	// ErrTooFewImages is returned when fewer than MinImages sources
	// survived decoding.
	ErrTooFewImages = errors.New("not enough images to pack")
)
