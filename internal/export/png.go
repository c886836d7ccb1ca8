package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// WritePNG saves the atlas bitmap as a PNG file, creating parent
// directories if needed.
func WritePNG(path string, img *image.NRGBA) error {
	if img == nil {
		return fmt.Errorf("no atlas bitmap to save")
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("atlas bitmap is empty (%dx%d)", b.Dx(), b.Dy())
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Atlases are large; favor encode speed over file size.
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(f, img)
}
