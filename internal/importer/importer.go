// Package importer discovers and decodes source images for packing.
// PNG, JPEG and BMP files are supported; a file that fails to decode
// is reported and skipped rather than aborting the whole run.
package importer

import (
	"fmt"
	"image"
	"image/draw"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/SpritePack/internal/model"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Source is one decoded input image: straight-alpha RGBA bytes in
// row-major top-left order, 4 bytes per pixel.
type Source struct {
	Name string
	W    int
	H    int
	Pix  []byte
}

// Result holds the outcome of loading a batch of files.
type Result struct {
	Sources  []Source
	Errors   []string
	Warnings []string
}

// imageExts lists the file extensions treated as source images.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
}

// IsImagePath reports whether path has a supported image extension.
func IsImagePath(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}

// ScanDir walks root recursively and returns the paths of all
// supported image files in lexical walk order.
func ScanDir(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsImagePath(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// Load decodes a single image file into a Source. The source name is
// the file name without directory or extension.
func Load(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return Source{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Source{}, fmt.Errorf("decode %q: %w", path, err)
	}

	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Source{Name: name, W: b.Dx(), H: b.Dy(), Pix: nrgba.Pix}, nil
}

// LoadAll decodes every path, collecting failures as skippable errors.
// A warning is added when fewer than model.MinImages sources survive.
func LoadAll(paths []string) Result {
	var res Result
	for _, p := range paths {
		src, err := Load(p)
		if err != nil {
			res.Errors = append(res.Errors, err.Error())
			continue
		}
		res.Sources = append(res.Sources, src)
	}
	if len(res.Sources) < model.MinImages {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("only %d of %d images decoded, need at least %d to pack",
				len(res.Sources), len(paths), model.MinImages))
	}
	return res
}
