// SpritePack: texture atlas packer.
//
// Packs a directory of sprite images into a single square atlas PNG
// plus placement metadata.
//
// Usage:
//   spritepack [INPUT DIR] [OPTIONS...]
//
// Example:
//   spritepack ./assets/sprites -o ./assets/atlas -s 2048 -e 2 -v
//
// Demo mode (no input directory needed):
//   spritepack -demo -s 960 -b 4
//
// Build:
//   go build -o spritepack ./cmd/spritepack
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/piwi3910/SpritePack/internal/demo"
	"github.com/piwi3910/SpritePack/internal/engine"
	"github.com/piwi3910/SpritePack/internal/export"
	"github.com/piwi3910/SpritePack/internal/importer"
	"github.com/piwi3910/SpritePack/internal/model"
	"github.com/piwi3910/SpritePack/internal/project"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "spritepack: %v\n", err)
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	output  string
	size    int
	expand  int
	border  int
	slack   float64
	verbose bool
	demo    bool
	binOut  bool
	pdfOut  bool
	xlsxOut bool
}

// parseArgs parses the command line. The input directory may come
// before the flags, as the usage line documents, or after them; the
// stdlib parser stops at the first non-flag argument, so a leading
// positional is peeled off before parsing. Saved preferences seed the
// flag defaults; explicit flags win.
func parseArgs(args []string, cfg model.AppConfig) (options, string, error) {
	fs := flag.NewFlagSet("spritepack", flag.ContinueOnError)

	var o options
	fs.StringVar(&o.output, "o", "atlas", "output base path (writes <o>.png and <o>.json)")
	fs.IntVar(&o.size, "s", cfg.DefaultAtlasSize, "atlas size (width and height equal)")
	fs.IntVar(&o.expand, "e", cfg.DefaultExpand, "repeat pixels along image edges")
	fs.IntVar(&o.border, "b", cfg.DefaultBorder, "empty border space between images")
	fs.Float64Var(&o.slack, "slack", cfg.DefaultAreaSlack, "area utilization cap for the pre-check")
	fs.BoolVar(&o.verbose, "v", cfg.Verbose, "print packer state to the console")
	fs.BoolVar(&o.demo, "demo", false, "generate random boxes instead of reading input")
	fs.BoolVar(&o.binOut, "bin", false, "also write binary metadata (<o>.bin)")
	fs.BoolVar(&o.pdfOut, "pdf", false, "also write a PDF layout report (<o>.pdf)")
	fs.BoolVar(&o.xlsxOut, "xlsx", false, "also write an Excel placement table (<o>.xlsx)")

	var input string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		input = args[0]
		args = args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return o, "", err
	}
	if input == "" && fs.NArg() > 0 {
		input = fs.Arg(0)
		args = fs.Args()[1:]
	} else {
		args = fs.Args()
	}
	if len(args) > 0 {
		return o, "", fmt.Errorf("unexpected arguments: %s", strings.Join(args, " "))
	}

	// Demo mode shrinks the atlas and renames the output unless the
	// user asked for something else.
	if o.demo {
		explicit := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		if !explicit["s"] {
			o.size = demo.AtlasSize
		}
		if !explicit["o"] {
			o.output = "demo"
		}
	} else if input == "" {
		fs.Usage()
		return o, "", fmt.Errorf("expected \"spritepack [INPUT] [OPTS...]\"")
	}
	return o, input, nil
}

func run() error {
	cfg, cfgPath, err := project.LoadOrCreateAppConfig()
	if err != nil {
		cfg = model.DefaultAppConfig()
		cfgPath = ""
	}

	o, input, err := parseArgs(os.Args[1:], cfg)
	if err != nil {
		return err
	}

	settings := model.PackSettings{
		AtlasSize: o.size,
		Expand:    o.expand,
		Border:    o.border,
		AreaSlack: o.slack,
	}

	start := time.Now()
	phase := start
	logPhase := func(name string) {
		if o.verbose {
			now := time.Now()
			fmt.Printf(" - %s %s %.2fms\n", name, dots(name), float64(now.Sub(phase).Microseconds())/1000.0)
			phase = now
		}
	}

	if o.verbose {
		fmt.Println("SpritePack")
		fmt.Println("==========")
		fmt.Println("Begin Texture Atlas")
	}

	// Find and load graphics
	var sources []importer.Source
	if o.demo {
		sources = demo.Boxes(rand.New(rand.NewSource(time.Now().UnixNano())))
		logPhase("Generate Boxes")
	} else {
		paths, err := importer.ScanDir(input)
		if err != nil {
			return err
		}
		logPhase("Find Graphics")

		result := importer.LoadAll(paths)
		if o.verbose {
			for _, s := range result.Sources {
				fmt.Printf("   + %q\n", s.Name)
			}
			for _, e := range result.Errors {
				fmt.Printf("   x %s\n", e)
			}
		}
		sources = result.Sources
		logPhase("Load Graphics")
	}

	if len(sources) < model.MinImages {
		return fmt.Errorf("%w: have %d, need %d", model.ErrTooFewImages, len(sources), model.MinImages)
	}

	// Stage pixel data
	atlas := engine.New(settings)
	for _, src := range sources {
		if _, err := atlas.Add(src.Name, src.W, src.H, src.Pix); err != nil {
			return err
		}
	}

	// Pack rects
	if err := atlas.Pack(); err != nil {
		if errors.Is(err, model.ErrNoFitFound) || errors.Is(err, model.ErrInsufficientSpace) {
			return fmt.Errorf("%w (try a larger -s)", err)
		}
		return err
	}
	logPhase("Pack Graphics")

	// Generate atlas bitmap
	bitmap := atlas.Generate()
	logPhase("Generate Texture")

	// Save outputs
	if err := export.WritePNG(o.output+".png", bitmap); err != nil {
		return err
	}
	logPhase("Save PNG")

	meta := atlas.Meta()
	if err := export.WriteJSON(o.output+".json", meta); err != nil {
		return err
	}
	logPhase("Save JSON")

	if o.binOut {
		if err := export.WriteBinary(o.output+".bin", meta); err != nil {
			return err
		}
		logPhase("Save Binary")
	}
	if o.pdfOut {
		if err := export.WritePDF(o.output+".pdf", meta, settings); err != nil {
			return err
		}
		logPhase("Save PDF")
	}
	if o.xlsxOut {
		if err := export.WriteXLSX(o.output+".xlsx", meta); err != nil {
			return err
		}
		logPhase("Save XLSX")
	}

	if o.verbose {
		fmt.Printf("Done %s %.2fms\n", dots("Done"), float64(time.Since(start).Microseconds())/1000.0)
		fmt.Println("==========")
	}
	fmt.Printf("Packed %d sprites (%.1f%% used), saved to %q\n", meta.N, meta.Efficiency(), o.output+".png")

	if cfgPath != "" {
		cfg.RememberOutput(o.output + ".png")
		if err := project.SaveAppConfig(cfgPath, cfg); err != nil && o.verbose {
			fmt.Printf("   x could not save config: %v\n", err)
		}
	}
	return nil
}

// dots pads a phase name with a dotted leader so the timing column
// lines up.
func dots(name string) string {
	const width = 28
	n := width - len(name)
	if n < 3 {
		n = 3
	}
	s := make([]byte, n)
	for i := range s {
		s[i] = '.'
	}
	return string(s)
}
