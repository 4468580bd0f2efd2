// mandelpng renders one view of the Mandelbrot set and saves it as a PNG file.

package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strings"
	"time"

	mandel "github.com/marben/mandelthing"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	// Properties file supplies the defaults, flags override.
	defaults := mandel.LoadSettings(mandel.SettingsFile)

	width := flag.Int("width", defaults.Width, "image width in pixels")
	height := flag.Int("height", defaults.Height, "image height in pixels")
	depth := flag.Int("depth", defaults.MaxDepth, "maximum iteration depth")
	view := flag.String("view", "", "landmark to render instead of the full set; one of: "+strings.Join(mandel.LandmarkNames(), ", "))
	out := flag.String("o", "mandel.png", "output file")
	flag.Parse()

	vp := mandel.DefaultViewport()
	if *view != "" {
		landmark, ok := mandel.LandmarkByName(*view)
		if !ok {
			return fmt.Errorf("unknown view %q, have: %s", *view, strings.Join(mandel.LandmarkNames(), ", "))
		}
		vp = landmark
	}

	cfg := mandel.RenderConfig{Width: *width, Height: *height, MaxDepth: *depth}

	log.Printf("rendering %dx%d, max depth %d", cfg.Width, cfg.Height, cfg.MaxDepth)
	start := time.Now()
	img, err := mandel.RenderImage(context.Background(), vp, cfg, mandel.BuildPalette())
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	log.Printf("render took %s", time.Since(start))

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}

	log.Printf("rendered image saved to %q", *out)
	return nil
}
