package mandel

import (
	"image/color"
	"testing"
)

func TestBuildPaletteSize(t *testing.T) {
	if p := BuildPalette(); len(p) != 256 {
		t.Fatalf("palette size=%d, want 256", len(p))
	}
}

func TestPaletteRamp(t *testing.T) {
	p := BuildPalette()

	// Entry 0 starts from pure black, which brightens to the minimal gray.
	if want := (color.RGBA{R: 3, G: 3, B: 3, A: 255}); p[0] != want {
		t.Fatalf("p[0]=%v, want %v", p[0], want)
	}
	// Entry 1 starts from blue 16: 16/0.7 = 22.
	if want := (color.RGBA{B: 22, A: 255}); p[1] != want {
		t.Fatalf("p[1]=%v, want %v", p[1], want)
	}
	// Entry 15 starts from blue 240, which clamps at full intensity.
	if want := (color.RGBA{B: 255, A: 255}); p[15] != want {
		t.Fatalf("p[15]=%v, want %v", p[15], want)
	}
	// The ramp wraps every 16 entries.
	if p[16] != p[0] || p[17] != p[1] {
		t.Fatalf("ramp does not wrap: p[16]=%v p[0]=%v", p[16], p[0])
	}
}

func TestColorFor(t *testing.T) {
	p := BuildPalette()
	const maxDepth = 256

	black := color.RGBA{A: 255}
	if got := p.ColorFor(maxDepth, maxDepth); got != black {
		t.Fatalf("ColorFor(maxDepth)=%v, want black", got)
	}
	if got := p.ColorFor(0, maxDepth); got != p[0] {
		t.Fatalf("ColorFor(0)=%v, want %v", got, p[0])
	}
}

func TestColorForWrapsPalette(t *testing.T) {
	p := BuildPalette()

	// With a depth limit beyond the palette size, indexing wraps.
	if got := p.ColorFor(300, 1000); got != p[300%256] {
		t.Fatalf("ColorFor(300)=%v, want %v", got, p[300%256])
	}
}

func TestBrightenLiftsSmallChannels(t *testing.T) {
	got := brighten(color.RGBA{R: 1, A: 255})
	// Channel 1 lifts to 3, then 3/0.7 = 4.
	if want := (color.RGBA{R: 4, A: 255}); got != want {
		t.Fatalf("brighten(r=1)=%v, want %v", got, want)
	}
}
