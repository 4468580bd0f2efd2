package mandel

import "image/color"

// Palette is the depth-indexed color map. Built once, never mutated.
type Palette []color.RGBA

const paletteSize = 256

// BuildPalette builds the standard palette: a blue-channel ramp of
// (i*16) mod 256, brightened. Depths wrap around the palette, so the ramp
// repeats every 16 entries at depth granularity.
func BuildPalette() Palette {
	p := make(Palette, paletteSize)
	for i := range p {
		p[i] = brighten(color.RGBA{B: uint8((i * 16) % 256), A: 255})
	}
	return p
}

// ColorFor returns the display color for a pixel of the given depth. Depths
// at or beyond maxDepth count as "never escaped" and map to black.
func (p Palette) ColorFor(depth, maxDepth int) color.RGBA {
	if depth >= maxDepth {
		return color.RGBA{A: 255}
	}
	return p[depth%len(p)]
}

// brighten scales a color toward white the way java.awt.Color.brighter
// does: pure black becomes a minimal gray, channels below the minimal step
// are lifted to it, then every channel is divided by 0.7 and clamped.
func brighten(c color.RGBA) color.RGBA {
	const factor = 0.7
	const minStep = 3 // int(1 / (1 - factor))

	r, g, b := int(c.R), int(c.G), int(c.B)
	if r == 0 && g == 0 && b == 0 {
		return color.RGBA{R: uint8(minStep), G: uint8(minStep), B: uint8(minStep), A: c.A}
	}

	lift := func(ch int) int {
		if ch > 0 && ch < minStep {
			return minStep
		}
		return ch
	}
	scale := func(ch int) uint8 {
		s := int(float64(ch) / factor)
		if s > 255 {
			s = 255
		}
		return uint8(s)
	}
	return color.RGBA{
		R: scale(lift(r)),
		G: scale(lift(g)),
		B: scale(lift(b)),
		A: c.A,
	}
}
