package mandel

import "sort"

// Viewport is a rectangle in the complex plane, given by its top-left and
// bottom-right corners. In the default orientation the real axis grows left
// to right and the imaginary axis shrinks top to bottom:
//
//	               i
//	  (-2.5,1.5)+--------+-----+
//	            |        |     |
//	            |--------0-----| r
//	            |        |     |
//	            +--------+-----+(1.5,-1.5)
type Viewport struct {
	TopLeftRe, TopLeftIm         float64
	BottomRightRe, BottomRightIm float64
}

// DefaultViewport returns the initial bounds of the set.
func DefaultViewport() Viewport {
	return Viewport{
		TopLeftRe:     -2.5,
		TopLeftIm:     1.5,
		BottomRightRe: 1.5,
		BottomRightIm: -1.5,
	}
}

// Degenerate reports whether either axis extent collapses to zero. Such a
// viewport cannot be rendered.
func (v Viewport) Degenerate() bool {
	return v.BottomRightRe == v.TopLeftRe || v.BottomRightIm == v.TopLeftIm
}

// ToReal maps pixel column x of a width-pixel grid to the real part of the
// corresponding point in the plane.
func (v Viewport) ToReal(x, width int) float64 {
	return v.TopLeftRe + float64(x)/float64(width)*(v.BottomRightRe-v.TopLeftRe)
}

// ToImag maps pixel row y of a height-pixel grid to the imaginary part of
// the corresponding point in the plane.
func (v Viewport) ToImag(y, height int) float64 {
	return v.TopLeftIm + float64(y)/float64(height)*(v.BottomRightIm-v.TopLeftIm)
}

// ApplyZoom maps a pixel-space selection on a width×height render of v to
// the viewport it encloses. The selection's bottom-right corner is
// left+width, top+height.
func (v Viewport) ApplyZoom(sel ZoomSelection, width, height int) (Viewport, error) {
	if sel.Width <= 0 || sel.Height <= 0 {
		return Viewport{}, ErrDegenerateSelection
	}
	zoomed := Viewport{
		TopLeftRe:     v.ToReal(sel.Left, width),
		TopLeftIm:     v.ToImag(sel.Top, height),
		BottomRightRe: v.ToReal(sel.Left+sel.Width, width),
		BottomRightIm: v.ToImag(sel.Top+sel.Height, height),
	}
	if zoomed.Degenerate() {
		// Selection was so small that both corners collapsed onto the
		// same coordinates. Zooming further is pointless.
		return Viewport{}, ErrDegenerateViewport
	}
	return zoomed, nil
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Viewport{
		TopLeftRe:     -0.8,
		TopLeftIm:     0.15,
		BottomRightRe: -0.7,
		BottomRightIm: 0.05,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Viewport{
		TopLeftRe:     -1.85,
		TopLeftIm:     -0.02,
		BottomRightRe: -1.75,
		BottomRightIm: -0.10,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Viewport{
		TopLeftRe:     -0.7435,
		TopLeftIm:     0.1325,
		BottomRightRe: -0.7420,
		BottomRightIm: 0.1310,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Viewport{
		TopLeftRe:     -0.7480,
		TopLeftIm:     0.0980,
		BottomRightRe: -0.7450,
		BottomRightIm: 0.0950,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Viewport{
		TopLeftRe:     -0.7400,
		TopLeftIm:     0.1850,
		BottomRightRe: -0.7350,
		BottomRightIm: 0.1800,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Viewport{
		TopLeftRe:     -1.7390,
		TopLeftIm:     -0.0220,
		BottomRightRe: -1.7375,
		BottomRightIm: -0.0235,
	}
)

var landmarks = map[string]Viewport{
	"seahorse":   SeahorseValley,
	"elephant":   ElephantValley,
	"minibrot":   SpiralMinibrot,
	"triple":     TripleSpiral,
	"dragon":     ValleyOfTheDragon,
	"minispiral": MinibrotInMiniSpiral,
}

// LandmarkByName looks up a landmark viewport by its short name.
func LandmarkByName(name string) (Viewport, bool) {
	vp, ok := landmarks[name]
	return vp, ok
}

// LandmarkNames lists the available landmark names, sorted.
func LandmarkNames() []string {
	names := make([]string, 0, len(landmarks))
	for name := range landmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
