package mandel

import (
	"context"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DepthGrid holds the escape depth of every pixel of one render. A depth
// equal to the render's max depth means the point never escaped.
type DepthGrid struct {
	Width, Height int
	depths        []int
}

// At returns the depth at pixel (x, y).
func (g *DepthGrid) At(x, y int) int {
	return g.depths[y*g.Width+x]
}

// Render computes the escape depth of every pixel of a cfg.Width×cfg.Height
// grid over viewport v. Scanlines are computed in parallel; the grid is
// returned whole or not at all. Cancelling ctx abandons the render between
// scanlines and returns the context's error.
func Render(ctx context.Context, v Viewport, cfg RenderConfig) (*DepthGrid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if v.Degenerate() {
		return nil, ErrDegenerateViewport
	}

	grid := &DepthGrid{
		Width:  cfg.Width,
		Height: cfg.Height,
		depths: make([]int, cfg.Width*cfg.Height),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for y := 0; y < cfg.Height; y++ {
		y := y
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ci := v.ToImag(y, cfg.Height)
			row := grid.depths[y*cfg.Width : (y+1)*cfg.Width]
			for x := range row {
				row[x] = escapeDepth(v.ToReal(x, cfg.Width), ci, cfg.MaxDepth)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return grid, nil
}

// escapeDepth iterates z = z² + c for c = (cr, ci), starting from z = 0,
// and returns the index of the iteration whose squared magnitude first
// exceeds 4, or maxDepth if none does. The new real part is staged in a
// temporary because the imaginary update reads the pre-update zr. A value
// that overflows to infinity fails the magnitude test like any other and
// terminates the loop.
func escapeDepth(cr, ci float64, maxDepth int) int {
	var zr, zi float64
	for d := 0; d < maxDepth; d++ {
		zr2 := zr*zr - zi*zi + cr
		zi = 2*zr*zi + ci
		zr = zr2
		if zr*zr+zi*zi > 4.0 {
			return d
		}
	}
	return maxDepth
}

// RenderImage renders viewport v and colors the resulting grid with pal.
// This is the buffer a display shell blits directly.
func RenderImage(ctx context.Context, v Viewport, cfg RenderConfig, pal Palette) (*image.RGBA, error) {
	grid, err := Render(ctx, v, cfg)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, grid.Width, grid.Height))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			img.SetRGBA(x, y, pal.ColorFor(grid.At(x, y), cfg.MaxDepth))
		}
	}
	return img, nil
}
