package mandel

import "errors"

// Validation errors. All checks run before any persistent state is touched,
// so a failed operation leaves viewport and config exactly as they were.
var (
	ErrInvalidDepth        = errors.New("max depth must be >= 2")
	ErrInvalidDimensions   = errors.New("image dimensions must be positive")
	ErrDegenerateSelection = errors.New("zoom selection has zero area")
	ErrDegenerateViewport  = errors.New("viewport has zero extent")
)

// RenderConfig is the pixel-space side of a render request.
type RenderConfig struct {
	Width    int
	Height   int
	MaxDepth int // iteration count treated as "never escapes"
}

// Validate checks the config before a render.
func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return ErrInvalidDimensions
	}
	if c.MaxDepth < 2 {
		return ErrInvalidDepth
	}
	return nil
}
