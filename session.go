package mandel

import (
	"context"
	"image"
	"sync"
)

// Session is the state one viewer carries across renders: the current
// viewport, the render config, and an optionally staged zoom selection.
// All operations validate before mutating, so a rejected operation leaves
// the session exactly as it was. Mutating calls must not overlap a running
// Plot; callers keep to a render-then-mutate discipline (cmd/server cancels
// and drains an in-flight render before applying the next command).
type Session struct {
	mu       sync.Mutex
	defaults RenderConfig
	cfg      RenderConfig
	viewport Viewport
	pending  *ZoomSelection
	palette  Palette
}

// NewSession creates a session showing the default viewport.
func NewSession(cfg RenderConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		defaults: cfg,
		cfg:      cfg,
		viewport: DefaultViewport(),
		palette:  BuildPalette(),
	}, nil
}

// Viewport returns the current viewport.
func (s *Session) Viewport() Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewport
}

// Config returns the current render config.
func (s *Session) Config() RenderConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Zoom stages a selection to be applied by the next Plot. A zero-area
// selection is rejected with ErrDegenerateSelection and nothing changes.
func (s *Session) Zoom(sel ZoomSelection) error {
	if sel.Width <= 0 || sel.Height <= 0 {
		return ErrDegenerateSelection
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &sel
	return nil
}

// SetMaxDepth changes the iteration limit for subsequent plots.
func (s *Session) SetMaxDepth(d int) error {
	if d < 2 {
		return ErrInvalidDepth
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.MaxDepth = d
	return nil
}

// SetViewport jumps straight to vp, dropping any staged selection.
func (s *Session) SetViewport(vp Viewport) error {
	if vp.Degenerate() {
		return ErrDegenerateViewport
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport = vp
	s.pending = nil
	return nil
}

// Reset restores the default viewport and config and drops any staged
// selection. Two resets in a row yield identical state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport = DefaultViewport()
	s.cfg = s.defaults
	s.pending = nil
}

// Plot renders the current view, first resolving any staged zoom selection
// into a viewport. The session's viewport only advances once the render
// completes; a cancelled or failed render leaves the viewport and the
// staged selection as they were, so the plot can be retried. A staged
// selection that maps to a degenerate viewport is discarded and reported.
func (s *Session) Plot(ctx context.Context) (*image.RGBA, error) {
	s.mu.Lock()
	vp := s.viewport
	cfg := s.cfg
	if s.pending != nil {
		zoomed, err := vp.ApplyZoom(*s.pending, cfg.Width, cfg.Height)
		if err != nil {
			s.pending = nil
			s.mu.Unlock()
			return nil, err
		}
		vp = zoomed
	}
	s.mu.Unlock()

	img, err := RenderImage(ctx, vp, cfg, s.palette)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.viewport = vp
	s.pending = nil
	s.mu.Unlock()
	return img, nil
}
