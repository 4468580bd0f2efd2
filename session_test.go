package mandel

import (
	"context"
	"errors"
	"testing"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(RenderConfig{Width: 64, Height: 48, MaxDepth: 32})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSessionValidates(t *testing.T) {
	if _, err := NewSession(RenderConfig{Width: 0, Height: 48, MaxDepth: 32}); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("err=%v, want ErrInvalidDimensions", err)
	}
	if _, err := NewSession(RenderConfig{Width: 64, Height: 48, MaxDepth: 1}); !errors.Is(err, ErrInvalidDepth) {
		t.Fatalf("err=%v, want ErrInvalidDepth", err)
	}
}

func TestPlotAppliesStagedZoom(t *testing.T) {
	s := newTestSession(t)
	sel := ZoomSelection{Left: 16, Top: 12, Width: 32, Height: 24}
	if err := s.Zoom(sel); err != nil {
		t.Fatalf("Zoom: %v", err)
	}

	if _, err := s.Plot(context.Background()); err != nil {
		t.Fatalf("Plot: %v", err)
	}

	want, err := DefaultViewport().ApplyZoom(sel, 64, 48)
	if err != nil {
		t.Fatalf("ApplyZoom: %v", err)
	}
	if got := s.Viewport(); got != want {
		t.Fatalf("viewport=%+v, want %+v", got, want)
	}
}

func TestZoomRejectsDegenerateSelection(t *testing.T) {
	s := newTestSession(t)
	if err := s.Zoom(ZoomSelection{Left: 5, Top: 5}); !errors.Is(err, ErrDegenerateSelection) {
		t.Fatalf("err=%v, want ErrDegenerateSelection", err)
	}

	// Nothing was staged: the next plot keeps the default viewport.
	if _, err := s.Plot(context.Background()); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if got := s.Viewport(); got != DefaultViewport() {
		t.Fatalf("viewport=%+v, want default", got)
	}
}

func TestSetMaxDepthValidates(t *testing.T) {
	s := newTestSession(t)
	if err := s.SetMaxDepth(1); !errors.Is(err, ErrInvalidDepth) {
		t.Fatalf("err=%v, want ErrInvalidDepth", err)
	}
	if got := s.Config().MaxDepth; got != 32 {
		t.Fatalf("max depth=%d after rejected set, want 32", got)
	}

	if err := s.SetMaxDepth(100); err != nil {
		t.Fatalf("SetMaxDepth(100): %v", err)
	}
	if got := s.Config().MaxDepth; got != 100 {
		t.Fatalf("max depth=%d, want 100", got)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := newTestSession(t)
	if err := s.SetMaxDepth(100); err != nil {
		t.Fatalf("SetMaxDepth: %v", err)
	}
	if err := s.Zoom(ZoomSelection{Left: 16, Top: 12, Width: 32, Height: 24}); err != nil {
		t.Fatalf("Zoom: %v", err)
	}
	if _, err := s.Plot(context.Background()); err != nil {
		t.Fatalf("Plot: %v", err)
	}

	s.Reset()
	if got := s.Viewport(); got != DefaultViewport() {
		t.Fatalf("viewport after reset=%+v, want default", got)
	}
	if got := s.Config().MaxDepth; got != 32 {
		t.Fatalf("max depth after reset=%d, want 32", got)
	}
}

func TestCancelledPlotLeavesStateUntouched(t *testing.T) {
	s := newTestSession(t)
	sel := ZoomSelection{Left: 16, Top: 12, Width: 32, Height: 24}
	if err := s.Zoom(sel); err != nil {
		t.Fatalf("Zoom: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Plot(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
	if got := s.Viewport(); got != DefaultViewport() {
		t.Fatalf("viewport advanced on cancelled plot: %+v", got)
	}

	// The staged selection survived the cancellation and applies on retry.
	if _, err := s.Plot(context.Background()); err != nil {
		t.Fatalf("retry Plot: %v", err)
	}
	want, err := DefaultViewport().ApplyZoom(sel, 64, 48)
	if err != nil {
		t.Fatalf("ApplyZoom: %v", err)
	}
	if got := s.Viewport(); got != want {
		t.Fatalf("viewport=%+v, want %+v", got, want)
	}
}

func TestSetViewportJumpsToLandmark(t *testing.T) {
	s := newTestSession(t)
	if err := s.SetViewport(SeahorseValley); err != nil {
		t.Fatalf("SetViewport: %v", err)
	}
	if got := s.Viewport(); got != SeahorseValley {
		t.Fatalf("viewport=%+v, want %+v", got, SeahorseValley)
	}

	flat := Viewport{TopLeftRe: 1, TopLeftIm: 1, BottomRightRe: 1, BottomRightIm: -1}
	if err := s.SetViewport(flat); !errors.Is(err, ErrDegenerateViewport) {
		t.Fatalf("err=%v, want ErrDegenerateViewport", err)
	}
}
