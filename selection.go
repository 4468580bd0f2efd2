package mandel

// ZoomSelection is a pixel-space rectangle produced by a finished drag
// gesture. It is consumed exactly once to derive a new viewport.
type ZoomSelection struct {
	Left, Top     int
	Width, Height int
}

// SelectionTracker turns press/drag events from a display shell into a
// ZoomSelection. The shell reports a press with Begin, pointer motion with
// Drag, and the release with End. A press without any drag clears the box
// and produces no selection, so a bare click never zooms.
type SelectionTracker struct {
	sel ZoomSelection
	on  bool
}

// Begin arms a new selection anchored at (x, y), discarding any live box.
func (t *SelectionTracker) Begin(x, y int) {
	t.on = false
	t.sel = ZoomSelection{Left: x, Top: y}
}

// Drag grows the box toward (x, y) and returns its current extent, for the
// shell to outline. The box stays anchored at the press point; dragging in
// any direction sizes it by absolute delta plus one.
func (t *SelectionTracker) Drag(x, y int) ZoomSelection {
	t.on = true
	t.sel.Width = abs(x-t.sel.Left) + 1
	t.sel.Height = abs(y-t.sel.Top) + 1
	return t.sel
}

// End finishes the gesture. ok is false when no drag occurred.
func (t *SelectionTracker) End() (sel ZoomSelection, ok bool) {
	if !t.on {
		return ZoomSelection{}, false
	}
	t.on = false
	sel = t.sel
	t.sel = ZoomSelection{}
	return sel, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
