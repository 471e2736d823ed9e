package tui

import "math"

// Scale and zoom bounds. Scale applies per item, zoom to the whole preview.
const (
	scaleStep = 0.1
	scaleMin  = 0.5
	scaleMax  = 2.0

	zoomStep = 0.1
	zoomMin  = 0.5
	zoomMax  = 1.5
)

// Offset is a free-form item displacement in preview units.
type Offset struct {
	X int
	Y int
}

// Interaction is the transient manipulation state of the preview: per-item
// offsets and scales, the current selection, and the view zoom. It is a pure
// state machine with no knowledge of rendering, never serialized, and
// discarded when the preview exits.
//
// Offsets and scales are keyed by item id, so entries survive layout
// switches: they are simply unused until the custom layout is active again.
type Interaction struct {
	selected string
	dragging bool

	// drag session bookkeeping
	originX, originY int
	baseOffset       Offset

	offsets map[string]Offset
	scales  map[string]float64
	zoom    float64
}

// NewInteraction returns the idle state.
func NewInteraction() *Interaction {
	return &Interaction{
		offsets: make(map[string]Offset),
		scales:  make(map[string]float64),
		zoom:    1.0,
	}
}

// Selected returns the selected item id, or "" when idle.
func (in *Interaction) Selected() string { return in.selected }

// Dragging reports whether a drag session is active.
func (in *Interaction) Dragging() bool { return in.dragging }

// Zoom returns the view zoom factor.
func (in *Interaction) Zoom() float64 { return in.zoom }

// Offset returns the item's accumulated displacement. Items without an
// entry sit at their natural position.
func (in *Interaction) Offset(id string) Offset { return in.offsets[id] }

// HasOffset reports whether the item has a displacement entry at all.
func (in *Interaction) HasOffset(id string) bool {
	_, ok := in.offsets[id]
	return ok
}

// Scale returns the item's scale factor, 1.0 when unset.
func (in *Interaction) Scale(id string) float64 {
	if s, ok := in.scales[id]; ok {
		return s
	}
	return 1.0
}

// Click toggles selection: clicking the selected item deselects it,
// clicking another item moves the selection. Clicking mid-drag is ignored.
func (in *Interaction) Click(id string) {
	if in.dragging {
		return
	}
	if id == in.selected {
		in.selected = ""
		return
	}
	in.selected = id
}

// StartDrag begins a drag session at pointer position (x, y). Only the
// selected item can be dragged.
func (in *Interaction) StartDrag(id string, x, y int) {
	if id == "" || id != in.selected {
		return
	}
	in.dragging = true
	in.originX, in.originY = x, y
	in.baseOffset = in.offsets[id]
}

// Drag updates the selected item's offset to the session base plus the
// cumulative pointer delta. The offset is unbounded: items may be dragged
// past any edge.
func (in *Interaction) Drag(x, y int) {
	if !in.dragging {
		return
	}
	in.offsets[in.selected] = Offset{
		X: in.baseOffset.X + (x - in.originX),
		Y: in.baseOffset.Y + (y - in.originY),
	}
}

// EndDrag closes the drag session. The offset written by the last Drag call
// persists; a session with no movement leaves the offset untouched.
func (in *Interaction) EndDrag() {
	in.dragging = false
}

// ScaleUp grows the selected item by one step, clamped at the maximum.
func (in *Interaction) ScaleUp() {
	in.scaleBy(scaleStep)
}

// ScaleDown shrinks the selected item by one step, clamped at the minimum.
func (in *Interaction) ScaleDown() {
	in.scaleBy(-scaleStep)
}

func (in *Interaction) scaleBy(delta float64) {
	if in.selected == "" {
		return
	}
	s := in.Scale(in.selected) + delta
	s = math.Round(s*10) / 10
	if s < scaleMin {
		s = scaleMin
	}
	if s > scaleMax {
		s = scaleMax
	}
	in.scales[in.selected] = s
}

// Reset removes the selected item's offset and scale entries entirely,
// returning it to its natural position and size.
func (in *Interaction) Reset() {
	if in.selected == "" {
		return
	}
	delete(in.offsets, in.selected)
	delete(in.scales, in.selected)
}

// ZoomIn increases the view zoom by one step, clamped at the maximum.
// Zoom affects the preview only and is never exported.
func (in *Interaction) ZoomIn() {
	in.zoomBy(zoomStep)
}

// ZoomOut decreases the view zoom by one step, clamped at the minimum.
func (in *Interaction) ZoomOut() {
	in.zoomBy(-zoomStep)
}

func (in *Interaction) zoomBy(delta float64) {
	z := math.Round((in.zoom+delta)*10) / 10
	if z < zoomMin {
		z = zoomMin
	}
	if z > zoomMax {
		z = zoomMax
	}
	in.zoom = z
}
