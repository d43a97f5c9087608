package scroll

import (
	"image"

	"gioui.org/gesture"
	"gioui.org/layout"
)

// Pan feeds horizontal drag and wheel gestures into a Handler.
type Pan struct {
	Handler *Handler
	drag    gesture.Scroll
}

// Update consumes pending gesture events and returns the part of the
// gesture that ran past a boundary, in pixels.
func (p *Pan) Update(gtx layout.Context) (unconsumed float32) {
	dist := p.drag.Update(gtx.Metric, gtx.Source, gtx.Now, gesture.Horizontal, image.Rect(-1e6, 0, 1e6, 0))
	if dist == 0 || p.Handler == nil {
		return 0
	}
	// Gesture distances grow as content moves forward, which is the
	// opposite sign of a scroll delta.
	return p.Handler.HandleScrollDelta(-float32(dist))
}

// Add registers the pan gesture for the current clip area.
func (p *Pan) Add(gtx layout.Context) {
	p.drag.Add(gtx.Ops)
}
