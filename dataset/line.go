package dataset

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"git.sr.ht/~whereswaldon/chartlayout/entry"
)

// Line connects the centers of consecutive entries' segments.
type Line struct {
	plot
	Color color.NRGBA
	// Width is the stroke width in pixels.
	Width float32
}

var (
	_ Drawable = (*Line)(nil)
	_ Entrier  = (*Line)(nil)
	_ Scroller = (*Line)(nil)
)

func NewLine(entries *entry.Collection, c color.NRGBA, width float32) *Line {
	return &Line{plot: plot{entries: entries}, Color: c, Width: width}
}

// Points returns the vertices of the line in entry order. The lowest value
// sits on the bottom edge of the bounds.
func (l *Line) Points(animationOffset float32) []f32.Point {
	if l.model.Empty || l.entries.Len() == 0 {
		return nil
	}
	scale := newValueScale(l.bounds, l.model.Bounds, false)
	half := l.spec.Width / 2
	points := make([]f32.Point, l.entries.Len())
	for i := range points {
		e := l.entries.At(i)
		points[i] = f32.Pt(l.slotLeft(e.X)+half, scale.y(e.Y, animationOffset))
	}
	return points
}

func (l *Line) Draw(ops *op.Ops, animationOffset float32) {
	points := l.Points(animationOffset)
	if len(points) < 2 {
		return
	}
	defer clip.Rect(l.bounds).Push(ops).Pop()
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(points[0])
	for _, pt := range points[1:] {
		p.LineTo(pt)
	}
	paint.FillShape(ops, l.Color, clip.Stroke{
		Path:  p.End(),
		Width: l.Width,
	}.Op())
}
