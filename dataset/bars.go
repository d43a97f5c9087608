package dataset

import (
	"image"
	"image/color"
	"math"

	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"git.sr.ht/~whereswaldon/chartlayout/entry"
)

// Bars draws one bar per entry, rising from zero.
type Bars struct {
	plot
	Color color.NRGBA
}

var (
	_ Drawable = (*Bars)(nil)
	_ Entrier  = (*Bars)(nil)
	_ Scroller = (*Bars)(nil)
)

func NewBars(entries *entry.Collection, c color.NRGBA) *Bars {
	return &Bars{plot: plot{entries: entries}, Color: c}
}

// Rects returns the pixel rectangle of every bar that overlaps the bounds,
// in entry order, clipped to the bounds. Bars of zero height are omitted.
func (b *Bars) Rects(animationOffset float32) []image.Rectangle {
	if b.model.Empty || b.entries.Len() == 0 {
		return nil
	}
	scale := newValueScale(b.bounds, b.model.Bounds, true)
	baseline := scale.y(0, 1)
	rects := make([]image.Rectangle, 0, b.entries.Len())
	for i := 0; i < b.entries.Len(); i++ {
		e := b.entries.At(i)
		left := b.slotLeft(e.X)
		top := scale.y(e.Y, animationOffset)
		r := image.Rectangle{
			Min: image.Pt(round(left), round(min(top, baseline))),
			Max: image.Pt(round(left+b.spec.Width), round(max(top, baseline))),
		}
		if !r.Overlaps(b.bounds) {
			continue
		}
		rects = append(rects, r.Intersect(b.bounds))
	}
	return rects
}

func (b *Bars) Draw(ops *op.Ops, animationOffset float32) {
	defer clip.Rect(b.bounds).Push(ops).Pop()
	for _, r := range b.Rects(animationOffset) {
		paint.FillShape(ops, b.Color, clip.Rect(r).Op())
	}
}

func round(f float32) int {
	return int(math.Round(float64(f)))
}
