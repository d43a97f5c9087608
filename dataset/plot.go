package dataset

import (
	"image"

	"git.sr.ht/~whereswaldon/chartlayout/axis"
	"git.sr.ht/~whereswaldon/chartlayout/entry"
	"git.sr.ht/~whereswaldon/chartlayout/segment"
)

// plot holds the layout shared by the single-collection datasets.
type plot struct {
	entries *entry.Collection
	model   axis.Model
	spec    segment.DrawSpec
	bounds  image.Rectangle
	scroll  float32
}

func (p *plot) Entries() *entry.Collection {
	return p.entries
}

func (p *plot) SetBounds(r image.Rectangle) {
	p.bounds = r
}

func (p *plot) Bounds() image.Rectangle {
	return p.bounds
}

// SetLayout sets the axis model and segment geometry used to place entries.
// Datasets drawn together should share one model.
func (p *plot) SetLayout(m axis.Model, spec segment.DrawSpec) {
	p.model = m
	p.spec = spec
}

func (p *plot) SetScrollOffset(offset float32) {
	p.scroll = offset
}

// slotLeft is the left edge of the segment holding x, in pixels.
func (p *plot) slotLeft(x float64) float32 {
	return float32(p.bounds.Min.X) + p.spec.Offset(p.model.SegmentIndex(x)) - p.scroll
}

// valueScale maps values onto the vertical extent of the bounds.
type valueScale struct {
	bottom   float32
	height   float32
	lo       float64
	interval float64
	// base is the value that animation grows from.
	base float64
}

func newValueScale(r image.Rectangle, b axis.Bounds, fromZero bool) valueScale {
	lo, hi := b.MinY, b.MaxY
	base := lo
	if fromZero {
		lo, hi = min(lo, 0), max(hi, 0)
		base = 0
	}
	interval := hi - lo
	if interval == 0 {
		interval = 1
	}
	return valueScale{
		bottom:   float32(r.Max.Y),
		height:   float32(r.Dy()),
		lo:       lo,
		interval: interval,
		base:     base,
	}
}

// y returns the vertical pixel position of v once animationOffset of its
// growth from the base value has been applied.
func (s valueScale) y(v float64, animationOffset float32) float32 {
	v = s.base + (v-s.base)*float64(animationOffset)
	return s.bottom - float32((v-s.lo)/s.interval)*s.height
}
