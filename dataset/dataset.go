// Package dataset defines drawable chart datasets and their composition.
package dataset

import (
	"image"

	"gioui.org/op"
	"gonum.org/v1/plot/plotter"

	"git.sr.ht/~whereswaldon/chartlayout/axis"
	"git.sr.ht/~whereswaldon/chartlayout/entry"
	"git.sr.ht/~whereswaldon/chartlayout/segment"
)

// Drawable is anything that can be placed in a rectangle and recorded into
// an operation list. animationOffset is a progress value in [0, 1] that is
// passed through to the drawing code untouched.
type Drawable interface {
	SetBounds(r image.Rectangle)
	Draw(ops *op.Ops, animationOffset float32)
}

// Entrier is implemented by datasets backed by an entry collection.
type Entrier interface {
	Entries() *entry.Collection
}

// Scroller is implemented by datasets that shift their content by a scroll
// offset. Its method can be used directly as a scroll handler sink.
type Scroller interface {
	SetScrollOffset(offset float32)
}

// Merged draws several datasets in one shared rectangle. Children draw in
// registration order, so later children paint over earlier ones.
type Merged struct {
	children []Drawable
	bounds   image.Rectangle
}

var (
	_ Drawable = (*Merged)(nil)
	_ Scroller = (*Merged)(nil)
)

func NewMerged(children ...Drawable) *Merged {
	m := &Merged{}
	m.Add(children...)
	return m
}

// Add registers children after the existing ones. They receive the current
// bounds immediately if bounds have already been set.
func (m *Merged) Add(children ...Drawable) {
	for _, c := range children {
		if !m.bounds.Empty() {
			c.SetBounds(m.bounds)
		}
		m.children = append(m.children, c)
	}
}

func (m *Merged) Len() int {
	return len(m.children)
}

func (m *Merged) Children() []Drawable {
	return m.children
}

func (m *Merged) Bounds() image.Rectangle {
	return m.bounds
}

// SetBounds stores r and hands the very same rectangle to every child.
func (m *Merged) SetBounds(r image.Rectangle) {
	m.bounds = r
	for _, c := range m.children {
		c.SetBounds(r)
	}
}

// Draw draws each child in registration order.
func (m *Merged) Draw(ops *op.Ops, animationOffset float32) {
	for _, c := range m.children {
		c.Draw(ops, animationOffset)
	}
}

// SetScrollOffset forwards the offset to every child that scrolls.
func (m *Merged) SetScrollOffset(offset float32) {
	for _, c := range m.children {
		if s, ok := c.(Scroller); ok {
			s.SetScrollOffset(offset)
		}
	}
}

// ComputeModel aggregates the entries of every dataset, descending into
// merged sets, into one axis model. Use it to pick the frame passed to
// [Merged.SetBounds] and the layout of each child.
func ComputeModel(step float64, spec segment.Spec, datasets ...Drawable) axis.Model {
	return axis.Compute(step, spec, collect(nil, datasets)...)
}

func collect(into []plotter.XYer, datasets []Drawable) []plotter.XYer {
	for _, d := range datasets {
		switch d := d.(type) {
		case *Merged:
			into = collect(into, d.children)
		case Entrier:
			into = append(into, d.Entries())
		}
	}
	return into
}
