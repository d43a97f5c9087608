// Package axis aggregates entry collections into axis bounds and carries the
// segment geometry derived for them.
package axis

import (
	"math"

	"gonum.org/v1/plot/plotter"

	"git.sr.ht/~whereswaldon/chartlayout/entry"
	"git.sr.ht/~whereswaldon/chartlayout/segment"
)

// DefaultStep is the x axis sampling granularity used when none is given.
const DefaultStep = 1

// Bounds spans the minimum and maximum x and y of a set of entries.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Contains reports whether e lies within b, edges included.
func (b Bounds) Contains(e entry.Entry) bool {
	return e.X >= b.MinX && e.X <= b.MaxX && e.Y >= b.MinY && e.Y <= b.MaxY
}

// Union returns the smallest bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: min(b.MinX, o.MinX),
		MaxX: max(b.MaxX, o.MaxX),
		MinY: min(b.MinY, o.MinY),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// ComputeBounds reduces every entry of the given collections to their
// bounds in a linear reduction using constant memory. The result does not
// depend on entry order. If the collections hold no entries at all, the zero
// Bounds is returned and ok is false; callers must not read the zero value
// as data at the origin.
func ComputeBounds(collections ...plotter.XYer) (b Bounds, ok bool) {
	for _, c := range collections {
		if c == nil || c.Len() == 0 {
			continue
		}
		var cb Bounds
		cb.MinX, cb.MaxX, cb.MinY, cb.MaxY = plotter.XYRange(c)
		if !ok {
			b = cb
			ok = true
			continue
		}
		b = b.Union(cb)
	}
	return b, ok
}

// Model is the aggregate the rendering layer reads to place segments.
type Model struct {
	Bounds
	// Empty is true when no entries contributed to Bounds. The bounds are
	// then all zero.
	Empty bool
	// Step is the x distance represented by one segment.
	Step            float64
	XSegmentWidth   float32
	XSegmentSpacing float32
}

// NewModel returns an empty model with the default step.
func NewModel() Model {
	return Model{Empty: true, Step: DefaultStep}
}

// Compute builds a model over the collections using the given step and
// segment geometry. A non-positive step is replaced by [DefaultStep].
func Compute(step float64, spec segment.Spec, collections ...plotter.XYer) Model {
	m := NewModel()
	if step > 0 {
		m.Step = step
	}
	m.Aggregate(collections...)
	m.ApplySegment(spec)
	return m
}

// Aggregate recomputes the bounds from scratch over the collections. It
// should be invoked whenever the backing collections change.
func (m *Model) Aggregate(collections ...plotter.XYer) {
	b, ok := ComputeBounds(collections...)
	m.Bounds = b
	m.Empty = !ok
}

// Clear resets the bounds to the empty state. Step and segment geometry are
// kept.
func (m *Model) Clear() {
	m.Bounds = Bounds{}
	m.Empty = true
}

// ApplySegment records the segment geometry used along the x axis.
func (m *Model) ApplySegment(spec segment.Spec) {
	m.XSegmentWidth = spec.Width
	m.XSegmentSpacing = spec.Spacing
}

// Segment returns the recorded segment geometry.
func (m Model) Segment() segment.Spec {
	return segment.Spec{Width: m.XSegmentWidth, Spacing: m.XSegmentSpacing}
}

// SegmentCount is the number of step-spaced x slots needed to cover the
// bounds, both ends included.
func (m Model) SegmentCount() int {
	if m.Empty {
		return 0
	}
	step := m.Step
	if step <= 0 {
		step = DefaultStep
	}
	return saturate(math.Floor(m.Width()/step) + 1)
}

// SegmentIndex maps an x value to the slot it occupies.
func (m Model) SegmentIndex(x float64) int {
	step := m.Step
	if step <= 0 {
		step = DefaultStep
	}
	return saturate(math.Round((x - m.MinX) / step))
}

// saturate converts f to an int, clamping values outside the int range.
// NaN maps to zero.
func saturate(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}
