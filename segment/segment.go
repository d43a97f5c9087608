// Package segment converts preferred segment geometry in device-independent
// units into absolute drawing units.
//
// All lengths, margins included, are scaled by the same density. The raw
// [unit.Metric.PxPerDp] is used without substituting a default for zero, so
// scaling stays linear for every density.
package segment

import "gioui.org/unit"

// Spec describes the body width of one segment and the gap to the next one,
// both in pixels.
type Spec struct {
	Width   float32
	Spacing float32
}

// New scales a preferred width and spacing by the metric's density.
func New(preferredWidth, spacing unit.Dp, m unit.Metric) Spec {
	return Spec{
		Width:   float32(preferredWidth) * m.PxPerDp,
		Spacing: float32(spacing) * m.PxPerDp,
	}
}

// Scale multiplies every length in s by f.
func (s Spec) Scale(f float32) Spec {
	return Spec{Width: s.Width * f, Spacing: s.Spacing * f}
}

// Stride is the distance between the leading edges of consecutive segments.
func (s Spec) Stride() float32 {
	return s.Width + s.Spacing
}

// Offset returns the leading edge of segment i.
func (s Spec) Offset(i int) float32 {
	return float32(i) * s.Stride()
}

// ContentWidth is the space occupied by n segments. No spacing trails the
// last one.
func (s Spec) ContentWidth(n int) float32 {
	if n <= 0 {
		return 0
	}
	return float32(n)*s.Width + float32(n-1)*s.Spacing
}

// DrawSpec is a Spec with margins before the first and after the last
// segment, so that edge segments are not clipped by the canvas.
type DrawSpec struct {
	Spec
	StartMargin float32
	EndMargin   float32
}

// NewDraw is like [New] but also scales the margins.
func NewDraw(preferredWidth, spacing, startMargin, endMargin unit.Dp, m unit.Metric) DrawSpec {
	return DrawSpec{
		Spec:        New(preferredWidth, spacing, m),
		StartMargin: float32(startMargin) * m.PxPerDp,
		EndMargin:   float32(endMargin) * m.PxPerDp,
	}
}

func (d DrawSpec) Scale(f float32) DrawSpec {
	return DrawSpec{
		Spec:        d.Spec.Scale(f),
		StartMargin: d.StartMargin * f,
		EndMargin:   d.EndMargin * f,
	}
}

func (d DrawSpec) Offset(i int) float32 {
	return d.StartMargin + d.Spec.Offset(i)
}

func (d DrawSpec) ContentWidth(n int) float32 {
	return d.StartMargin + d.Spec.ContentWidth(n) + d.EndMargin
}
