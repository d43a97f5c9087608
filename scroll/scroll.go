// Package scroll tracks a horizontal scroll offset clamped to
// [0, max scroll distance].
//
// A Handler is not safe for concurrent use. Hosts that mutate it from more
// than one callback must serialize access themselves.
package scroll

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration is returned when a handler is given a scroll bound
// that cannot describe a valid range.
var ErrInvalidConfiguration = errors.New("invalid scroll configuration")

// Handler is a clamped scroll accumulator. Every change to the current
// offset is reported synchronously to its sink.
type Handler struct {
	current     float32
	maxDistance float32
	sink        func(float32)
}

// New returns a handler at offset zero. sink may be nil.
func New(maxDistance float32, sink func(float32)) (*Handler, error) {
	if err := validate(maxDistance); err != nil {
		return nil, err
	}
	return &Handler{maxDistance: maxDistance, sink: sink}, nil
}

func validate(maxDistance float32) error {
	if maxDistance < 0 || math.IsNaN(float64(maxDistance)) {
		return fmt.Errorf("%w: max scroll distance %v", ErrInvalidConfiguration, maxDistance)
	}
	return nil
}

// MaxDistance returns how far content of the given width can scroll within
// a viewport. It is never negative.
func MaxDistance(contentWidth, viewportWidth float32) float32 {
	return max(contentWidth-viewportWidth, 0)
}

func (h *Handler) Current() float32 {
	return h.current
}

func (h *Handler) MaxScrollDistance() float32 {
	return h.maxDistance
}

// Progress returns the current offset as a fraction of the maximum, or zero
// when there is nothing to scroll.
func (h *Handler) Progress() float32 {
	if h.maxDistance == 0 {
		return 0
	}
	return h.current / h.maxDistance
}

// SetSink replaces the function notified of offset changes.
func (h *Handler) SetSink(sink func(float32)) {
	h.sink = sink
}

func (h *Handler) clamp(v float32) float32 {
	if math.IsNaN(float64(v)) {
		return h.current
	}
	return min(max(v, 0), h.maxDistance)
}

// set stores v and notifies the sink if the offset changed.
func (h *Handler) set(v float32) {
	if v == h.current {
		return
	}
	h.current = v
	if h.sink != nil {
		h.sink(v)
	}
}

// SetScroll moves to value, clamped to the valid range. The sink receives
// the clamped offset.
func (h *Handler) SetScroll(value float32) {
	h.set(h.clamp(value))
}

// HandleScrollDelta moves the offset by -delta, so a positive delta scrolls
// back towards zero. It returns the magnitude of the part of delta that
// could not be applied because a boundary was reached.
func (h *Handler) HandleScrollDelta(delta float32) (unconsumed float32) {
	target := h.current - delta
	clamped := h.clamp(target)
	h.set(clamped)
	if math.IsNaN(float64(target)) {
		return 0
	}
	return abs(target - clamped)
}

// HandleScroll moves towards target, reporting like [Handler.HandleScrollDelta].
func (h *Handler) HandleScroll(target float32) (unconsumed float32) {
	return h.HandleScrollDelta(h.current - target)
}

// SetMaxScrollDistance changes the bound and re-clamps the current offset
// immediately. An invalid bound leaves the handler unchanged.
func (h *Handler) SetMaxScrollDistance(maxDistance float32) error {
	if err := validate(maxDistance); err != nil {
		return err
	}
	h.maxDistance = maxDistance
	h.set(h.clamp(h.current))
	return nil
}

func abs(f float32) float32 {
	return float32(math.Abs(float64(f)))
}
