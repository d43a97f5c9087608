package scroll

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

type recorder struct {
	values []float32
}

func (r *recorder) sink(v float32) {
	r.values = append(r.values, v)
}

func newHandler(t *testing.T, maxDistance float32) (*Handler, *recorder) {
	t.Helper()
	rec := &recorder{}
	h, err := New(maxDistance, rec.sink)
	if err != nil {
		t.Fatalf("unexpected error creating handler: %v", err)
	}
	return h, rec
}

func TestNewRejectsInvalidDistance(t *testing.T) {
	for _, d := range []float32{-1, float32(math.NaN())} {
		if _, err := New(d, nil); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("distance %v: expected ErrInvalidConfiguration, got %v", d, err)
		}
	}
	if _, err := New(0, nil); err != nil {
		t.Errorf("zero distance should be valid, got %v", err)
	}
}

func TestHandleScrollDeltaPastEnd(t *testing.T) {
	h, rec := newHandler(t, 100)
	unconsumed := h.HandleScrollDelta(-150)
	if h.Current() != 100 {
		t.Errorf("expected offset 100, got %f", h.Current())
	}
	if unconsumed != 50 {
		t.Errorf("expected 50 unconsumed, got %f", unconsumed)
	}
	if len(rec.values) != 1 || rec.values[0] != 100 {
		t.Errorf("expected one notification of 100, got %v", rec.values)
	}
}

func TestHandleScrollDeltaPastStart(t *testing.T) {
	h, _ := newHandler(t, 100)
	h.SetScroll(30)
	unconsumed := h.HandleScrollDelta(45)
	if h.Current() != 0 {
		t.Errorf("expected offset 0, got %f", h.Current())
	}
	if unconsumed != 15 {
		t.Errorf("expected 15 unconsumed, got %f", unconsumed)
	}
}

func TestHandleScrollDeltaRoundTrip(t *testing.T) {
	h, _ := newHandler(t, 100)
	h.SetScroll(40)
	for _, delta := range []float32{10, -10, 25.5, -39.75, 40} {
		before := h.Current()
		if u := h.HandleScrollDelta(delta); u != 0 {
			t.Errorf("delta %f: expected everything consumed, got %f", delta, u)
		}
		h.HandleScrollDelta(-delta)
		if h.Current() != before {
			t.Errorf("delta %f: expected to return to %f, got %f", delta, before, h.Current())
		}
	}
}

func TestScrollStaysInRange(t *testing.T) {
	h, rec := newHandler(t, 250)
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		h.HandleScrollDelta(r.Float32()*400 - 200)
		if c := h.Current(); c < 0 || c > 250 {
			t.Fatalf("step %d: offset %f escaped [0, 250]", i, c)
		}
	}
	for _, v := range rec.values {
		if v < 0 || v > 250 {
			t.Errorf("sink received out of range offset %f", v)
		}
	}
}

func TestSetScrollNotifiesClamped(t *testing.T) {
	h, rec := newHandler(t, 10)
	h.SetScroll(25)
	h.SetScroll(-4)
	h.SetScroll(-8)
	h.SetScroll(5)
	expected := []float32{10, 0, 5}
	if len(rec.values) != len(expected) {
		t.Fatalf("expected notifications %v, got %v", expected, rec.values)
	}
	for i := range expected {
		if rec.values[i] != expected[i] {
			t.Errorf("notification %d: expected %f, got %f", i, expected[i], rec.values[i])
		}
	}
}

func TestHandleScroll(t *testing.T) {
	h, _ := newHandler(t, 100)
	if u := h.HandleScroll(60); u != 0 || h.Current() != 60 {
		t.Errorf("expected offset 60 with nothing left over, got %f (%f)", h.Current(), u)
	}
	if u := h.HandleScroll(130); u != 30 || h.Current() != 100 {
		t.Errorf("expected offset 100 with 30 left over, got %f (%f)", h.Current(), u)
	}
	if p := h.Progress(); p != 1 {
		t.Errorf("expected full progress, got %f", p)
	}
}

func TestSetMaxScrollDistance(t *testing.T) {
	h, rec := newHandler(t, 100)
	h.SetScroll(80)
	if err := h.SetMaxScrollDistance(50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Current() != 50 {
		t.Errorf("expected eager re-clamp to 50, got %f", h.Current())
	}
	if last := rec.values[len(rec.values)-1]; last != 50 {
		t.Errorf("expected sink to see re-clamped 50, got %f", last)
	}
	if err := h.SetMaxScrollDistance(-5); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
	if h.MaxScrollDistance() != 50 || h.Current() != 50 {
		t.Errorf("rejected bound must leave the handler unchanged")
	}
	if err := h.SetMaxScrollDistance(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Current() != 0 || h.Progress() != 0 {
		t.Errorf("expected offset and progress 0, got %f and %f", h.Current(), h.Progress())
	}
}

func TestMaxDistance(t *testing.T) {
	if d := MaxDistance(300, 120); d != 180 {
		t.Errorf("expected 180, got %f", d)
	}
	if d := MaxDistance(100, 120); d != 0 {
		t.Errorf("content narrower than the viewport cannot scroll, got %f", d)
	}
}

func TestHandleScrollDeltaInteriorConsumesEverything(t *testing.T) {
	h, _ := newHandler(t, 1000)
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 10000; i++ {
		h.SetScroll(100 + r.Float32()*800)
		delta := r.Float32()*20 - 10
		if u := h.HandleScrollDelta(delta); u != 0 {
			t.Fatalf("step %d: delta %v away from both edges left %v unconsumed", i, delta, u)
		}
	}
	h.SetScroll(0.1)
	if u := h.HandleScrollDelta(0.3); u == 0 {
		t.Errorf("expected the part past zero to be reported")
	}
	if u := h.HandleScrollDelta(float32(math.NaN())); u != 0 || h.Current() != 0 {
		t.Errorf("expected NaN delta to be ignored, got offset %f and %f unconsumed", h.Current(), u)
	}
}
