package entry

import (
	"cmp"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/plot/plotter"
)

// Entry is a single (x, y) sample.
type Entry struct {
	X, Y float64
}

// Of builds an Entry from any numeric pair.
func Of[T constraints.Integer | constraints.Float](x, y T) Entry {
	return Entry{X: float64(x), Y: float64(y)}
}

// IntEntry is a sample whose coordinates are whole numbers.
type IntEntry struct {
	X, Y int64
}

func (i IntEntry) Entry() Entry {
	return Of(i.X, i.Y)
}

// Compare orders entries by x, breaking ties on y.
func Compare(a, b Entry) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// Collection holds entries in insertion order, which is also the order they
// are drawn along the x axis. Entries are conventionally non-decreasing in x,
// but nothing enforces it.
type Collection struct {
	entries []Entry
}

var _ plotter.XYer = (*Collection)(nil)

func NewCollection(entries ...Entry) *Collection {
	c := &Collection{}
	c.Append(entries...)
	return c
}

// Append adds entries to the end of the collection.
func (c *Collection) Append(entries ...Entry) {
	c.entries = append(c.entries, entries...)
}

func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

func (c *Collection) At(i int) Entry {
	return c.entries[i]
}

func (c *Collection) XY(i int) (x, y float64) {
	e := c.entries[i]
	return e.X, e.Y
}

// Entries returns a copy of the collection's contents.
func (c *Collection) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Reset empties the collection while keeping its storage.
func (c *Collection) Reset() {
	c.entries = c.entries[:0]
}

// Sorted reports whether the entries are non-decreasing in x.
func (c *Collection) Sorted() bool {
	for i := 1; i < c.Len(); i++ {
		if c.entries[i].X < c.entries[i-1].X {
			return false
		}
	}
	return true
}
