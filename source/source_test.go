package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"git.sr.ht/~whereswaldon/chartlayout/axis"
	"git.sr.ht/~whereswaldon/chartlayout/entry"
)

func expectEntries(t *testing.T, s Series, expected ...entry.Entry) {
	t.Helper()
	got := s.Entries.Entries()
	if len(got) != len(expected) {
		t.Errorf("series %q: expected %v, got %v", s.Name, expected, got)
		return
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("series %q entry %d: expected %v, got %v", s.Name, i, expected[i], got[i])
		}
	}
}

func TestReadCSV(t *testing.T) {
	input := `x, power (W), energy (J)
0, 5, 1.5
1, 2,
2, 9, bogus
oops, 4, 4
3,, -1
`
	table, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(table.Series))
	}
	if table.Series[0].Name != "power (W)" || table.Series[1].Name != "energy (J)" {
		t.Errorf("unexpected series names %q, %q", table.Series[0].Name, table.Series[1].Name)
	}
	expectEntries(t, table.Series[0], entry.Of(0, 5), entry.Of(1, 2), entry.Of(2, 9))
	expectEntries(t, table.Series[1], entry.Of(0, 1.5), entry.Of(3, -1))

	b, ok := axis.ComputeBounds(table.Collections()...)
	if !ok {
		t.Fatalf("expected bounds")
	}
	if expected := (axis.Bounds{MinX: 0, MaxX: 3, MinY: -1, MaxY: 9}); b != expected {
		t.Errorf("expected %+v, got %+v", expected, b)
	}
}

func TestReadCSVErrors(t *testing.T) {
	for _, input := range []string{"", "x\n1\n"} {
		if _, err := ReadCSV(strings.NewReader(input)); !errors.Is(err, ErrNoHeader) {
			t.Errorf("input %q: expected ErrNoHeader, got %v", input, err)
		}
	}
	if _, err := LoadFile("trace.json", ""); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.xlsx")
	f := excelize.NewFile()
	for i, row := range [][]interface{}{
		{"x", "a", "b"},
		{0, 5, 1},
		{1, 2},
		{2, 9, 7},
	} {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	table, err := LoadFile(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(table.Series))
	}
	expectEntries(t, table.Series[0], entry.Of(0, 5), entry.Of(1, 2), entry.Of(2, 9))
	expectEntries(t, table.Series[1], entry.Of(0, 1), entry.Of(2, 7))
	if _, err := ReadXLSX(path, "Missing"); err == nil {
		t.Errorf("expected an error for a missing sheet")
	}
}

func TestLoadFileIgnoresPartialLineOnlyWhenTailing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	if err := os.WriteFile(path, []byte("x,a\n0,1\n1,2"), 0644); err != nil {
		t.Fatal(err)
	}
	full, err := LoadFile(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectEntries(t, full.Series[0], entry.Of(0, 1), entry.Of(1, 2))
	tail, err := loadFile(path, "", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectEntries(t, tail.Series[0], entry.Of(0, 1))
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	if err := os.WriteFile(path, []byte("x,a\n0,1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tables := make(chan Table, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, "", func(t Table) { tables <- t })
	}()

	waitFor := func(n int) {
		t.Helper()
		timeout := time.After(5 * time.Second)
		for {
			select {
			case table := <-tables:
				if table.Series[0].Entries.Len() == n {
					return
				}
			case <-timeout:
				t.Fatalf("timed out waiting for a table with %d entries", n)
			}
		}
	}
	waitFor(1)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("1,2\n2,3\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()
	waitFor(3)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Errorf("watcher did not stop after cancellation")
	}
}
