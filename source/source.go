// Package source loads entry collections from tabular files.
//
// A table's first column holds x values and every further column is one
// series of y values, named by the header row. Blank cells are skipped.
// Cells that fail to parse are logged and skipped, so one bad value does not
// discard the rest of a trace.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gonum.org/v1/plot/plotter"

	"git.sr.ht/~whereswaldon/chartlayout/entry"
)

var (
	// ErrNoHeader is returned for input without a header row.
	ErrNoHeader = errors.New("missing header row")
	// ErrUnsupportedFormat is returned for files that are neither CSV nor XLSX.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Series is one named column of a table.
type Series struct {
	Name    string
	Entries *entry.Collection
}

type Table struct {
	Series []Series
}

// Collections returns every series' entries, in column order.
func (t Table) Collections() []plotter.XYer {
	out := make([]plotter.XYer, len(t.Series))
	for i, s := range t.Series {
		out[i] = s.Entries
	}
	return out
}

type tableBuilder struct {
	table Table
	row   int
}

func newTableBuilder(headings []string) (*tableBuilder, error) {
	if len(headings) < 2 {
		return nil, fmt.Errorf("%w: need an x column and at least one series, got %d columns", ErrNoHeader, len(headings))
	}
	b := &tableBuilder{row: 1}
	for _, h := range headings[1:] {
		b.table.Series = append(b.table.Series, Series{
			Name:    strings.TrimSpace(h),
			Entries: entry.NewCollection(),
		})
	}
	return b, nil
}

func (b *tableBuilder) add(rec []string) {
	b.row++
	if len(rec) == 0 || strings.TrimSpace(rec[0]) == "" {
		return
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
	if err != nil {
		log.Printf("row %d: failed parsing x value %q: %v", b.row, rec[0], err)
		return
	}
	for i := 1; i < len(rec) && i <= len(b.table.Series); i++ {
		cell := strings.TrimSpace(rec[i])
		if len(cell) < 1 {
			continue
		}
		y, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			log.Printf("row %d: failed parsing %s=%q: %v", b.row, b.table.Series[i-1].Name, cell, err)
			continue
		}
		b.table.Series[i-1].Entries.Append(entry.Entry{X: x, Y: y})
	}
}

// ReadCSV parses a CSV table.
func ReadCSV(r io.Reader) (Table, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1
	headings, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, ErrNoHeader
	} else if err != nil {
		return Table{}, fmt.Errorf("failed reading CSV headings: %w", err)
	}
	b, err := newTableBuilder(headings)
	if err != nil {
		return Table{}, err
	}
	for {
		rec, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			return b.table, nil
		} else if err != nil {
			return b.table, fmt.Errorf("failed reading CSV data: %w", err)
		}
		b.add(rec)
	}
}

// ReadXLSX parses a worksheet of an XLSX workbook. An empty sheet name
// selects the first sheet.
func ReadXLSX(path, sheet string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed opening workbook: %w", err)
	}
	defer f.Close()
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return Table{}, ErrNoHeader
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("failed reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return Table{}, ErrNoHeader
	}
	b, err := newTableBuilder(rows[0])
	if err != nil {
		return Table{}, err
	}
	for _, rec := range rows[1:] {
		b.add(rec)
	}
	return b.table, nil
}

// LoadFile reads a CSV or XLSX file, chosen by extension. sheet only
// applies to workbooks.
func LoadFile(path, sheet string) (Table, error) {
	return loadFile(path, sheet, false)
}

// loadFile reads path. When complete is set, a trailing CSV line without a
// newline is ignored because it may still be being written.
func loadFile(path, sheet string, complete bool) (Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		f, err := os.Open(path)
		if err != nil {
			return Table{}, err
		}
		defer f.Close()
		var r io.Reader = f
		if complete {
			r = NewLineReader(f)
		}
		t, err := ReadCSV(r)
		if err != nil {
			return t, fmt.Errorf("%s: %w", path, err)
		}
		return t, nil
	case ".xlsx", ".xlsm":
		t, err := ReadXLSX(path, sheet)
		if err != nil {
			return t, fmt.Errorf("%s: %w", path, err)
		}
		return t, nil
	default:
		return Table{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}
