// Package table writes numeric results as comma-separated tables.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// ErrColumnLength is returned when columns of unequal length are written.
var ErrColumnLength = errors.New("table: columns must have equal length")

// FormatFloat renders v in plain decimal notation for everyday magnitudes and
// in shortest exponent notation for very large or very small ones. The text
// parses back to exactly v.
func FormatFloat(v float64) string {
	a := math.Abs(v)
	if a == 0 || (a >= 1e-4 && a < 1e16) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Writer writes a header followed by rows of values.
type Writer struct {
	csv *csv.Writer
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// Header writes the column names.
func (w *Writer) Header(names ...string) error {
	return w.csv.Write(names)
}

// Row writes one row of numbers.
func (w *Writer) Row(values ...float64) error {
	rec := make([]string, len(values))
	for i, v := range values {
		rec[i] = FormatFloat(v)
	}
	return w.csv.Write(rec)
}

// Cells writes one row of preformatted cells; use "" for a missing value.
func (w *Writer) Cells(cells ...string) error {
	return w.csv.Write(cells)
}

// Flush writes buffered data and reports any write error.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

// WriteColumns writes header and then one row per index across cols.
func WriteColumns(out io.Writer, header []string, cols ...[]float64) error {
	if len(header) != len(cols) {
		return fmt.Errorf("table: %d header names for %d columns", len(header), len(cols))
	}
	n := 0
	for i, c := range cols {
		if i == 0 {
			n = len(c)
		} else if len(c) != n {
			return ErrColumnLength
		}
	}

	w := NewWriter(out)
	if err := w.Header(header...); err != nil {
		return err
	}

	row := make([]float64, len(cols))
	for i := range n {
		for j, c := range cols {
			row[j] = c[i]
		}
		if err := w.Row(row...); err != nil {
			return err
		}
	}
	return w.Flush()
}

// WriteFile creates path and writes the columns to it.
func WriteFile(path string, header []string, cols ...[]float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("table: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("table: close %s: %w", path, cerr)
		}
	}()

	return WriteColumns(f, header, cols...)
}
