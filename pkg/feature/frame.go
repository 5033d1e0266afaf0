package feature

import (
	"fmt"
)

// Frame is a table of named float64 columns sharing one row count.
// Row i describes the most recent action of game state i.
type Frame struct {
	rows    int
	names   []string
	columns [][]float64
	index   map[string]int
}

// NewFrame creates an empty frame with a fixed number of rows
func NewFrame(rows int) *Frame {
	return &Frame{
		rows:  rows,
		index: make(map[string]int),
	}
}

// Add appends a column. The values slice is owned by the frame afterwards.
func (f *Frame) Add(name string, values []float64) error {
	if len(values) != f.rows {
		return fmt.Errorf("%w: column %q has %d rows, frame has %d", ErrRowMismatch, name, len(values), f.rows)
	}
	if _, ok := f.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	f.index[name] = len(f.names)
	f.names = append(f.names, name)
	f.columns = append(f.columns, values)
	return nil
}

// Rows returns the number of rows
func (f *Frame) Rows() int {
	return f.rows
}

// Columns returns the column names in order
func (f *Frame) Columns() []string {
	return append([]string(nil), f.names...)
}

// Column returns a copy of the values of a named column
func (f *Frame) Column(name string) ([]float64, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return append([]float64(nil), f.columns[i]...), true
}

// Row returns the values of row r in column order
func (f *Frame) Row(r int) []float64 {
	row := make([]float64, len(f.columns))
	for c, col := range f.columns {
		row[c] = col[r]
	}
	return row
}

// Matrix returns all rows in column order
func (f *Frame) Matrix() [][]float64 {
	out := make([][]float64, f.rows)
	for r := range out {
		out[r] = f.Row(r)
	}
	return out
}

// Concat joins frames column-wise. All frames must have the same row count.
// The result shares column storage with its inputs; Column hands out copies,
// so frames stay read-only once built.
func Concat(frames ...*Frame) (*Frame, error) {
	if len(frames) == 0 {
		return NewFrame(0), nil
	}
	out := NewFrame(frames[0].rows)
	for _, fr := range frames {
		if fr.rows != out.rows {
			return nil, fmt.Errorf("%w: cannot concat %d rows with %d rows", ErrRowMismatch, fr.rows, out.rows)
		}
		for c, name := range fr.names {
			if err := out.Add(name, fr.columns[c]); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// renamed returns a frame sharing f's columns under new names
func (f *Frame) renamed(rename func(string) string) *Frame {
	out := NewFrame(f.rows)
	for c, name := range f.names {
		n := rename(name)
		out.index[n] = c
		out.names = append(out.names, n)
		out.columns = append(out.columns, f.columns[c])
	}
	return out
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
