// Package frame provides the tabular presentation of API records: one row per
// record, one column per field.
package frame

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
)

// Frame is a column-labelled table. Cells hold the decoded JSON values
// unchanged; nil marks a field the record did not carry.
type Frame struct {
	Columns []string
	Rows    [][]any
}

// Builder turns a sequence of records into a Frame.
type Builder interface {
	FromRecords(records []map[string]any) (*Frame, error)
}

// DefaultBuilder lays out columns as the sorted union of record keys.
type DefaultBuilder struct{}

// FromRecords implements Builder.
func (DefaultBuilder) FromRecords(records []map[string]any) (*Frame, error) {
	cols := lo.UniqKeys(records...)
	slices.Sort(cols)

	rows := make([][]any, len(records))
	for i, r := range records {
		row := make([]any, len(cols))
		for j, c := range cols {
			row[j] = r[c]
		}
		rows[i] = row
	}
	return &Frame{Columns: cols, Rows: rows}, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.Rows) }

// ColumnIndex returns the index of name, or -1.
func (f *Frame) ColumnIndex(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns every cell of the named column.
func (f *Frame) Column(name string) ([]any, bool) {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	out := make([]any, len(f.Rows))
	for i, row := range f.Rows {
		out[i] = row[idx]
	}
	return out, true
}

// Select returns a new frame restricted to the named columns, in the given order.
// Unknown names are an error.
func (f *Frame) Select(columns ...string) (*Frame, error) {
	idx := make([]int, len(columns))
	for i, c := range columns {
		idx[i] = f.ColumnIndex(c)
		if idx[i] < 0 {
			return nil, fmt.Errorf("unknown column %q", c)
		}
	}
	rows := make([][]any, len(f.Rows))
	for i, row := range f.Rows {
		out := make([]any, len(idx))
		for j, k := range idx {
			out[j] = row[k]
		}
		rows[i] = out
	}
	return &Frame{Columns: append([]string(nil), columns...), Rows: rows}, nil
}

// Render writes the frame as a text table.
func (f *Frame) Render(w io.Writer) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	header := make(table.Row, len(f.Columns))
	for i, c := range f.Columns {
		header[i] = c
	}
	t.AppendHeader(header)
	for _, row := range f.Rows {
		r := make(table.Row, len(row))
		for i, v := range row {
			r[i] = cellText(v)
		}
		t.AppendRow(r)
	}
	t.Render()
	return nil
}

// cellText renders scalars as-is and nested values as compact JSON.
func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return fmt.Sprint(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}
