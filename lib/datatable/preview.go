package datatable

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Preview pretty-prints at most maxRows of the table to w. Negative
// maxRows prints everything.
func Preview(t *Table, w io.Writer, maxRows int) {
	shown := t.Truncate(maxRows)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetOutputMirror(w)

	header := make(table.Row, len(shown.Columns))
	for i, col := range shown.Columns {
		header[i] = col
	}
	tw.AppendHeader(header)

	for _, row := range shown.Rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	tw.Render()
}
