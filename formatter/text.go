package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/theoremus-urban-solutions/gtfsrt-to-tables/table"
)

var headingColor = color.New(color.FgCyan, color.Bold)

// WriteText renders the report for a terminal. maxRows bounds the rows shown
// per table; 0 shows every row.
func WriteText(w io.Writer, r Report, maxRows int) error {
	for _, s := range r.Sections {
		if _, err := headingColor.Fprintf(w, "\n=== %s ===\n", s.Title); err != nil {
			return err
		}
		if err := WriteTable(w, s.Table, maxRows); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, ColumnList(s.Table)); err != nil {
			return err
		}
	}

	speed := "null"
	if r.MeanSpeed != nil {
		speed = strconv.FormatFloat(*r.MeanSpeed, 'f', -1, 64)
	}
	_, err := fmt.Fprintf(w, "MEAN SPEED = %s\nTIME SPENT DOWNLOADING DATA = %v\nTIME SPENT CONSTRUCTING DATA = %v\n",
		speed, r.FetchElapsed, r.BuildElapsed)
	return err
}

// ColumnList renders the ordered column names, e.g. ["entity_id", "speed"].
func ColumnList(t *table.Table) string {
	names := t.Names()
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// WriteTable draws a boxed table with its shape, column names and dtypes.
// When maxRows > 0 and the table is taller, the first and last rows are shown
// around a "…" row.
func WriteTable(w io.Writer, t *table.Table, maxRows int) error {
	cols := t.Columns()
	rows := visibleRows(t.Height(), maxRows)

	cells := make([][]string, len(rows))
	for i, ri := range rows {
		cells[i] = make([]string, len(cols))
		for j, c := range cols {
			if ri < 0 {
				cells[i][j] = "…"
				continue
			}
			cells[i][j] = formatCell(c, ri)
		}
	}

	widths := make([]int, len(cols))
	for j, c := range cols {
		widths[j] = max(utf8.RuneCountInString(c.Name()), utf8.RuneCountInString(c.Kind().String()), 3)
		for i := range cells {
			widths[j] = max(widths[j], utf8.RuneCountInString(cells[i][j]))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "shape: (%d, %d)\n", t.Height(), t.Width())
	b.WriteString(border("┌", "┬", "┐", "─", widths))
	names := make([]string, len(cols))
	dashes := make([]string, len(cols))
	kinds := make([]string, len(cols))
	for j, c := range cols {
		names[j] = c.Name()
		dashes[j] = "---"
		kinds[j] = c.Kind().String()
	}
	b.WriteString(line(names, widths))
	b.WriteString(line(dashes, widths))
	b.WriteString(line(kinds, widths))
	b.WriteString(border("╞", "╪", "╡", "═", widths))
	for _, row := range cells {
		b.WriteString(line(row, widths))
	}
	b.WriteString(border("└", "┴", "┘", "─", widths))

	_, err := io.WriteString(w, b.String())
	return err
}

// visibleRows returns the row indexes to print, with -1 marking the elided
// middle.
func visibleRows(height, maxRows int) []int {
	if maxRows <= 0 || height <= maxRows {
		out := make([]int, height)
		for i := range out {
			out[i] = i
		}
		return out
	}
	head := (maxRows + 1) / 2
	tail := maxRows - head
	out := make([]int, 0, maxRows+1)
	for i := 0; i < head; i++ {
		out = append(out, i)
	}
	out = append(out, -1)
	for i := height - tail; i < height; i++ {
		out = append(out, i)
	}
	return out
}

func formatCell(c *table.Column, i int) string {
	if c.Kind() == table.Utf8 && !c.IsNull(i) {
		return strconv.Quote(c.Format(i))
	}
	return c.Format(i)
}

func border(left, mid, right, fill string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat(fill, w+2)
	}
	return left + strings.Join(parts, mid) + right + "\n"
}

func line(values []string, widths []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = " " + v + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(v)) + " "
	}
	return "│" + strings.Join(parts, "┆") + "│\n"
}
