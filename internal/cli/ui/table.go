package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Table renders aligned columns with a bold header and a rule beneath it
type Table struct {
	writer  io.Writer
	headers []string
	rows    [][]string
	styles  map[int]func(cell string) *color.Color
	noColor bool
}

// TableOptions configures table behavior
type TableOptions struct {
	NoColor bool
}

// NewTable creates a new table with the given headers
func NewTable(w io.Writer, headers []string, opts *TableOptions) *Table {
	t := &Table{
		writer:  w,
		headers: headers,
		rows:    make([][]string, 0),
		styles:  make(map[int]func(string) *color.Color),
	}
	if opts != nil {
		t.noColor = opts.NoColor
	}
	return t
}

// AddRow adds a row to the table. Missing cells render empty and extra
// cells are dropped.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// StyleColumn colors the cells of column col with the color style returns
// for each cell; a nil color leaves the cell plain.
func (t *Table) StyleColumn(col int, style func(cell string) *color.Color) {
	t.styles[col] = style
}

// Len returns the number of rows
func (t *Table) Len() int { return len(t.rows) }

// Render renders the table to the writer
func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, header := range t.headers {
		widths[i] = utf8.RuneCountInString(header)
	}
	for _, row := range t.rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			widths[i] = max(widths[i], utf8.RuneCountInString(row[i]))
		}
	}

	last := len(widths) - 1
	bold := paint(t.noColor, color.Bold, color.FgCyan)
	for i, header := range t.headers {
		bold.Fprint(t.writer, cell(header, widths[i], i == last))
		if i < last {
			fmt.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)

	rules := make([]string, len(widths))
	for i, width := range widths {
		rules[i] = strings.Repeat("─", width)
	}
	paint(t.noColor, color.FgHiBlack).Fprintln(t.writer, strings.Join(rules, "  "))

	for _, row := range t.rows {
		for i := range widths {
			text := ""
			if i < len(row) {
				text = row[i]
			}
			padded := cell(text, widths[i], i == last)
			if style, ok := t.styles[i]; ok && !t.noColor {
				if c := style(text); c != nil {
					padded = c.Sprint(padded)
				}
			}
			fmt.Fprint(t.writer, padded)
			if i < last {
				fmt.Fprint(t.writer, "  ")
			}
		}
		fmt.Fprintln(t.writer)
	}
}

// cell pads s to width unless it is in the last column
func cell(s string, width int, last bool) string {
	if last {
		return s
	}
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// KeyValueTable renders aligned "key: value" lines
type KeyValueTable struct {
	writer  io.Writer
	rows    [][2]string
	noColor bool
}

// NewKeyValueTable creates a new key-value table
func NewKeyValueTable(w io.Writer, noColor bool) *KeyValueTable {
	return &KeyValueTable{writer: w, noColor: noColor}
}

// AddRow adds a key-value pair to the table
func (t *KeyValueTable) AddRow(key, value string) {
	t.rows = append(t.rows, [2]string{key, value})
}

// Render renders the key-value table. Multi-line values are indented to
// line up under the first line.
func (t *KeyValueTable) Render() {
	width := 0
	for _, row := range t.rows {
		width = max(width, utf8.RuneCountInString(row[0])+1)
	}

	cyan := paint(t.noColor, color.FgCyan)
	indent := strings.Repeat(" ", width+1)
	for _, row := range t.rows {
		cyan.Fprint(t.writer, cell(row[0]+":", width, false))
		fmt.Fprintf(t.writer, " %s\n", strings.ReplaceAll(row[1], "\n", "\n"+indent))
	}
}

// Header renders a styled title underlined to its width
func Header(w io.Writer, title string, noColor bool) {
	paint(noColor, color.Bold, color.FgCyan).Fprintln(w, title)
	paint(noColor, color.FgHiBlack).Fprintln(w, strings.Repeat("─", utf8.RuneCountInString(title)))
}
