package ui

import (
	"strings"
	"unicode/utf8"
)

const tableCellMaxWidth = 40
const tableCellEllipsis = "..."

// TableBuilder collects rows and renders a formatted table.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends a row to the table.
func (builder *TableBuilder) AddRow(row []string) {
	builder.rows = append(builder.rows, row)
}

// String renders the table output.
func (builder *TableBuilder) String() string {
	widths := make([]int, len(builder.headers))
	for i, header := range builder.headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range builder.rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if width := displayWidth(cell); width > widths[i] {
				widths[i] = width
			}
		}
	}

	var out strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			out.WriteString(cell)
			if i == len(row)-1 {
				out.WriteByte('\n')
				continue
			}
			out.WriteString(strings.Repeat(" ", widths[i]-displayWidth(cell)+2))
		}
	}

	writeRow(builder.headers)
	for _, row := range builder.rows {
		writeRow(row)
	}

	return out.String()
}

// TruncateTableCell flattens newlines and limits cell width.
func TruncateTableCell(value string) string {
	value = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
	if displayWidth(value) <= tableCellMaxWidth {
		return value
	}

	max := tableCellMaxWidth - len(tableCellEllipsis)
	runes := []rune(value)
	if max > len(runes) {
		max = len(runes)
	}
	return string(runes[:max]) + tableCellEllipsis
}

// displayWidth counts visible runes, skipping ANSI color sequences.
func displayWidth(value string) int {
	return utf8.RuneCountInString(stripANSICodes(value))
}

func stripANSICodes(input string) string {
	var out strings.Builder
	inEscape := false
	for i := 0; i < len(input); i++ {
		char := input[i]
		if inEscape {
			if char == 'm' {
				inEscape = false
			}
			continue
		}
		if char == '\x1b' {
			inEscape = true
			continue
		}
		out.WriteByte(char)
	}
	return out.String()
}
