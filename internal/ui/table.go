package ui

import (
	"fmt"
	"strings"

	"github.com/lasif-tools/cli/internal/ui/style"
)

// Table renders a simple aligned text table. Every row must have the same
// number of cells as the header; shorter rows are padded with empty cells.
func Table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	for i, h := range header {
		b.WriteString(style.Header(pad(h, widths[i])))
		if i < len(header)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(strings.Repeat("-", w))
		if i < len(widths)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := range header {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(pad(cell, widths[i]))
			if i < len(header)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// KeyValueTable renders two-column key/value output, keys muted and
// right-padded to the longest key.
func KeyValueTable(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		if len(p[0]) > width {
			width = len(p[0])
		}
	}

	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(fmt.Sprintf("  %s  %s\n", style.Muted(pad(p[0], width)), p[1]))
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
