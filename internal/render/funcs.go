package render

import (
	"strings"
	"text/template"
	"unicode/utf8"
)

var templateFuncs = template.FuncMap{
	"pad":        pad,
	"padWith":    padWith,
	"center":     center,
	"asciiTable": asciiTable,
}

// pad right-pads s with spaces to width runes. Longer values are kept whole.
func pad(width int, s string) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// padWith right-pads s with fill to width runes.
func padWith(width int, fill, s string) string {
	n := utf8.RuneCountInString(s)
	if n >= width || fill == "" {
		return s
	}
	return s + strings.Repeat(fill, width-n)
}

// center pads s on both sides to width runes, favoring the right side.
func center(width int, s string) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// asciiTable draws a box table sized to its widest cells.
func asciiTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(cell))
			}
		}
	}
	var b strings.Builder
	rule := func(left, mid, right string) {
		b.WriteString(left)
		for i, w := range widths {
			if i > 0 {
				b.WriteString(mid)
			}
			b.WriteString(strings.Repeat("─", w+2))
		}
		b.WriteString(right)
		b.WriteByte('\n')
	}
	line := func(cells []string) {
		b.WriteString("│")
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(" " + pad(w, cell) + " │")
		}
		b.WriteByte('\n')
	}
	rule("┌", "┬", "┐")
	line(header)
	rule("├", "┼", "┤")
	for _, row := range rows {
		line(row)
	}
	rule("└", "┴", "┘")
	return strings.TrimSuffix(b.String(), "\n")
}

func isMarkdown(p string) bool {
	return strings.HasSuffix(p, ".md")
}
