package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestPadAndCenter(t *testing.T) {
	assert.Equal(t, "ab   ", pad(5, "ab"))
	assert.Equal(t, "abcdef", pad(3, "abcdef"))
	assert.Equal(t, " ab  ", center(5, "ab"))
	assert.Equal(t, "• x  ", pad(5, "• x"))
	assert.Equal(t, "ab───", padWith(5, "─", "ab"))
}

func TestASCIITable_AlignsColumns(t *testing.T) {
	out := asciiTable([]string{"Name", "Addr"}, [][]string{
		{"OpenWebUI", "192.168.1.101:8080"},
		{"X", "y"},
	})
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 6)
	width := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(l), l)
	}
	assert.Contains(t, out, "│ OpenWebUI │ 192.168.1.101:8080 │")
}
