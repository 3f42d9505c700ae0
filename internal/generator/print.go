package generator

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	fcolor "github.com/fatih/color"
)

// Glyphs are colored on use so fcolor.NoColor is honored at print time.
func glyph(status DocumentStatus) string {
	switch status {
	case StatusWritten:
		return fcolor.New(fcolor.FgGreen).Sprint("✔")
	case StatusFailed:
		return fcolor.New(fcolor.FgRed).Sprint("✗")
	default:
		return fcolor.New(fcolor.FgHiBlack).Sprint("○")
	}
}

func warningGlyph() string { return fcolor.New(fcolor.FgYellow).Sprint("⚠") }

// WriteSummary prints one line per document, the link warnings and the
// aggregate counts.
func (r *Report) WriteSummary(w io.Writer) {
	for _, d := range r.Documents {
		switch d.Status {
		case StatusWritten:
			_, _ = fmt.Fprintf(w, "%s %s (%d bytes)\n", glyph(d.Status), d.Path, d.Bytes)
		case StatusFailed:
			_, _ = fmt.Fprintf(w, "%s %s: %v\n", glyph(d.Status), d.Path, d.Err)
		default:
			_, _ = fmt.Fprintf(w, "%s %s (%s)\n", glyph(d.Status), d.Path, d.Status)
		}
	}
	for _, lw := range r.LinkWarnings {
		_, _ = fmt.Fprintf(w, "%s %s\n", warningGlyph(), lw)
	}
	for _, warn := range r.Warnings {
		_, _ = fmt.Fprintf(w, "%s %v\n", warningGlyph(), warn)
	}
	_, _ = fmt.Fprintf(w, "\n%d/%d documents written in %s (outcome: %s)\n",
		r.Written(), len(r.Documents), r.Duration().Truncate(time.Millisecond), r.Outcome)
}

type treeNode struct {
	name     string
	children map[string]*treeNode
	file     bool
}

func (n *treeNode) child(name string) *treeNode {
	if n.children == nil {
		n.children = map[string]*treeNode{}
	}
	c, ok := n.children[name]
	if !ok {
		c = &treeNode{name: name}
		n.children[name] = c
	}
	return c
}

// sorted lists directories before files, each alphabetically.
func (n *treeNode) sorted() []*treeNode {
	out := make([]*treeNode, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].file != out[j].file {
			return !out[i].file
		}
		return out[i].name < out[j].name
	})
	return out
}

// WriteTree prints the written documents as a directory tree rooted at the
// base directory.
func (r *Report) WriteTree(w io.Writer) {
	root := &treeNode{}
	for _, p := range r.WrittenPaths() {
		node := root
		for _, part := range strings.Split(p, "/") {
			node = node.child(part)
		}
		node.file = true
	}
	_, _ = fmt.Fprintln(w, ".")
	writeTreeLevel(w, root, "")
}

func writeTreeLevel(w io.Writer, n *treeNode, prefix string) {
	children := n.sorted()
	for i, c := range children {
		branch, indent := "├── ", "│   "
		if i == len(children)-1 {
			branch, indent = "└── ", "    "
		}
		name := c.name
		if !c.file {
			name += "/"
		}
		_, _ = fmt.Fprintf(w, "%s%s%s\n", prefix, branch, name)
		if !c.file {
			writeTreeLevel(w, c, prefix+indent)
		}
	}
}
