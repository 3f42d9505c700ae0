package workspace

import (
	"path"
	"slices"
)

// Tree is an ordered set of slash-separated directories relative to the base directory.
type Tree []string

// DefaultTree returns the directory layout every run materializes.
func DefaultTree() Tree {
	return Tree{
		"docs",
		"docs/architecture",
		"docs/architecture/diagrams",
		"docs/architecture/diagrams/generated",
		"docs/architecture/diagrams/mermaid",
		"docs/architecture/diagrams/plantuml",
		"docs/deployment",
		"docs/operations",
		"docs/development",
		"scripts/documentation",
	}
}

// Contains reports whether dir is part of the tree. The base directory (".")
// is always contained.
func (t Tree) Contains(dir string) bool {
	dir = path.Clean(dir)
	return dir == "." || slices.Contains(t, dir)
}

// Covers returns the parent directories of files that the tree does not
// contain, in first-seen order. An empty result means every file can be
// written once the tree is materialized.
func (t Tree) Covers(files []string) []string {
	var missing []string
	for _, f := range files {
		dir := path.Dir(path.Clean(f))
		if !t.Contains(dir) && !slices.Contains(missing, dir) {
			missing = append(missing, dir)
		}
	}
	return missing
}
