package commands

import (
	"fmt"
	"text/tabwriter"

	"git.home.luguber.info/inful/stackdocs/internal/render"
	"git.home.luguber.info/inful/stackdocs/internal/workspace"
)

// PathsCmd implements the 'paths' command: the directories and documents
// every run owns, relative to the base directory.
type PathsCmd struct {
	Dirs bool `help:"Also list the directories that are created"`
}

func (p *PathsCmd) Run(global *Global, _ *CLI) error {
	tw := tabwriter.NewWriter(global.out(), 0, 4, 2, ' ', 0)
	if p.Dirs {
		for _, dir := range workspace.DefaultTree() {
			_, _ = fmt.Fprintf(tw, "%s/\tdirectory\n", dir)
		}
	}
	for _, spec := range render.Documents() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%04o\n", spec.Path, spec.Kind, spec.Mode.Perm())
	}
	return tw.Flush()
}
