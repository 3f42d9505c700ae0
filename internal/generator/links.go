package generator

import (
	"context"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/stackdocs/internal/logfields"
	"git.home.luguber.info/inful/stackdocs/internal/markdown"
	"git.home.luguber.info/inful/stackdocs/internal/render"
	"git.home.luguber.info/inful/stackdocs/internal/storage"
)

// verifyLinks checks every relative link in the written markdown documents.
// A target resolves when it is a document produced in this run or an
// existing path under the base directory. Dangling links are warnings.
func verifyLinks(ctx context.Context, store storage.Store, docs []render.Document) ([]LinkWarning, error) {
	produced := make(map[string]bool, len(docs))
	for _, d := range docs {
		produced[d.Path] = true
	}

	var warnings []LinkWarning
	for _, d := range docs {
		if !d.Markdown() {
			continue
		}
		for _, target := range markdown.LocalTargets(d.Path, []byte(d.Content)) {
			if err := ctx.Err(); err != nil {
				return warnings, err
			}
			if resolves(ctx, store, produced, target) {
				continue
			}
			w := LinkWarning{Document: d.Path, Target: target}
			slog.Warn("Dangling link", logfields.Document(string(d.Kind)), logfields.Path(d.Path), slog.String("target", target))
			warnings = append(warnings, w)
		}
	}
	return warnings, nil
}

func resolves(ctx context.Context, store storage.Store, produced map[string]bool, target string) bool {
	if target == ".." || strings.HasPrefix(target, "../") {
		return false
	}
	if produced[target] {
		return true
	}
	_, err := store.Stat(ctx, target)
	return err == nil
}
