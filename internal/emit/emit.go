// Package emit writes rendered documents into a storage.Store.
package emit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"

	ferrors "git.home.luguber.info/inful/stackdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/stackdocs/internal/logfields"
	"git.home.luguber.info/inful/stackdocs/internal/render"
	"git.home.luguber.info/inful/stackdocs/internal/storage"
	"git.home.luguber.info/inful/stackdocs/internal/workspace"
)

// ErrWrite is matched by errors.Is when a document cannot be written.
var ErrWrite = errors.New("write failed")

// Result describes one written document.
type Result struct {
	Path  string
	Bytes int
}

// Emitter writes documents with overwrite semantics.
type Emitter struct {
	store storage.Store
}

func New(store storage.Store) *Emitter {
	return &Emitter{store: store}
}

// Emit writes doc to its path, creating the parent directory when needed.
// Any failure is a non-fatal WriteError scoped to this document.
func (e *Emitter) Emit(ctx context.Context, doc render.Document) (Result, error) {
	rel, err := storage.CleanRelative(doc.Path)
	if err != nil || rel == "." {
		if err == nil {
			err = storage.ErrInvalidPath
		}
		return Result{}, writeError(doc, err)
	}
	if dir := path.Dir(rel); dir != "." {
		if err := workspace.EnsureDir(ctx, e.store, dir); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Result{}, ctxErr
			}
			return Result{}, writeError(doc, err)
		}
	}
	mode := doc.Mode
	if mode == 0 {
		mode = render.ModeDocument
	}
	if err := e.store.WriteFile(ctx, rel, []byte(doc.Content), mode); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		return Result{}, writeError(doc, err)
	}
	slog.Debug("Document written", logfields.Document(string(doc.Kind)), logfields.Path(rel), logfields.Bytes(len(doc.Content)))
	return Result{Path: rel, Bytes: len(doc.Content)}, nil
}

func writeError(doc render.Document, err error) error {
	return ferrors.WrapError(fmt.Errorf("%w: %s: %w", ErrWrite, doc.Path, err), ferrors.CategoryFileSystem, "write document").
		WithContext("path", doc.Path).
		WithContext("document", string(doc.Kind)).
		Build()
}
