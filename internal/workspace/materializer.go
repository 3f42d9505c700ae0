package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	ferrors "git.home.luguber.info/inful/stackdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/stackdocs/internal/logfields"
	"git.home.luguber.info/inful/stackdocs/internal/storage"
)

// ErrDirectoryCreate is matched by errors.Is when a tree directory cannot be created.
var ErrDirectoryCreate = errors.New("directory create failed")

// Materializer creates a Tree inside a Store.
type Materializer struct {
	store storage.Store
	tree  Tree
}

// NewMaterializer creates a materializer for tree. A nil tree means DefaultTree.
func NewMaterializer(store storage.Store, tree Tree) *Materializer {
	if tree == nil {
		tree = DefaultTree()
	}
	return &Materializer{store: store, tree: tree}
}

// Tree returns the directories this materializer creates.
func (m *Materializer) Tree() Tree { return m.tree }

// Materialize ensures every directory of the tree exists. It stops at the
// first directory that cannot be created.
func (m *Materializer) Materialize(ctx context.Context) error {
	for _, dir := range m.tree {
		if err := EnsureDir(ctx, m.store, dir); err != nil {
			return err
		}
		slog.Debug("Directory ready", logfields.Path(dir))
	}
	return nil
}

// EnsureDir creates dir and its ancestors in store. A pre-existing directory
// is success; anything else that prevents the directory from existing is a
// fatal DirectoryCreateError.
func EnsureDir(ctx context.Context, store storage.Store, dir string) error {
	err := store.MkdirAll(ctx, dir)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	// Some filesystems report EEXIST for a racing creator; trust Stat.
	if e, statErr := store.Stat(ctx, dir); statErr == nil && e.IsDir {
		return nil
	}
	return ferrors.WrapError(fmt.Errorf("%w: %s: %w", ErrDirectoryCreate, dir, err), ferrors.CategoryFileSystem, "create output directory").
		Fatal().
		WithContext("path", dir).
		WithContext("root", store.Root()).
		Build()
}
