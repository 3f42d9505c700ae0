// Package storage abstracts the output filesystem the generator writes into.
//
// All paths are slash-separated and relative to the store root. Two
// implementations exist: OSStore writes to disk under a base directory and
// MemStore keeps everything in memory for dry runs and tests.
package storage

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"strings"
)

// Store is the filesystem surface used by the materializer, the emitter and
// link verification.
type Store interface {
	// Root describes where the store writes (a directory or "memory").
	Root() string

	// MkdirAll creates rel and any missing ancestors. Existing directories
	// are not an error; a file occupying any of those paths is.
	MkdirAll(ctx context.Context, rel string) error

	// WriteFile creates or truncates rel and sets its mode. The parent
	// directory must exist.
	WriteFile(ctx context.Context, rel string, data []byte, mode fs.FileMode) error

	// ReadFile returns the content of rel.
	ReadFile(ctx context.Context, rel string) ([]byte, error)

	// Stat describes rel. Returns ErrNotFound if nothing exists there.
	Stat(ctx context.Context, rel string) (Entry, error)
}

// Entry describes a path in a Store.
type Entry struct {
	Path  string
	IsDir bool
	Size  int64
	Mode  fs.FileMode
}

// ErrNotFound is returned when a path doesn't exist.
type ErrNotFound struct {
	Path string
}

func (e ErrNotFound) Error() string {
	return "path not found: " + e.Path
}

// Is lets errors.Is(err, fs.ErrNotExist) match.
func (e ErrNotFound) Is(target error) bool {
	return target == fs.ErrNotExist
}

// IsNotFound returns true if the error is ErrNotFound.
func IsNotFound(err error) bool {
	var nf ErrNotFound
	return errors.As(err, &nf)
}

var (
	// ErrInvalidPath is returned for absolute paths or paths leaving the root.
	ErrInvalidPath  = errors.New("path must be relative and stay inside the root")
	ErrNotDirectory = errors.New("not a directory")
	ErrIsDirectory  = errors.New("is a directory")
)

// CleanRelative normalizes rel and rejects paths that would escape the root.
// The root itself is returned as ".".
func CleanRelative(rel string) (string, error) {
	if rel == "" {
		return "", ErrInvalidPath
	}
	rel = strings.ReplaceAll(rel, "\\", "/")
	if path.IsAbs(rel) {
		return "", ErrInvalidPath
	}
	clean := path.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", ErrInvalidPath
	}
	return clean, nil
}
