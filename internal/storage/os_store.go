package storage

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// OSStore writes under a base directory on the local filesystem.
type OSStore struct {
	root string
}

// NewOSStore creates a store rooted at dir. The directory itself is not created.
func NewOSStore(dir string) *OSStore {
	if dir == "" {
		dir = "."
	}
	return &OSStore{root: filepath.Clean(dir)}
}

func (s *OSStore) Root() string { return s.root }

func (s *OSStore) full(rel string) (string, error) {
	clean, err := CleanRelative(rel)
	if err != nil {
		return "", fmt.Errorf("%s: %w", rel, err)
	}
	fullPath := filepath.Join(s.root, filepath.FromSlash(clean))
	r, err := filepath.Rel(s.root, fullPath)
	if err != nil || strings.HasPrefix(r, "..") {
		return "", fmt.Errorf("%s: %w", rel, ErrInvalidPath)
	}
	return fullPath, nil
}

func (s *OSStore) MkdirAll(ctx context.Context, rel string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.full(rel)
	if err != nil {
		return err
	}
	return os.MkdirAll(p, 0o750)
}

func (s *OSStore) WriteFile(ctx context.Context, rel string, data []byte, mode fs.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.full(rel)
	if err != nil {
		return err
	}
	// #nosec G306 -- documents are meant to be world readable; mode comes from the registry.
	if err := os.WriteFile(p, data, mode); err != nil {
		return err
	}
	// os.WriteFile keeps the mode of an existing file.
	return os.Chmod(p, mode)
}

func (s *OSStore) ReadFile(ctx context.Context, rel string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.full(rel)
	if err != nil {
		return nil, err
	}
	// #nosec G304 -- p is validated to stay under the root.
	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, ErrNotFound{Path: rel}
	}
	return data, err
}

func (s *OSStore) Stat(ctx context.Context, rel string) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	p, err := s.full(rel)
	if err != nil {
		return Entry{}, err
	}
	info, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return Entry{}, ErrNotFound{Path: rel}
		}
		return Entry{}, err
	}
	return Entry{Path: rel, IsDir: info.IsDir(), Size: info.Size(), Mode: info.Mode().Perm()}, nil
}
