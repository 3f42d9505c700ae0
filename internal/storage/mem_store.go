package storage

import (
	"context"
	"io/fs"
	"path"
	"slices"
	"sync"
)

// MemStore is an in-memory Store. It is safe for concurrent use and supports
// failure injection for tests.
type MemStore struct {
	mu       sync.RWMutex
	dirs     map[string]bool
	files    map[string]memFile
	failures map[string]error
	calls    MemCalls
}

// MemCalls tracks method invocations for test verification.
type MemCalls struct {
	MkdirAll  int
	WriteFile int
	ReadFile  int
	Stat      int
}

type memFile struct {
	data []byte
	mode fs.FileMode
}

// NewMemStore creates an empty in-memory store containing only the root.
func NewMemStore() *MemStore {
	return &MemStore{
		dirs:     map[string]bool{".": true},
		files:    make(map[string]memFile),
		failures: make(map[string]error),
	}
}

func (m *MemStore) Root() string { return "memory" }

// FailOn makes MkdirAll or WriteFile on rel return err.
func (m *MemStore) FailOn(rel string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if clean, cerr := CleanRelative(rel); cerr == nil {
		rel = clean
	}
	m.failures[rel] = err
}

func (m *MemStore) MkdirAll(ctx context.Context, rel string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	clean, err := CleanRelative(rel)
	if err != nil {
		return &fs.PathError{Op: "mkdir", Path: rel, Err: err}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.MkdirAll++
	if ferr := m.failures[clean]; ferr != nil {
		return &fs.PathError{Op: "mkdir", Path: rel, Err: ferr}
	}
	var chain []string
	for p := clean; p != "."; p = path.Dir(p) {
		chain = append(chain, p)
	}
	slices.Reverse(chain)
	for _, p := range chain {
		if _, isFile := m.files[p]; isFile {
			return &fs.PathError{Op: "mkdir", Path: p, Err: ErrNotDirectory}
		}
	}
	for _, p := range chain {
		m.dirs[p] = true
	}
	return nil
}

func (m *MemStore) WriteFile(ctx context.Context, rel string, data []byte, mode fs.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	clean, err := CleanRelative(rel)
	if err != nil || clean == "." {
		return &fs.PathError{Op: "write", Path: rel, Err: ErrInvalidPath}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.WriteFile++
	if ferr := m.failures[clean]; ferr != nil {
		return &fs.PathError{Op: "write", Path: rel, Err: ferr}
	}
	if !m.dirs[path.Dir(clean)] {
		return &fs.PathError{Op: "write", Path: rel, Err: fs.ErrNotExist}
	}
	if m.dirs[clean] {
		return &fs.PathError{Op: "write", Path: rel, Err: ErrIsDirectory}
	}
	m.files[clean] = memFile{data: slices.Clone(data), mode: mode.Perm()}
	return nil
}

func (m *MemStore) ReadFile(ctx context.Context, rel string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean, err := CleanRelative(rel)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.ReadFile++
	f, ok := m.files[clean]
	if !ok {
		return nil, ErrNotFound{Path: rel}
	}
	return slices.Clone(f.data), nil
}

func (m *MemStore) Stat(ctx context.Context, rel string) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	clean, err := CleanRelative(rel)
	if err != nil {
		return Entry{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Stat++
	if m.dirs[clean] {
		return Entry{Path: rel, IsDir: true, Mode: fs.ModeDir | 0o750}, nil
	}
	if f, ok := m.files[clean]; ok {
		return Entry{Path: rel, Size: int64(len(f.data)), Mode: f.mode}, nil
	}
	return Entry{}, ErrNotFound{Path: rel}
}

// Files returns a copy of every stored file keyed by path.
func (m *MemStore) Files() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string][]byte, len(m.files))
	for p, f := range m.files {
		out[p] = slices.Clone(f.data)
	}
	return out
}

// Dirs returns every directory except the root, sorted.
func (m *MemStore) Dirs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.dirs))
	for d := range m.dirs {
		if d != "." {
			out = append(out, d)
		}
	}
	slices.Sort(out)
	return out
}

// Calls returns the invocation counters.
func (m *MemStore) Calls() MemCalls {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}
