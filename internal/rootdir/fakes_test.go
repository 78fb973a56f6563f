package rootdir

import (
	"context"
	"fmt"
	"sync"
)

// memStore is an in-memory Store that counts mutations.
type memStore struct {
	mu        sync.Mutex
	dirs      []RootDir
	nextID    int64
	mutations int
	err       error
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (s *memStore) All(ctx context.Context) ([]RootDir, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]RootDir, len(s.dirs))
	copy(out, s.dirs)
	return out, nil
}

func (s *memStore) Insert(ctx context.Context, dir RootDir) (RootDir, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return RootDir{}, s.err
	}
	s.mutations++
	dir.ID = s.nextID
	s.nextID++
	s.dirs = append(s.dirs, dir)
	return dir, nil
}

func (s *memStore) Update(ctx context.Context, dir RootDir) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for i := range s.dirs {
		if s.dirs[i].ID == dir.ID {
			s.mutations++
			s.dirs[i].Path = dir.Path
			return nil
		}
	}
	return fmt.Errorf("%w; id %d", ErrNotFound, dir.ID)
}

func (s *memStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for i := range s.dirs {
		if s.dirs[i].ID == id {
			s.mutations++
			s.dirs = append(s.dirs[:i], s.dirs[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeFS is a FileSystem keyed by exact path strings.
type fakeFS struct {
	dirs      map[string][]string
	existsErr error
	listErr   error
	calls     int
}

func (f *fakeFS) Exists(ctx context.Context, path string) (bool, error) {
	f.calls++
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.dirs[path]
	return ok, nil
}

func (f *fakeFS) ListSubdirectories(ctx context.Context, path string) ([]string, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.dirs[path], nil
}

type failingSource struct{ err error }

func (s failingSource) KnownPaths(ctx context.Context) ([]string, error) {
	return nil, s.err
}
