package medias

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

var (
	ErrObjectNotExist = errors.New("object does not exist")
)

// Store provides an abstraction in front of the media directory.
//
// Media files are named after a hash of their content, so that saving
// the same file twice is harmless and files are never renamed.
type Store interface {
	GetObject(key string) ([]byte, error)
	PutObject(key string, content []byte) error
	DeleteObject(key string) error
}

/* FS */

// FSStore saves media files in a local directory (ex: Anki collection.media/).
type FSStore struct {
	path string
}

// NewFSStore creates a store in the given directory. The directory is created if missing.
func NewFSStore(dirpath string) (*FSStore, error) {
	if err := os.MkdirAll(dirpath, 0755); err != nil {
		return nil, err
	}
	stat, err := os.Stat(dirpath)
	if err != nil {
		return nil, err
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dirpath)
	}

	return &FSStore{
		path: dirpath,
	}, nil
}

func (s *FSStore) Dir() string {
	return s.path
}

func (s *FSStore) GetObject(key string) ([]byte, error) {
	path := filepath.Join(s.path, key)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrObjectNotExist
	}
	return data, err
}

func (s *FSStore) PutObject(key string, data []byte) error {
	dirPath := filepath.Join(s.path, filepath.Dir(key))
	err := os.MkdirAll(dirPath, 0755)
	if err != nil {
		return err
	}
	filePath := filepath.Join(s.path, key)
	return os.WriteFile(filePath, data, 0644)
}

func (s *FSStore) DeleteObject(key string) error {
	path := filepath.Join(s.path, key)
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrObjectNotExist
	}
	return os.Remove(path)
}

/* Memory */

// MemoryStore keeps media files in memory.
// Useful for dry runs and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[string][]byte),
	}
}

func (s *MemoryStore) GetObject(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, ErrObjectNotExist
	}
	return data, nil
}

func (s *MemoryStore) PutObject(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *MemoryStore) DeleteObject(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; !ok {
		return ErrObjectNotExist
	}
	delete(s.objects, key)
	return nil
}

// Keys returns the sorted keys of all saved objects.
func (s *MemoryStore) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for key := range s.objects {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
