// mock_storage.go - In-memory storage implementation for testing
package testutil

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/unity-forge/backend/internal/models"
	"github.com/unity-forge/backend/internal/storage"
)

// MockStorage implements storage.Store in memory. Directories are implied by
// the files below them and can also be created explicitly.
type MockStorage struct {
	files map[string][]byte
	dirs  map[string]bool
	mu    sync.RWMutex

	// FailWrites makes every write return this error when set.
	FailWrites error
}

// NewMockStorage creates an empty mock storage.
func NewMockStorage() *MockStorage {
	return &MockStorage{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func clean(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

func (m *MockStorage) addParents(p string) {
	for dir := path.Dir(p); dir != "." && dir != "/" && !m.dirs[dir]; dir = path.Dir(dir) {
		m.dirs[dir] = true
	}
}

func (m *MockStorage) WriteText(p, content string) error {
	return m.WriteBytes(p, []byte(content))
}

func (m *MockStorage) WriteBytes(p string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites != nil {
		return m.FailWrites
	}
	p = clean(p)
	m.files[p] = append([]byte(nil), data...)
	m.addParents(p)
	return nil
}

func (m *MockStorage) AppendText(p, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites != nil {
		return m.FailWrites
	}
	p = clean(p)
	m.files[p] = append(m.files[p], content...)
	m.addParents(p)
	return nil
}

func (m *MockStorage) ReadText(p string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.files[clean(p)]
	if !ok {
		return "", fmt.Errorf("file not found: %s: %w", p, models.ErrNotFound)
	}
	return string(data), nil
}

func (m *MockStorage) Exists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p = clean(p)
	_, ok := m.files[p]
	return ok || m.dirs[p]
}

func (m *MockStorage) IsDir(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirs[clean(p)]
}

func (m *MockStorage) ListFiles(dir, pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if pattern == "" {
		pattern = "*"
	}
	dir = clean(dir)
	if !m.dirs[dir] {
		return nil, fmt.Errorf("directory not found: %s: %w", dir, models.ErrNotFound)
	}

	var list []string
	for p := range m.files {
		if !strings.HasPrefix(p, dir+"/") {
			continue
		}
		if ok, _ := path.Match(pattern, path.Base(p)); ok {
			list = append(list, p)
		}
	}
	sort.Strings(list)
	return list, nil
}

func (m *MockStorage) Delete(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = clean(p)
	if _, ok := m.files[p]; ok {
		delete(m.files, p)
		return nil
	}
	if !m.dirs[p] {
		return fmt.Errorf("file not found: %s: %w", p, models.ErrNotFound)
	}
	for f := range m.files {
		if strings.HasPrefix(f, p+"/") {
			return fmt.Errorf("deleting file: directory not empty: %s", p)
		}
	}
	for d := range m.dirs {
		if strings.HasPrefix(d, p+"/") {
			return fmt.Errorf("deleting file: directory not empty: %s", p)
		}
	}
	delete(m.dirs, p)
	return nil
}

func (m *MockStorage) MakeDirectory(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites != nil {
		return m.FailWrites
	}
	p = clean(p)
	m.dirs[p] = true
	m.addParents(p)
	return nil
}

// Ensure MockStorage implements storage.Store
var _ storage.Store = (*MockStorage)(nil)

// Test Helper Methods

// AddFile stores content directly, bypassing FailWrites.
func (m *MockStorage) AddFile(p, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = clean(p)
	m.files[p] = []byte(content)
	m.addParents(p)
}

// GetFileCount returns the number of stored files
func (m *MockStorage) GetFileCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.files)
}
