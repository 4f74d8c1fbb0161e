package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/unity-forge/backend/internal/models"
)

// Store defines the file operations the authoring service needs.
// Paths are used exactly as supplied.
type Store interface {
	WriteText(path, content string) error
	AppendText(path, content string) error
	WriteBytes(path string, data []byte) error
	ReadText(path string) (string, error)
	Exists(path string) bool
	IsDir(path string) bool
	// ListFiles walks dir recursively and returns the files whose base name
	// matches pattern, sorted, with forward slashes.
	ListFiles(dir, pattern string) ([]string, error)
	Delete(path string) error
	MakeDirectory(path string) error
}

// LocalStore implements Store using the local filesystem.
type LocalStore struct {
	dirMode  os.FileMode
	fileMode os.FileMode
}

// NewLocalStore creates a new LocalStore.
func NewLocalStore() *LocalStore {
	return &LocalStore{
		dirMode:  0755,
		fileMode: 0644,
	}
}

func (s *LocalStore) ensureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, s.dirMode); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// WriteText replaces the file content, creating parent directories.
func (s *LocalStore) WriteText(path, content string) error {
	return s.WriteBytes(path, []byte(content))
}

// WriteBytes replaces the file content, creating parent directories.
func (s *LocalStore) WriteBytes(path string, data []byte) error {
	if err := s.ensureParent(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, s.fileMode); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// AppendText appends to the file, creating it when absent.
func (s *LocalStore) AppendText(path, content string) error {
	if err := s.ensureParent(path); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, s.fileMode)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("appending to file: %w", err)
	}
	return nil
}

// ReadText returns the file content. A missing file wraps models.ErrNotFound.
func (s *LocalStore) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("file not found: %s: %w", path, models.ErrNotFound)
		}
		return "", fmt.Errorf("reading file: %w", err)
	}
	return string(data), nil
}

func (s *LocalStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *LocalStore) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ListFiles returns matching files below dir. A missing dir wraps
// models.ErrNotFound.
func (s *LocalStore) ListFiles(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*"
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("bad pattern %q: %v: %w", pattern, err, models.ErrInvalidInput)
	}
	if !s.IsDir(dir) {
		return nil, fmt.Errorf("directory not found: %s: %w", dir, models.ErrNotFound)
	}

	var list []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ok, _ := filepath.Match(pattern, d.Name()); ok {
			list = append(list, filepath.ToSlash(path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	sort.Strings(list)
	return list, nil
}

// Delete removes a file or an empty directory. A missing path wraps
// models.ErrNotFound.
func (s *LocalStore) Delete(path string) error {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file not found: %s: %w", path, models.ErrNotFound)
		}
		return fmt.Errorf("deleting file: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}

// MakeDirectory creates path and any missing parents.
func (s *LocalStore) MakeDirectory(path string) error {
	if err := os.MkdirAll(path, s.dirMode); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return nil
}
