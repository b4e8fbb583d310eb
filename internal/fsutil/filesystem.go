// Package fsutil abstracts the exporter's file writes so tests can capture
// output or inject failures.
package fsutil

import (
	"fmt"
	"os"
	"sort"
)

// Writer writes whole files.
type Writer interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// OSFileSystem writes to disk.
type OSFileSystem struct{}

func (OSFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// MemoryFileSystem keeps written files in memory. Names listed in Fail
// return that error instead of being written.
type MemoryFileSystem struct {
	Files map[string][]byte
	Fail  map[string]error
}

func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{Files: map[string][]byte{}, Fail: map[string]error{}}
}

func (m *MemoryFileSystem) WriteFile(name string, data []byte, _ os.FileMode) error {
	if err, ok := m.Fail[name]; ok {
		return &os.PathError{Op: "write", Path: name, Err: err}
	}
	if m.Files == nil {
		m.Files = map[string][]byte{}
	}
	m.Files[name] = append([]byte(nil), data...)
	return nil
}

// Names returns the written file names, sorted.
func (m *MemoryFileSystem) Names() []string {
	names := make([]string, 0, len(m.Files))
	for n := range m.Files {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ReadFile returns a written file's contents.
func (m *MemoryFileSystem) ReadFile(name string) ([]byte, error) {
	data, ok := m.Files[name]
	if !ok {
		return nil, fmt.Errorf("fsutil: %s: %w", name, os.ErrNotExist)
	}
	return data, nil
}
