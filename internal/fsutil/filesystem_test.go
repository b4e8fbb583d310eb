package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, OSFileSystem{}.WriteFile(path, []byte("{}"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	err = OSFileSystem{}.WriteFile(filepath.Join(t.TempDir(), "missing", "out.json"), nil, 0644)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMemoryFileSystem(t *testing.T) {
	fs := NewMemoryFileSystem()
	fs.Fail["b.json"] = errors.New("disk full")

	buf := []byte("a")
	require.NoError(t, fs.WriteFile("a.json", buf, 0644))
	buf[0] = 'z'

	err := fs.WriteFile("b.json", []byte("b"), 0644)
	var pe *os.PathError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "b.json", pe.Path)

	assert.Equal(t, []string{"a.json"}, fs.Names())
	data, err := fs.ReadFile("a.json")
	require.NoError(t, err)
	assert.Equal(t, "a", string(data), "stored a copy")

	_, err = fs.ReadFile("b.json")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
