package utils

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTemplateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.txt")

	err := WriteTemplateFile(path, "hello {{ .Name }}", map[string]string{"Name": "demo"})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello demo", string(content))
}

func TestRenderTemplate_MissingKey(t *testing.T) {
	_, err := RenderTemplate("t", "{{ .Missing }}", map[string]string{})
	assert.Error(t, err)
}

func TestCopyFile(t *testing.T) {
	fsys := fstest.MapFS{
		"src/a.txt": {Data: []byte("alpha")},
	}
	dst := filepath.Join(t.TempDir(), "deep", "a.txt")

	require.NoError(t, CopyFile(fsys, "src/a.txt", dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(content))
}

func TestPathHelpers(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	exists, err := PathExists(file)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = PathExists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.True(t, DirExists(dir))
	assert.False(t, DirExists(file))

	empty, err := IsEmptyDir(dir)
	require.NoError(t, err)
	assert.False(t, empty)

	sub := filepath.Join(dir, "empty")
	require.NoError(t, EnsureDir(sub))
	empty, err = IsEmptyDir(sub)
	require.NoError(t, err)
	assert.True(t, empty)
}
