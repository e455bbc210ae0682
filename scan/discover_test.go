package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("class X;\n"), 0o644))
	}
}

func TestDiscover_Recursive(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.h", "b.CPP", "c.txt", "sub/d.hpp", "sub/e.py")

	files, errs := Discover([]string{root}, true, nil)
	assert.Empty(t, errs)
	assert.Equal(t, []string{
		filepath.Join(root, "a.h"),
		filepath.Join(root, "b.CPP"),
		filepath.Join(root, "sub", "d.hpp"),
	}, files)
}

func TestDiscover_DirectoryWithoutRecursive(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.h")

	files, errs := Discover([]string{root}, false, nil)
	assert.Empty(t, files)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "is a directory")
}

func TestDiscover_FiltersExplicitFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.h", "notes.md", "x.c++")
	a := filepath.Join(root, "a.h")

	files, errs := Discover([]string{
		a,
		filepath.Join(root, "notes.md"),
		filepath.Join(root, "x.c++"),
		a,
		filepath.Join(root, "absent.h"),
	}, false, nil)

	assert.Equal(t, []string{a, filepath.Join(root, "x.c++")}, files)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], os.ErrNotExist)
}

func TestDiscover_CustomExtensions(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.h", "b.inl", "c.ipp")

	files, errs := Discover([]string{root}, true, []string{".inl", "IPP"})
	assert.Empty(t, errs)
	assert.Equal(t, []string{filepath.Join(root, "b.inl"), filepath.Join(root, "c.ipp")}, files)
}

func TestExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"foo.h", "h"},
		{"dir.d/Foo.HPP", "hpp"},
		{"a.b.c++", "c++"},
		{"Makefile", ""},
		{"dir.d/Makefile", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extension(tt.path), "path: %s", tt.path)
	}
}
