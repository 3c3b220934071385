package loader

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budymann/OODesign/internal/files/tree"
)

func names(d *tree.Directory) []string {
	var out []string
	for _, c := range d.Children() {
		out = append(out, entryName(c))
	}
	return out
}

func TestSnapshotFS(t *testing.T) {
	mapFS := fstest.MapFS{
		"examples/learn/book1.pdf": {Data: []byte("0123456789")},
		"examples/learn/book2.pdf": {Data: []byte("01234567890123456789")},
		"examples/f1.xml":          {Data: []byte("<a/>")},
		"josh/hello.java":          {Data: []byte("class Hello {}")},
		"test.png":                 {Data: nil},
		".hidden":                  {Data: []byte("x")},
		"link":                     {Data: []byte("examples"), Mode: fs.ModeSymlink},
	}

	root, err := SnapshotFS(mapFS, SnapshotOptions{})
	require.NoError(t, err)

	assert.Equal(t, "", root.Name())
	assert.Equal(t, []string{".hidden", "examples", "josh", "test.png"}, names(root))

	examples, ok := tree.AsDirectory(root.Child(1))
	require.True(t, ok)
	assert.Equal(t, []string{"f1.xml", "learn"}, names(examples))

	learn, ok := tree.AsDirectory(examples.Child(1))
	require.True(t, ok)
	book2, ok := tree.AsFile(learn.Child(1))
	require.True(t, ok)
	assert.Equal(t, "book2", book2.Name())
	assert.Equal(t, "pdf", book2.Extension())
	assert.Equal(t, uint64(20), book2.Size())
	assert.Nil(t, book2.Content(), "content is not read by default")

	hidden, ok := tree.AsFile(root.Child(0))
	require.True(t, ok)
	assert.Equal(t, ".hidden", hidden.Name())
	assert.Equal(t, "", hidden.Extension())
}

func TestSnapshotFS_Options(t *testing.T) {
	mapFS := fstest.MapFS{
		"a.txt":   {Data: []byte("hello")},
		".secret": {Data: []byte("x")},
	}

	root, err := SnapshotFS(mapFS, SnapshotOptions{ReadContent: true, SkipHidden: true})
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt"}, names(root))

	a, ok := tree.AsFile(root.Child(0))
	require.True(t, ok)
	assert.Equal(t, "hello", string(a.Content()))
}

func TestSnapshot_OSDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "deeper"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hello"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "deeper", "n.txt"), []byte("deep"), 0644))

	if runtime.GOOS != "windows" {
		require.NoError(t, os.Symlink(filepath.Join(dir, "readme.txt"), filepath.Join(dir, "alias.txt")))
	}

	root, err := Snapshot(dir, SnapshotOptions{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), root.Name())
	assert.Equal(t, []string{"readme.txt", "sub"}, names(root))
	assert.Equal(t, 2, tree.CountFiles(root))

	f, ok := tree.AsFile(root.Child(0))
	require.True(t, ok)
	assert.Equal(t, uint64(len("hello")), f.Size())
}

func TestSnapshot_Errors(t *testing.T) {
	_, err := Snapshot(filepath.Join(t.TempDir(), "missing"), SnapshotOptions{})
	require.Error(t, err)

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	_, err = Snapshot(file, SnapshotOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in, name, ext string
	}{
		{"book1.pdf", "book1", "pdf"},
		{"archive.tar.gz", "archive.tar", "gz"},
		{"Makefile", "Makefile", ""},
		{".env", ".env", ""},
		{"trailing.", "trailing.", ""},
		{".config.yaml", ".config", "yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name, ext := SplitName(tt.in)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.ext, ext)
		})
	}
}
