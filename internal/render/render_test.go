package render

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budymann/OODesign/internal/files/filesystem"
	"github.com/budymann/OODesign/internal/files/filter"
	"github.com/budymann/OODesign/internal/files/loader"
	"github.com/budymann/OODesign/internal/files/tree"
)

func TestDetectColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CI", "")

	assert.True(t, DetectColor("always", nil))
	assert.False(t, DetectColor("never", os.Stdout))

	// A nil file is never a terminal.
	assert.False(t, DetectColor("auto", nil))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, DetectColor("auto", f), "regular files are not terminals")
}

func TestDetectColor_EnvDisables(t *testing.T) {
	for _, key := range []string{"NO_COLOR", "CI"} {
		t.Run(key, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			t.Setenv("CI", "")
			t.Setenv(key, "1")
			assert.False(t, DetectColor("auto", os.Stdout))
			assert.True(t, DetectColor("always", os.Stdout), "explicit mode wins over env")
		})
	}
}

func TestTree_Demo(t *testing.T) {
	var buf bytes.Buffer
	sum, err := Tree(&buf, loader.Demo(), "/", Plain())
	require.NoError(t, err)

	want := `/
├── examples
│   ├── learn
│   │   ├── book1.pdf (10B)
│   │   └── book2.pdf (20B)
│   ├── f1.xml (0B)
│   └── f2.xml (0B)
├── josh
│   └── hello.java (0B)
└── test.png (0B)

3 directories, 6 files
`
	assert.Equal(t, want, buf.String())
	assert.Equal(t, Summary{Directories: 3, Files: 6}, sum)
}

func TestTree_EmptyDirectory(t *testing.T) {
	var buf bytes.Buffer
	sum, err := Tree(&buf, tree.NewDirectory("empty"), "/empty", Plain())
	require.NoError(t, err)
	assert.Equal(t, "/empty\n\n0 directories, 0 files\n", buf.String())
	assert.Equal(t, Summary{}, sum)
}

func TestSummary_Singular(t *testing.T) {
	assert.Equal(t, "1 directory, 1 file", Summary{Directories: 1, Files: 1}.String())
	assert.Equal(t, "2 directories, 0 files", Summary{Directories: 2}.String())
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, errors.New("disk full")
	}
	w.after--
	return len(p), nil
}

func TestTree_WriteError(t *testing.T) {
	_, err := Tree(&failingWriter{after: 2}, loader.Demo(), "/", Plain())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestMatches(t *testing.T) {
	fsys := filesystem.New(loader.Demo())
	matches, err := fsys.FindMatches("/examples", filter.NewCriteria(filter.And, filter.ExtensionFilter{Extension: "pdf"}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Matches(&buf, matches, Plain()))
	assert.Equal(t, "/examples/learn/book1.pdf\n/examples/learn/book2.pdf\n", buf.String())
}

func TestMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Matches(&buf, nil, Plain()))
	assert.Empty(t, buf.String())
}

func TestNewStyles_Color(t *testing.T) {
	var buf bytes.Buffer
	st := NewStyles(&buf, true)
	out := st.Directory.Render("learn")
	assert.True(t, strings.Contains(out, "\x1b["), "expected ANSI escapes, got %q", out)
	assert.Contains(t, out, "learn")

	plain := NewStyles(&buf, false).Directory.Render("learn")
	assert.Equal(t, "learn", plain)
}
