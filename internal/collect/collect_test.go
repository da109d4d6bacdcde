package collect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmirabella/snipdex/internal/config"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x\n"), 0o644))
	}
}

func TestCollectRelativeSortedPaths(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"Python/Time/time_count.py",
		"Python/File/RenameVideo.py",
		"Python/notes.txt",
	)

	coll, err := New(root, []config.Section{
		{Label: "Python", Folder: "Python", Patterns: []string{"**/*.py"}},
	}).Collect()
	require.NoError(t, err)

	require.Equal(t, []string{"Python"}, coll.Labels())
	require.Equal(t, []string{
		"Python/File/RenameVideo.py",
		"Python/Time/time_count.py",
	}, coll.Paths("Python"))
	require.Equal(t, 2, coll.Total())
}

func TestCollectDeduplicatesAcrossPatterns(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "Arduino/blink/blink.ino", "Arduino/blink/pins.h")

	coll, err := New(root, []config.Section{
		{Label: "Arduino", Folder: "Arduino", Patterns: []string{"**/*.ino", "**/*.h", "**/blink/*"}},
	}).Collect()
	require.NoError(t, err)

	require.Equal(t, []string{
		"Arduino/blink/blink.ino",
		"Arduino/blink/pins.h",
	}, coll.Paths("Arduino"))
}

func TestCollectMissingFolderYieldsEmptyList(t *testing.T) {
	coll, err := New(t.TempDir(), []config.Section{
		{Label: "MATLAB", Folder: "MATLAB", Patterns: []string{"**/*.m"}},
	}).Collect()
	require.NoError(t, err)

	require.Equal(t, []string{"MATLAB"}, coll.Labels())
	require.Empty(t, coll.Paths("MATLAB"))
	require.Equal(t, 0, coll.Total())
}

func TestCollectPreservesSectionOrder(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "C/mem.c", "Python/a.py")

	coll, err := New(root, []config.Section{
		{Label: "Python", Folder: "Python", Patterns: []string{"**/*.py"}},
		{Label: "C", Folder: "C", Patterns: []string{"**/*.c"}},
	}).Collect()
	require.NoError(t, err)

	require.Equal(t, []string{"Python", "C"}, coll.Labels())
}

func TestCollectSkipsDirectoriesMatchingPattern(t *testing.T) {
	root := t.TempDir()
	// A directory whose name matches the pattern must not be listed.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "C", "legacy.c"), 0o755))
	writeFiles(t, root, "C/legacy.c/impl.c")

	coll, err := New(root, []config.Section{
		{Label: "C", Folder: "C", Patterns: []string{"**/*.c"}},
	}).Collect()
	require.NoError(t, err)

	require.Equal(t, []string{"C/legacy.c/impl.c"}, coll.Paths("C"))
}

func TestCollectRejectsMalformedPattern(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "C/a.c")

	_, err := New(root, []config.Section{
		{Label: "C", Folder: "C", Patterns: []string{"["}},
	}).Collect()
	require.Error(t, err)
	require.Contains(t, err.Error(), "glob")
}
