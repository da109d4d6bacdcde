package gitignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func gitRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	return root
}

func TestAddCreatesFileAndAppends(t *testing.T) {
	root := gitRepo(t)

	entry, changed, err := Add(root, "build/")
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "build", entry)

	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	require.NoError(t, err)
	require.Equal(t, "build\n", string(data))
}

func TestAddIsIdempotent(t *testing.T) {
	root := gitRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.log\nbuild\n"), 0o644))

	_, changed, err := Add(root, "build")
	require.NoError(t, err)
	require.False(t, changed)

	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	require.NoError(t, err)
	require.Equal(t, "*.log\nbuild\n", string(data))
}

func TestAddRejectsNonRepository(t *testing.T) {
	_, _, err := Add(t.TempDir(), "build")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a git repository")
}

func TestNormalizeAbsolutePathInsideRoot(t *testing.T) {
	root := t.TempDir()
	require.Equal(t, "sub/dir", Normalize(filepath.Join(root, "sub", "dir"), root))
}

func TestNormalizeKeepsPatternsAsIs(t *testing.T) {
	require.Equal(t, "*.log", Normalize("*.log", "/anywhere"))
}
