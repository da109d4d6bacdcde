package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildGroupsByDirectory(t *testing.T) {
	node := Build([]string{
		"Python/File/RenameVideo.py",
		"Python/Time/time_count.py",
	}, "Python")

	require.Equal(t, []string{"File", "Time"}, node.SortedDirs())
	require.Empty(t, node.SortedFiles())

	require.Equal(t, []string{"RenameVideo.py"}, node.Children["File"].SortedFiles())
	require.Equal(t, []string{"time_count.py"}, node.Children["Time"].SortedFiles())
}

func TestBuildKeepsPathsOutsideBaseFolder(t *testing.T) {
	node := Build([]string{"Other/x.c"}, "C")

	require.Equal(t, []string{"Other"}, node.SortedDirs())
	require.Equal(t, []string{"x.c"}, node.Children["Other"].SortedFiles())
}

func TestBuildDeepNesting(t *testing.T) {
	node := Build([]string{"a/b/c/d/e.py"}, "")

	cur := node
	for _, seg := range []string{"a", "b", "c", "d"} {
		require.Equal(t, []string{seg}, cur.SortedDirs())
		cur = cur.Children[seg]
	}
	require.Equal(t, []string{"e.py"}, cur.SortedFiles())
}

func TestInsertDuplicateLeafOnce(t *testing.T) {
	node := NewNode()
	node.Insert([]string{"a.py"})
	node.Insert([]string{"a.py"})

	require.Equal(t, []string{"a.py"}, node.SortedFiles())
}
