package update

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmirabella/snipdex/internal/config"
	"github.com/mmirabella/snipdex/internal/render"
)

const englishReadme = `# Code Snippets

A collection of reusable snippets.

## How to navigate

Browse the folders by language.

## Indexing

Run snipdex to refresh the index.
`

const italianReadme = `# Code Snippets

Una raccolta di snippet riutilizzabili.

## Come navigare

Sfoglia le cartelle per linguaggio.

## Indicizzazione

Esegui snipdex per aggiornare l'elenco.
`

const pythonReadme = `# Python Snippets

Assorted Python helpers.

## How to contribute

Open a pull request.
`

func testConfig(root string) *config.Config {
	cfg := config.Default()
	cfg.Root = root
	cfg.Sections = []config.Section{
		{
			Label:    "Python",
			Folder:   "Python",
			Patterns: []string{"**/*.py"},
			Document: &config.SectionDocument{
				File:        "README.md",
				StartHeader: "# Python Snippets",
				EndHeader:   "## How to contribute",
				IndexHeader: "## Snippet index",
			},
		},
		{Label: "C", Folder: "C", Patterns: []string{"**/*.c", "**/*.h"}},
	}
	return cfg
}

func seedRepo(t *testing.T, rootReadme string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte(rootReadme), 0o644))
	for _, p := range []string{
		"Python/File/RenameVideo.py",
		"Python/Time/time_count.py",
		"C/memory_utils.c",
	} {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x\n"), 0o644))
	}
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRunUpdatesRootDocument(t *testing.T) {
	root := seedRepo(t, englishReadme)
	cfg := testConfig(root)

	sum, err := New(cfg).Run()
	require.NoError(t, err)
	require.Equal(t, 3, sum.Snippets)
	require.Equal(t, []string{filepath.Join(root, "README.md")}, sum.Updated)

	got := readFile(t, filepath.Join(root, "README.md"))
	require.Contains(t, got, "<!-- snippet-index:start -->")
	require.Contains(t, got, "## Snippet index")
	require.Contains(t, got, "### Python")
	require.Contains(t, got, "- `File`")
	require.Contains(t, got, "  - `RenameVideo.py`")
	require.Contains(t, got, "### C")
	require.Contains(t, got, "- `memory_utils.c`")
	// Human content inside the region survives.
	require.Contains(t, got, "Browse the folders by language.")
}

func TestRunIsIdempotent(t *testing.T) {
	root := seedRepo(t, englishReadme)
	cfg := testConfig(root)

	_, err := New(cfg).Run()
	require.NoError(t, err)
	first := readFile(t, filepath.Join(root, "README.md"))

	_, err = New(cfg).Run()
	require.NoError(t, err)
	second := readFile(t, filepath.Join(root, "README.md"))

	require.Equal(t, first, second)
}

func TestRunPreservesContentOutsideRegion(t *testing.T) {
	root := seedRepo(t, englishReadme)
	cfg := testConfig(root)

	_, err := New(cfg).Run()
	require.NoError(t, err)

	got := readFile(t, filepath.Join(root, "README.md"))
	lines := strings.Split(got, "\n")

	startIdx := -1
	endIdx := -1
	for i, line := range lines {
		if line == "## How to navigate" {
			startIdx = i
		}
		if line == "## Indexing" {
			endIdx = i
		}
	}
	require.NotEqual(t, -1, startIdx)
	require.NotEqual(t, -1, endIdx)

	origLines := strings.Split(englishReadme, "\n")
	origStart := -1
	for i, line := range origLines {
		if line == "## How to navigate" {
			origStart = i
		}
	}
	require.Equal(t, origLines[:origStart+1], lines[:startIdx+1])
	require.Equal(t, []string{"## Indexing", "", "Run snipdex to refresh the index.", ""},
		lines[endIdx:])
}

func TestRunMultiLocaleFallback(t *testing.T) {
	root := seedRepo(t, italianReadme)
	cfg := testConfig(root)

	_, err := New(cfg).Run()
	require.NoError(t, err)

	got := readFile(t, filepath.Join(root, "README.md"))
	require.Contains(t, got, "## Elenco snippet")
	require.NotContains(t, got, "## Snippet index")
	require.Contains(t, got, "Sfoglia le cartelle per linguaggio.")
}

func TestRunNoNavigationSectionFatal(t *testing.T) {
	root := seedRepo(t, "# Something else entirely\n\nNo known headers here.\n")
	cfg := testConfig(root)
	before := readFile(t, filepath.Join(root, "README.md"))

	_, err := New(cfg).Run()
	require.ErrorIs(t, err, ErrNoNavigationSection)

	// No partial write.
	require.Equal(t, before, readFile(t, filepath.Join(root, "README.md")))
}

func TestRunMissingRootDocumentFatal(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig(root)

	_, err := New(cfg).Run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "read root document")
}

func TestRunUpdatesSectionDocument(t *testing.T) {
	root := seedRepo(t, englishReadme)
	pyReadme := filepath.Join(root, "Python", "README.md")
	require.NoError(t, os.WriteFile(pyReadme, []byte(pythonReadme), 0o644))
	cfg := testConfig(root)

	sum, err := New(cfg).Run()
	require.NoError(t, err)
	require.Contains(t, sum.Updated, pyReadme)

	got := readFile(t, pyReadme)
	require.Contains(t, got, "- `File/RenameVideo.py`")
	require.Contains(t, got, "- `Time/time_count.py`")
	require.Contains(t, got, "Assorted Python helpers.")
	require.Contains(t, got, "## How to contribute")
	require.NotContains(t, got, "- `Python/File/RenameVideo.py`")
}

func TestRunSectionDocumentWithoutHeaderLeftUntouched(t *testing.T) {
	root := seedRepo(t, englishReadme)
	pyReadme := filepath.Join(root, "Python", "README.md")
	original := "# Totally custom notes\n\nDo not touch.\n"
	require.NoError(t, os.WriteFile(pyReadme, []byte(original), 0o644))
	cfg := testConfig(root)

	_, err := New(cfg).Run()
	require.NoError(t, err)
	require.Equal(t, original, readFile(t, pyReadme))
}

func TestRunEmptyRepositoryRendersPlaceholder(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte(englishReadme), 0o644))
	cfg := testConfig(root)

	for i := 0; i < 2; i++ {
		_, err := New(cfg).Run()
		require.NoError(t, err)
	}

	got := readFile(t, filepath.Join(root, "README.md"))
	require.Equal(t, 1, strings.Count(got, render.Placeholder))
	require.NotContains(t, got, "\n\n\n\n")
}

func TestSplitLinesHandlesCRLFAndEmpty(t *testing.T) {
	require.Nil(t, splitLines(""))
	require.Equal(t, []string{"a", "b"}, splitLines("a\r\nb\r\n"))
	require.Equal(t, []string{"a", "", "b"}, splitLines("a\n\nb"))
}
