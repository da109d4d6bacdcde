// Package gitignore keeps a repository's .gitignore up to date: entries are
// normalized to repo-relative forward-slash form and appended only when not
// already present. It edits the file only; it never invokes git.
package gitignore

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Normalize returns the forward-slash form of entry, made relative to
// repoRoot when it points inside it. Entries outside the root (or plain
// patterns) are kept as given, cleaned.
func Normalize(entry, repoRoot string) string {
	p := entry
	if filepath.IsAbs(p) {
		if rootAbs, err := filepath.Abs(repoRoot); err == nil {
			if rel, err := filepath.Rel(rootAbs, p); err == nil && !strings.HasPrefix(rel, "..") {
				p = rel
			}
		}
	}
	return filepath.ToSlash(filepath.Clean(p))
}

// Add appends the normalized entry to repoRoot's .gitignore unless an
// identical line already exists. It returns the normalized entry and
// whether the file was changed. The directory must be a git repository.
func Add(repoRoot, entry string) (string, bool, error) {
	if _, err := os.Stat(filepath.Join(repoRoot, ".git")); err != nil {
		return "", false, fmt.Errorf("%s is not a git repository", repoRoot)
	}

	normalized := Normalize(entry, repoRoot)
	path := filepath.Join(repoRoot, ".gitignore")

	var lines []string
	if data, err := os.ReadFile(path); err == nil {
		text := strings.TrimSuffix(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
		if text != "" {
			lines = strings.Split(text, "\n")
		}
	} else if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("read .gitignore: %w", err)
	}

	if slices.Contains(lines, normalized) {
		return normalized, false, nil
	}

	lines = append(lines, normalized)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		return "", false, fmt.Errorf("write .gitignore: %w", err)
	}
	return normalized, true, nil
}
