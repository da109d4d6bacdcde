// Package collect enumerates snippet files per configured section and
// produces the order-preserving label-to-paths mapping the renderer
// consumes. All paths are repository-root relative in forward-slash form.
package collect

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/unicode/norm"

	"github.com/mmirabella/snipdex/internal/config"
	"github.com/mmirabella/snipdex/internal/util/sets"
)

// Collection is an order-preserving mapping from section label to the
// deduplicated list of collected relative paths. Every configured label is
// present, possibly with an empty list.
type Collection struct {
	labels []string
	paths  map[string][]string
}

// Labels returns the section labels in configuration order.
func (c *Collection) Labels() []string { return c.labels }

// Paths returns the collected paths for label, nil for unknown labels.
func (c *Collection) Paths(label string) []string { return c.paths[label] }

// Total returns the number of collected paths across all sections.
func (c *Collection) Total() int {
	n := 0
	for _, ps := range c.paths {
		n += len(ps)
	}
	return n
}

func (c *Collection) add(label string, paths []string) {
	c.labels = append(c.labels, label)
	c.paths[label] = paths
}

// Collector scans a repository root for the files of each section.
type Collector struct {
	root     string
	sections []config.Section
}

// New returns a collector over root for the given ordered section table.
func New(root string, sections []config.Section) *Collector {
	return &Collector{root: root, sections: sections}
}

// Collect applies every section's glob patterns below its folder. Matches
// are files only, expressed relative to the repository root, NFC-normalized
// and deduplicated per section while keeping the per-pattern sorted order.
// A missing section folder contributes an empty list, not an error.
func (c *Collector) Collect() (*Collection, error) {
	coll := &Collection{paths: make(map[string][]string, len(c.sections))}
	for _, section := range c.sections {
		paths, err := c.collectSection(section)
		if err != nil {
			return nil, err
		}
		coll.add(section.Label, paths)
	}
	return coll, nil
}

func (c *Collector) collectSection(section config.Section) ([]string, error) {
	base := filepath.Join(c.root, section.Folder)
	info, err := os.Stat(base)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	fsys := os.DirFS(base)
	folder := filepath.ToSlash(section.Folder)
	seen := sets.New[string]()
	var collected []string
	for _, pattern := range section.Patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("section %q: glob %q: %w", section.Label, pattern, err)
		}
		slices.Sort(matches)
		for _, match := range matches {
			rel := norm.NFC.String(path.Join(folder, match))
			if seen.Has(rel) {
				continue
			}
			seen.Add(rel)
			collected = append(collected, rel)
		}
	}
	return collected, nil
}
