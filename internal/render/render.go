// Package render turns collected snippet paths into deterministic markdown
// index lines, wrapped in the sentinel marker pair so a later run can find
// and replace exactly what it generated.
package render

import (
	"fmt"
	"strings"

	"github.com/mmirabella/snipdex/internal/collect"
	"github.com/mmirabella/snipdex/internal/region"
	"github.com/mmirabella/snipdex/internal/tree"
)

// Placeholder is emitted when a rendered index has no entries at all.
const Placeholder = "_No snippets found yet._"

// Renderer renders index blocks bounded by one marker pair.
type Renderer struct {
	markers region.Markers
}

// New returns a renderer emitting the given marker pair.
func New(markers region.Markers) *Renderer {
	return &Renderer{markers: markers}
}

// TreeLines renders a tree as indented bullet lines, two spaces per level.
// Child directories come first, then leaf files, both in lexicographic
// order.
func (r *Renderer) TreeLines(node *tree.Node, level int) []string {
	indent := strings.Repeat("  ", level)
	var lines []string
	for _, dir := range node.SortedDirs() {
		lines = append(lines, fmt.Sprintf("%s- `%s`", indent, dir))
		lines = append(lines, r.TreeLines(node.Children[dir], level+1)...)
	}
	for _, file := range node.SortedFiles() {
		lines = append(lines, fmt.Sprintf("%s- `%s`", indent, file))
	}
	return lines
}

// GlobalIndex renders the whole-repository index: one level-3 heading per
// non-empty label in collection order, each followed by that label's tree
// (paths expressed relative to the label's folder, taken from folderByLabel).
// With no content at all a single placeholder line is emitted instead.
func (r *Renderer) GlobalIndex(coll *collect.Collection, folderByLabel map[string]string, indexHeader string) []string {
	lines := []string{r.markers.Start, indexHeader}
	var content []string
	for _, label := range coll.Labels() {
		paths := coll.Paths(label)
		if len(paths) == 0 {
			continue
		}
		if len(content) > 0 {
			content = append(content, "")
		}
		content = append(content, "### "+label)
		node := tree.Build(paths, folderByLabel[label])
		content = append(content, r.TreeLines(node, 0)...)
	}
	if len(content) > 0 {
		lines = append(lines, "")
		lines = append(lines, content...)
	} else {
		lines = append(lines, "", Placeholder)
	}
	lines = append(lines, r.markers.End, "")
	return lines
}

// LocalIndex renders a flat per-section index: one bullet per path,
// expressed relative to folder instead of the repository root. Paths not
// under folder are kept as given.
func (r *Renderer) LocalIndex(paths []string, indexHeader, folder string) []string {
	lines := []string{r.markers.Start, indexHeader, ""}
	if len(paths) > 0 {
		for _, p := range paths {
			lines = append(lines, fmt.Sprintf("- `%s`", relativeTo(p, folder)))
		}
	} else {
		lines = append(lines, Placeholder)
	}
	lines = append(lines, r.markers.End, "")
	return lines
}

func relativeTo(p, folder string) string {
	if folder == "" {
		return p
	}
	if rest, ok := strings.CutPrefix(p, folder+"/"); ok {
		return rest
	}
	return p
}
