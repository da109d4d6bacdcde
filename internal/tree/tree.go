// Package tree builds a prefix tree of directories and leaf filenames from
// forward-slash relative paths. A tree is built fresh per rendering call and
// owned exclusively by it.
package tree

import (
	"strings"

	"github.com/mmirabella/snipdex/internal/util/sets"
)

// Node is one vertex of the prefix tree: child directories keyed by path
// segment, plus the leaf filenames living at this level. Storage is
// unordered; rendering sorts.
type Node struct {
	Children map[string]*Node
	Files    sets.Set[string]
}

// NewNode returns an empty node.
func NewNode() *Node {
	return &Node{
		Children: make(map[string]*Node),
		Files:    sets.New[string](),
	}
}

// Insert adds a path, already split into segments, below n. The final
// segment becomes a leaf filename, every other segment a directory node.
func (n *Node) Insert(parts []string) {
	if len(parts) == 0 {
		return
	}
	if len(parts) == 1 {
		n.Files.Add(parts[0])
		return
	}
	child, ok := n.Children[parts[0]]
	if !ok {
		child = NewNode()
		n.Children[parts[0]] = child
	}
	child.Insert(parts[1:])
}

// SortedDirs returns the child directory names in lexicographic order.
func (n *Node) SortedDirs() []string {
	keys := sets.New[string]()
	for name := range n.Children {
		keys.Add(name)
	}
	return sets.Sorted(keys)
}

// SortedFiles returns the leaf filenames in lexicographic order.
func (n *Node) SortedFiles() []string {
	return sets.Sorted(n.Files)
}

// Build inserts every path into a fresh tree, first stripping baseFolder
// from paths that live under it. Paths are expected in forward-slash form.
func Build(paths []string, baseFolder string) *Node {
	root := NewNode()
	base := splitPath(baseFolder)
	for _, p := range paths {
		parts := splitPath(p)
		if len(base) > 0 && hasPrefix(parts, base) {
			parts = parts[len(base):]
		}
		root.Insert(parts)
	}
	return root
}

func splitPath(p string) []string {
	var parts []string
	for _, seg := range strings.Split(p, "/") {
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	return parts
}

func hasPrefix(parts, prefix []string) bool {
	if len(parts) < len(prefix) {
		return false
	}
	for i, seg := range prefix {
		if parts[i] != seg {
			return false
		}
	}
	return true
}
