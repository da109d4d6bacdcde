// Package videos renames video files in a directory to a timestamp derived
// from their modification time. Detection is content-based (magic bytes),
// not extension-based, so mislabeled files are ignored rather than mangled.
package videos

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"

	"github.com/mmirabella/snipdex/internal/util/sets"
)

// TimestampLayout is the filename layout for renamed videos.
const TimestampLayout = "2006-01-02_15-04-05"

// headerSize is the number of leading bytes filetype needs for matching.
const headerSize = 261

// Rename is one planned rename inside the scanned directory, basenames only.
type Rename struct {
	From string
	To   string
}

// Plan scans dir (non-recursively) and computes a rename for every video
// file whose name does not already carry its modification timestamp. Target
// names are made unique with numeric suffixes against both the existing
// directory contents and the plan itself.
func Plan(dir string) ([]Rename, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	taken := sets.New[string]()
	for _, entry := range entries {
		taken.Add(entry.Name())
	}

	var plan []Rename
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		head, err := readHead(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if !filetype.IsVideo(head) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}

		base := info.ModTime().Format(TimestampLayout)
		ext := strings.ToLower(filepath.Ext(name))
		candidate := base + ext
		if candidate == name {
			continue
		}
		for i := 1; taken.Has(candidate); i++ {
			candidate = fmt.Sprintf("%s_%d%s", base, i, ext)
		}
		taken.Add(candidate)
		plan = append(plan, Rename{From: name, To: candidate})
	}
	return plan, nil
}

// Apply performs the planned renames inside dir.
func Apply(dir string, plan []Rename) error {
	for _, r := range plan {
		if err := os.Rename(filepath.Join(dir, r.From), filepath.Join(dir, r.To)); err != nil {
			return fmt.Errorf("rename %s: %w", r.From, err)
		}
	}
	return nil
}

func readHead(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, headerSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return buf[:n], nil
}
