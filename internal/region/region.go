// Package region implements line-oriented replacement of a bounded region
// inside a text document: the slice between two header lines, holding an
// optional machine-owned block delimited by sentinel marker lines.
//
// All functions are pure transformations over line slices so the region
// logic stays testable independently of file I/O.
package region

import "strings"

// Markers is the sentinel pair bounding a machine-owned block nested inside
// a human-maintained header-delimited region.
type Markers struct {
	Start string
	End   string
}

// FindHeader returns the index of the first line whose trimmed text equals
// the trimmed header text exactly. Matching is exact-string, not fuzzy:
// surrounding whitespace on the document line is ignored, internal
// whitespace is not.
func FindHeader(lines []string, header string) (int, bool) {
	return findHeaderFrom(lines, header, 0)
}

func findHeaderFrom(lines []string, header string, start int) (int, bool) {
	target := strings.TrimSpace(header)
	for i := start; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == target {
			return i, true
		}
	}
	return 0, false
}

// StripTrailingBlank drops blank lines from the end of the slice.
func StripTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}

// EnsureLeadingBlank guarantees the slice starts with a blank line.
// Empty input becomes a single blank line.
func EnsureLeadingBlank(lines []string) []string {
	if len(lines) == 0 {
		return []string{""}
	}
	if strings.TrimSpace(lines[0]) != "" {
		return append([]string{""}, lines...)
	}
	return lines
}

// RemoveMarkedBlock strips any previously embedded marker-delimited block.
// On the start marker it also drops blank lines accumulated immediately
// before it, so repeated runs do not pile up separators. Both marker lines
// themselves are discarded. Content without recognizable markers passes
// through untouched.
func RemoveMarkedBlock(lines []string, m Markers) []string {
	out := make([]string, 0, len(lines))
	skip := false
	for _, line := range lines {
		switch strings.TrimSpace(line) {
		case m.Start:
			skip = true
			for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
				out = out[:len(out)-1]
			}
			continue
		case m.End:
			skip = false
			continue
		}
		if !skip {
			out = append(out, line)
		}
	}
	return out
}

// Replace rewrites the region strictly between startHeader and endHeader
// (or end-of-document when endHeader is absent): any prior marker-delimited
// block is removed, surviving human-authored content is normalized to begin
// with exactly one blank line, and indexLines are appended after a single
// blank separator. Lines outside the two headers are returned byte for byte.
//
// The second return value is false when startHeader does not occur in the
// document, so callers can try an alternative header configuration.
//
// Replace is idempotent: applying it twice with the same indexLines yields
// the same document as applying it once, because RemoveMarkedBlock removes
// exactly what the previous run inserted.
func Replace(lines []string, startHeader, endHeader string, indexLines []string, m Markers) ([]string, bool) {
	start, ok := FindHeader(lines, startHeader)
	if !ok {
		return nil, false
	}
	end := len(lines)
	if idx, found := findHeaderFrom(lines, endHeader, start+1); found {
		end = idx
	}

	section := RemoveMarkedBlock(lines[start+1:end], m)
	section = StripTrailingBlank(section)
	section = EnsureLeadingBlank(section)

	if len(indexLines) > 0 {
		if strings.TrimSpace(section[len(section)-1]) != "" {
			section = append(section, "")
		}
		section = append(section, indexLines...)
	}

	out := make([]string, 0, start+1+len(section)+len(lines)-end)
	out = append(out, lines[:start+1]...)
	out = append(out, section...)
	out = append(out, lines[end:]...)
	return out, true
}
