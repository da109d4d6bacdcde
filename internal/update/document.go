package update

import (
	"os"
	"strings"
)

// readLines loads a document fully into memory as a line slice. CRLF line
// endings are tolerated on input; output is always written with bare LF.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitLines(string(data)), nil
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// writeLines replaces path with the joined lines and a trailing newline.
// Callers compute the full new content before this is reached, so no write
// happens for a document whose transformation failed.
func writeLines(path string, lines []string) error {
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}
