package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeySection    = "section"
	KeyDocument   = "document"
	KeyFolder     = "folder"
	KeyHeader     = "header"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Section(label string) slog.Attr  { return slog.String(KeySection, label) }
func Document(path string) slog.Attr  { return slog.String(KeyDocument, path) }
func Folder(path string) slog.Attr    { return slog.String(KeyFolder, path) }
func Header(h string) slog.Attr       { return slog.String(KeyHeader, h) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
