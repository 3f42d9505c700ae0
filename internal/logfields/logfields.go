package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyDocument   = "document"
	KeyPath       = "path"
	KeyBaseDir    = "base_dir"
	KeyConfig     = "config"
	KeyBytes      = "bytes"
	KeyCount      = "count"
	KeyOutcome    = "outcome"
	KeyName       = "name"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Document(kind string) slog.Attr  { return slog.String(KeyDocument, kind) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func BaseDir(p string) slog.Attr      { return slog.String(KeyBaseDir, p) }
func Config(p string) slog.Attr       { return slog.String(KeyConfig, p) }
func Bytes(n int) slog.Attr           { return slog.Int(KeyBytes, n) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Outcome(o string) slog.Attr      { return slog.String(KeyOutcome, o) }
func Name(n string) slog.Attr         { return slog.String(KeyName, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
