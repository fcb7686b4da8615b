package suppress

import (
	"path/filepath"
	"strings"
)

// CommentPrefix returns the single-line comment prefix for a file so
// consumers can synthesise an ignore edit, e.g. "# vet:ignore" for Python.
// The second return is false for unknown file types.
func CommentPrefix(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".c", ".h", ".cpp", ".cc", ".cs", ".go", ".java", ".js", ".jsx", ".mjs", ".cjs",
		".kt", ".php", ".rs", ".scala", ".swift", ".ts", ".tsx", ".dart", ".proto", ".zig":
		return "//", true
	case ".py", ".rb", ".sh", ".bash", ".pl", ".r", ".jl", ".nim", ".tcl", ".toml", ".yaml", ".yml",
		".dockerfile", ".tf", ".nix", ".ex", ".exs", ".env":
		return "#", true
	case ".hs", ".lua", ".sql", ".elm":
		return "--", true
	case ".clj", ".lisp", ".scm", ".ini":
		return ";", true
	case ".erl", ".tex":
		return "%", true
	}
	name := strings.ToLower(filepath.Base(path))
	if name == "dockerfile" || name == "makefile" || name == ".env" || strings.HasPrefix(name, ".env.") {
		return "#", true
	}
	return "", false
}

// FormatIgnore renders an inline directive comment for the file, optionally
// narrowed to a pattern id.
func FormatIgnore(path, patternID string) (string, bool) {
	prefix, ok := CommentPrefix(path)
	if !ok {
		return "", false
	}
	if patternID == "" {
		return prefix + " " + Marker, true
	}
	return prefix + " " + Marker + "[" + patternID + "]", true
}
