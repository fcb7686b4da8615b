// Package ast extracts generic secret candidates from source files: string
// literals assigned to identifiers whose names look credential-like. Parsing
// uses tree-sitter grammars registered at startup; files without a grammar
// fall back to regex-only scanning in the engine.
package ast

import "strings"

// DefaultTriggerWords are the identifier segments that mark a variable as
// credential-like. Matching is case-insensitive and segment-bounded.
var DefaultTriggerWords = []string{
	"password", "passwd", "pwd",
	"secret",
	"token",
	"api_key", "apikey", "api-key",
	"access_key", "accesskey",
	"auth_token",
	"key",
	"credential", "credentials",
}

// MatchesTrigger reports whether any trigger word occurs as a complete
// segment of the identifier. Segments are bounded by '_', '.', '-', a
// camelCase transition, or the ends of the name, so "DB_PASSWORD" and
// "dbPassword" match "password" but "passport" does not.
func MatchesTrigger(name string, words []string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	for _, w := range words {
		if containsSegment(lower, name, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

func isDelimiter(b byte) bool {
	return b == '_' || b == '.' || b == '-'
}

// camelBoundary detects a lowercase-to-uppercase transition in the original
// spelling. Abbreviation runs like "DBPassword" are deliberately not
// handled; such prefixes almost always use snake_case in practice.
func camelBoundary(original string, idx int) bool {
	return idx > 0 && idx < len(original) &&
		original[idx] >= 'A' && original[idx] <= 'Z' &&
		original[idx-1] >= 'a' && original[idx-1] <= 'z'
}

func containsSegment(lower, original, needle string) bool {
	if needle == "" || len(needle) > len(lower) {
		return false
	}
	pos := 0
	for pos+len(needle) <= len(lower) {
		idx := strings.Index(lower[pos:], needle)
		if idx < 0 {
			return false
		}
		abs := pos + idx
		end := abs + len(needle)
		startOK := abs == 0 || isDelimiter(lower[abs-1]) || camelBoundary(original, abs)
		endOK := end == len(lower) || isDelimiter(lower[end]) || camelBoundary(original, end)
		if startOK && endOK {
			return true
		}
		pos = abs + 1
	}
	return false
}
