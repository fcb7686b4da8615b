package ast

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// MinSecretLen filters out short literals that are overwhelmingly flags and
// enum values rather than credentials.
const MinSecretLen = 8

// Candidate is a generic secret candidate extracted structurally, prior to
// entropy gating and suppression.
type Candidate struct {
	// PatternID is the synthetic id "generic/<language>-identifier".
	PatternID string
	Language  string
	Variable  string
	Secret    string
	// SecretStart/SecretEnd are byte offsets of the literal's inner content.
	SecretStart int
	SecretEnd   int
}

// Grammar is an optional structural-extraction capability for one language.
// Missing grammars degrade the file to regex-only scanning.
type Grammar interface {
	Language() string
	Extract(content []byte, triggers []string) ([]Candidate, error)
}

var (
	mu       sync.RWMutex
	grammars = map[string]Grammar{}
)

var extToLanguage = map[string]string{
	".py":   "python",
	".js":   "javascript",
	".jsx":  "javascript",
	".mjs":  "javascript",
	".cjs":  "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".go":   "go",
	".rb":   "ruby",
	".java": "java",
	".rs":   "rust",
}

// Register installs a grammar, replacing any prior registration for the
// same language.
func Register(g Grammar) {
	mu.Lock()
	defer mu.Unlock()
	grammars[g.Language()] = g
}

// ForPath returns the registered grammar for a file path, if any.
func ForPath(path string) (Grammar, bool) {
	lang, ok := extToLanguage[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, false
	}
	mu.RLock()
	defer mu.RUnlock()
	g, ok := grammars[lang]
	return g, ok
}

// IsDotenv reports whether the file name is ".env" or an ".env.*" variant.
func IsDotenv(path string) bool {
	name := filepath.Base(path)
	return name == ".env" || strings.HasPrefix(name, ".env.")
}

// PatternIDFor names the synthetic pattern for a language.
func PatternIDFor(language string) string {
	return fmt.Sprintf("generic/%s-identifier", language)
}

// Extract routes a file to dotenv or grammar extraction. Files with no
// grammar yield no candidates; a parse error is returned so the caller can
// log the regex-only downgrade.
func Extract(path string, content []byte, triggers []string) ([]Candidate, error) {
	if IsDotenv(path) {
		return extractDotenv(content, triggers), nil
	}
	g, ok := ForPath(path)
	if !ok {
		return nil, nil
	}
	return g.Extract(content, triggers)
}

// usableSecret filters literal values that cannot be credentials: too
// short, or references to other variables.
func usableSecret(v string) bool {
	if len(v) < MinSecretLen {
		return false
	}
	if strings.HasPrefix(v, "$") || strings.Contains(v, "${") {
		return false
	}
	return true
}
