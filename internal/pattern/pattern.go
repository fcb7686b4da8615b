// Package pattern holds the detection rule model: declarative specs, the
// validated registry, and the compiled matcher with its Aho-Corasick
// keyword prefilter.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spikermint/vet/internal/types"
)

// Spec is a declarative detection rule before compilation. Built-in provider
// catalogues and user config both produce Specs.
type Spec struct {
	ID          string
	Group       types.Group
	Name        string
	Description string
	Severity    types.Severity
	// Regex must contain exactly one capturing group designating the secret;
	// the whole match may be wider for context anchoring.
	Regex string
	// Keywords is a non-empty set of literals; every true positive contains
	// at least one as a substring. Matched case-sensitively unless
	// CaseInsensitive is set.
	Keywords        []string
	CaseInsensitive bool
	DefaultEnabled  bool
	// MinEntropy is the Shannon floor in bits per byte; zero means no gate.
	MinEntropy float64
	// Verifier names a verification strategy handle, empty if none.
	Verifier string
	// Override marks a user spec that intentionally replaces a built-in
	// with the same ID.
	Override bool
}

// Pattern is a compiled, immutable detection rule.
type Pattern struct {
	Spec
	re *regexp.Regexp
}

// Regexp returns the compiled expression.
func (p *Pattern) Regexp() *regexp.Regexp { return p.re }

// RegistryError reports a malformed pattern set. Fatal at load time.
type RegistryError struct {
	PatternID string
	Err       error
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("pattern %q: %v", e.PatternID, e.Err)
}

func (e *RegistryError) Unwrap() error { return e.Err }

var (
	// ErrDuplicateID is returned when two specs share an id and the later
	// one does not opt into override.
	ErrDuplicateID = errors.New("duplicate pattern id without override")
	// ErrEmptyKeywords is returned for a spec with no prefilter keywords.
	ErrEmptyKeywords = errors.New("keyword set must not be empty")
	// ErrBadCaptureCount is returned when the regex does not have exactly
	// one capturing group.
	ErrBadCaptureCount = errors.New("regex must have exactly one capturing group")
	// ErrKeywordAnchor is returned when no keyword appears literally in the
	// regex source, meaning the regex could match text containing none of
	// the pattern's keywords and the prefilter would drop true positives.
	ErrKeywordAnchor = errors.New("no keyword is anchored in the regex")
)

func compile(s Spec) (Pattern, error) {
	if len(s.Keywords) == 0 {
		return Pattern{}, &RegistryError{PatternID: s.ID, Err: ErrEmptyKeywords}
	}
	// regexp is RE2: backreferences and unbounded lookaround fail to
	// compile, which enforces the linear-time engine requirement.
	re, err := regexp.Compile(s.Regex)
	if err != nil {
		return Pattern{}, &RegistryError{PatternID: s.ID, Err: err}
	}
	if re.NumSubexp() != 1 {
		return Pattern{}, &RegistryError{PatternID: s.ID, Err: ErrBadCaptureCount}
	}
	if !keywordAnchored(s) {
		return Pattern{}, &RegistryError{PatternID: s.ID, Err: ErrKeywordAnchor}
	}
	return Pattern{Spec: s, re: re}, nil
}

// keywordAnchored checks that at least one keyword appears as a literal in
// the regex source, so any match necessarily contains that keyword.
func keywordAnchored(s Spec) bool {
	src := s.Regex
	if s.CaseInsensitive {
		src = strings.ToLower(src)
	}
	for _, kw := range s.Keywords {
		if s.CaseInsensitive {
			kw = strings.ToLower(kw)
		}
		if kw != "" && strings.Contains(src, kw) {
			return true
		}
	}
	return false
}
