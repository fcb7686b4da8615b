package pattern

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"time"

	ahocorasick "github.com/BobuSumisu/aho-corasick"
)

// softCancelBudget is how much matching time may elapse before the
// cancellation token is consulted ahead of each further regex evaluation.
const softCancelBudget = 50 * time.Millisecond

// Matcher is the compiled artifact a scan runs against: the enabled pattern
// vector, keyword automata for prefiltering, and per-pattern regexes.
// Immutable after construction and safe for concurrent use.
type Matcher struct {
	patterns []Pattern

	// exact matches raw bytes; folded matches lowercased bytes for patterns
	// that declared case-insensitive keywords.
	exact        *ahocorasick.Trie
	exactOwners  [][]int
	folded       *ahocorasick.Trie
	foldedOwners [][]int
}

func newMatcher(patterns []Pattern) *Matcher {
	m := &Matcher{patterns: patterns}

	exactKw := map[string][]int{}
	foldedKw := map[string][]int{}
	for idx, p := range patterns {
		for _, kw := range p.Keywords {
			if p.CaseInsensitive {
				lk := strings.ToLower(kw)
				foldedKw[lk] = append(foldedKw[lk], idx)
			} else {
				exactKw[kw] = append(exactKw[kw], idx)
			}
		}
	}

	m.exact, m.exactOwners = buildTrie(exactKw)
	m.folded, m.foldedOwners = buildTrie(foldedKw)
	return m
}

func buildTrie(keywords map[string][]int) (*ahocorasick.Trie, [][]int) {
	if len(keywords) == 0 {
		return nil, nil
	}
	kws := make([]string, 0, len(keywords))
	for kw := range keywords {
		kws = append(kws, kw)
	}
	sort.Strings(kws)
	owners := make([][]int, len(kws))
	for i, kw := range kws {
		owners[i] = keywords[kw]
	}
	trie := ahocorasick.NewTrieBuilder().AddStrings(kws).Build()
	return trie, owners
}

// Patterns returns the enabled pattern vector in registry order.
func (m *Matcher) Patterns() []Pattern { return m.patterns }

// Prefilter runs the single Aho-Corasick pass over raw file bytes and
// returns the indices of patterns whose keywords occurred, ascending.
func (m *Matcher) Prefilter(data []byte) []int {
	hit := make(map[int]bool)
	if m.exact != nil {
		for _, match := range m.exact.Match(data) {
			for _, idx := range m.exactOwners[match.Pattern()] {
				hit[idx] = true
			}
		}
	}
	if m.folded != nil {
		for _, match := range m.folded.Match(bytes.ToLower(data)) {
			for _, idx := range m.foldedOwners[match.Pattern()] {
				hit[idx] = true
			}
		}
	}
	out := make([]int, 0, len(hit))
	for idx := range hit {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// Candidate is a raw regex match prior to entropy gating and suppression.
type Candidate struct {
	PatternIndex int
	// Secret is the designated capture; offsets index into the scanned bytes.
	Secret      []byte
	SecretStart int
	SecretEnd   int
	MatchStart  int
	MatchEnd    int
}

// Match evaluates each prefilter-selected pattern against data and returns
// candidates ordered by (secret offset, pattern index). Overlapping matches
// of the same pattern at distinct offsets are all kept; when two captures of
// one pattern start at the same offset only the longest secret survives.
//
// Once matching has run past the soft budget, ctx is checked before each
// further regex evaluation; on cancellation the partial result is discarded
// and nil is returned.
func (m *Matcher) Match(ctx context.Context, data []byte, selected []int) []Candidate {
	started := time.Now()
	var out []Candidate
	for _, idx := range selected {
		if time.Since(started) > softCancelBudget && ctx.Err() != nil {
			return nil
		}
		p := &m.patterns[idx]
		locs := p.Regexp().FindAllSubmatchIndex(data, -1)
		if locs == nil {
			continue
		}
		best := map[int]Candidate{}
		for _, loc := range locs {
			// loc[2],loc[3] bound the single capture group
			if len(loc) < 4 || loc[2] < 0 {
				continue
			}
			c := Candidate{
				PatternIndex: idx,
				Secret:       data[loc[2]:loc[3]],
				SecretStart:  loc[2],
				SecretEnd:    loc[3],
				MatchStart:   loc[0],
				MatchEnd:     loc[1],
			}
			if prev, ok := best[c.SecretStart]; !ok || len(c.Secret) > len(prev.Secret) {
				best[c.SecretStart] = c
			}
		}
		for _, c := range best {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SecretStart != out[j].SecretStart {
			return out[i].SecretStart < out[j].SecretStart
		}
		return out[i].PatternIndex < out[j].PatternIndex
	})
	return out
}
