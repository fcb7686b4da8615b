// Package suppress drops findings the user has already acknowledged. Three
// sources converge here: inline vet:ignore directives, config ignores, and
// baseline entries. Resolution is pure set membership, so it is idempotent
// and independent of source iteration order.
package suppress

import (
	"bytes"
	"regexp"
	"sync/atomic"

	"github.com/spikermint/vet/internal/baseline"
	"github.com/spikermint/vet/internal/config"
	"github.com/spikermint/vet/internal/types"
)

// Marker is the inline directive text.
const Marker = "vet:ignore"

// Source identifies which mechanism suppressed a finding.
type Source string

const (
	SourceInline   Source = "inline"
	SourceConfig   Source = "config"
	SourceBaseline Source = "baseline"
)

// Directive is a parsed inline marker. PatternID is empty for the bare form
// and narrows suppression to one pattern for vet:ignore[pattern_id].
type Directive struct {
	Line      int
	PatternID string
}

var directiveRe = regexp.MustCompile(`vet:ignore(?:\[([A-Za-z0-9_./\-]+)\])?`)

// ParseDirectives extracts every inline directive with its 1-based line.
func ParseDirectives(data []byte) []Directive {
	if !bytes.Contains(data, []byte(Marker)) {
		return nil
	}
	var out []Directive
	line := 1
	for start := 0; start <= len(data); {
		end := bytes.IndexByte(data[start:], '\n')
		var lineBytes []byte
		if end < 0 {
			lineBytes = data[start:]
			start = len(data) + 1
		} else {
			lineBytes = data[start : start+end]
			start += end + 1
		}
		for _, m := range directiveRe.FindAllSubmatch(lineBytes, -1) {
			d := Directive{Line: line}
			if len(m) > 1 && len(m[1]) > 0 {
				d.PatternID = string(m[1])
			}
			out = append(out, d)
		}
		line++
	}
	return out
}

// Counts reports how many findings each source dropped, for consumer
// telemetry.
type Counts struct {
	Inline   int `json:"inline"`
	Config   int `json:"config"`
	Baseline int `json:"baseline"`
}

// Total sums all sources.
func (c Counts) Total() int { return c.Inline + c.Config + c.Baseline }

// Resolver applies the three suppression sources. Safe for concurrent use;
// counters are atomic.
type Resolver struct {
	ignores []config.Ignore
	base    *baseline.Index

	inline, cfg, baseCnt atomic.Int64
}

// NewResolver builds a resolver from config ignores and an optional
// baseline.
func NewResolver(ignores []config.Ignore, base *baseline.Baseline) *Resolver {
	return &Resolver{ignores: ignores, base: baseline.NewIndex(base)}
}

// Suppressed reports whether the finding is acknowledged by any source.
// directives are the inline markers parsed from the finding's file. A
// directive applies when its line equals the finding's primary reported
// line; for multi-line matches that is the line of the secret capture start.
func (r *Resolver) Suppressed(f types.Finding, directives []Directive) (bool, Source) {
	for _, d := range directives {
		if d.Line != f.Location.Line {
			continue
		}
		if d.PatternID == "" || d.PatternID == f.PatternID {
			r.inline.Add(1)
			return true, SourceInline
		}
	}
	for _, ig := range r.ignores {
		if ig.Matches(f) {
			r.cfg.Add(1)
			return true, SourceConfig
		}
	}
	if r.base.Matches(f) {
		r.baseCnt.Add(1)
		return true, SourceBaseline
	}
	return false, ""
}

// Counts returns the per-source suppression tallies so far.
func (r *Resolver) Counts() Counts {
	return Counts{
		Inline:   int(r.inline.Load()),
		Config:   int(r.cfg.Load()),
		Baseline: int(r.baseCnt.Load()),
	}
}
