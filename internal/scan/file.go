package scan

import (
	"bytes"
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/spikermint/vet/internal/ast"
	"github.com/spikermint/vet/internal/entropy"
	"github.com/spikermint/vet/internal/fingerprint"
	"github.com/spikermint/vet/internal/types"
)

// genericMinEntropy gates every structural candidate; generic identifier
// matches have no format anchor, so randomness is the only signal.
const genericMinEntropy = 3.0

// binarySniff is how many leading bytes are checked for NUL.
const binarySniff = 8000

type fileFinding struct {
	types.Finding
	secretEnd int
	generic   bool
}

// scanData runs the full per-file pipeline over one buffer. Findings come
// back in ascending byte offset. Cancellation is observed between pipeline
// stages and, past the soft budget, between regex evaluations; a cancelled
// file yields no findings.
func (e *Engine) scanData(ctx context.Context, rel string, data []byte) ([]types.Finding, []Diagnostic) {
	if looksBinary(data) {
		return nil, nil
	}

	var found []fileFinding

	selected := e.matcher.Prefilter(data)
	for _, c := range e.matcher.Match(ctx, data, selected) {
		p := e.matcher.Patterns()[c.PatternIndex]
		if e.opts.EntropyGate && p.MinEntropy > 0 && entropy.Shannon(string(c.Secret)) < p.MinEntropy {
			continue
		}
		f := e.buildFinding(rel, data, p.ID, p.Name, p.Severity, p.Group, c.Secret, c.SecretStart, c.SecretEnd, c.MatchStart, c.MatchEnd)
		found = append(found, fileFinding{Finding: f, secretEnd: c.SecretEnd})
	}

	if ctx.Err() != nil {
		return nil, nil
	}

	var diags []Diagnostic
	if e.opts.ASTEnabled {
		cands, err := ast.Extract(rel, data, ast.DefaultTriggerWords)
		if err != nil {
			// structural parsing is best effort; the file already had its
			// regex pass
			log.Debug().Str("path", rel).Err(err).Msg("ast parse failed, regex only")
			diags = append(diags, Diagnostic{Path: rel, Kind: DiagParse, Err: err})
		}
		for _, c := range cands {
			if !e.allowGeneric(c.PatternID) {
				continue
			}
			if e.opts.EntropyGate && entropy.Shannon(c.Secret) < genericMinEntropy {
				continue
			}
			f := e.buildFinding(rel, data, c.PatternID, "Generic "+c.Language+" credential assignment",
				types.SevMedium, types.GroupGeneric, []byte(c.Secret), c.SecretStart, c.SecretEnd, c.SecretStart, c.SecretEnd)
			found = append(found, fileFinding{Finding: f, secretEnd: c.SecretEnd, generic: true})
		}
	}

	found = dedup(found)

	out := make([]types.Finding, len(found))
	for i, ff := range found {
		out[i] = ff.Finding
	}
	return out, diags
}

func (e *Engine) buildFinding(rel string, data []byte, patternID, name string, sev types.Severity, group types.Group, secret []byte, secretStart, secretEnd, matchStart, matchEnd int) types.Finding {
	digest := fingerprint.HashSecret(secret)
	line, col, lineStart := lineCol(data, secretStart)

	loc := types.Location{
		Path:       rel,
		ByteOffset: secretStart,
		Line:       line,
		Column:     col,
		MatchStart: matchStart,
		MatchEnd:   matchEnd,
	}
	return types.Finding{
		Fingerprint:   fingerprint.Compute(patternID, rel, digest),
		PatternID:     patternID,
		PatternName:   name,
		Severity:      sev,
		Group:         group,
		Location:      loc,
		Locations:     []types.Location{loc},
		SecretPreview: types.PreviewSecret(string(secret)),
		SecretHash:    fingerprint.SecretHashHex(digest),
		MaskedLine:    maskLine(data, lineStart, secretStart, secretEnd, string(secret)),
		Verifiable:    e.verif != nil && e.verif.Verifiable(patternID),
	}
}

// lineCol derives the 1-based line, 0-based column, and line start offset
// for a byte offset.
func lineCol(data []byte, offset int) (line, col, lineStart int) {
	if offset > len(data) {
		offset = len(data)
	}
	line = 1
	for i := 0; i < offset; i++ {
		if data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, offset - lineStart, lineStart
}

// maskLine renders the finding's source line with the secret replaced by a
// bookended mask, safe for display and logs.
func maskLine(data []byte, lineStart, secretStart, secretEnd int, secret string) string {
	lineEnd := len(data)
	if i := bytes.IndexByte(data[lineStart:], '\n'); i >= 0 {
		lineEnd = lineStart + i
	}
	end := secretEnd
	if end > lineEnd {
		end = lineEnd
	}
	return string(data[lineStart:secretStart]) + types.MaskSecret(secret) + string(data[end:lineEnd])
}

func looksBinary(data []byte) bool {
	n := len(data)
	if n > binarySniff {
		n = binarySniff
	}
	return bytes.IndexByte(data[:n], 0) >= 0
}

// dedup collapses the per-file finding set:
//
//  1. identical fingerprints merge, keeping the union of locations ordered
//     by byte offset;
//  2. different patterns capturing the same secret over the same range keep
//     only the highest severity (tie: lexicographically smaller id);
//  3. generic findings overlapping a specific finding's range are dropped.
func dedup(found []fileFinding) []fileFinding {
	if len(found) < 2 {
		return found
	}

	// 1: merge by fingerprint
	byFP := map[string]int{}
	var merged []fileFinding
	for _, ff := range found {
		if i, ok := byFP[ff.Fingerprint]; ok {
			merged[i].Locations = append(merged[i].Locations, ff.Location)
			continue
		}
		byFP[ff.Fingerprint] = len(merged)
		merged = append(merged, ff)
	}
	for i := range merged {
		locs := merged[i].Locations
		sort.Slice(locs, func(a, b int) bool { return locs[a].ByteOffset < locs[b].ByteOffset })
		merged[i].Location = locs[0]
	}

	// 2: same range + same secret across patterns
	type rangeKey struct {
		start, end int
		hash       string
	}
	winner := map[rangeKey]int{}
	for i, ff := range merged {
		k := rangeKey{ff.Location.ByteOffset, ff.secretEnd, ff.SecretHash}
		j, ok := winner[k]
		if !ok {
			winner[k] = i
			continue
		}
		prev := merged[j]
		if ff.Severity.Rank() > prev.Severity.Rank() ||
			(ff.Severity.Rank() == prev.Severity.Rank() && ff.PatternID < prev.PatternID) {
			winner[k] = i
		}
	}
	keep := make([]bool, len(merged))
	for _, i := range winner {
		keep[i] = true
	}

	// 3: generic overlapped by a specific survivor
	var kept []fileFinding
	for i, ff := range merged {
		if !keep[i] {
			continue
		}
		if ff.generic && overlapsSpecific(ff, merged, keep) {
			continue
		}
		kept = append(kept, ff)
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Location.ByteOffset != kept[j].Location.ByteOffset {
			return kept[i].Location.ByteOffset < kept[j].Location.ByteOffset
		}
		return kept[i].PatternID < kept[j].PatternID
	})
	return kept
}

func overlapsSpecific(g fileFinding, all []fileFinding, keep []bool) bool {
	for i, other := range all {
		if !keep[i] || other.generic {
			continue
		}
		if g.Location.MatchStart < other.Location.MatchEnd && other.Location.MatchStart < g.Location.MatchEnd {
			return true
		}
	}
	return false
}
