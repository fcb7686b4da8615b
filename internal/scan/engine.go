// Package scan runs the detection pipeline over files: Aho-Corasick
// prefilter, regex matching, structural extraction, entropy gating,
// fingerprinting, dedup and suppression. Work is parallel across files and
// sequential within one.
package scan

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spikermint/vet/internal/baseline"
	"github.com/spikermint/vet/internal/config"
	"github.com/spikermint/vet/internal/pattern"
	"github.com/spikermint/vet/internal/suppress"
	"github.com/spikermint/vet/internal/types"
	"github.com/spikermint/vet/internal/verify"
)

// DefaultMaxFileBytes caps per-file reads; larger files are skipped with a
// FileTooLarge diagnostic.
const DefaultMaxFileBytes = 10 * 1024 * 1024

// Options controls a scan. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	SeverityFloor    types.Severity
	DisabledPatterns []string
	EnabledPatterns  []string
	ExcludePaths     []string
	RespectGitignore bool
	Baseline         *baseline.Baseline
	Ignores          []config.Ignore
	MaxFileBytes     int64
	ASTEnabled       bool
	EntropyGate      bool
	// Workers sets scan parallelism; zero means the number of CPUs.
	Workers int
}

// DefaultOptions mirrors the documented ScanOptions defaults.
func DefaultOptions() Options {
	return Options{
		SeverityFloor:    types.SevMedium,
		RespectGitignore: true,
		MaxFileBytes:     DefaultMaxFileBytes,
		ASTEnabled:       true,
		EntropyGate:      true,
	}
}

// DiagKind classifies per-file diagnostics.
type DiagKind string

const (
	DiagIO           DiagKind = "io"
	DiagFileTooLarge DiagKind = "file_too_large"
	DiagParse        DiagKind = "parse"
)

// Diagnostic is a per-file problem reported on the result rather than as an
// error to the caller.
type Diagnostic struct {
	Path string
	Kind DiagKind
	Err  error
}

// Result is the outcome of a scan.
type Result struct {
	// Findings sorted by (path, byte offset, pattern id) for determinism.
	Findings     []types.Finding
	Diagnostics  []Diagnostic
	Suppressed   suppress.Counts
	FilesScanned int
	Duration     time.Duration
}

// ErrNoRoots is returned when every scan root is inaccessible.
var ErrNoRoots = errors.New("no accessible scan roots")

// Engine binds a compiled matcher to scan options. Immutable and safe for
// concurrent scans.
type Engine struct {
	opts    Options
	matcher *pattern.Matcher
	verif   *verify.Registry

	enabled  map[string]bool
	disabled map[string]bool

	cache *resultCache
}

// NewEngine compiles the enabled matcher from a validated registry. The
// verifier registry may be nil when no consumer verifies.
func NewEngine(reg *pattern.Registry, verif *verify.Registry, opts Options) *Engine {
	if opts.MaxFileBytes <= 0 {
		opts.MaxFileBytes = DefaultMaxFileBytes
	}
	m := reg.Enabled(pattern.EnabledOptions{
		SeverityFloor: opts.SeverityFloor,
		Disabled:      opts.DisabledPatterns,
		Enabled:       opts.EnabledPatterns,
	})
	e := &Engine{
		opts:     opts,
		matcher:  m,
		verif:    verif,
		enabled:  map[string]bool{},
		disabled: map[string]bool{},
		cache:    newResultCache(),
	}
	for _, id := range opts.EnabledPatterns {
		e.enabled[id] = true
	}
	for _, id := range opts.DisabledPatterns {
		e.disabled[id] = true
	}
	return e
}

func (e *Engine) workers() int {
	if e.opts.Workers > 0 {
		return e.opts.Workers
	}
	return runtime.NumCPU()
}

type job struct {
	abs string
	rel string
}

// Scan walks the roots and returns the deterministic, sorted finding set.
// Per-file problems surface as diagnostics; the scan itself fails only on
// cancellation or when every root is inaccessible.
func (e *Engine) Scan(ctx context.Context, roots []string) (Result, error) {
	var (
		mu  sync.Mutex
		out []types.Finding
	)
	res, err := e.Stream(ctx, roots, func(f types.Finding) {
		mu.Lock()
		out = append(out, f)
		mu.Unlock()
	})
	if err != nil {
		return res, err
	}
	SortFindings(out)
	res.Findings = out
	return res, nil
}

// Stream runs the scan, invoking emit for each unsuppressed finding.
// Findings within one file arrive in ascending byte offset; across files no
// order is promised. emit may be called concurrently.
func (e *Engine) Stream(ctx context.Context, roots []string, emit func(types.Finding)) (Result, error) {
	started := time.Now()
	resolver := suppress.NewResolver(e.opts.Ignores, e.opts.Baseline)

	var (
		res   Result
		resMu sync.Mutex
	)
	diag := func(d Diagnostic) {
		resMu.Lock()
		res.Diagnostics = append(res.Diagnostics, d)
		resMu.Unlock()
	}

	accessible := 0
	for _, root := range roots {
		if _, err := os.Stat(root); err == nil {
			accessible++
		} else {
			diag(Diagnostic{Path: root, Kind: DiagIO, Err: err})
		}
	}
	if accessible == 0 {
		res.Duration = time.Since(started)
		return res, fmt.Errorf("%w: %v", ErrNoRoots, roots)
	}

	jobs := make(chan job, 256)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for _, root := range roots {
			if err := e.walkRoot(gctx, root, jobs, diag); err != nil {
				return err
			}
		}
		return nil
	})

	for i := 0; i < e.workers(); i++ {
		g.Go(func() error {
			for j := range jobs {
				if err := gctx.Err(); err != nil {
					// drain without emitting partial results
					continue
				}
				e.scanJob(gctx, j, resolver, diag, emit, &resMu, &res)
			}
			return nil
		})
	}

	err := g.Wait()
	res.Suppressed = resolver.Counts()
	res.Duration = time.Since(started)
	if err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	return res, nil
}

func (e *Engine) scanJob(ctx context.Context, j job, resolver *suppress.Resolver, diag func(Diagnostic), emit func(types.Finding), resMu *sync.Mutex, res *Result) {
	data, err := os.ReadFile(j.abs)
	if err != nil {
		diag(Diagnostic{Path: j.rel, Kind: DiagIO, Err: err})
		return
	}

	findings, fileDiags := e.scanData(ctx, j.rel, data)
	for _, d := range fileDiags {
		diag(d)
	}

	resMu.Lock()
	res.FilesScanned++
	resMu.Unlock()

	if ctx.Err() != nil {
		return
	}

	directives := suppress.ParseDirectives(data)
	for _, f := range findings {
		if ok, _ := resolver.Suppressed(f, directives); ok {
			continue
		}
		emit(f)
	}
}

// ScanContent scans an in-memory buffer, for editor integrations. Results
// are cached by content hash so an unchanged buffer re-serves its findings.
// Suppression uses inline directives and the engine's config ignores and
// baseline; counts are not tracked across calls.
func (e *Engine) ScanContent(path string, data []byte) []types.Finding {
	if cached, ok := e.cache.get(path, data); ok {
		return cached
	}
	findings, _ := e.scanData(context.Background(), path, data)

	resolver := suppress.NewResolver(e.opts.Ignores, e.opts.Baseline)
	directives := suppress.ParseDirectives(data)
	kept := findings[:0]
	for _, f := range findings {
		if ok, _ := resolver.Suppressed(f, directives); ok {
			continue
		}
		kept = append(kept, f)
	}
	e.cache.put(path, data, kept)
	return kept
}

// SortFindings orders findings by (path, byte offset, pattern id), the
// documented deterministic order.
func SortFindings(fs []types.Finding) {
	sort.Slice(fs, func(i, j int) bool {
		a, b := fs[i], fs[j]
		if a.Location.Path != b.Location.Path {
			return a.Location.Path < b.Location.Path
		}
		if a.Location.ByteOffset != b.Location.ByteOffset {
			return a.Location.ByteOffset < b.Location.ByteOffset
		}
		return a.PatternID < b.PatternID
	})
}

// allowGeneric applies enable/disable and the severity floor to a synthetic
// generic pattern id. Generic findings carry medium severity.
func (e *Engine) allowGeneric(patternID string) bool {
	if e.enabled[patternID] {
		return true
	}
	if e.disabled[patternID] {
		return false
	}
	if e.opts.SeverityFloor != "" && types.SevMedium.Rank() < e.opts.SeverityFloor.Rank() {
		return false
	}
	return true
}
