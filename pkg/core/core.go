package core

import (
	"context"

	"github.com/spikermint/vet/internal/ast"
	"github.com/spikermint/vet/internal/baseline"
	"github.com/spikermint/vet/internal/config"
	"github.com/spikermint/vet/internal/pattern"
	"github.com/spikermint/vet/internal/providers"
	"github.com/spikermint/vet/internal/scan"
	"github.com/spikermint/vet/internal/types"
	"github.com/spikermint/vet/internal/verify"
)

// Re-export selected internal types as a stable public API surface. These
// are type aliases so external consumers can depend on a stable path.
type (
	Options    = scan.Options
	Result     = scan.Result
	Finding    = types.Finding
	Severity   = types.Severity
	Diagnostic = scan.Diagnostic
	Config     = config.Config
	Baseline   = baseline.Baseline
)

// DefaultOptions mirrors the documented ScanOptions defaults.
func DefaultOptions() Options { return scan.DefaultOptions() }

// NewEngine builds a scan engine over the builtin catalogue plus any user
// patterns. Fails on a malformed registry (bad regex, empty keywords,
// duplicate id without override).
func NewEngine(userPatterns []pattern.Spec, opts Options) (*scan.Engine, error) {
	reg, err := pattern.Load(providers.Specs(), userPatterns)
	if err != nil {
		return nil, err
	}
	return scan.NewEngine(reg, boundVerifiers(), opts), nil
}

// Scan runs a one-shot scan of roots with the builtin catalogue. This is
// the stable entrypoint for other programs.
func Scan(ctx context.Context, roots []string, opts Options) (Result, error) {
	e, err := NewEngine(nil, opts)
	if err != nil {
		return Result{}, err
	}
	return e.Scan(ctx, roots)
}

// ScanWithConfig applies a loaded .vet.toml to the options and runs a scan:
// custom patterns join the registry, ignores and excludes join the options,
// and the baseline is loaded when configured.
func ScanWithConfig(ctx context.Context, roots []string, cfg Config, opts Options) (Result, error) {
	opts.SeverityFloor = cfg.SeverityFloor()
	opts.ExcludePaths = append(opts.ExcludePaths, cfg.ExcludePaths...)
	opts.Ignores = append(opts.Ignores, cfg.Ignores...)
	if cfg.MaxFileBytes > 0 {
		opts.MaxFileBytes = cfg.MaxFileBytes
	}
	if cfg.RespectGitignore != nil {
		opts.RespectGitignore = *cfg.RespectGitignore
	}
	opts.DisabledPatterns = append(opts.DisabledPatterns, cfg.DisabledPatterns...)
	opts.EnabledPatterns = append(opts.EnabledPatterns, cfg.EnabledPatterns...)
	if cfg.BaselinePath != "" && opts.Baseline == nil {
		b, err := baseline.Load(cfg.BaselinePath)
		if err != nil {
			return Result{}, err
		}
		opts.Baseline = b
	}

	e, err := NewEngine(cfg.CustomSpecs(), opts)
	if err != nil {
		return Result{}, err
	}
	return e.Scan(ctx, roots)
}

// PatternIDs returns every builtin pattern id, including the synthetic
// generic ids, for UI listings and enable/disable validation.
func PatternIDs() []string {
	var out []string
	for _, s := range providers.Specs() {
		out = append(out, s.ID)
	}
	for _, lang := range []string{"python", "javascript", "typescript", "go", "ruby", "java", "rust", "dotenv"} {
		out = append(out, ast.PatternIDFor(lang))
	}
	return out
}

// ExitCode maps a scan result to the batch consumer convention: zero when
// no finding meets the severity floor, one otherwise.
func ExitCode(res Result, floor Severity) int {
	for _, f := range res.Findings {
		if f.Severity.Rank() >= floor.Rank() {
			return 1
		}
	}
	return 0
}

func boundVerifiers() *verify.Registry {
	vreg := verify.Builtin()
	for _, s := range providers.Specs() {
		if s.Verifier != "" {
			vreg.Bind(s.ID, s.Verifier)
		}
	}
	return vreg
}
