package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/rs/zerolog/log"

	"github.com/spikermint/vet/internal/fingerprint"
)

// walkRoot enumerates scannable files under root and sends jobs. Reading
// happens on the workers; the walker only stats.
func (e *Engine) walkRoot(ctx context.Context, root string, jobs chan<- job, diag func(Diagnostic)) error {
	info, err := os.Stat(root)
	if err != nil {
		return nil // already reported as a root diagnostic
	}
	if !info.IsDir() {
		select {
		case jobs <- job{abs: root, rel: fingerprint.NormalizePath(root, filepath.Dir(root))}:
		case <-ctx.Done():
			return ctx.Err()
		}
		return nil
	}

	var ignoreMatcher gitignore.Matcher
	if e.opts.RespectGitignore {
		if ps, err := gitignore.ReadPatterns(osfs.New(root), nil); err == nil && len(ps) > 0 {
			ignoreMatcher = gitignore.NewMatcher(ps)
		}
	}

	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p != root {
				diag(Diagnostic{Path: p, Kind: DiagIO, Err: err})
			}
			return nil
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}

		rel := fingerprint.NormalizePath(p, root)
		split := strings.Split(rel, "/")

		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			if p != root {
				if e.excluded(rel + "/") {
					return filepath.SkipDir
				}
				if ignoreMatcher != nil && ignoreMatcher.Match(split, true) {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if e.excluded(rel) {
			return nil
		}
		if ignoreMatcher != nil && ignoreMatcher.Match(split, false) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			diag(Diagnostic{Path: rel, Kind: DiagIO, Err: err})
			return nil
		}
		if fi.Size() > e.opts.MaxFileBytes {
			log.Debug().Str("path", rel).Int64("size", fi.Size()).Msg("file exceeds size cap")
			diag(Diagnostic{Path: rel, Kind: DiagFileTooLarge})
			return nil
		}

		select {
		case jobs <- job{abs: p, rel: rel}:
		case <-ctx.Done():
			return ctx.Err()
		}
		return nil
	})
}

// excluded matches a forward-slash relative path against the exclude globs,
// both against the full path and the basename, the way scanners usually
// accept "*.test.js".
func (e *Engine) excluded(rel string) bool {
	for _, g := range e.opts.ExcludePaths {
		if ok, _ := doublestar.Match(g, strings.TrimSuffix(rel, "/")); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(strings.TrimSuffix(rel, "/"))); ok {
			return true
		}
	}
	return false
}
