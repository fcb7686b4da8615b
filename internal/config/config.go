// Package config loads project-level .vet.toml configuration: severity
// floor, path exclusions, custom patterns and acknowledged ignores.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/spikermint/vet/internal/pattern"
	"github.com/spikermint/vet/internal/types"
)

// FileName is the config file looked up in the scan root.
const FileName = ".vet.toml"

// Config is the on-disk TOML shape.
type Config struct {
	Severity         string          `toml:"severity"`
	ExcludePaths     []string        `toml:"exclude_paths"`
	BaselinePath     string          `toml:"baseline_path"`
	MaxFileBytes     int64           `toml:"max_file_bytes"`
	RespectGitignore *bool           `toml:"respect_gitignore"`
	DisabledPatterns []string        `toml:"disabled_patterns"`
	EnabledPatterns  []string        `toml:"enabled_patterns"`
	Patterns         []CustomPattern `toml:"patterns"`
	Ignores          []Ignore        `toml:"ignore"`
}

// CustomPattern is a user-defined detection rule from [[patterns]].
type CustomPattern struct {
	ID              string   `toml:"id"`
	Name            string   `toml:"name"`
	Description     string   `toml:"description"`
	Regex           string   `toml:"regex"`
	Severity        string   `toml:"severity"`
	Keywords        []string `toml:"keywords"`
	CaseInsensitive bool     `toml:"case_insensitive"`
	MinEntropy      float64  `toml:"min_entropy"`
	// Override lets this pattern replace a built-in with the same id.
	Override bool `toml:"override"`
}

// Spec converts the declaration to a registry spec. Compilation and
// validation happen at registry load.
func (cp CustomPattern) Spec() pattern.Spec {
	sev, ok := types.ParseSeverity(cp.Severity)
	if !ok {
		sev = types.SevMedium
	}
	desc := cp.Description
	if desc == "" {
		desc = cp.Name
	}
	return pattern.Spec{
		ID:              cp.ID,
		Group:           types.GroupCustom,
		Name:            cp.Name,
		Description:     desc,
		Severity:        sev,
		Regex:           cp.Regex,
		Keywords:        cp.Keywords,
		CaseInsensitive: cp.CaseInsensitive,
		DefaultEnabled:  true,
		MinEntropy:      cp.MinEntropy,
		Override:        cp.Override,
	}
}

// Ignore is one [[ignore]] entry: an acknowledged finding. Every declared
// field must match for the ignore to apply.
type Ignore struct {
	Fingerprint string `toml:"fingerprint"`
	PatternID   string `toml:"pattern_id"`
	File        string `toml:"file"`
	Reason      string `toml:"reason"`
}

// ErrEmptyIgnore rejects an ignore with no matchable field.
var ErrEmptyIgnore = errors.New("ignore entry must declare at least one of fingerprint, pattern_id, file")

// Validate checks that the entry can match something.
func (ig Ignore) Validate() error {
	if ig.Fingerprint == "" && ig.PatternID == "" && ig.File == "" {
		return ErrEmptyIgnore
	}
	return nil
}

// Matches reports whether every declared field matches the finding.
func (ig Ignore) Matches(f types.Finding) bool {
	if ig.Fingerprint != "" && ig.Fingerprint != f.Fingerprint {
		return false
	}
	if ig.PatternID != "" && ig.PatternID != f.PatternID {
		return false
	}
	if ig.File != "" && ig.File != f.Location.Path {
		return false
	}
	return ig.Fingerprint != "" || ig.PatternID != "" || ig.File != ""
}

// Load reads a config file. A missing file yields the zero config.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	for i, ig := range cfg.Ignores {
		if err := ig.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: ignore entry %d: %w", path, i, err)
		}
	}
	return cfg, nil
}

// LoadDir loads the config from root/.vet.toml.
func LoadDir(root string) (Config, error) {
	return Load(filepath.Join(root, FileName))
}

// SeverityFloor parses the configured severity, defaulting to medium.
func (c Config) SeverityFloor() types.Severity {
	if sev, ok := types.ParseSeverity(c.Severity); ok {
		return sev
	}
	return types.SevMedium
}

// CustomSpecs converts all [[patterns]] declarations.
func (c Config) CustomSpecs() []pattern.Spec {
	out := make([]pattern.Spec, 0, len(c.Patterns))
	for _, cp := range c.Patterns {
		out = append(out, cp.Spec())
	}
	return out
}
