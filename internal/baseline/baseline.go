// Package baseline persists acknowledged findings so re-scans do not
// re-report them. The file is versioned JSON; unknown versions fail at load.
package baseline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spikermint/vet/internal/types"
)

// CurrentVersion is the schema version this package reads and writes.
const CurrentVersion = 1

// vetVersion is the engine version stamped into baseline files on save.
const vetVersion = "0.1.0"

// Status records the review outcome for an entry.
type Status string

const (
	StatusAccepted Status = "accepted"
	StatusIgnored  Status = "ignored"
)

// Entry is one acknowledged finding.
type Entry struct {
	Fingerprint string         `json:"fingerprint"`
	PatternID   string         `json:"pattern_id"`
	Severity    types.Severity `json:"severity,omitempty"`
	File        string         `json:"file"`
	SecretHash  string         `json:"secret_hash,omitempty"`
	Status      Status         `json:"status,omitempty"`
	Reason      string         `json:"reason"`
	ReviewedAt  time.Time      `json:"reviewed_at,omitempty"`
}

// Baseline is the on-disk document.
type Baseline struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// VetVersion records which engine version last wrote the file.
	VetVersion string  `json:"vet_version,omitempty"`
	Entries    []Entry `json:"entries"`
}

// ErrUnsupportedVersion is returned when the file's schema version is not
// recognised; unknown versions never pass through silently.
var ErrUnsupportedVersion = errors.New("unsupported baseline version")

// New creates an empty baseline stamped with the current time and engine
// version.
func New() *Baseline {
	now := time.Now().UTC()
	return &Baseline{Version: CurrentVersion, CreatedAt: now, UpdatedAt: now, VetVersion: vetVersion}
}

// Load reads a baseline file from disk.
func Load(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read baseline %s: %w", path, err)
	}
	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse baseline %s: %w", path, err)
	}
	if b.Version != CurrentVersion {
		return nil, fmt.Errorf("baseline %s: %w: %d", path, ErrUnsupportedVersion, b.Version)
	}
	return &b, nil
}

// Save atomically writes the baseline, refreshing UpdatedAt and the
// writing engine version.
func (b *Baseline) Save(path string) error {
	b.UpdatedAt = time.Now().UTC()
	b.VetVersion = vetVersion
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encode baseline: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write baseline %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write baseline %s: %w", path, err)
	}
	return nil
}

// Add inserts an entry, replacing any existing entry with the same
// fingerprint.
func (b *Baseline) Add(e Entry) {
	kept := b.Entries[:0]
	for _, old := range b.Entries {
		if old.Fingerprint != e.Fingerprint {
			kept = append(kept, old)
		}
	}
	b.Entries = append(kept, e)
}

// FromFinding builds an entry for a finding being acknowledged.
func FromFinding(f types.Finding, status Status, reason string) Entry {
	return Entry{
		Fingerprint: f.Fingerprint,
		PatternID:   f.PatternID,
		Severity:    f.Severity,
		File:        f.Location.Path,
		SecretHash:  f.SecretHash,
		Status:      status,
		Reason:      reason,
		ReviewedAt:  time.Now().UTC(),
	}
}

// Index supports the two suppression lookups: exact fingerprint, and the
// (pattern_id, file, secret_hash) triple that survives identical-secret
// moves within a file's history.
type Index struct {
	fingerprints map[string]bool
	triples      map[string]bool
}

func tripleKey(patternID, file, secretHash string) string {
	return patternID + "\x1f" + file + "\x1f" + secretHash
}

// NewIndex builds the lookup from a baseline; nil yields an empty index.
func NewIndex(b *Baseline) *Index {
	idx := &Index{fingerprints: map[string]bool{}, triples: map[string]bool{}}
	if b == nil {
		return idx
	}
	for _, e := range b.Entries {
		if e.Fingerprint != "" {
			idx.fingerprints[e.Fingerprint] = true
		}
		if e.PatternID != "" && e.File != "" && e.SecretHash != "" {
			idx.triples[tripleKey(e.PatternID, e.File, e.SecretHash)] = true
		}
	}
	return idx
}

// Matches reports whether the finding is acknowledged by fingerprint or by
// triple.
func (idx *Index) Matches(f types.Finding) bool {
	if idx.fingerprints[f.Fingerprint] {
		return true
	}
	return idx.triples[tripleKey(f.PatternID, f.Location.Path, f.SecretHash)]
}

// Len returns the number of distinct acknowledged fingerprints.
func (idx *Index) Len() int { return len(idx.fingerprints) }

// DefaultPath returns the conventional baseline location under root.
func DefaultPath(root string) string {
	return filepath.Join(root, ".vet-baseline.json")
}
