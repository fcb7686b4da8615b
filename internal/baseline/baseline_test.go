package baseline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spikermint/vet/internal/types"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".vet-baseline.json")

	b := New()
	b.Add(Entry{Fingerprint: "sha256:abc", PatternID: "test/p", File: "a.py", Reason: "fixture"})
	require.NoError(t, b.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, loaded.Version)
	require.Len(t, loaded.Entries, 1)
	assert.Equal(t, "sha256:abc", loaded.Entries[0].Fingerprint)
	assert.False(t, loaded.CreatedAt.IsZero())
	assert.Equal(t, vetVersion, loaded.VetVersion)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 99, "entries": []}`), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestAddReplacesByFingerprint(t *testing.T) {
	b := New()
	b.Add(Entry{Fingerprint: "sha256:abc", Reason: "first"})
	b.Add(Entry{Fingerprint: "sha256:abc", Reason: "second"})
	require.Len(t, b.Entries, 1)
	assert.Equal(t, "second", b.Entries[0].Reason)
}

func TestIndexMatchesFingerprint(t *testing.T) {
	b := New()
	b.Add(Entry{Fingerprint: "sha256:abc", PatternID: "test/p", File: "a.py"})
	idx := NewIndex(b)

	assert.True(t, idx.Matches(types.Finding{Fingerprint: "sha256:abc"}))
	assert.False(t, idx.Matches(types.Finding{Fingerprint: "sha256:xyz"}))
	assert.Equal(t, 1, idx.Len())
}

func TestIndexMatchesTriple(t *testing.T) {
	b := New()
	b.Add(Entry{
		Fingerprint: "sha256:oldfingerprint",
		PatternID:   "test/p",
		File:        "a.py",
		SecretHash:  "sha256:secretdigest",
	})
	idx := NewIndex(b)

	// same secret, same file, different fingerprint (e.g. root changed)
	f := types.Finding{
		Fingerprint: "sha256:newfingerprint",
		PatternID:   "test/p",
		Location:    types.Location{Path: "a.py"},
		SecretHash:  "sha256:secretdigest",
	}
	assert.True(t, idx.Matches(f))

	f.Location.Path = "b.py"
	assert.False(t, idx.Matches(f), "triple requires the same file")
}

func TestNilIndexMatchesNothing(t *testing.T) {
	idx := NewIndex(nil)
	assert.False(t, idx.Matches(types.Finding{Fingerprint: "sha256:abc"}))
}

func TestFromFinding(t *testing.T) {
	f := types.Finding{
		Fingerprint: "sha256:abc",
		PatternID:   "test/p",
		Severity:    types.SevHigh,
		Location:    types.Location{Path: "a.py"},
		SecretHash:  "sha256:sec",
	}
	e := FromFinding(f, StatusAccepted, "known fixture")
	assert.Equal(t, f.Fingerprint, e.Fingerprint)
	assert.Equal(t, StatusAccepted, e.Status)
	assert.False(t, e.ReviewedAt.IsZero())
}
