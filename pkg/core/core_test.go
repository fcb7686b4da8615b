package core

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spikermint/vet/internal/config"
	"github.com/spikermint/vet/internal/types"
)

func TestScanFindsBuiltinPatterns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cfg.txt"),
		[]byte(`key = "sk_live_51NzKDwH3JxMvRtYbUcE8q"`), 0o644))

	res, err := Scan(context.Background(), []string{dir}, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)
	assert.Equal(t, "payments/stripe-live-key", res.Findings[0].PatternID)
}

func TestScanWithConfigCustomPattern(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.txt"),
		[]byte("token INTERNAL_ABCDEFGH234567KLMNOPQ9STUVWX23YZ"), 0o644))

	cfg := Config{}
	cfg.Severity = "low"
	cfg.Patterns = append(cfg.Patterns, configCustomPattern())

	res, err := ScanWithConfig(context.Background(), []string{dir}, cfg, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)
	assert.Equal(t, "custom/internal-token", res.Findings[0].PatternID)
	assert.Equal(t, types.SevHigh, res.Findings[0].Severity)
}

func configCustomPattern() config.CustomPattern {
	return config.CustomPattern{
		ID:       "custom/internal-token",
		Name:     "Internal Token",
		Regex:    `(INTERNAL_[A-Z0-9]{32})`,
		Severity: "high",
		Keywords: []string{"INTERNAL_"},
	}
}

func TestExitCode(t *testing.T) {
	clean := Result{}
	assert.Equal(t, 0, ExitCode(clean, types.SevMedium))

	found := Result{Findings: []Finding{{Severity: types.SevLow}}}
	assert.Equal(t, 0, ExitCode(found, types.SevMedium), "below-floor findings exit zero")
	assert.Equal(t, 1, ExitCode(found, types.SevLow))
}

func TestPatternIDsIncludeGeneric(t *testing.T) {
	ids := PatternIDs()
	assert.Contains(t, ids, "payments/stripe-live-key")
	assert.Contains(t, ids, "generic/python-identifier")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, []Finding{{PatternID: "test/p", Fingerprint: "sha256:abc"}}))

	var out []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "test/p", out[0]["pattern_id"])
}
