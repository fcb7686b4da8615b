package protocol

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spikermint/vet/internal/types"
)

func TestHoverDataJSONShape(t *testing.T) {
	f := types.Finding{
		PatternName: "Stripe Live Secret Key",
		Severity:    types.SevCritical,
		Group:       types.GroupPayments,
		Verification: &types.Verification{
			Status:     types.StatusLive,
			Provider:   "Stripe",
			VerifiedAt: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
		},
	}

	data, err := json.Marshal(HoverFor(f, "Grants full API access.", ExposureInHistory))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "Stripe Live Secret Key", m["patternName"])
	assert.Equal(t, "critical", m["severity"])

	verification := m["verification"].(map[string]any)
	assert.Equal(t, "live", verification["status"])
	assert.Equal(t, "2025-01-15T12:00:00Z", verification["verifiedAt"])

	remediation := m["remediation"].(map[string]any)
	assert.Equal(t, "inHistory", remediation["exposure"])
	assert.NotEmpty(t, remediation["advice"])
}

func TestHoverAdviceForUncommittedSecret(t *testing.T) {
	f := types.Finding{Group: types.GroupVCS}
	h := HoverFor(f, "", ExposureNotInHistory)
	assert.Contains(t, h.Remediation.Advice, "before committing")
}

func TestDiagnosticDataOmitsNilVerification(t *testing.T) {
	f := types.Finding{Fingerprint: "sha256:abc", Verifiable: true}
	data, err := json.Marshal(DiagnosticFor(f, "finding-1"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "verification")
	assert.Contains(t, string(data), `"findingId":"finding-1"`)
}
