// Package protocol defines the editor-facing data contracts. A language
// server transports these shapes; each editor extension renders them into
// its native UI.
package protocol

import (
	"github.com/spikermint/vet/internal/types"
)

// ExposureRisk states whether a secret has already reached git history.
type ExposureRisk string

const (
	// ExposureNotInHistory means the secret is not in HEAD; removing it
	// before committing is sufficient.
	ExposureNotInHistory ExposureRisk = "notInHistory"
	// ExposureInHistory means the secret exists in HEAD and must be rotated.
	ExposureInHistory ExposureRisk = "inHistory"
	// ExposureUnknown means git state could not be determined.
	ExposureUnknown ExposureRisk = "unknown"
)

// VerificationInfo is the wire form of a verification result.
type VerificationInfo struct {
	Status     types.VerificationStatus `json:"status"`
	Provider   string                   `json:"provider,omitempty"`
	Details    string                   `json:"details,omitempty"`
	Reason     string                   `json:"reason,omitempty"`
	VerifiedAt string                   `json:"verifiedAt"`
}

// RemediationInfo carries advice tailored to the git exposure of a secret.
type RemediationInfo struct {
	Exposure ExposureRisk `json:"exposure"`
	Advice   string       `json:"advice"`
}

// HoverData is the payload of the vet/hoverData request.
type HoverData struct {
	PatternName  string            `json:"patternName"`
	Severity     types.Severity    `json:"severity"`
	Description  string            `json:"description"`
	Verification *VerificationInfo `json:"verification,omitempty"`
	Remediation  RemediationInfo   `json:"remediation"`
}

// DiagnosticData rides on each published diagnostic so extensions can power
// code actions, hover lookups and verification triggers.
type DiagnosticData struct {
	Fingerprint  string            `json:"fingerprint"`
	FindingID    string            `json:"findingId"`
	Verifiable   bool              `json:"verifiable"`
	Verification *VerificationInfo `json:"verification,omitempty"`
}

// VerificationInfoFrom converts an internal verification result.
func VerificationInfoFrom(v *types.Verification) *VerificationInfo {
	if v == nil {
		return nil
	}
	return &VerificationInfo{
		Status:     v.Status,
		Provider:   v.Provider,
		Details:    v.Details,
		Reason:     v.Reason,
		VerifiedAt: v.VerifiedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// HoverFor assembles hover content for a finding given its pattern metadata
// and git exposure.
func HoverFor(f types.Finding, description string, exposure ExposureRisk) HoverData {
	advice := f.Group.Remediation()
	if exposure == ExposureNotInHistory {
		advice = "Remove the secret before committing; it has not reached git history."
	}
	return HoverData{
		PatternName:  f.PatternName,
		Severity:     f.Severity,
		Description:  description,
		Verification: VerificationInfoFrom(f.Verification),
		Remediation:  RemediationInfo{Exposure: exposure, Advice: advice},
	}
}

// DiagnosticFor assembles per-diagnostic data for a finding. The finding id
// distinguishes multiple occurrences of one fingerprint within a session.
func DiagnosticFor(f types.Finding, findingID string) DiagnosticData {
	return DiagnosticData{
		Fingerprint:  f.Fingerprint,
		FindingID:    findingID,
		Verifiable:   f.Verifiable,
		Verification: VerificationInfoFrom(f.Verification),
	}
}
