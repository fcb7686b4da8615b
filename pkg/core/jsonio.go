package core

import (
	"encoding/json"
	"io"
)

// WriteJSON renders findings as a stable JSON array for downstream
// formatters and CI consumers.
func WriteJSON(w io.Writer, findings []Finding) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if findings == nil {
		findings = []Finding{}
	}
	return enc.Encode(findings)
}
