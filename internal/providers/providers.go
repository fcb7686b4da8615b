// Package providers holds the builtin detection rule catalogue, grouped by
// provider. Each provider contributes one or more pattern specs and may name
// a verification strategy handle.
package providers

import "github.com/spikermint/vet/internal/pattern"

// Provider groups related patterns for one service.
type Provider struct {
	ID       string
	Name     string
	Patterns []pattern.Spec
}

// Builtin returns every builtin provider.
func Builtin() []Provider {
	return []Provider{
		// ai
		anthropic, openAI, groq, huggingFace,
		// cloud
		aws, gcp, cloudflare, digitalOcean,
		// payments
		stripe, square,
		// vcs
		github, gitlab,
		// infra
		terraformCloud, datadog, npm,
		// database
		databaseURIs,
		// comms
		slack, discord, twilio, sendgrid, telegram,
	}
}

// Specs flattens the builtin catalogue into the registry load order.
func Specs() []pattern.Spec {
	var out []pattern.Spec
	for _, p := range Builtin() {
		out = append(out, p.Patterns...)
	}
	return out
}
