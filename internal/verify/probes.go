package verify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spikermint/vet/internal/types"
)

const userAgent = "vet-secrets-scanner"

// terminal builds a result for a completed probe.
func terminal(status types.VerificationStatus, provider, details string) types.Verification {
	return types.Verification{
		Status:     status,
		Provider:   provider,
		Details:    details,
		VerifiedAt: time.Now().UTC(),
	}
}

// tokenProbe issues a single authenticated GET and classifies the response:
// 2xx means the credential is live, 401/403 means revoked or expired,
// anything else is inconclusive.
func tokenProbe(provider, url string, authorize func(*http.Request, string)) Func {
	return func(ctx context.Context, client *http.Client, secret string) (types.Verification, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return types.Verification{}, err
		}
		req.Header.Set("User-Agent", userAgent)
		authorize(req, secret)

		resp, err := client.Do(req)
		if err != nil {
			return types.Verification{}, err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return terminal(types.StatusLive, provider, "credential accepted by provider API"), nil
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return terminal(types.StatusInactive, provider, "credential rejected; revoked or expired"), nil
		default:
			v := terminal(types.StatusInconclusive, provider, "")
			v.Reason = fmt.Sprintf("unexpected status %d from provider API", resp.StatusCode)
			return v, nil
		}
	}
}

func bearer(req *http.Request, secret string) {
	req.Header.Set("Authorization", "Bearer "+secret)
}

// GitHubVerifier probes the authenticated-user endpoint.
func GitHubVerifier(baseURL string) Func {
	return tokenProbe("GitHub", baseURL+"/user", func(req *http.Request, secret string) {
		req.Header.Set("Authorization", "token "+secret)
		req.Header.Set("Accept", "application/vnd.github+json")
	})
}

// StripeVerifier probes the charges list endpoint with basic auth.
func StripeVerifier(baseURL string) Func {
	return tokenProbe("Stripe", baseURL+"/v1/charges?limit=1", func(req *http.Request, secret string) {
		req.SetBasicAuth(secret, "")
	})
}

// SlackVerifier probes auth.test.
func SlackVerifier(baseURL string) Func {
	return tokenProbe("Slack", baseURL+"/api/auth.test", bearer)
}

// HuggingFaceVerifier probes whoami.
func HuggingFaceVerifier(baseURL string) Func {
	return tokenProbe("Hugging Face", baseURL+"/api/whoami-v2", bearer)
}

// Builtin returns a registry with every builtin probe registered under its
// handle, pointed at the real provider endpoints.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register("github", GitHubVerifier("https://api.github.com"))
	r.Register("stripe", StripeVerifier("https://api.stripe.com"))
	r.Register("slack", SlackVerifier("https://slack.com"))
	r.Register("huggingface", HuggingFaceVerifier("https://huggingface.co"))
	return r
}
