package providers

import (
	"github.com/spikermint/vet/internal/pattern"
	"github.com/spikermint/vet/internal/types"
)

var stripe = Provider{
	ID:   "stripe",
	Name: "Stripe",
	Patterns: []pattern.Spec{
		{
			ID:             "payments/stripe-live-key",
			Group:          types.GroupPayments,
			Name:           "Stripe Live Secret Key",
			Description:    "Grants full API access to production payment processing.",
			Severity:       types.SevCritical,
			Regex:          `\b(sk_live_[a-zA-Z0-9]{10,99})\b`,
			Keywords:       []string{"sk_live_"},
			DefaultEnabled: true,
			MinEntropy:     3.0,
			Verifier:       "stripe",
		},
		{
			ID:             "payments/stripe-test-key",
			Group:          types.GroupPayments,
			Name:           "Stripe Test Secret Key",
			Description:    "Exposes test data and configuration; no real money access.",
			Severity:       types.SevLow,
			Regex:          `\b(sk_test_[a-zA-Z0-9]{10,99})\b`,
			Keywords:       []string{"sk_test_"},
			DefaultEnabled: true,
			MinEntropy:     3.0,
			Verifier:       "stripe",
		},
		{
			ID:             "payments/stripe-restricted-key",
			Group:          types.GroupPayments,
			Name:           "Stripe Live Restricted Key",
			Description:    "Grants scoped production access based on key permissions.",
			Severity:       types.SevCritical,
			Regex:          `\b(rk_live_[a-zA-Z0-9]{10,99})\b`,
			Keywords:       []string{"rk_live_"},
			DefaultEnabled: true,
			MinEntropy:     3.0,
			Verifier:       "stripe",
		},
		{
			ID:             "payments/stripe-webhook-secret",
			Group:          types.GroupPayments,
			Name:           "Stripe Webhook Signing Secret",
			Description:    "Allows forging webhook events to the receiving application.",
			Severity:       types.SevHigh,
			Regex:          `\b(whsec_[a-zA-Z0-9]{24,64})\b`,
			Keywords:       []string{"whsec_"},
			DefaultEnabled: true,
			MinEntropy:     3.0,
		},
	},
}

var square = Provider{
	ID:   "square",
	Name: "Square",
	Patterns: []pattern.Spec{
		{
			ID:             "payments/square-access-token",
			Group:          types.GroupPayments,
			Name:           "Square Access Token",
			Description:    "Grants API access to payments and merchant data.",
			Severity:       types.SevCritical,
			Regex:          `\b(EAAA[A-Za-z0-9_\-]{60})\b`,
			Keywords:       []string{"EAAA"},
			DefaultEnabled: true,
			MinEntropy:     3.0,
		},
		{
			ID:             "payments/square-oauth-secret",
			Group:          types.GroupPayments,
			Name:           "Square OAuth Secret",
			Description:    "Allows impersonating the Square application in OAuth flows.",
			Severity:       types.SevHigh,
			Regex:          `\b(sq0csp-[A-Za-z0-9_\-]{43})\b`,
			Keywords:       []string{"sq0csp-"},
			DefaultEnabled: true,
			MinEntropy:     3.0,
		},
	},
}
