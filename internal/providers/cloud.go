package providers

import (
	"github.com/spikermint/vet/internal/pattern"
	"github.com/spikermint/vet/internal/types"
)

var aws = Provider{
	ID:   "aws",
	Name: "Amazon Web Services",
	Patterns: []pattern.Spec{
		{
			ID:             "cloud/aws-access-key-id",
			Group:          types.GroupCloud,
			Name:           "AWS Access Key ID",
			Description:    "Identifies an IAM principal; paired with a secret key it grants account access.",
			Severity:       types.SevCritical,
			Regex:          `\b((?:AKIA|ASIA)[0-9A-Z]{16})\b`,
			Keywords:       []string{"AKIA", "ASIA"},
			DefaultEnabled: true,
		},
		{
			ID:              "cloud/aws-secret-access-key",
			Group:           types.GroupCloud,
			Name:            "AWS Secret Access Key",
			Description:     "Grants full access to the owning IAM principal.",
			Severity:        types.SevCritical,
			Regex:           `(?i)aws[a-z_]{0,20}key[a-z_]{0,5}["'\s:=]{1,5}([A-Za-z0-9/+=]{40})\b`,
			Keywords:        []string{"aws"},
			CaseInsensitive: true,
			DefaultEnabled:  true,
			MinEntropy:      3.5,
		},
	},
}

var gcp = Provider{
	ID:   "gcp",
	Name: "Google Cloud Platform",
	Patterns: []pattern.Spec{{
		ID:             "cloud/gcp-api-key",
		Group:          types.GroupCloud,
		Name:           "Google API Key",
		Description:    "Grants access to enabled Google Cloud APIs under the owning project.",
		Severity:       types.SevHigh,
		Regex:          `\b(AIza[0-9A-Za-z_\-]{35})\b`,
		Keywords:       []string{"AIza"},
		DefaultEnabled: true,
	}},
}

var cloudflare = Provider{
	ID:   "cloudflare",
	Name: "Cloudflare",
	Patterns: []pattern.Spec{{
		ID:              "cloud/cloudflare-global-api-key",
		Group:           types.GroupCloud,
		Name:            "Cloudflare Global API Key",
		Description:     "Grants full account access to the Cloudflare API.",
		Severity:        types.SevCritical,
		Regex:           `(?i)cloudflare[a-z_\- ]{0,20}["'\s:=]{1,5}([a-f0-9]{37})\b`,
		Keywords:        []string{"cloudflare"},
		CaseInsensitive: true,
		DefaultEnabled:  true,
		MinEntropy:      3.0,
	}},
}

var digitalOcean = Provider{
	ID:   "digitalocean",
	Name: "DigitalOcean",
	Patterns: []pattern.Spec{{
		ID:             "cloud/digitalocean-pat",
		Group:          types.GroupCloud,
		Name:           "DigitalOcean Personal Access Token",
		Description:    "Grants API access to droplets, volumes and account settings.",
		Severity:       types.SevHigh,
		Regex:          `\b(dop_v1_[a-f0-9]{64})\b`,
		Keywords:       []string{"dop_v1_"},
		DefaultEnabled: true,
		MinEntropy:     3.0,
	}},
}
