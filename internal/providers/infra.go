package providers

import (
	"github.com/spikermint/vet/internal/pattern"
	"github.com/spikermint/vet/internal/types"
)

var terraformCloud = Provider{
	ID:   "terraform-cloud",
	Name: "Terraform Cloud",
	Patterns: []pattern.Spec{{
		ID:             "infra/terraform-cloud-token",
		Group:          types.GroupInfra,
		Name:           "Terraform Cloud API Token",
		Description:    "Grants access to workspaces, state and runs.",
		Severity:       types.SevHigh,
		Regex:          `\b([A-Za-z0-9]{14}.atlasv1.[A-Za-z0-9_\-]{60,70})\b`,
		Keywords:       []string{"atlasv1"},
		DefaultEnabled: true,
		MinEntropy:     3.0,
	}},
}

var datadog = Provider{
	ID:   "datadog",
	Name: "Datadog",
	Patterns: []pattern.Spec{{
		ID:              "infra/datadog-api-key",
		Group:           types.GroupInfra,
		Name:            "Datadog API Key",
		Description:     "Allows submitting metrics and events to the owning organisation.",
		Severity:        types.SevMedium,
		Regex:           `(?i)datadog[a-z_\- ]{0,20}["'\s:=]{1,5}([a-f0-9]{32})\b`,
		Keywords:        []string{"datadog"},
		CaseInsensitive: true,
		DefaultEnabled:  true,
		MinEntropy:      3.0,
	}},
}

var npm = Provider{
	ID:   "npm",
	Name: "npm Registry",
	Patterns: []pattern.Spec{{
		ID:             "infra/npm-token",
		Group:          types.GroupInfra,
		Name:           "npm Access Token",
		Description:    "Allows publishing packages as the token owner.",
		Severity:       types.SevHigh,
		Regex:          `\b(npm_[A-Za-z0-9]{36})\b`,
		Keywords:       []string{"npm_"},
		DefaultEnabled: true,
		MinEntropy:     3.0,
	}},
}
