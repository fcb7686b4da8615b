package providers

import (
	"github.com/spikermint/vet/internal/pattern"
	"github.com/spikermint/vet/internal/types"
)

var github = Provider{
	ID:   "github",
	Name: "GitHub",
	Patterns: []pattern.Spec{
		{
			ID:             "vcs/github-pat",
			Group:          types.GroupVCS,
			Name:           "GitHub Personal Access Token",
			Description:    "Grants repository and API access with the token's scopes.",
			Severity:       types.SevCritical,
			Regex:          `\b(ghp_[A-Za-z0-9]{36})\b`,
			Keywords:       []string{"ghp_"},
			DefaultEnabled: true,
			MinEntropy:     3.0,
			Verifier:       "github",
		},
		{
			ID:             "vcs/github-fine-grained-pat",
			Group:          types.GroupVCS,
			Name:           "GitHub Fine-Grained Personal Access Token",
			Description:    "Grants scoped repository access per the token's permissions.",
			Severity:       types.SevCritical,
			Regex:          `\b(github_pat_[A-Za-z0-9_]{82})\b`,
			Keywords:       []string{"github_pat_"},
			DefaultEnabled: true,
			MinEntropy:     3.0,
			Verifier:       "github",
		},
		{
			ID:             "vcs/github-oauth-token",
			Group:          types.GroupVCS,
			Name:           "GitHub OAuth Access Token",
			Description:    "Acts as the authorising user within the granted OAuth scopes.",
			Severity:       types.SevHigh,
			Regex:          `\b(gho_[A-Za-z0-9]{36})\b`,
			Keywords:       []string{"gho_"},
			DefaultEnabled: true,
			MinEntropy:     3.0,
			Verifier:       "github",
		},
		{
			ID:             "vcs/github-app-token",
			Group:          types.GroupVCS,
			Name:           "GitHub App Token",
			Description:    "Server-to-server or user-to-server token for a GitHub App installation.",
			Severity:       types.SevHigh,
			Regex:          `\b((?:ghs_|ghu_)[A-Za-z0-9]{36})\b`,
			Keywords:       []string{"ghs_", "ghu_"},
			DefaultEnabled: true,
			MinEntropy:     3.0,
		},
	},
}

var gitlab = Provider{
	ID:   "gitlab",
	Name: "GitLab",
	Patterns: []pattern.Spec{{
		ID:             "vcs/gitlab-pat",
		Group:          types.GroupVCS,
		Name:           "GitLab Personal Access Token",
		Description:    "Grants API and repository access with the token's scopes.",
		Severity:       types.SevCritical,
		Regex:          `\b(glpat-[A-Za-z0-9_\-]{20})\b`,
		Keywords:       []string{"glpat-"},
		DefaultEnabled: true,
		MinEntropy:     3.0,
	}},
}
