package providers

import (
	"github.com/spikermint/vet/internal/pattern"
	"github.com/spikermint/vet/internal/types"
)

var anthropic = Provider{
	ID:   "anthropic",
	Name: "Anthropic",
	Patterns: []pattern.Spec{{
		ID:             "ai/anthropic-api-key",
		Group:          types.GroupAI,
		Name:           "Anthropic API Key",
		Description:    "Grants access to the Anthropic API and billing.",
		Severity:       types.SevHigh,
		Regex:          `\b(sk-ant-[A-Za-z0-9_\-]{32,120})\b`,
		Keywords:       []string{"sk-ant-"},
		DefaultEnabled: true,
		MinEntropy:     3.5,
	}},
}

var openAI = Provider{
	ID:   "openai",
	Name: "OpenAI",
	Patterns: []pattern.Spec{{
		ID:             "ai/openai-api-key",
		Group:          types.GroupAI,
		Name:           "OpenAI API Key",
		Description:    "Grants access to the OpenAI API and billing.",
		Severity:       types.SevHigh,
		Regex:          `\b(sk-[A-Za-z0-9]{48})\b`,
		Keywords:       []string{"sk-"},
		DefaultEnabled: true,
		MinEntropy:     3.5,
	}},
}

var groq = Provider{
	ID:   "groq",
	Name: "Groq",
	Patterns: []pattern.Spec{{
		ID:             "ai/groq-api-key",
		Group:          types.GroupAI,
		Name:           "Groq API Key",
		Description:    "Grants access to the Groq inference API.",
		Severity:       types.SevHigh,
		Regex:          `\b(gsk_[A-Za-z0-9]{52})\b`,
		Keywords:       []string{"gsk_"},
		DefaultEnabled: true,
		MinEntropy:     3.5,
	}},
}

var huggingFace = Provider{
	ID:   "huggingface",
	Name: "Hugging Face",
	Patterns: []pattern.Spec{{
		ID:             "ai/huggingface-token",
		Group:          types.GroupAI,
		Name:           "Hugging Face User Access Token",
		Description:    "Grants access to private models, datasets and the Hub API.",
		Severity:       types.SevHigh,
		Regex:          `\b(hf_[A-Za-z0-9]{34,40})\b`,
		Keywords:       []string{"hf_"},
		DefaultEnabled: true,
		MinEntropy:     3.0,
		Verifier:       "huggingface",
	}},
}
