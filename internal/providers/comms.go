package providers

import (
	"github.com/spikermint/vet/internal/pattern"
	"github.com/spikermint/vet/internal/types"
)

var slack = Provider{
	ID:   "slack",
	Name: "Slack",
	Patterns: []pattern.Spec{
		{
			ID:             "comms/slack-token",
			Group:          types.GroupComms,
			Name:           "Slack Token",
			Description:    "Bot, user or app token granting workspace API access.",
			Severity:       types.SevHigh,
			Regex:          `\b(xox[baprs]-[A-Za-z0-9\-]{10,250})\b`,
			Keywords:       []string{"xox"},
			DefaultEnabled: true,
			MinEntropy:     3.0,
			Verifier:       "slack",
		},
		{
			ID:             "comms/slack-webhook",
			Group:          types.GroupComms,
			Name:           "Slack Incoming Webhook",
			Description:    "Allows posting arbitrary messages to a channel.",
			Severity:       types.SevMedium,
			Regex:          `(https://hooks.slack.com/services/T[A-Za-z0-9_/]{20,90})`,
			Keywords:       []string{"hooks.slack.com"},
			DefaultEnabled: true,
		},
	},
}

var discord = Provider{
	ID:   "discord",
	Name: "Discord",
	Patterns: []pattern.Spec{{
		ID:             "comms/discord-webhook",
		Group:          types.GroupComms,
		Name:           "Discord Webhook URL",
		Description:    "Allows posting arbitrary messages to a channel.",
		Severity:       types.SevMedium,
		Regex:          `(https://discord(?:app)?.com/api/webhooks/[0-9]{17,20}/[A-Za-z0-9_\-]{60,68})`,
		Keywords:       []string{"discord"},
		DefaultEnabled: true,
	}},
}

var twilio = Provider{
	ID:   "twilio",
	Name: "Twilio",
	Patterns: []pattern.Spec{
		{
			ID:             "comms/twilio-api-key",
			Group:          types.GroupComms,
			Name:           "Twilio API Key SID",
			Description:    "Paired with its secret it grants full API access.",
			Severity:       types.SevHigh,
			Regex:          `\b(SK[0-9a-fA-F]{32})\b`,
			Keywords:       []string{"SK"},
			DefaultEnabled: true,
			MinEntropy:     3.0,
		},
		{
			ID:             "comms/twilio-account-sid",
			Group:          types.GroupComms,
			Name:           "Twilio Account SID",
			Description:    "Identifies the account; paired with an auth token it grants access.",
			Severity:       types.SevMedium,
			Regex:          `\b(AC[0-9a-f]{32})\b`,
			Keywords:       []string{"AC"},
			DefaultEnabled: true,
			MinEntropy:     3.0,
		},
	},
}

var sendgrid = Provider{
	ID:   "sendgrid",
	Name: "SendGrid",
	Patterns: []pattern.Spec{{
		ID:             "comms/sendgrid-api-key",
		Group:          types.GroupComms,
		Name:           "SendGrid API Key",
		Description:    "Allows sending email as the owning account.",
		Severity:       types.SevHigh,
		Regex:          `\b(SG.[A-Za-z0-9_\-]{22}.[A-Za-z0-9_\-]{43})\b`,
		Keywords:       []string{"SG."},
		DefaultEnabled: true,
		MinEntropy:     3.0,
	}},
}

var telegram = Provider{
	ID:   "telegram",
	Name: "Telegram",
	Patterns: []pattern.Spec{{
		ID:             "comms/telegram-bot-token",
		Group:          types.GroupComms,
		Name:           "Telegram Bot Token",
		Description:    "Grants full control of the bot.",
		Severity:       types.SevHigh,
		Regex:          `\b([0-9]{8,10}:AA[A-Za-z0-9_\-]{33})\b`,
		Keywords:       []string{":AA"},
		DefaultEnabled: true,
		MinEntropy:     3.0,
	}},
}
