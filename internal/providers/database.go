package providers

import (
	"github.com/spikermint/vet/internal/pattern"
	"github.com/spikermint/vet/internal/types"
)

// databaseURIs detects credentials embedded in connection strings. The
// capture is the password component only, so fingerprints stay stable when
// hosts or databases change.
var databaseURIs = Provider{
	ID:   "database-uris",
	Name: "Database Connection Strings",
	Patterns: []pattern.Spec{
		{
			ID:             "database/postgres-uri",
			Group:          types.GroupDatabase,
			Name:           "PostgreSQL URI Credentials",
			Description:    "Connection string with an embedded password.",
			Severity:       types.SevHigh,
			Regex:          `postgres(?:ql)?://[^:/\s]+:([^@\s'"]{4,})@`,
			Keywords:       []string{"postgres"},
			DefaultEnabled: true,
		},
		{
			ID:             "database/mysql-uri",
			Group:          types.GroupDatabase,
			Name:           "MySQL URI Credentials",
			Description:    "Connection string with an embedded password.",
			Severity:       types.SevHigh,
			Regex:          `mysql://[^:/\s]+:([^@\s'"]{4,})@`,
			Keywords:       []string{"mysql"},
			DefaultEnabled: true,
		},
		{
			ID:             "database/mongodb-uri",
			Group:          types.GroupDatabase,
			Name:           "MongoDB URI Credentials",
			Description:    "Connection string with an embedded password.",
			Severity:       types.SevHigh,
			Regex:          `mongodb(?:\+srv)?://[^:/\s]+:([^@\s'"]{4,})@`,
			Keywords:       []string{"mongodb"},
			DefaultEnabled: true,
		},
		{
			ID:             "database/redis-uri",
			Group:          types.GroupDatabase,
			Name:           "Redis URI Credentials",
			Description:    "Connection string with an embedded password.",
			Severity:       types.SevMedium,
			Regex:          `rediss?://[^:/\s]*:([^@\s'"]{4,})@`,
			Keywords:       []string{"redis"},
			DefaultEnabled: true,
		},
	},
}
