package ast

import "regexp"

// .env files are flat KEY=VALUE with no code constructs, so a regex does
// the job without a grammar.
var dotenvLine = regexp.MustCompile(`(?m)^([A-Za-z_][A-Za-z0-9_.\-]*)\s*=\s*['"]?([^\s#'"]{8,120})['"]?`)

func extractDotenv(content []byte, triggers []string) []Candidate {
	var out []Candidate
	for _, loc := range dotenvLine.FindAllSubmatchIndex(content, -1) {
		key := string(content[loc[2]:loc[3]])
		value := string(content[loc[4]:loc[5]])
		if !usableSecret(value) {
			continue
		}
		if !MatchesTrigger(key, triggers) {
			continue
		}
		out = append(out, Candidate{
			PatternID:   PatternIDFor("dotenv"),
			Language:    "dotenv",
			Variable:    key,
			Secret:      value,
			SecretStart: loc[4],
			SecretEnd:   loc[5],
		})
	}
	return out
}
