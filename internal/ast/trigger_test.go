package ast

import "testing"

func TestMatchesTrigger(t *testing.T) {
	words := DefaultTriggerWords
	yes := []string{
		"password",
		"DB_PASSWORD",
		"config.password",
		"password_hash",
		"db_password_encrypted",
		"dbPassword",
		"myPasswordHash",
		"PasswordHash",
		"admin_pwd",
		"db_passwd",
		"MY_API_KEY",
		"my-api-key",
		"apikey",
		"example_key",
		"ACCESS_KEY",
		"authToken",
	}
	no := []string{
		"",
		"passport",
		"ospassword",
		"mypasswordvalue",
		"Passport",
		"tokenizer",
		"secretary",
		"keyboard",
		"monkey",
		"turkey",
	}
	for _, n := range yes {
		if !MatchesTrigger(n, words) {
			t.Errorf("expected %q to match", n)
		}
	}
	for _, n := range no {
		if MatchesTrigger(n, words) {
			t.Errorf("expected %q not to match", n)
		}
	}
}
