package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var triggers = DefaultTriggerWords

func TestExtractPythonAssignment(t *testing.T) {
	content := []byte(`password = "a8Kj2mNx9pQ4rT7v"` + "\n")
	cands, err := Extract("config.py", content, triggers)
	require.NoError(t, err)
	require.Len(t, cands, 1)

	c := cands[0]
	assert.Equal(t, "generic/python-identifier", c.PatternID)
	assert.Equal(t, "password", c.Variable)
	assert.Equal(t, "a8Kj2mNx9pQ4rT7v", c.Secret)
	assert.Equal(t, "a8Kj2mNx9pQ4rT7v", string(content[c.SecretStart:c.SecretEnd]))
}

func TestExtractPythonIgnoresNonTriggerNames(t *testing.T) {
	cands, err := Extract("config.py", []byte(`greeting = "hello there world"`), triggers)
	require.NoError(t, err)
	assert.Empty(t, cands)
}

func TestExtractPythonIgnoresNonStringValues(t *testing.T) {
	cands, err := Extract("config.py", []byte("password = get_password()\ntoken = other_token\n"), triggers)
	require.NoError(t, err)
	assert.Empty(t, cands, "calls and references are not literals")
}

func TestExtractJavaScriptDeclarators(t *testing.T) {
	content := []byte(`const apiKey = "zQ81vNm4kX2pLr9t";` + "\n" + `cfg.authToken = 'bW7jD3fKs8hG5xYq';` + "\n")
	cands, err := Extract("app.js", content, triggers)
	require.NoError(t, err)
	require.Len(t, cands, 2)
	assert.Equal(t, "generic/javascript-identifier", cands[0].PatternID)
}

func TestExtractGoShortVarDeclaration(t *testing.T) {
	content := []byte("package main\n\nfunc main() {\n\tapiKey := \"zQ81vNm4kX2pLr9t\"\n\t_ = apiKey\n}\n")
	cands, err := Extract("main.go", content, triggers)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, "apiKey", cands[0].Variable)
	assert.Equal(t, "zQ81vNm4kX2pLr9t", cands[0].Secret)
}

func TestExtractUnsupportedLanguageYieldsNothing(t *testing.T) {
	cands, err := Extract("script.sh", []byte(`password="a8Kj2mNx9pQ4rT7v"`), triggers)
	require.NoError(t, err)
	assert.Empty(t, cands)
}

func TestExtractSkipsShortValues(t *testing.T) {
	cands, err := Extract("config.py", []byte(`password = "short"`), triggers)
	require.NoError(t, err)
	assert.Empty(t, cands)
}

func TestExtractSkipsVariableReferences(t *testing.T) {
	cands, err := Extract(".env", []byte("DB_PASSWORD=${REAL_PASSWORD}\n"), triggers)
	require.NoError(t, err)
	assert.Empty(t, cands)
}

func TestExtractDotenv(t *testing.T) {
	content := []byte("# comment\nDB_PASSWORD=a8Kj2mNx9pQ4rT7v\nDB_HOST=localhost11\n")
	cands, err := Extract(".env.production", content, triggers)
	require.NoError(t, err)
	require.Len(t, cands, 1)

	c := cands[0]
	assert.Equal(t, "generic/dotenv-identifier", c.PatternID)
	assert.Equal(t, "DB_PASSWORD", c.Variable)
	assert.Equal(t, "a8Kj2mNx9pQ4rT7v", string(content[c.SecretStart:c.SecretEnd]))
}

func TestIsDotenv(t *testing.T) {
	assert.True(t, IsDotenv(".env"))
	assert.True(t, IsDotenv("deploy/.env.local"))
	assert.False(t, IsDotenv("config.env"))
	assert.False(t, IsDotenv(".envrc"))
}

func TestStripQuotes(t *testing.T) {
	tests := []struct {
		in, want string
		lead     int
	}{
		{`"abc"`, "abc", 1},
		{`'abc'`, "abc", 1},
		{"`abc`", "abc", 1},
		{`r"abc"`, "abc", 2},
		{`f"abc"`, "abc", 2},
		{"plain", "plain", 0},
	}
	for _, tt := range tests {
		got, lead := stripQuotes(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.lead, lead, tt.in)
	}
}
