package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spikermint/vet/internal/types"
)

func registryWith(t *testing.T, handler http.HandlerFunc) (*Registry, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	reg := NewRegistry()
	reg.Register("github", GitHubVerifier(srv.URL))
	reg.Bind("vcs/github-pat", "github")
	return reg, srv
}

func TestVerifyLive(t *testing.T) {
	reg, _ := registryWith(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token ghp_secret", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	})
	d := NewDispatcher(reg, nil)

	res := d.Verify(context.Background(), "vcs/github-pat", "ghp_secret")
	assert.Equal(t, types.StatusLive, res.Status)
	assert.Equal(t, "GitHub", res.Provider)
	assert.False(t, res.VerifiedAt.IsZero())
}

func TestVerifyInactiveOnUnauthorized(t *testing.T) {
	reg, _ := registryWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	d := NewDispatcher(reg, nil)

	res := d.Verify(context.Background(), "vcs/github-pat", "ghp_revoked")
	assert.Equal(t, types.StatusInactive, res.Status)
}

func TestVerifyInconclusiveOnServerError(t *testing.T) {
	reg, _ := registryWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	d := NewDispatcher(reg, nil)

	res := d.Verify(context.Background(), "vcs/github-pat", "ghp_x")
	assert.Equal(t, types.StatusInconclusive, res.Status)
	assert.NotEmpty(t, res.Reason)
}

func TestVerifyInconclusiveOnNetworkError(t *testing.T) {
	reg := NewRegistry()
	reg.Register("github", GitHubVerifier("http://127.0.0.1:1"))
	reg.Bind("vcs/github-pat", "github")
	d := NewDispatcher(reg, &http.Client{Timeout: time.Second})

	res := d.Verify(context.Background(), "vcs/github-pat", "ghp_x")
	assert.Equal(t, types.StatusInconclusive, res.Status)
	assert.NotContains(t, res.Reason, "ghp_x", "reason must not leak the secret")
}

func TestVerifyInconclusiveOnTimeout(t *testing.T) {
	reg, _ := registryWith(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	d := NewDispatcher(reg, nil)
	d.timeout = 20 * time.Millisecond

	res := d.Verify(context.Background(), "vcs/github-pat", "ghp_x")
	assert.Equal(t, types.StatusInconclusive, res.Status)
}

func TestVerifyUnboundPatternIsInconclusive(t *testing.T) {
	d := NewDispatcher(NewRegistry(), nil)
	res := d.Verify(context.Background(), "unknown/pattern", "x")
	assert.Equal(t, types.StatusInconclusive, res.Status)
}

func TestVerifiable(t *testing.T) {
	reg := NewRegistry()
	reg.Register("github", GitHubVerifier("http://example.invalid"))
	reg.Bind("vcs/github-pat", "github")
	reg.Bind("vcs/orphan", "missing-handle")

	assert.True(t, reg.Verifiable("vcs/github-pat"))
	assert.False(t, reg.Verifiable("vcs/orphan"), "binding without a registered func is not verifiable")
	assert.False(t, reg.Verifiable("unknown/pattern"))
}

func TestBuiltinRegistryHandles(t *testing.T) {
	reg := Builtin()
	for _, handle := range []string{"github", "stripe", "slack", "huggingface"} {
		reg.Bind("probe/"+handle, handle)
		assert.True(t, reg.Verifiable("probe/"+handle), handle)
	}
}

func TestTrackerLifecycle(t *testing.T) {
	reg, _ := registryWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	d := NewDispatcher(reg, nil)

	tr := NewTracker()
	assert.Equal(t, StateUnverified, tr.State())
	assert.Nil(t, tr.Result())

	res, err := tr.Run(context.Background(), d, "vcs/github-pat", "ghp_x")
	require.NoError(t, err)
	assert.Equal(t, types.StatusLive, res.Status)
	assert.Equal(t, State("live"), tr.State())
	require.NotNil(t, tr.Result())

	first := tr.Result().VerifiedAt
	time.Sleep(5 * time.Millisecond)

	// terminal states may be re-entered by an explicit re-verification
	_, err = tr.Run(context.Background(), d, "vcs/github-pat", "ghp_x")
	require.NoError(t, err)
	assert.True(t, tr.Result().VerifiedAt.After(first), "verified_at records the latest terminal transition")
}
