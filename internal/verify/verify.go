// Package verify optionally probes detected secrets against their
// provider's API to classify them as live, inactive or inconclusive.
// Verification never runs on the scan pool and never fails the scan:
// every error maps to an inconclusive result with a reason.
package verify

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/spikermint/vet/internal/types"
)

// DefaultTimeout bounds a single verification probe.
const DefaultTimeout = 5 * time.Second

// DefaultProviderConcurrency caps in-flight probes per provider handle.
const DefaultProviderConcurrency = 4

// Func probes a single secret. Implementations make at most one outbound
// request and must never place the secret in an error message or log.
type Func func(ctx context.Context, client *http.Client, secret string) (types.Verification, error)

// Registry maps verifier handles to probe functions and pattern ids to
// handles. Populated at startup, read-only afterwards.
type Registry struct {
	mu       sync.RWMutex
	funcs    map[string]Func
	patterns map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: map[string]Func{}, patterns: map[string]string{}}
}

// Register installs a probe under a handle.
func (r *Registry) Register(handle string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[handle] = fn
}

// Bind associates a pattern id with a verifier handle.
func (r *Registry) Bind(patternID, handle string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patterns[patternID] = handle
}

// Verifiable reports whether the pattern has a bound, registered verifier.
func (r *Registry) Verifiable(patternID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handle, ok := r.patterns[patternID]
	if !ok {
		return false
	}
	_, ok = r.funcs[handle]
	return ok
}

func (r *Registry) lookup(patternID string) (string, Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handle, ok := r.patterns[patternID]
	if !ok {
		return "", nil, false
	}
	fn, ok := r.funcs[handle]
	return handle, fn, ok
}

// Dispatcher executes probes with a per-provider concurrency cap and a hard
// timeout. It is shared across consumers and safe for concurrent use.
type Dispatcher struct {
	reg     *Registry
	client  *http.Client
	timeout time.Duration

	mu   sync.Mutex
	sems map[string]*semaphore.Weighted
}

// NewDispatcher builds a dispatcher around a registry. A nil client gets a
// dedicated client with the default timeout.
func NewDispatcher(reg *Registry, client *http.Client) *Dispatcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Dispatcher{
		reg:     reg,
		client:  client,
		timeout: DefaultTimeout,
		sems:    map[string]*semaphore.Weighted{},
	}
}

func (d *Dispatcher) sem(handle string) *semaphore.Weighted {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.sems[handle]
	if !ok {
		s = semaphore.NewWeighted(DefaultProviderConcurrency)
		d.sems[handle] = s
	}
	return s
}

func inconclusive(reason string) types.Verification {
	return types.Verification{
		Status:     types.StatusInconclusive,
		Reason:     reason,
		VerifiedAt: time.Now().UTC(),
	}
}

// Verify probes the secret for a pattern. The result is always terminal:
// network failures and timeouts come back inconclusive with a reason, never
// as an error.
func (d *Dispatcher) Verify(ctx context.Context, patternID, secret string) types.Verification {
	handle, fn, ok := d.reg.lookup(patternID)
	if !ok {
		return inconclusive("no verifier registered for pattern")
	}

	sem := d.sem(handle)
	if err := sem.Acquire(ctx, 1); err != nil {
		return inconclusive("cancelled while waiting for verification slot")
	}
	defer sem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	res, err := fn(ctx, d.client, secret)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return inconclusive("verification timed out")
		}
		// err may describe a transport failure; it never carries the secret
		log.Debug().Str("pattern", patternID).Err(err).Msg("verification probe failed")
		return inconclusive("network error during verification")
	}
	if res.VerifiedAt.IsZero() {
		res.VerifiedAt = time.Now().UTC()
	}
	return res
}

// State tracks a single finding's verification lifecycle:
//
//	unverified -> verifying -> {live, inactive, inconclusive}
//	                            \-(re-verify)-> verifying
type State string

const (
	StateUnverified State = "unverified"
	StateVerifying  State = "verifying"
)

// Tracker serialises verification of one finding and records the latest
// terminal result. Terminal states may be re-entered via Run.
type Tracker struct {
	mu     sync.Mutex
	state  State
	result *types.Verification
}

// NewTracker starts in the unverified state.
func NewTracker() *Tracker { return &Tracker{state: StateUnverified} }

// State returns the current state; terminal states report the status value.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Result returns the latest terminal result, nil before first completion.
func (t *Tracker) Result() *types.Verification {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result
}

// Run executes one verification pass through the dispatcher, moving through
// verifying to a terminal state. Concurrent calls are rejected while a pass
// is in flight.
func (t *Tracker) Run(ctx context.Context, d *Dispatcher, patternID, secret string) (types.Verification, error) {
	t.mu.Lock()
	if t.state == StateVerifying {
		t.mu.Unlock()
		return types.Verification{}, errors.New("verification already in flight")
	}
	t.state = StateVerifying
	t.mu.Unlock()

	res := d.Verify(ctx, patternID, secret)

	t.mu.Lock()
	t.state = State(res.Status)
	t.result = &res
	t.mu.Unlock()
	return res, nil
}
