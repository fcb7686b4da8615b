package pattern

import (
	"github.com/spikermint/vet/internal/types"
)

// Registry is the immutable, validated set of compiled patterns, indexed by
// id. Built once at startup and shared freely across workers.
type Registry struct {
	patterns []Pattern
	byID     map[string]int
}

// Load merges built-in and user specs into a validated registry.
//
// A user spec may replace a built-in with the same id only when it sets
// Override; any other id collision (including between two user specs) is a
// RegistryError wrapping ErrDuplicateID.
func Load(builtin, user []Spec) (*Registry, error) {
	byID := make(map[string]int, len(builtin)+len(user))
	patterns := make([]Pattern, 0, len(builtin)+len(user))

	for _, s := range builtin {
		if _, dup := byID[s.ID]; dup {
			return nil, &RegistryError{PatternID: s.ID, Err: ErrDuplicateID}
		}
		p, err := compile(s)
		if err != nil {
			return nil, err
		}
		byID[s.ID] = len(patterns)
		patterns = append(patterns, p)
	}

	for _, s := range user {
		if idx, dup := byID[s.ID]; dup {
			if !s.Override {
				return nil, &RegistryError{PatternID: s.ID, Err: ErrDuplicateID}
			}
			p, err := compile(s)
			if err != nil {
				return nil, err
			}
			patterns[idx] = p
			continue
		}
		p, err := compile(s)
		if err != nil {
			return nil, err
		}
		byID[s.ID] = len(patterns)
		patterns = append(patterns, p)
	}

	return &Registry{patterns: patterns, byID: byID}, nil
}

// Get looks up a pattern by id.
func (r *Registry) Get(id string) (*Pattern, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return &r.patterns[idx], true
}

// Len returns the number of registered patterns.
func (r *Registry) Len() int { return len(r.patterns) }

// Patterns returns the pattern list in registration order.
func (r *Registry) Patterns() []Pattern { return r.patterns }

// EnabledOptions filters the registry down to the patterns a scan runs.
type EnabledOptions struct {
	// SeverityFloor drops patterns below this severity. Empty means no floor.
	SeverityFloor types.Severity
	// Disabled lists pattern ids to switch off.
	Disabled []string
	// Enabled lists pattern ids to force on, beating Disabled and the floor.
	Enabled []string
}

// Enabled compiles the filtered matcher.
//
// Precedence per rule: explicit enable beats explicit disable beats the
// severity floor beats DefaultEnabled.
func (r *Registry) Enabled(opts EnabledOptions) *Matcher {
	enabled := make(map[string]bool, len(opts.Enabled))
	for _, id := range opts.Enabled {
		enabled[id] = true
	}
	disabled := make(map[string]bool, len(opts.Disabled))
	for _, id := range opts.Disabled {
		disabled[id] = true
	}

	var active []Pattern
	for _, p := range r.patterns {
		switch {
		case enabled[p.ID]:
		case disabled[p.ID]:
			continue
		case opts.SeverityFloor != "" && p.Severity.Rank() < opts.SeverityFloor.Rank():
			continue
		case !p.DefaultEnabled:
			continue
		}
		active = append(active, p)
	}
	return newMatcher(active)
}
