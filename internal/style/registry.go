package style

// UserStore provides user-scoped style overrides from an external store.
// Get returns (nil, nil) when no style with the given id exists; errors
// are reserved for store failures.
type UserStore interface {
	Get(id string) (*Style, error)
}

// Registry resolves style ids through an ordered chain: user override,
// then the bundled system catalog, then the fixed fallback style.
// Resolution never fails; an unknown id yields Fallback.
type Registry struct {
	user UserStore // may be nil
}

// NewRegistry creates a registry. user may be nil when no user-scoped
// store is configured.
func NewRegistry(user UserStore) *Registry {
	return &Registry{user: user}
}

// Resolve returns the style for the given id. Store failures in the user
// scope degrade to the next tier rather than propagating: style lookup is
// on the render path and must not error.
func (r *Registry) Resolve(id string) Style {
	if r.user != nil && id != "" {
		if s, err := r.user.Get(id); err == nil && s != nil {
			return *s
		}
	}
	if s, ok := catalog[id]; ok {
		return s
	}
	return Fallback
}

// Available lists the system catalog only.
func (r *Registry) Available() []Style {
	return SystemStyles()
}
