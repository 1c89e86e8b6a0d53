package capability

// Registry maps external names to capability descriptors. Registration is an
// idempotent upsert: the last registration for a name wins, keeping the
// original insertion position so context rendering stays deterministic.
//
// A Registry is populated during agent construction and read-only afterwards;
// it is safe for concurrent reads but not for concurrent registration.
type Registry struct {
	order  []string
	byName map[string]*Descriptor
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Descriptor)}
}

// Register upserts a capability under name. Uniqueness of names within one
// agent is the registrant's responsibility; duplicates simply overwrite.
func (r *Registry) Register(name string, fn Func, adder ScopeAdder) {
	if _, exists := r.byName[name]; !exists {
		r.order = append(r.order, name)
	}
	r.byName[name] = &Descriptor{Name: name, Fn: fn, AddToScope: adder}
}

// Get resolves a descriptor by name.
func (r *Registry) Get(name string) (*Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Len returns the number of registered capabilities.
func (r *Registry) Len() int { return len(r.order) }

// Each visits descriptors in insertion order, stopping at the first error.
func (r *Registry) Each(visit func(*Descriptor) error) error {
	for _, name := range r.order {
		if err := visit(r.byName[name]); err != nil {
			return err
		}
	}
	return nil
}
