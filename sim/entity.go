package sim

// EntityID is an opaque entity identity. The zero value is never issued and
// can be used as a sentinel for "no entity".
type EntityID uint64

// Registry issues unique entity identities. An entity carries no data of its
// own; its shape is defined entirely by which component stores hold an entry
// for it.
type Registry struct {
	next uint64
}

// NewRegistry creates an identity registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// New issues the next entity identity.
func (r *Registry) New() EntityID {
	r.next++
	return EntityID(r.next)
}
