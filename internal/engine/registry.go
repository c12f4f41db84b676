package engine

import "slices"

// NameRegistry records the names claimed by icons during a run, in claim
// order. Duplicates are kept: each icon claims exactly one entry.
type NameRegistry struct {
	names []string
}

// Claim appends name to the registry.
func (r *NameRegistry) Claim(name string) {
	r.names = append(r.names, name)
}

// Names returns a copy of the claimed names.
func (r *NameRegistry) Names() []string {
	return slices.Clone(r.names)
}

// Contains reports whether name has been claimed.
func (r *NameRegistry) Contains(name string) bool {
	return slices.Contains(r.names, name)
}

// Len returns the number of claims.
func (r *NameRegistry) Len() int { return len(r.names) }

// Reset forgets every claim.
func (r *NameRegistry) Reset() { r.names = nil }
