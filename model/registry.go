package model

import (
	"github.com/oyarzun/hdf-compass/errors"
)

// NodeType describes one concrete node variant constructible against a
// store's key space.
type NodeType struct {
	// Kind is a short identifier for the variant, such as "directory".
	Kind string

	// CanHandle reports whether this variant can represent the entity at
	// the given key. Predicates must be pure and side-effect free.
	CanHandle func(s Store, key string) bool

	// New constructs the node for the given key. Called only after
	// CanHandle returned true for the same key.
	New func(s Store, key string) (Node, error)
}

// NodeRegistry dispatches keys to concrete node types in registration
// order. The first type whose CanHandle predicate claims a key wins, which
// makes registration order the tie-break contract when predicates overlap.
//
// Registries are built explicitly once, before first use. There is no
// ambient global registry.
type NodeRegistry struct {
	types []NodeType
}

// NewNodeRegistry returns an empty registry.
func NewNodeRegistry() *NodeRegistry {
	return &NodeRegistry{}
}

// Push appends a node type to the dispatch order.
func (r *NodeRegistry) Push(t NodeType) {
	r.types = append(r.types, t)
}

// Types returns the registered node types in dispatch order.
func (r *NodeRegistry) Types() []NodeType {
	out := make([]NodeType, len(r.types))
	copy(out, r.types)
	return out
}

// Resolve evaluates each registered type's CanHandle predicate in push
// order and constructs the first match. Fails with CodeNoMatch when no
// registered type claims the key.
func (r *NodeRegistry) Resolve(s Store, key string) (Node, error) {
	for _, t := range r.types {
		if t.CanHandle(s, key) {
			return t.New(s, key)
		}
	}
	return nil, errors.Newf(errors.CodeNoMatch, "no node type claims key %q", key)
}
