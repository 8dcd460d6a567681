package model

import "iter"

// Node is the common capability shared by every resolved entity.
//
// A node references its owning store but never owns it; closing the store
// does not invalidate nodes already constructed from it. Such nodes simply
// go stale, and only resolution-time operations check store validity.
type Node interface {
	// Key returns the absolute path key addressing this node within its
	// owning store's namespace.
	Key() string

	// Store returns the store this node was resolved from.
	Store() Store

	// DisplayName returns a short human-readable name, typically the last
	// path component of the key.
	DisplayName() string

	// Description returns a one-line human-readable summary of the node.
	Description() string
}

// Container is a node holding an ordered sequence of lazily-resolved
// children.
//
// The child name list is captured once at construction; child nodes are
// constructed on demand through the owning store when indexed or iterated.
type Container interface {
	Node

	// Len returns the number of children captured at construction.
	Len() int

	// Child resolves and returns the child at the given position.
	// Fails with CodeIndexOutOfRange when i is outside [0, Len()).
	Child(i int) (Node, error)

	// Children returns an iterator producing each child node in capture
	// order. The sequence is finite and restartable: every range over it
	// starts a fresh pass over the already-captured name list without
	// re-listing the backing namespace. A resolution failure is yielded as
	// a non-nil error alongside a nil node.
	Children() iter.Seq2[Node, error]
}

// ArrayLeaf is a node exposing its content as a fixed-shape array of
// elements addressable by index or slice.
type ArrayLeaf interface {
	Node

	// Shape returns the array dimensions. For byte-backed leaves this is a
	// single dimension holding the current content length, queried fresh
	// from the backing namespace on every call.
	Shape() []int

	// Dtype returns the element type descriptor.
	Dtype() Dtype

	// ReadAll returns the leaf's entire content as one buffer.
	ReadAll() ([]byte, error)

	// Index returns the single element at position i.
	// Fails with CodeIndexOutOfRange when i is outside the current shape.
	Index(i int) (byte, error)

	// Slice returns elements in the half-open range [low, high), clamped to
	// the current shape. A negative high selects through the end.
	Slice(low, high int) ([]byte, error)
}

// Store represents one mounted, key-addressed hierarchical data source.
//
// A store is usable only while Valid reports true. Close flips the store
// into a terminal closed state: all further resolutions fail with
// CodeStoreClosed, while nodes resolved earlier remain usable but stale.
type Store interface {
	// URL returns the opaque locator this store was opened with.
	URL() string

	// Valid reports whether the store still accepts resolutions.
	Valid() bool

	// DisplayName returns a short human-readable name for the store.
	DisplayName() string

	// Contains reports whether an entity exists at the given key.
	Contains(key string) bool

	// Resolve constructs the node addressed by key. Re-resolving the same
	// key constructs a fresh node; no caching is performed.
	Resolve(key string) (Node, error)

	// Root resolves the store's root key. Equivalent to Resolve("/").
	Root() (Node, error)

	// Parent resolves the parent of the given key, or returns (nil, nil)
	// when key addresses the root.
	Parent(key string) (Node, error)

	// Close invalidates the store. Closing an already-closed store is a
	// no-op returning nil.
	Close() error
}
