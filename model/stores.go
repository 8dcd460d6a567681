package model

import (
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/oyarzun/hdf-compass/errors"
)

// StoreType describes one store implementation known to a host application.
type StoreType struct {
	// Name is the short plugin name, such as "Filesystem".
	Name string

	// Description is a one-line human-readable plugin summary.
	Description string

	// CanHandle reports whether this implementation accepts the locator.
	// Predicates must be pure; a store is only opened through Open.
	CanHandle func(url string) bool

	// Open constructs a store for a locator that CanHandle accepted.
	Open func(url string) (Store, error)
}

// Mount records one opened store. The ID is assigned by the registry at
// open time so hosts can track and close stores without holding pointers.
type Mount struct {
	ID    uuid.UUID
	URL   string
	Store Store
}

// StoreRegistry holds the ordered set of store implementations available to
// a host and tracks the stores it has opened.
//
// Like NodeRegistry, dispatch is first-match-wins in registration order.
type StoreRegistry struct {
	types  []StoreType
	mounts []Mount
}

// NewStoreRegistry returns an empty registry.
func NewStoreRegistry() *StoreRegistry {
	return &StoreRegistry{}
}

// Register appends a store type to the dispatch order.
func (r *StoreRegistry) Register(t StoreType) {
	r.types = append(r.types, t)
}

// Types returns the registered store types in dispatch order.
func (r *StoreRegistry) Types() []StoreType {
	out := make([]StoreType, len(r.types))
	copy(out, r.types)
	return out
}

// Open picks the first registered store type whose CanHandle accepts the
// locator, opens it, and records the resulting mount. Fails with
// CodeInvalidURL when no registered type accepts the locator.
func (r *StoreRegistry) Open(url string) (Mount, error) {
	for _, t := range r.types {
		if !t.CanHandle(url) {
			continue
		}
		s, err := t.Open(url)
		if err != nil {
			return Mount{}, err
		}
		m := Mount{ID: uuid.New(), URL: url, Store: s}
		r.mounts = append(r.mounts, m)
		return m, nil
	}
	return Mount{}, errors.Newf(errors.CodeInvalidURL, "no registered store type accepts %q", url)
}

// Mounts returns the currently open mounts in open order.
func (r *StoreRegistry) Mounts() []Mount {
	out := make([]Mount, len(r.mounts))
	copy(out, r.mounts)
	return out
}

// Lookup returns the mount with the given ID.
func (r *StoreRegistry) Lookup(id uuid.UUID) (Mount, bool) {
	for _, m := range r.mounts {
		if m.ID == id {
			return m, true
		}
	}
	return Mount{}, false
}

// Close closes the mounted store with the given ID and drops it from the
// mount table. Closing an unknown ID fails with CodeNotFound.
func (r *StoreRegistry) Close(id uuid.UUID) error {
	for i, m := range r.mounts {
		if m.ID == id {
			r.mounts = append(r.mounts[:i], r.mounts[i+1:]...)
			return m.Store.Close()
		}
	}
	return errors.Newf(errors.CodeNotFound, "no mount with id %s", id)
}

// CloseAll closes every open mount, collecting failures rather than
// stopping at the first one. The mount table is emptied regardless.
func (r *StoreRegistry) CloseAll() error {
	var result *multierror.Error
	for _, m := range r.mounts {
		if err := m.Store.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	r.mounts = nil
	return result.ErrorOrNil()
}
