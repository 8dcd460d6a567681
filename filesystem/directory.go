package filesystem

import (
	"fmt"
	"iter"
	"path"

	"github.com/oyarzun/hdf-compass/errors"
	"github.com/oyarzun/hdf-compass/model"
)

// Directory is the Container node for directories.
//
// The entry-name snapshot is captured once at construction; children are
// resolved through the owning store only when indexed or iterated, so a
// deep tree is never materialized eagerly.
type Directory struct {
	store *Store
	key   string
	names []string
}

// directoryType returns the node-type descriptor dispatched when a key
// names a directory.
func directoryType(s *Store) model.NodeType {
	return model.NodeType{
		Kind: "directory",
		CanHandle: func(_ model.Store, key string) bool {
			return s.isDir(key)
		},
		New: func(_ model.Store, key string) (model.Node, error) {
			return newDirectory(s, key), nil
		},
	}
}

// newDirectory captures the directory's entry names. A listing failure
// degrades to an empty snapshot rather than surfacing: browsing must never
// abort on one unreadable subtree.
func newDirectory(s *Store, key string) *Directory {
	d := &Directory{store: s, key: key}

	infos, err := s.backend.ReadDir(key)
	if err != nil {
		s.log.Debug("directory listing failed, browsing as empty", "key", key, "error", err)
		return d
	}

	d.names = make([]string, len(infos))
	for i, info := range infos {
		d.names[i] = info.Name()
	}
	return d
}

// Key returns the directory's key.
func (d *Directory) Key() string {
	return d.key
}

// Store returns the owning store.
func (d *Directory) Store() model.Store {
	return d.store
}

// DisplayName returns the last path component of the key. The root key
// displays as "/" rather than an empty string.
func (d *Directory) DisplayName() string {
	if d.key == rootKey {
		return rootKey
	}
	return path.Base(d.key)
}

// Description returns a one-line summary with the member count.
func (d *Directory) Description() string {
	return fmt.Sprintf("Folder %q (%d members)", d.DisplayName(), d.Len())
}

// Len returns the number of entry names captured at construction.
func (d *Directory) Len() int {
	return len(d.names)
}

// Child resolves the child at the given position through the owning store.
func (d *Directory) Child(i int) (model.Node, error) {
	if i < 0 || i >= len(d.names) {
		return nil, errors.Newf(errors.CodeIndexOutOfRange, "child index %d outside [0, %d)", i, len(d.names))
	}
	return d.store.Resolve(path.Join(d.key, d.names[i]))
}

// Children returns a restartable iterator over the captured snapshot. Each
// pass resolves children afresh from the name list without re-listing the
// backing filesystem.
func (d *Directory) Children() iter.Seq2[model.Node, error] {
	return func(yield func(model.Node, error) bool) {
		for _, name := range d.names {
			if !yield(d.store.Resolve(path.Join(d.key, name))) {
				return
			}
		}
	}
}

// Compile-time interface check.
var _ model.Container = (*Directory)(nil)
