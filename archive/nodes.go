package archive

import (
	"fmt"
	"iter"
	"path"

	"github.com/oyarzun/hdf-compass/errors"
	"github.com/oyarzun/hdf-compass/model"
)

// Directory is the Container node for directories within an archive.
// The child-name snapshot comes from the mount-time index, captured in
// archive member order.
type Directory struct {
	store *Store
	key   string
	names []string
}

func directoryType(s *Store) model.NodeType {
	return model.NodeType{
		Kind: "archive-directory",
		CanHandle: func(_ model.Store, key string) bool {
			_, ok := s.children[key]
			return ok
		},
		New: func(_ model.Store, key string) (model.Node, error) {
			names := make([]string, len(s.children[key]))
			copy(names, s.children[key])
			return &Directory{store: s, key: key, names: names}, nil
		},
	}
}

func (d *Directory) Key() string {
	return d.key
}

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

func (d *Directory) Description() string {
	return fmt.Sprintf("Folder %q (%d members)", d.DisplayName(), d.Len())
}

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

// Children returns a restartable iterator over the captured snapshot.
func (d *Directory) Children() iter.Seq2[model.Node, error] {
	return func(yield func(model.Node, error) bool) {
		for _, name := range d.names {
			if !yield(d.store.Resolve(path.Join(d.key, name))) {
				return
			}
		}
	}
}

// Entry is the ArrayLeaf node for regular files within an archive. Its
// bytes were indexed at mount time, so reads never fail and never touch
// the archive file again.
type Entry struct {
	store *Store
	key   string
}

func entryType(s *Store) model.NodeType {
	return model.NodeType{
		Kind: "archive-entry",
		CanHandle: func(_ model.Store, key string) bool {
			_, ok := s.entries[key]
			return ok
		},
		New: func(_ model.Store, key string) (model.Node, error) {
			return &Entry{store: s, key: key}, nil
		},
	}
}

func (e *Entry) Key() string {
	return e.key
}

func (e *Entry) Store() model.Store {
	return e.store
}

func (e *Entry) DisplayName() string {
	return path.Base(e.key)
}

func (e *Entry) Description() string {
	return fmt.Sprintf("File %q, size %d bytes", e.DisplayName(), len(e.store.entries[e.key]))
}

// Shape returns the single-dimensional shape holding the entry's byte
// length.
func (e *Entry) Shape() []int {
	return []int{len(e.store.entries[e.key])}
}

// Dtype returns the unsigned 8-bit element type.
func (e *Entry) Dtype() model.Dtype {
	return model.DtypeUint8
}

// ReadAll returns a copy of the entry's content so callers cannot mutate
// the mount-time index.
func (e *Entry) ReadAll() ([]byte, error) {
	data := e.store.entries[e.key]
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Index returns the single byte at position i.
func (e *Entry) Index(i int) (byte, error) {
	data := e.store.entries[e.key]
	if i < 0 || i >= len(data) {
		return 0, errors.Newf(errors.CodeIndexOutOfRange, "index %d outside [0, %d)", i, len(data))
	}
	return data[i], nil
}

// Slice returns bytes in the half-open range [low, high), clamped to the
// entry's length. A negative high selects through the end.
func (e *Entry) Slice(low, high int) ([]byte, error) {
	data := e.store.entries[e.key]
	if low < 0 {
		low = 0
	}
	if low > len(data) {
		low = len(data)
	}
	if high < 0 || high > len(data) {
		high = len(data)
	}
	if high < low {
		high = low
	}
	out := make([]byte, high-low)
	copy(out, data[low:high])
	return out, nil
}

// Compile-time interface checks.
var (
	_ model.Container = (*Directory)(nil)
	_ model.ArrayLeaf = (*Entry)(nil)
)
