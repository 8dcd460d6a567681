package filesystem

import (
	"fmt"
	"io"
	"path"

	"github.com/oyarzun/hdf-compass/errors"
	"github.com/oyarzun/hdf-compass/model"
)

// File is the ArrayLeaf node for regular files. Its whole content is read
// into memory on each access and exposed as a one-dimensional uint8 array.
//
// Nothing is cached at construction: the shape reflects the file's size at
// query time, and every read re-opens the file through a handle scoped to
// that read.
type File struct {
	store *Store
	key   string
}

// fileType returns the node-type descriptor dispatched when a key names a
// regular file.
func fileType(s *Store) model.NodeType {
	return model.NodeType{
		Kind: "file",
		CanHandle: func(_ model.Store, key string) bool {
			return s.isFile(key)
		},
		New: func(_ model.Store, key string) (model.Node, error) {
			return &File{store: s, key: key}, nil
		},
	}
}

// Key returns the file's key.
func (f *File) Key() string {
	return f.key
}

// Store returns the owning store.
func (f *File) Store() model.Store {
	return f.store
}

// DisplayName returns the last path component of the key.
func (f *File) DisplayName() string {
	return path.Base(f.key)
}

// Description returns a one-line summary with the byte size.
func (f *File) Description() string {
	return fmt.Sprintf("File %q, size %d bytes", f.DisplayName(), f.size())
}

// Shape returns the single-dimensional shape holding the file's current
// byte length, queried fresh from the backing filesystem.
func (f *File) Shape() []int {
	return []int{f.size()}
}

// Dtype returns the unsigned 8-bit element type.
func (f *File) Dtype() model.Dtype {
	return model.DtypeUint8
}

// ReadAll returns the file's entire content. An open or read failure
// substitutes a zero-filled buffer of the file's reported size, so callers
// cannot distinguish substituted zeros from real data through this
// interface.
func (f *File) ReadAll() ([]byte, error) {
	return f.contents(), nil
}

// Index returns the single byte at position i.
func (f *File) Index(i int) (byte, error) {
	data := f.contents()
	if i < 0 || i >= len(data) {
		return 0, errors.Newf(errors.CodeIndexOutOfRange, "index %d outside [0, %d)", i, len(data))
	}
	return data[i], nil
}

// Slice returns bytes in the half-open range [low, high), clamped to the
// file's content length. A negative high selects through the end.
func (f *File) Slice(low, high int) ([]byte, error) {
	data := f.contents()
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
	return data[low:high], nil
}

// size returns the file's byte length at query time, or 0 when the backing
// filesystem cannot report it.
func (f *File) size() int {
	info, err := f.store.backend.Stat(f.key)
	if err != nil {
		f.store.log.Debug("file stat failed, reporting size 0", "key", f.key, "error", err)
		return 0
	}
	return int(info.Size())
}

// contents reads the whole file through a scoped handle. A failure on any
// path substitutes zeros of the reported size rather than surfacing.
func (f *File) contents() []byte {
	data, err := f.read()
	if err != nil {
		f.store.log.Debug("file read failed, substituting zeros", "key", f.key, "error", err)
		return make([]byte, f.size())
	}
	return data
}

// read opens the file, reads it whole, and releases the handle before
// returning on every path.
func (f *File) read() ([]byte, error) {
	h, err := f.store.backend.Open(f.key)
	if err != nil {
		return nil, err
	}
	defer func() { _ = h.Close() }()
	return io.ReadAll(h)
}

// Compile-time interface check.
var _ model.ArrayLeaf = (*File)(nil)
