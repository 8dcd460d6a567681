package filesystem

import (
	"io/fs"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

// newMemBackend returns an in-memory backend seeded with a small tree:
//
//	/docs/readme.txt   (12 bytes)
//	/docs/data.bin     (4 bytes: 0x01 0x02 0x03 0x04)
//	/docs/nested/deep.txt
//	/empty/
func newMemBackend(t *testing.T) billy.Filesystem {
	t.Helper()
	mem := memfs.New()

	require.NoError(t, mem.MkdirAll("/docs/nested", 0o755))
	require.NoError(t, mem.MkdirAll("/empty", 0o755))
	require.NoError(t, util.WriteFile(mem, "/docs/readme.txt", []byte("hello world\n"), 0o644))
	require.NoError(t, util.WriteFile(mem, "/docs/data.bin", []byte{0x01, 0x02, 0x03, 0x04}, 0o644))
	require.NoError(t, util.WriteFile(mem, "/docs/nested/deep.txt", []byte("deep"), 0o644))

	return mem
}

// newMemStore returns a store browsing a freshly seeded in-memory backend.
func newMemStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := New(LocatorURL, append([]Option{WithBackend(newMemBackend(t))}, opts...)...)
	require.NoError(t, err)
	return s
}

// faultyFS decorates a billy backend with injectable permission failures,
// simulating unreadable files and unlistable directories.
type faultyFS struct {
	billy.Filesystem
	failOpen map[string]bool
	failList map[string]bool
}

func (f *faultyFS) Open(name string) (billy.File, error) {
	if f.failOpen[name] {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return f.Filesystem.Open(name)
}

func (f *faultyFS) ReadDir(name string) ([]os.FileInfo, error) {
	if f.failList[name] {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrPermission}
	}
	return f.Filesystem.ReadDir(name)
}
