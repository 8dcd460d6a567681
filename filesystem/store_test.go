package filesystem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oyarzun/hdf-compass/errors"
	"github.com/oyarzun/hdf-compass/model"
)

func TestCanHandle(t *testing.T) {
	require.True(t, CanHandle("file://localhost"))
	require.False(t, CanHandle("file://localhost/"))
	require.False(t, CanHandle("file://otherhost"))
	require.False(t, CanHandle("http://localhost"))
	require.False(t, CanHandle(""))
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New("gopher://localhost")
	require.Error(t, err)
	require.True(t, errors.IsCode(err, errors.CodeInvalidURL))
}

func TestNew_Defaults(t *testing.T) {
	s, err := New(LocatorURL)
	require.NoError(t, err)
	require.Equal(t, LocatorURL, s.URL())
	require.True(t, s.Valid())
	require.Equal(t, "Local file system", s.DisplayName())
}

func TestStoreType(t *testing.T) {
	reg := model.NewStoreRegistry()
	reg.Register(StoreType())

	m, err := reg.Open(LocatorURL)
	require.NoError(t, err)
	require.Equal(t, "Local file system", m.Store.DisplayName())

	_, err = reg.Open("file://elsewhere")
	require.True(t, errors.IsCode(err, errors.CodeInvalidURL))
}

func TestStore_Contains(t *testing.T) {
	s := newMemStore(t)

	require.True(t, s.Contains("/"))
	require.True(t, s.Contains("/docs"))
	require.True(t, s.Contains("/docs/readme.txt"))
	require.False(t, s.Contains("/missing"))
	require.False(t, s.Contains("/docs/missing.txt"))
}

func TestStore_ResolveKinds(t *testing.T) {
	s := newMemStore(t)

	n, err := s.Resolve("/docs")
	require.NoError(t, err)
	require.IsType(t, (*Directory)(nil), n)

	n, err = s.Resolve("/docs/readme.txt")
	require.NoError(t, err)
	require.IsType(t, (*File)(nil), n)
}

func TestStore_ResolveKeyEquality(t *testing.T) {
	s := newMemStore(t)

	for _, key := range []string{"/", "/docs", "/docs/readme.txt", "/docs/nested", "/empty"} {
		n, err := s.Resolve(key)
		require.NoError(t, err)
		require.Equal(t, key, n.Key())
		require.Same(t, s, n.Store().(*Store))
	}
}

func TestStore_ResolveNormalizesKeys(t *testing.T) {
	s := newMemStore(t)

	n, err := s.Resolve("/docs/")
	require.NoError(t, err)
	require.Equal(t, "/docs", n.Key())

	n, err = s.Resolve("/docs/../docs/readme.txt")
	require.NoError(t, err)
	require.Equal(t, "/docs/readme.txt", n.Key())

	n, err = s.Resolve("")
	require.NoError(t, err)
	require.Equal(t, "/", n.Key())
}

func TestStore_ResolveNotFound(t *testing.T) {
	s := newMemStore(t)

	_, err := s.Resolve("/missing")
	require.Error(t, err)
	require.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestStore_ResolveFreshNodes(t *testing.T) {
	s := newMemStore(t)

	a, err := s.Resolve("/docs")
	require.NoError(t, err)
	b, err := s.Resolve("/docs")
	require.NoError(t, err)
	require.NotSame(t, a, b)
}

func TestStore_Root(t *testing.T) {
	s := newMemStore(t)

	root, err := s.Root()
	require.NoError(t, err)
	require.Equal(t, "/", root.Key())
	require.Equal(t, "/", root.DisplayName())

	c, ok := root.(model.Container)
	require.True(t, ok)
	require.Equal(t, 2, c.Len()) // /docs and /empty
}

func TestStore_Parent(t *testing.T) {
	s := newMemStore(t)

	n, err := s.Parent("/")
	require.NoError(t, err)
	require.Nil(t, n)

	n, err = s.Parent("/docs/readme.txt")
	require.NoError(t, err)
	require.Equal(t, "/docs", n.Key())

	n, err = s.Parent("/docs")
	require.NoError(t, err)
	require.Equal(t, "/", n.Key())
}

func TestStore_Close(t *testing.T) {
	s := newMemStore(t)

	require.NoError(t, s.Close())
	require.False(t, s.Valid())

	_, err := s.Resolve("/")
	require.Error(t, err)
	require.True(t, errors.IsCode(err, errors.CodeStoreClosed))

	_, err = s.Root()
	require.True(t, errors.IsCode(err, errors.CodeStoreClosed))

	// Close is idempotent in effect.
	require.NoError(t, s.Close())
	_, err = s.Resolve("/")
	require.True(t, errors.IsCode(err, errors.CodeStoreClosed))
}

func TestStore_CloseLeavesNodesStale(t *testing.T) {
	s := newMemStore(t)

	n, err := s.Resolve("/docs/data.bin")
	require.NoError(t, err)
	leaf := n.(model.ArrayLeaf)

	require.NoError(t, s.Close())

	// Already-constructed nodes are not invalidated; only resolution checks
	// store validity. Reads on a stale leaf still hit the backend.
	data, err := leaf.ReadAll()
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, data)

	// Parent lookup resolves through the store and therefore fails.
	d, err := s.Parent("/docs/data.bin")
	require.Error(t, err)
	require.Nil(t, d)
	require.True(t, errors.IsCode(err, errors.CodeStoreClosed))
}

func TestCleanKey(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", "/"},
		{"/", "/"},
		{"docs", "/docs"},
		{"/docs/", "/docs"},
		{"/docs/../empty", "/empty"},
		{"//docs", "/docs"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, cleanKey(tc.in), "cleanKey(%q)", tc.in)
	}
}
