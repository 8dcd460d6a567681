package modeltest_test

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/oyarzun/hdf-compass/filesystem"
	"github.com/oyarzun/hdf-compass/model"
	"github.com/oyarzun/hdf-compass/modeltest"
)

// newSeededBackend builds a small in-memory tree with mixed depth, empty
// directories, and files of varying sizes.
func newSeededBackend(t *testing.T) billy.Filesystem {
	t.Helper()
	mem := memfs.New()

	files := map[string][]byte{
		"/readme.txt":        []byte("top-level file\n"),
		"/src/main.go":       []byte("package main\n"),
		"/src/lib/util.go":   []byte("package lib\n"),
		"/src/lib/empty.bin": nil,
	}
	for name, data := range files {
		if err := util.WriteFile(mem, name, data, 0o644); err != nil {
			t.Fatalf("seeding %s: %v", name, err)
		}
	}
	if err := mem.MkdirAll("/var/cache", 0o755); err != nil {
		t.Fatalf("seeding /var/cache: %v", err)
	}

	return mem
}

// TestIntegration_FilesystemStore validates the filesystem store against
// the full conformance suite over an in-memory backend.
func TestIntegration_FilesystemStore(t *testing.T) {
	modeltest.Suite(t, func() model.Store {
		s, err := filesystem.New(filesystem.LocatorURL, filesystem.WithBackend(newSeededBackend(t)))
		if err != nil {
			t.Fatalf("opening filesystem store: %v", err)
		}
		return s
	})
}

// TestIntegration_DeepTraversal re-runs the traversal checks with a depth
// bound past the deepest seeded directory.
func TestIntegration_DeepTraversal(t *testing.T) {
	modeltest.SuiteWithConfig(t, func() model.Store {
		s, err := filesystem.New(filesystem.LocatorURL, filesystem.WithBackend(newSeededBackend(t)))
		if err != nil {
			t.Fatalf("opening filesystem store: %v", err)
		}
		return s
	}, modeltest.SuiteConfig{MaxDepth: 10})
}
