// Package modeltest provides a conformance test suite for validating store
// implementations against the model.Store and node interface contracts.
//
// The checks are content-independent: they assert structural invariants
// (key round-tripping, index/iteration agreement, parent links, close
// semantics) over whatever tree the store exposes, so any store can run
// them without seeding specific fixtures.
//
// Example usage:
//
//	func TestMyStore(t *testing.T) {
//	    modeltest.Suite(t, func() model.Store {
//	        return mystore.New()
//	    })
//	}
package modeltest

import (
	"testing"

	"github.com/oyarzun/hdf-compass/model"
)

// SuiteConfig configures how deep the suite traverses and which checks to
// skip.
type SuiteConfig struct {
	// MaxDepth bounds container traversal. Depth 0 checks only the root.
	MaxDepth int

	// SkipTests lists top-level check names to skip, such as "Traversal".
	SkipTests []string
}

// DefaultConfig returns the configuration used by Suite.
func DefaultConfig() SuiteConfig {
	return SuiteConfig{MaxDepth: 3}
}

// Suite runs all conformance checks against a store implementation.
// The newStore function must return a fresh store for each check; the
// Close check leaves its store unusable.
func Suite(t *testing.T, newStore func() model.Store) {
	SuiteWithConfig(t, newStore, DefaultConfig())
}

// SuiteWithConfig runs the conformance checks with explicit configuration.
func SuiteWithConfig(t *testing.T, newStore func() model.Store, config SuiteConfig) {
	shouldSkip := func(name string) bool {
		for _, skip := range config.SkipTests {
			if skip == name {
				return true
			}
		}
		return false
	}

	t.Run("Root", func(t *testing.T) {
		if shouldSkip("Root") {
			t.Skip("skipped by suite configuration")
		}
		TestRoot(t, newStore())
	})

	t.Run("Traversal", func(t *testing.T) {
		if shouldSkip("Traversal") {
			t.Skip("skipped by suite configuration")
		}
		TestTraversal(t, newStore(), config.MaxDepth)
	})

	t.Run("Parent", func(t *testing.T) {
		if shouldSkip("Parent") {
			t.Skip("skipped by suite configuration")
		}
		TestParent(t, newStore(), config.MaxDepth)
	})

	t.Run("Close", func(t *testing.T) {
		if shouldSkip("Close") {
			t.Skip("skipped by suite configuration")
		}
		TestClose(t, newStore())
	})
}
