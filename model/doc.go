// Package model defines the polymorphic node abstraction used to browse
// hierarchical data stores without knowing what backs them.
//
// Every addressable entity is a Node, resolved from a Store by an opaque
// absolute-path key. A Node is either a Container (directory-like, with
// ordered lazily-resolved children) or an ArrayLeaf (file-like, exposing its
// bytes as a shaped, indexable array). Concrete node types are chosen by an
// ordered NodeRegistry: the first registered type whose CanHandle predicate
// claims a key constructs the node.
//
// # Design Philosophy
//
//   - Lazy traversal: containers capture only child names at construction;
//     each child node is constructed on demand when indexed or iterated.
//   - Fail-soft browsing: environmental failures (unlistable directories,
//     unreadable files) degrade to benign defaults so one bad entry never
//     aborts traversal. Structural failures (bad locator, closed store,
//     missing key, out-of-range index) are always surfaced.
//   - No caching: repeated resolution and repeated reads re-query the
//     backing namespace, so results reflect its state at call time.
//
// # Concurrency
//
// The model is synchronous and provides no internal locking. No operation
// suspends or runs in the background, and file handles are scoped to a
// single read. Callers sharing a Store across goroutines must serialize
// access externally.
package model
