// Package filesystem exposes a local filesystem as a browsable node tree.
//
// The store accepts exactly one locator, LocatorURL, and maps keys directly
// to absolute slash-separated paths on the backing filesystem. Two node
// types are registered against it: Directory (a model.Container over a
// directory listing) and File (a model.ArrayLeaf over a file's bytes). The
// backing filesystem is a go-billy billy.Filesystem, which defaults to the
// real disk and can be swapped for an in-memory one in tests.
//
// Browsing is fail-soft: a directory that cannot be listed behaves as an
// empty container, and a file that cannot be read yields zero-filled bytes
// of its reported size. Callers cannot distinguish substituted zeros from
// real data through this interface; that is a documented limitation of the
// browsing contract, chosen so one unreadable entry never aborts traversal.
package filesystem
