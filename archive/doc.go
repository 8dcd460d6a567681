// Package archive exposes a tar or tar.gz archive as a browsable node tree.
//
// It is a second store plugin behind the same model.Store abstraction the
// filesystem store implements: a browsing client cannot tell whether it is
// walking a live directory tree or a mounted archive. Locators use the
// "targz://" scheme followed by the archive path, for example
// "targz:///data/bundle.tar.gz".
//
// The archive is read and indexed once at mount time; a mounted archive is
// a snapshot, so entry data is served from memory and nodes constructed
// from it never touch the archive file again. Entries whose names would
// escape the archive root are skipped during indexing.
package archive
