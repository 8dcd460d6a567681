package archive

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/oyarzun/hdf-compass/errors"
	"github.com/oyarzun/hdf-compass/model"
)

// Scheme prefixes every locator this store accepts.
const Scheme = "targz://"

const rootKey = "/"

// Store exposes an indexed tar archive as a model.Store.
// Keys are absolute slash-separated paths within the archive.
type Store struct {
	url      string
	path     string
	nodes    *model.NodeRegistry
	log      *slog.Logger
	valid    bool
	entries  map[string][]byte   // regular-file contents by key
	children map[string][]string // ordered child names by directory key
}

// Option configures store creation.
type Option func(*config)

type config struct {
	backend billy.Filesystem
	logger  *slog.Logger
}

// WithBackend replaces the default on-disk backend the archive file is
// read from. Used with an in-memory filesystem in tests.
func WithBackend(fs billy.Filesystem) Option {
	return func(c *config) {
		c.backend = fs
	}
}

// WithLogger replaces the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// CanHandle reports whether this store implementation accepts the locator.
func CanHandle(url string) bool {
	return strings.HasPrefix(url, Scheme) && len(url) > len(Scheme)
}

// StoreType returns the plugin descriptor used to register this store with
// a model.StoreRegistry.
func StoreType() model.StoreType {
	return model.StoreType{
		Name:        "Tar archive",
		Description: "Browses tar and tar.gz archives.",
		CanHandle:   CanHandle,
		Open: func(url string) (model.Store, error) {
			return New(url)
		},
	}
}

// New mounts the archive named by the locator. The whole archive is read
// and indexed here; fails with CodeIO when it cannot be read and with
// CodeInvalidURL when the locator is not recognized.
func New(url string, opts ...Option) (*Store, error) {
	if !CanHandle(url) {
		return nil, errors.Newf(errors.CodeInvalidURL, "unrecognized locator %q", url)
	}

	cfg := config{
		backend: osfs.New("/"),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Store{
		url:      url,
		path:     strings.TrimPrefix(url, Scheme),
		nodes:    model.NewNodeRegistry(),
		log:      cfg.logger,
		valid:    true,
		entries:  make(map[string][]byte),
		children: map[string][]string{rootKey: nil},
	}

	if err := s.index(cfg.backend); err != nil {
		return nil, err
	}

	s.nodes.Push(directoryType(s))
	s.nodes.Push(entryType(s))

	return s, nil
}

// index reads the archive once and builds the key space. Gzip compression
// is detected by attempting a gzip reader first.
func (s *Store) index(backend billy.Filesystem) error {
	f, err := backend.Open(s.path)
	if err != nil {
		return errors.Wrapf(err, errors.CodeIO, "opening archive %q", s.path)
	}
	defer func() { _ = f.Close() }()

	raw, err := io.ReadAll(f)
	if err != nil {
		return errors.Wrapf(err, errors.CodeIO, "reading archive %q", s.path)
	}

	var r io.Reader = bytes.NewReader(raw)
	if gz, gzErr := gzip.NewReader(bytes.NewReader(raw)); gzErr == nil {
		r = gz
	}

	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, errors.CodeIO, "reading archive %q", s.path)
		}

		key, ok := s.entryKey(hdr.Name)
		if !ok {
			continue
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			s.addDir(key)
		case tar.TypeReg:
			data, err := io.ReadAll(tr)
			if err != nil {
				return errors.Wrapf(err, errors.CodeIO, "reading entry %q", hdr.Name)
			}
			s.addFile(key, data)
		default:
			// Links and special entries are not browsable.
			s.log.Debug("skipping unsupported archive entry", "name", hdr.Name, "type", hdr.Typeflag)
		}
	}
}

// entryKey converts an archive member name to a key, rejecting names that
// would escape the archive root. The traversal check runs on the relative
// name: cleaning an anchored path would silently swallow leading "..".
func (s *Store) entryKey(name string) (string, bool) {
	clean := path.Clean(strings.TrimPrefix(name, "/"))
	if clean == "." {
		return "", false
	}
	if clean == ".." || strings.HasPrefix(clean, "../") {
		s.log.Debug("skipping entry escaping archive root", "name", name)
		return "", false
	}
	return "/" + clean, true
}

// addDir registers a directory key and links it under its parent.
func (s *Store) addDir(key string) {
	if _, ok := s.children[key]; ok {
		return
	}
	s.children[key] = nil
	s.link(key)
}

// addFile registers a file entry and links it under its parent.
func (s *Store) addFile(key string, data []byte) {
	if _, ok := s.entries[key]; ok {
		return
	}
	s.entries[key] = data
	s.link(key)
}

// link records key under its parent directory, creating intermediate
// directories for archives without explicit directory members.
func (s *Store) link(key string) {
	parent := path.Dir(key)
	if _, ok := s.children[parent]; !ok {
		s.addDir(parent)
	}
	name := path.Base(key)
	for _, existing := range s.children[parent] {
		if existing == name {
			return
		}
	}
	s.children[parent] = append(s.children[parent], name)
}

// URL returns the locator the store was opened with.
func (s *Store) URL() string {
	return s.url
}

// Valid reports whether the store still accepts resolutions.
func (s *Store) Valid() bool {
	return s.valid
}

// DisplayName returns a short human-readable name for the store.
func (s *Store) DisplayName() string {
	return "Archive " + path.Base(s.path)
}

// Contains reports whether an entity exists at the given key.
func (s *Store) Contains(key string) bool {
	key = cleanKey(key)
	if _, ok := s.children[key]; ok {
		return true
	}
	_, ok := s.entries[key]
	return ok
}

// Resolve constructs the node addressed by key, dispatching to the first
// registered node type that claims it.
func (s *Store) Resolve(key string) (model.Node, error) {
	if !s.valid {
		return nil, errors.Newf(errors.CodeStoreClosed, "store %q is closed", s.url)
	}

	key = cleanKey(key)
	if !s.Contains(key) {
		return nil, errors.Newf(errors.CodeNotFound, "no entry at key %q", key)
	}

	return s.nodes.Resolve(s, key)
}

// Root resolves the store's root key.
func (s *Store) Root() (model.Node, error) {
	return s.Resolve(rootKey)
}

// Parent resolves the parent of the given key, or returns (nil, nil) when
// key addresses the root.
func (s *Store) Parent(key string) (model.Node, error) {
	key = cleanKey(key)
	if key == rootKey {
		return nil, nil
	}
	return s.Resolve(path.Dir(key))
}

// Close invalidates the store. Nodes resolved earlier keep serving their
// already-indexed data; only resolution rechecks validity. Closing twice is
// a no-op.
func (s *Store) Close() error {
	s.valid = false
	return nil
}

// cleanKey normalizes a key to an absolute, cleaned, slash-separated path.
func cleanKey(key string) string {
	if key == "" {
		return rootKey
	}
	if key[0] != '/' {
		key = "/" + key
	}
	return path.Clean(key)
}

// Compile-time interface check.
var _ model.Store = (*Store)(nil)
