package filesystem

import (
	"log/slog"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/oyarzun/hdf-compass/errors"
	"github.com/oyarzun/hdf-compass/model"
)

// LocatorURL is the single locator this store accepts. The match is exact,
// not a prefix or pattern.
const LocatorURL = "file://localhost"

// rootKey addresses the top of the store's namespace.
const rootKey = "/"

// Store exposes a billy-backed filesystem as a model.Store.
// Keys are absolute slash-separated paths within the backing filesystem.
//
// The store is a read-only view: it owns no files and holds no handles
// between calls.
type Store struct {
	url     string
	backend billy.Filesystem
	nodes   *model.NodeRegistry
	log     *slog.Logger
	valid   bool
}

// Option configures store creation.
type Option func(*config)

type config struct {
	backend billy.Filesystem
	logger  *slog.Logger
}

// WithBackend replaces the default on-disk backend. Used to browse an
// in-memory or otherwise synthetic filesystem, primarily in tests.
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
	return url == LocatorURL
}

// StoreType returns the plugin descriptor used to register this store with
// a model.StoreRegistry.
func StoreType() model.StoreType {
	return model.StoreType{
		Name:        "Filesystem",
		Description: "Browses local files and folders.",
		CanHandle:   CanHandle,
		Open: func(url string) (model.Store, error) {
			return New(url)
		},
	}
}

// New constructs a filesystem store for the given locator.
// Fails with CodeInvalidURL unless CanHandle accepts the locator.
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
		url:     url,
		backend: cfg.backend,
		nodes:   model.NewNodeRegistry(),
		log:     cfg.logger,
		valid:   true,
	}

	// Directory before File. The predicates are mutually exclusive on any
	// POSIX-like backend, so the order only matters as a documented
	// tie-break.
	s.nodes.Push(directoryType(s))
	s.nodes.Push(fileType(s))

	return s, nil
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
	return "Local file system"
}

// Contains reports whether an entity exists at the given key.
func (s *Store) Contains(key string) bool {
	_, err := s.backend.Stat(cleanKey(key))
	return err == nil
}

// Resolve constructs the node addressed by key, dispatching to the first
// registered node type that claims it. A fresh node is constructed on every
// call; nothing is cached.
func (s *Store) Resolve(key string) (model.Node, error) {
	if !s.valid {
		return nil, errors.Newf(errors.CodeStoreClosed, "store %q is closed", s.url)
	}

	key = cleanKey(key)
	if !s.Contains(key) {
		return nil, errors.Newf(errors.CodeNotFound, "no entity at key %q", key)
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

// Close invalidates the store. Nodes resolved earlier are not invalidated;
// they go stale, and only resolution rechecks validity. Closing twice is a
// no-op.
func (s *Store) Close() error {
	s.valid = false
	return nil
}

// isDir reports whether key names a directory on the backend.
func (s *Store) isDir(key string) bool {
	info, err := s.backend.Stat(key)
	return err == nil && info.IsDir()
}

// isFile reports whether key names a regular file on the backend.
func (s *Store) isFile(key string) bool {
	info, err := s.backend.Stat(key)
	return err == nil && info.Mode().IsRegular()
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
