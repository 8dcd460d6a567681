package modeltest

import (
	"testing"

	"github.com/oyarzun/hdf-compass/errors"
	"github.com/oyarzun/hdf-compass/model"
)

// TestRoot validates the store's root node contract: the root resolves to
// a container whose display name is "/" and whose key round-trips through
// the store.
func TestRoot(t *testing.T, s model.Store) {
	if !s.Valid() {
		t.Fatal("Valid(): got false for a freshly opened store")
	}

	root, err := s.Root()
	if err != nil {
		t.Fatalf("Root(): got error %v, want nil", err)
	}

	c, ok := root.(model.Container)
	if !ok {
		t.Fatalf("Root(): got %T, want a model.Container", root)
	}

	if got := c.DisplayName(); got != "/" {
		t.Errorf("root DisplayName(): got %q, want %q", got, "/")
	}
	if c.Description() == "" {
		t.Error("root Description(): got empty string")
	}

	resolved, err := s.Resolve(root.Key())
	if err != nil {
		t.Fatalf("Resolve(root key %q): got error %v", root.Key(), err)
	}
	if resolved.Key() != root.Key() {
		t.Errorf("Resolve(%q).Key(): got %q, want the same key", root.Key(), resolved.Key())
	}
}

// TestTraversal walks containers down to maxDepth and validates the node
// invariants at every level: index/iteration agreement, key round-tripping
// through the store, and leaf shape consistency.
func TestTraversal(t *testing.T, s model.Store, maxDepth int) {
	root, err := s.Root()
	if err != nil {
		t.Fatalf("Root(): got error %v, want nil", err)
	}
	checkNode(t, s, root, maxDepth)
}

func checkNode(t *testing.T, s model.Store, n model.Node, depth int) {
	t.Helper()

	if !s.Contains(n.Key()) {
		t.Errorf("Contains(%q): got false for a resolved key", n.Key())
	}

	resolved, err := s.Resolve(n.Key())
	if err != nil {
		t.Errorf("Resolve(%q): got error %v, want nil", n.Key(), err)
	} else if resolved.Key() != n.Key() {
		t.Errorf("Resolve(%q).Key(): got %q, want the same key", n.Key(), resolved.Key())
	}

	switch v := n.(type) {
	case model.Container:
		checkContainer(t, s, v, depth)
	case model.ArrayLeaf:
		checkLeaf(t, v)
	default:
		t.Errorf("node %q is neither Container nor ArrayLeaf: %T", n.Key(), n)
	}
}

func checkContainer(t *testing.T, s model.Store, c model.Container, depth int) {
	t.Helper()

	var children []model.Node
	for n, err := range c.Children() {
		if err != nil {
			t.Errorf("Children() of %q: got error %v", c.Key(), err)
			continue
		}
		children = append(children, n)
	}

	if len(children) != c.Len() {
		t.Errorf("container %q: Len() = %d but iteration produced %d nodes", c.Key(), c.Len(), len(children))
		return
	}

	for i, want := range children {
		got, err := c.Child(i)
		if err != nil {
			t.Errorf("Child(%d) of %q: got error %v", i, c.Key(), err)
			continue
		}
		if got.Key() != want.Key() {
			t.Errorf("Child(%d) of %q: got key %q, want %q from iteration", i, c.Key(), got.Key(), want.Key())
		}
	}

	if _, err := c.Child(c.Len()); !errors.IsCode(err, errors.CodeIndexOutOfRange) {
		t.Errorf("Child(Len()) of %q: got %v, want CodeIndexOutOfRange", c.Key(), err)
	}

	if depth <= 0 {
		return
	}
	for _, child := range children {
		checkNode(t, s, child, depth-1)
	}
}

func checkLeaf(t *testing.T, leaf model.ArrayLeaf) {
	t.Helper()

	shape := leaf.Shape()
	if len(shape) == 0 {
		t.Errorf("leaf %q: Shape() is empty", leaf.Key())
		return
	}
	for _, dim := range shape {
		if dim < 0 {
			t.Errorf("leaf %q: negative dimension %d in shape %v", leaf.Key(), dim, shape)
		}
	}

	if leaf.Dtype() == model.DtypeUnknown {
		t.Errorf("leaf %q: Dtype() is DtypeUnknown", leaf.Key())
	}

	data, err := leaf.ReadAll()
	if err != nil {
		t.Errorf("ReadAll() of %q: got error %v", leaf.Key(), err)
		return
	}
	if len(data) != shape[0] {
		t.Errorf("leaf %q: ReadAll() returned %d bytes, want shape %d", leaf.Key(), len(data), shape[0])
	}

	full, err := leaf.Slice(0, -1)
	if err != nil {
		t.Errorf("Slice(0, -1) of %q: got error %v", leaf.Key(), err)
	} else if len(full) != len(data) {
		t.Errorf("leaf %q: Slice(0, -1) returned %d bytes, want %d", leaf.Key(), len(full), len(data))
	}
}

// TestParent validates parent-link invariants: the root has no parent, and
// every child's parent key is its container's key.
func TestParent(t *testing.T, s model.Store, maxDepth int) {
	root, err := s.Root()
	if err != nil {
		t.Fatalf("Root(): got error %v, want nil", err)
	}

	p, err := s.Parent(root.Key())
	if err != nil {
		t.Errorf("Parent(root): got error %v, want nil", err)
	}
	if p != nil {
		t.Errorf("Parent(root): got node %q, want nil", p.Key())
	}

	checkParents(t, s, root, maxDepth)
}

func checkParents(t *testing.T, s model.Store, n model.Node, depth int) {
	t.Helper()

	c, ok := n.(model.Container)
	if !ok || depth <= 0 {
		return
	}

	for child, err := range c.Children() {
		if err != nil {
			continue
		}
		p, err := s.Parent(child.Key())
		if err != nil {
			t.Errorf("Parent(%q): got error %v, want nil", child.Key(), err)
			continue
		}
		if p == nil {
			t.Errorf("Parent(%q): got nil for a non-root key", child.Key())
			continue
		}
		if p.Key() != c.Key() {
			t.Errorf("Parent(%q): got key %q, want %q", child.Key(), p.Key(), c.Key())
		}
		checkParents(t, s, child, depth-1)
	}
}

// TestClose validates the terminal close contract: resolutions fail with
// CodeStoreClosed afterward and a second close is a no-op.
func TestClose(t *testing.T, s model.Store) {
	root, err := s.Root()
	if err != nil {
		t.Fatalf("Root(): got error %v, want nil", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}
	if s.Valid() {
		t.Error("Valid(): got true after Close")
	}

	if _, err := s.Resolve(root.Key()); !errors.IsCode(err, errors.CodeStoreClosed) {
		t.Errorf("Resolve after Close: got %v, want CodeStoreClosed", err)
	}
	if _, err := s.Root(); !errors.IsCode(err, errors.CodeStoreClosed) {
		t.Errorf("Root after Close: got %v, want CodeStoreClosed", err)
	}

	if err := s.Close(); err != nil {
		t.Errorf("second Close(): got error %v, want nil", err)
	}
}
