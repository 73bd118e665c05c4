// Package fstree rebuilds a directory tree from a terminal trace of cd and ls
// commands and aggregates directory sizes.
//
// Nodes live in a graph keyed by their canonical full path ("/", "/a",
// "/a/e"). Entering a directory looks its path up or inserts it, leaving it
// looks up the parent path: no node is ever moved.
package fstree

import (
	"path"
	"sync"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-puzzlepipe/internal/store"
	"github.com/askiada/go-puzzlepipe/pkg/reduce"
)

// Root is the path of the root directory.
const Root = "/"

type Kind int

const (
	Dir Kind = iota
	File
)

func (k Kind) String() string {
	if k == File {
		return "file"
	}

	return "dir"
}

// Node is a file or a directory. Size is only set for files.
type Node struct {
	Path string
	Kind Kind
	Size uint64
}

func nodeHash(n Node) string {
	return n.Path
}

// Join returns the path of name inside dir.
func Join(dir, name string) string {
	return path.Join(dir, name)
}

type Tree struct {
	graph graph.Graph[string, Node]
	store *store.Arena[string, Node]

	mu    sync.Mutex
	sizes map[string]uint64
}

func newTree() *Tree {
	arena := store.NewArena[string, Node]()

	return &Tree{
		graph: graph.NewWithStore(nodeHash, graph.Store[string, Node](arena), graph.Directed(), graph.Tree(), graph.PreventCycles()),
		store: arena,
	}
}

func (t *Tree) node(p string) (Node, bool) {
	n, err := t.graph.Vertex(p)
	if err != nil {
		return Node{}, false
	}

	return n, true
}

// add inserts n below its parent directory. Adding a node that already exists
// with the same kind and size is a no-op.
func (t *Tree) add(n Node) error {
	if existing, ok := t.node(n.Path); ok {
		if existing != n {
			return errors.Wrapf(ErrConflict, "%s %s already listed as %s", n.Kind, n.Path, existing.Kind)
		}

		return nil
	}

	err := t.graph.AddVertex(n, graph.VertexAttribute("kind", n.Kind.String()))
	if err != nil {
		return errors.Wrapf(err, "unable to add %s", n.Path)
	}

	if n.Path != Root {
		err = t.graph.AddEdge(path.Dir(n.Path), n.Path)
		if err != nil {
			return errors.Wrapf(err, "unable to link %s", n.Path)
		}
	}

	t.invalidate()

	return nil
}

func (t *Tree) invalidate() {
	t.mu.Lock()
	t.sizes = nil
	t.mu.Unlock()
}

// Node returns the node at p.
func (t *Tree) Node(p string) (Node, error) {
	n, ok := t.node(p)
	if !ok {
		return Node{}, errors.Wrap(ErrNotFound, p)
	}

	return n, nil
}

// Children returns the paths directly below p, in ascending order.
func (t *Tree) Children(p string) ([]string, error) {
	children, err := t.store.Successors(p)
	if err != nil {
		return nil, errors.Wrap(ErrNotFound, p)
	}

	return children, nil
}

// Nodes returns every node ordered by path.
func (t *Tree) Nodes() ([]Node, error) {
	paths, err := t.store.ListVertices()
	if err != nil {
		return nil, errors.Wrap(err, "unable to list nodes")
	}

	res := make([]Node, 0, len(paths))

	for _, p := range paths {
		n, err := t.graph.Vertex(p)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to get %s", p)
		}

		res = append(res, n)
	}

	return res, nil
}

// Size returns the size of a file, or the total size of every file below a
// directory.
func (t *Tree) Size(p string) (uint64, error) {
	sizes, err := t.aggregate()
	if err != nil {
		return 0, err
	}

	size, ok := sizes[p]
	if !ok {
		return 0, errors.Wrap(ErrNotFound, p)
	}

	return size, nil
}

// DirSizes returns the total size of every directory, keyed by path.
func (t *Tree) DirSizes() (map[string]uint64, error) {
	sizes, err := t.aggregate()
	if err != nil {
		return nil, err
	}

	res := make(map[string]uint64)

	for p, size := range sizes {
		n, _ := t.node(p)
		if n.Kind == Dir {
			res[p] = size
		}
	}

	return res, nil
}

// aggregate computes the size of every node once, children before parents.
func (t *Tree) aggregate() (map[string]uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sizes != nil {
		return t.sizes, nil
	}

	order, err := graph.TopologicalSort(t.graph)
	if err != nil {
		return nil, errors.Wrap(err, "unable to sort tree")
	}

	sizes := make(map[string]uint64, len(order))

	for i := len(order) - 1; i >= 0; i-- {
		p := order[i]

		n, err := t.graph.Vertex(p)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to get %s", p)
		}

		if n.Kind == File {
			sizes[p] = n.Size

			continue
		}

		children, err := t.store.Successors(p)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to get children of %s", p)
		}

		var total uint64
		for _, child := range children {
			total, err = reduce.CheckedAdd(total, sizes[child])
			if err != nil {
				return nil, errors.Wrapf(err, "size of %s", p)
			}
		}

		sizes[p] = total
	}

	t.sizes = sizes

	return sizes, nil
}
