package memoryfs

import (
	"slices"
	"strings"
	"sync"

	"github.com/doky-sim/doky-cli/internal/errors"
	"github.com/doky-sim/doky-cli/internal/fs"
)

const (
	// Separator joins folder names when a path is rendered.
	Separator = "\\"
	// PathSeparator delimits segments of a path typed by the user.
	PathSeparator = "/"
)

var _ fs.FolderStore = (*Tree)(nil)

// Tree is an arena of folders. Slots of removed folders are released but never
// reused, so a NodeID always refers to the folder it was issued for or to
// nothing at all.
type Tree struct {
	nodes []*folder
	root  fs.NodeID
	mu    sync.RWMutex
}

func NewTree(rootName string) *Tree {
	t := &Tree{}
	t.root = t.newNode(rootName)
	return t
}

// newNode appends a detached folder. Callers are responsible for validation.
func (t *Tree) newNode(name string) fs.NodeID {
	t.nodes = append(t.nodes, &folder{name: name, parent: fs.NoNode})
	return fs.NodeID(len(t.nodes) - 1)
}

func (t *Tree) Root() fs.NodeID {
	return t.root
}

func (t *Tree) AddChild(parent fs.NodeID, name string) (fs.NodeID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !ValidName(name) {
		return fs.NoNode, errors.Wrapf(errors.ErrInvalidName, "unable to create %q", name)
	}

	p := t.lookup(parent)
	if p == nil {
		return fs.NoNode, errors.Wrapf(errors.ErrInvalidParent, "unable to create %q", name)
	}

	if _, ok := t.findChild(p, name); ok {
		return fs.NoNode, errors.Wrapf(errors.ErrInvalidName, "folder %q already exists", name)
	}

	id := t.newNode(name)
	t.nodes[id].parent = parent
	p.children = append(p.children, id)

	return id, nil
}

func (t *Tree) FindChild(parent fs.NodeID, name string) (fs.NodeID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	p := t.lookup(parent)
	if p == nil {
		return fs.NoNode, false
	}

	return t.findChild(p, name)
}

func (t *Tree) findChild(p *folder, name string) (fs.NodeID, bool) {
	for _, id := range p.children {
		if child := t.lookup(id); child != nil && child.name == name {
			return id, true
		}
	}

	return fs.NoNode, false
}

// RemoveChild detaches and releases the named child of parent. Only empty
// folders can be removed.
func (t *Tree) RemoveChild(parent fs.NodeID, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := t.lookup(parent)
	if p == nil {
		return errors.Wrapf(errors.ErrInvalidParent, "unable to remove %q", name)
	}

	id, ok := t.findChild(p, name)
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "unable to remove %q", name)
	}

	if len(t.nodes[id].children) > 0 {
		return errors.Wrapf(errors.ErrFolderNotEmpty, "unable to remove %q", name)
	}

	p.children = slices.DeleteFunc(p.children, func(child fs.NodeID) bool {
		return child == id
	})
	t.nodes[id] = nil

	return nil
}

// PathOf renders the names from the root down to id, joined with Separator.
func (t *Tree) PathOf(id fs.NodeID) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.lookup(id)
	if node == nil {
		return "", errors.Wrapf(errors.ErrInvalidParent, "folder %d does not exist", id)
	}

	names := []string{node.name}
	for node.parent != fs.NoNode {
		parent := t.lookup(node.parent)
		if parent == nil || len(names) > len(t.nodes) {
			return "", errors.Wrapf(errors.ErrInvalidParent, "unable to resolve the parent of %q", node.name)
		}

		names = append(names, parent.name)
		node = parent
	}

	slices.Reverse(names)
	return strings.Join(names, Separator), nil
}

func (t *Tree) Parent(id fs.NodeID) (fs.NodeID, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.lookup(id)
	if node == nil {
		return fs.NoNode, errors.Wrapf(errors.ErrInvalidParent, "folder %d does not exist", id)
	}
	if node.parent == fs.NoNode {
		return fs.NoNode, errors.Wrapf(errors.ErrInvalidParent, "%q has no parent folder", node.name)
	}
	if t.lookup(node.parent) == nil {
		return fs.NoNode, errors.Wrapf(errors.ErrInvalidParent, "unable to resolve the parent of %q", node.name)
	}

	return node.parent, nil
}

func (t *Tree) Name(id fs.NodeID) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.lookup(id)
	if node == nil {
		return "", errors.Wrapf(errors.ErrNotFound, "folder %d does not exist", id)
	}

	return node.name, nil
}

// ReadDir lists the children of id in insertion order.
func (t *Tree) ReadDir(id fs.NodeID) ([]fs.DirEntry, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.lookup(id)
	if node == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "folder %d does not exist", id)
	}

	entries := make([]fs.DirEntry, 0, len(node.children))
	for _, childID := range node.children {
		child := t.lookup(childID)
		if child == nil {
			continue
		}
		entries = append(entries, &folderInfo{
			name:     child.name,
			children: len(child.children),
		})
	}

	return entries, nil
}

// Len returns the number of live folders, the root included.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for _, node := range t.nodes {
		if node != nil {
			n++
		}
	}
	return n
}

func (t *Tree) lookup(id fs.NodeID) *folder {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}
