package navigator

import (
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/doky-sim/doky-cli/internal/errors"
	"github.com/doky-sim/doky-cli/internal/fs"
)

var log = logging.Logger("doky/navigator")

const parentSegment = ".."

// RemoveOptions carries the flags given to `rm`. They are recorded but do not
// relax the empty-folder check.
type RemoveOptions struct {
	Force     bool
	Recursive bool
}

// Navigator tracks the current folder of a session over a FolderStore.
type Navigator struct {
	store   fs.FolderStore
	root    fs.NodeID
	current fs.NodeID
}

func New(store fs.FolderStore) *Navigator {
	root := store.Root()
	return &Navigator{store: store, root: root, current: root}
}

// Create adds a child to the current folder and moves into it.
func (n *Navigator) Create(name string) error {
	id, err := n.store.AddChild(n.current, name)
	if err != nil {
		return err
	}

	log.Debugw("created folder", "name", name, "id", id, "parent", n.current)
	n.current = id
	return nil
}

// Open moves to the folder reached by following path from the current folder.
// Segments are separated by "/" and ".." ascends one level. The position only
// changes when every segment resolves.
func (n *Navigator) Open(path string) error {
	cursor := n.current

	for _, segment := range strings.Split(path, "/") {
		if segment == parentSegment {
			parent, err := n.store.Parent(cursor)
			if err != nil {
				return errors.Wrapf(err, "unable to open %q", path)
			}
			cursor = parent
			continue
		}

		child, ok := n.store.FindChild(cursor, segment)
		if !ok {
			return errors.Wrapf(errors.ErrInvalidPath, "unable to open %q: no folder named %q", path, segment)
		}
		cursor = child
	}

	log.Debugw("opened folder", "path", path, "from", n.current, "to", cursor)
	n.current = cursor
	return nil
}

// Remove deletes an empty child of the current folder.
func (n *Navigator) Remove(name string, opts RemoveOptions) error {
	if opts.Force || opts.Recursive {
		log.Debugw("remove flags have no effect", "name", name, "force", opts.Force, "recursive", opts.Recursive)
	}

	if err := n.store.RemoveChild(n.current, name); err != nil {
		return err
	}

	log.Debugw("removed folder", "name", name, "parent", n.current)
	return nil
}

func (n *Navigator) Path() (string, error) {
	return n.store.PathOf(n.current)
}

// Entries lists the children of the current folder.
func (n *Navigator) Entries() ([]fs.DirEntry, error) {
	return n.store.ReadDir(n.current)
}

func (n *Navigator) AtRoot() bool {
	return n.current == n.root
}
