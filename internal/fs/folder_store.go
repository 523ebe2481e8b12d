package fs

// NodeID addresses a folder inside a FolderStore. IDs are stable for the
// lifetime of the folder and are never handed out twice.
type NodeID int

// NoNode is the parent of the root folder.
const NoNode NodeID = -1

type FolderStore interface {
	Root() NodeID
	AddChild(parent NodeID, name string) (NodeID, error)
	FindChild(parent NodeID, name string) (NodeID, bool)
	RemoveChild(parent NodeID, name string) error
	PathOf(id NodeID) (string, error)
	Parent(id NodeID) (NodeID, error)
	ReadDir(id NodeID) ([]DirEntry, error)
}
