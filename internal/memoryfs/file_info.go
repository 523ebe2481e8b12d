package memoryfs

import (
	"github.com/doky-sim/doky-cli/internal/fs"
)

var _ fs.DirEntry = (*folderInfo)(nil)

type folderInfo struct {
	name     string
	children int
}

func (fi *folderInfo) Name() string {
	return fi.name
}

func (fi *folderInfo) IsDir() bool {
	return true
}

// Children is the number of subfolders at the time the entry was read.
func (fi *folderInfo) Children() int {
	return fi.children
}
