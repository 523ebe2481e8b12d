package memoryfs

import (
	"strings"

	"github.com/doky-sim/doky-cli/internal/fs"
)

type folder struct {
	name     string
	parent   fs.NodeID
	children []fs.NodeID
}

// ValidName reports whether name can be used for a folder: it must be
// non-empty and free of both path separators.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, PathSeparator+Separator)
}
