package cli

import (
	"github.com/doky-sim/doky-cli/internal/fs"
	"github.com/doky-sim/doky-cli/internal/navigator"
)

type Navigator interface {
	Create(name string) error
	Open(path string) error
	Remove(name string, opts navigator.RemoveOptions) error
	Path() (string, error)
	Entries() ([]fs.DirEntry, error)
}
