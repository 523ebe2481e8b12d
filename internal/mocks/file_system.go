package mocks

import (
	"github.com/doky-sim/doky-cli/internal/fs"

	"github.com/pkg/errors"
)

type FileSystem struct {
	MockOpen   func(name string) (fs.File, error)
	MockExists func(name string) (bool, error)
}

func (f *FileSystem) Open(name string) (fs.File, error) {
	if f.MockOpen != nil {
		return f.MockOpen(name)
	}

	return nil, errors.New("MockOpen was not configured")
}

func (f *FileSystem) Exists(name string) (bool, error) {
	if f.MockExists != nil {
		return f.MockExists(name)
	}

	return false, errors.New("MockExists was not configured")
}
