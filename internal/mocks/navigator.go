package mocks

import (
	"github.com/doky-sim/doky-cli/internal/fs"
	"github.com/doky-sim/doky-cli/internal/navigator"

	"github.com/pkg/errors"
)

type Navigator struct {
	MockCreate  func(name string) error
	MockOpen    func(path string) error
	MockRemove  func(name string, opts navigator.RemoveOptions) error
	MockPath    func() (string, error)
	MockEntries func() ([]fs.DirEntry, error)
}

func (n *Navigator) Create(name string) error {
	if n.MockCreate != nil {
		return n.MockCreate(name)
	}

	return errors.New("MockCreate was not configured")
}

func (n *Navigator) Open(path string) error {
	if n.MockOpen != nil {
		return n.MockOpen(path)
	}

	return errors.New("MockOpen was not configured")
}

func (n *Navigator) Remove(name string, opts navigator.RemoveOptions) error {
	if n.MockRemove != nil {
		return n.MockRemove(name, opts)
	}

	return errors.New("MockRemove was not configured")
}

func (n *Navigator) Path() (string, error) {
	if n.MockPath != nil {
		return n.MockPath()
	}

	return "", errors.New("MockPath was not configured")
}

func (n *Navigator) Entries() ([]fs.DirEntry, error) {
	if n.MockEntries != nil {
		return n.MockEntries()
	}

	return nil, errors.New("MockEntries was not configured")
}
