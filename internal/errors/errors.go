package errors

import (
	"os"

	"github.com/pkg/errors"
)

var (
	ErrFileNotExists = os.ErrNotExist

	ErrInvalidName          = errors.New("invalid folder name")
	ErrInvalidPath          = errors.New("invalid path")
	ErrInvalidParent        = errors.New("invalid parent folder")
	ErrNotFound             = errors.New("folder not found")
	ErrFolderNotEmpty       = errors.New("folder is not empty")
	ErrArgsNotRecognized    = errors.New("argument not recognized")
	ErrCommandNotRecognized = errors.New("command not recognized")
	ErrNotImplemented       = errors.New("not implemented")

	As        = errors.As
	Errorf    = errors.Errorf
	Is        = errors.Is
	New       = errors.New
	WithStack = errors.WithStack
	Wrap      = errors.Wrap
	Wrapf     = errors.Wrapf
)
