package fs

import "io"

// FileSystem is the slice of the real disk the CLI needs: reading settings and
// script files. The simulated folder tree never touches it.
type FileSystem interface {
	Open(name string) (File, error)
	Exists(name string) (bool, error)
}

type File interface {
	io.ReadWriteCloser
}

type DirEntry interface {
	Name() string
	IsDir() bool
}
