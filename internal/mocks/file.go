package mocks

import (
	"strings"
)

// File is an in-memory fs.File that remembers whether it was closed.
type File struct {
	*strings.Reader
	Closed bool
}

func NewFile(content string) *File {
	return &File{Reader: strings.NewReader(content)}
}

func (f *File) Write(p []byte) (int, error) {
	return 0, nil
}

func (f *File) Close() error {
	f.Closed = true
	return nil
}
