package mocks

// Folder is a directory entry with a fixed name.
type Folder string

func (f Folder) Name() string {
	return string(f)
}

func (f Folder) IsDir() bool {
	return true
}
