package fs

import (
	"io"
	iofs "io/fs"
)

// CreateMode decides what Create does when the target already exists.
type CreateMode int

const (
	// CreateNew fails with ErrExist when something already exists at the path.
	CreateNew CreateMode = iota
	// CreateTruncate replaces the contents of an existing regular file.
	CreateTruncate
)

type File interface {
	io.Reader
	io.Writer
	io.Closer
}

type DirEntry interface {
	Name() string
	IsDir() bool
}

type FileInfo = iofs.FileInfo

type FileSystem interface {
	Create(name string, mode CreateMode) (File, error)
	Open(name string) (File, error)
	ReadDir(name string) ([]DirEntry, error)
	Stat(name string) (FileInfo, error)
	Exists(name string) (bool, error)
	Rename(oldName, newName string) error
	Remove(name string) error
	Chdir(dir string) error
}
