package cli

import (
	"github.com/rwx-research/fm-cli/internal/fs"
	"github.com/rwx-research/fm-cli/internal/sysinfo"
)

type FileSystem interface {
	Create(name string, mode fs.CreateMode) (fs.File, error)
	Open(name string) (fs.File, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
	Exists(name string) (bool, error)
	Rename(oldName, newName string) error
	Remove(name string) error
}

type PathContext interface {
	Current() string
	SetCurrent(dir string) bool
}

type SystemInfo interface {
	EOL() string
	CPUs() ([]sysinfo.CPU, error)
	HomeDir() (string, error)
	Username() (string, error)
	Architecture() string
}
