package mocks

import (
	"github.com/rwx-research/fm-cli/internal/errors"
	"github.com/rwx-research/fm-cli/internal/fs"
)

type FileSystem struct {
	MockCreate  func(name string, mode fs.CreateMode) (fs.File, error)
	MockOpen    func(name string) (fs.File, error)
	MockReadDir func(name string) ([]fs.DirEntry, error)
	MockStat    func(name string) (fs.FileInfo, error)
	MockExists  func(name string) (bool, error)
	MockRename  func(oldName, newName string) error
	MockRemove  func(name string) error
	MockChdir   func(dir string) error
}

// Delegate returns a mock forwarding every call to backing. Individual Mock
// functions can be replaced afterwards.
func Delegate(backing fs.FileSystem) *FileSystem {
	return &FileSystem{
		MockCreate:  backing.Create,
		MockOpen:    backing.Open,
		MockReadDir: backing.ReadDir,
		MockStat:    backing.Stat,
		MockExists:  backing.Exists,
		MockRename:  backing.Rename,
		MockRemove:  backing.Remove,
		MockChdir:   backing.Chdir,
	}
}

func (f *FileSystem) Create(name string, mode fs.CreateMode) (fs.File, error) {
	if f.MockCreate != nil {
		return f.MockCreate(name, mode)
	}

	return nil, errors.New("MockCreate was not configured")
}

func (f *FileSystem) Open(name string) (fs.File, error) {
	if f.MockOpen != nil {
		return f.MockOpen(name)
	}

	return nil, errors.New("MockOpen was not configured")
}

func (f *FileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	if f.MockReadDir != nil {
		return f.MockReadDir(name)
	}

	return nil, errors.New("MockReadDir was not configured")
}

func (f *FileSystem) Stat(name string) (fs.FileInfo, error) {
	if f.MockStat != nil {
		return f.MockStat(name)
	}

	return nil, errors.New("MockStat was not configured")
}

func (f *FileSystem) Exists(name string) (bool, error) {
	if f.MockExists != nil {
		return f.MockExists(name)
	}

	return false, errors.New("MockExists was not configured")
}

func (f *FileSystem) Rename(oldName, newName string) error {
	if f.MockRename != nil {
		return f.MockRename(oldName, newName)
	}

	return errors.New("MockRename was not configured")
}

func (f *FileSystem) Remove(name string) error {
	if f.MockRemove != nil {
		return f.MockRemove(name)
	}

	return errors.New("MockRemove was not configured")
}

func (f *FileSystem) Chdir(dir string) error {
	if f.MockChdir != nil {
		return f.MockChdir(dir)
	}

	return errors.New("MockChdir was not configured")
}
