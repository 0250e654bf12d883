package fs

import (
	"os"

	"github.com/rwx-research/fm-cli/internal/errors"
)

var _ FileSystem = Local{}

type Local struct{}

func (l Local) Create(name string, mode CreateMode) (File, error) {
	flags := os.O_WRONLY | os.O_CREATE
	switch mode {
	case CreateNew:
		flags |= os.O_EXCL
	case CreateTruncate:
		flags |= os.O_TRUNC
	default:
		return nil, errors.Errorf("unknown create mode %d", mode)
	}

	fd, err := os.OpenFile(name, flags, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to create %q", name)
	}

	return fd, nil
}

func (l Local) Open(name string) (File, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %q", name)
	}

	return fd, nil
}

func (l Local) ReadDir(name string) ([]DirEntry, error) {
	files, err := os.ReadDir(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %q", name)
	}

	entries := make([]DirEntry, len(files))
	for i, file := range files {
		entries[i] = file
	}

	return entries, nil
}

func (l Local) Stat(name string) (FileInfo, error) {
	return os.Stat(name)
}

func (l Local) Exists(name string) (bool, error) {
	_, err := os.Lstat(name)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (l Local) Rename(oldName, newName string) error {
	if err := os.Rename(oldName, newName); err != nil {
		return errors.Wrapf(err, "unable to rename %q to %q", oldName, newName)
	}

	return nil
}

func (l Local) Remove(name string) error {
	if err := os.Remove(name); err != nil {
		return errors.Wrapf(err, "unable to remove %q", name)
	}

	return nil
}

// Chdir also moves the process working directory so that the OS performs
// the existence and permission checks.
func (l Local) Chdir(dir string) error {
	if err := os.Chdir(dir); err != nil {
		return errors.Wrapf(err, "unable to change directory to %q", dir)
	}

	return nil
}
