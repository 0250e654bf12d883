package memoryfs

import (
	"fmt"
	iofs "io/fs"
	"maps"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rwx-research/fm-cli/internal/fs"
)

const Separator = "/"

var _ fs.FileSystem = (*MemoryFS)(nil)

var (
	ErrExist    = iofs.ErrExist
	ErrNotExist = iofs.ErrNotExist
)

// MemoryFS is a file system held entirely in memory. Paths are always
// slash-separated; relative paths are resolved against its own working directory.
type MemoryFS struct {
	wd      string
	entries map[string]*MemFile
	mu      sync.RWMutex
}

func NewFS() *MemoryFS {
	return &MemoryFS{
		wd: Separator,
		entries: map[string]*MemFile{
			Separator: {Mode: iofs.ModeDir, ModTime: time.Now()},
		},
	}
}

func (mfs *MemoryFS) Create(name string, mode fs.CreateMode) (fs.File, error) {
	fullPath := mfs.abs(name)
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	if existing, ok := mfs.entries[fullPath]; ok {
		if mode == fs.CreateNew {
			return nil, &iofs.PathError{Op: "create", Path: name, Err: ErrExist}
		}
		if existing.Mode.IsDir() {
			return nil, fmt.Errorf("path %q is a directory", name)
		}

		return existing.openTruncated(), nil
	}

	if parent := mfs.lookup(path.Dir(fullPath)); parent == nil || !parent.IsDir() {
		return nil, fmt.Errorf("parent directory doesn't exist at %q", path.Dir(name))
	}

	mf := &MemFile{ModTime: time.Now()}
	mfs.entries[fullPath] = mf
	return mf.openTruncated(), nil
}

func (mfs *MemoryFS) Open(name string) (fs.File, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return mfs.open(name)
}

func (mfs *MemoryFS) open(name string) (fs.File, error) {
	file := mfs.lookup(name)
	if file == nil {
		return nil, &iofs.PathError{Op: "open", Path: name, Err: ErrNotExist}
	}
	if file.IsDir() {
		return nil, fmt.Errorf("path %q is a directory", name)
	}

	return file.mf.Open()
}

func (mfs *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	fullPath := mfs.abs(name)
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	info := mfs.lookup(fullPath)
	if info == nil {
		return nil, ErrNotExist
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", name)
	}

	entries := make([]fs.DirEntry, 0)
	for entryPath, entry := range mfs.entries {
		if entryPath != fullPath && path.Dir(entryPath) == fullPath {
			entries = append(entries, &memFileInfo{
				name: path.Base(entryPath),
				mf:   entry,
			})
		}
	}

	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	return entries, nil
}

func (mfs *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	if info := mfs.lookup(name); info != nil {
		return info, nil
	}

	return nil, &iofs.PathError{Op: "stat", Path: name, Err: ErrNotExist}
}

func (mfs *MemoryFS) Exists(name string) (bool, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return mfs.lookup(name) != nil, nil
}

func (mfs *MemoryFS) Rename(oldName, newName string) error {
	oldPath := mfs.abs(oldName)
	newPath := mfs.abs(newName)
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	source := mfs.lookup(oldPath)
	if source == nil {
		return &iofs.PathError{Op: "rename", Path: oldName, Err: ErrNotExist}
	}
	if oldPath == newPath {
		return nil
	}
	if parent := mfs.lookup(path.Dir(newPath)); parent == nil || !parent.IsDir() {
		return fmt.Errorf("parent directory doesn't exist at %q", path.Dir(newName))
	}
	if target := mfs.lookup(newPath); target != nil && target.IsDir() {
		return fmt.Errorf("path %q is a directory", newName)
	}

	if !source.IsDir() {
		mfs.entries[newPath] = source.mf
		delete(mfs.entries, oldPath)
		return nil
	}

	if strings.HasPrefix(newPath, oldPath+Separator) {
		return fmt.Errorf("unable to move %q into itself", oldName)
	}

	for entryPath, entry := range maps.Clone(mfs.entries) {
		if entryPath == oldPath || strings.HasPrefix(entryPath, oldPath+Separator) {
			mfs.entries[newPath+strings.TrimPrefix(entryPath, oldPath)] = entry
			delete(mfs.entries, entryPath)
		}
	}

	return nil
}

func (mfs *MemoryFS) Remove(name string) error {
	fullPath := mfs.abs(name)
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	info := mfs.lookup(fullPath)
	if info == nil {
		return &iofs.PathError{Op: "remove", Path: name, Err: ErrNotExist}
	}
	if fullPath == Separator {
		return fmt.Errorf("unable to remove the root directory")
	}
	if info.IsDir() {
		for entryPath := range mfs.entries {
			if path.Dir(entryPath) == fullPath {
				return fmt.Errorf("directory %q is not empty", name)
			}
		}
	}

	delete(mfs.entries, fullPath)
	return nil
}

func (mfs *MemoryFS) MkdirAll(dir string) error {
	fullPath := mfs.abs(dir)
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	ancestors := []string{}
	for current := fullPath; current != Separator; current = path.Dir(current) {
		ancestors = append(ancestors, current)
	}
	slices.Reverse(ancestors)

	for _, ancestor := range ancestors {
		info := mfs.lookup(ancestor)
		if info != nil {
			if info.IsDir() {
				continue
			}
			return fmt.Errorf("unable to create subdirectory of regular file at %q", ancestor)
		}

		mfs.entries[ancestor] = &MemFile{
			Mode:    iofs.ModeDir,
			ModTime: time.Now(),
		}
	}

	return nil
}

func (mfs *MemoryFS) Getwd() (string, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return mfs.wd, nil
}

func (mfs *MemoryFS) Chdir(dir string) error {
	fullPath := mfs.abs(dir)
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	info := mfs.lookup(fullPath)
	if info == nil {
		return &iofs.PathError{Op: "chdir", Path: dir, Err: ErrNotExist}
	}
	if !info.IsDir() {
		return fmt.Errorf("path %q is not a directory", dir)
	}

	mfs.wd = fullPath
	return nil
}

func (mfs *MemoryFS) lookup(name string) *memFileInfo {
	fullPath := mfs.abs(name)

	if file, ok := mfs.entries[fullPath]; ok {
		return &memFileInfo{
			name: path.Base(fullPath),
			mf:   file,
		}
	}

	return nil
}

func (mfs *MemoryFS) abs(name string) string {
	if path.IsAbs(name) {
		return path.Clean(name)
	}

	return path.Join(mfs.wd, name)
}

// Entries exposes underlying entries for testing.
func (mfs *MemoryFS) Entries() map[string]*MemFile {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return maps.Clone(mfs.entries)
}

// WriteFiles creates the given files, including any necessary directory structure.
// Existing files are overwritten.
func (mfs *MemoryFS) WriteFiles(files map[string][]byte) error {
	for name, contents := range files {
		name = mfs.abs(name)
		if err := mfs.MkdirAll(path.Dir(name)); err != nil {
			return err
		}

		file, err := mfs.Create(name, fs.CreateTruncate)
		if err != nil {
			return err
		}
		if _, err = file.Write(contents); err != nil {
			return err
		}
		if err = file.Close(); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile returns the contents of a regular file.
func (mfs *MemoryFS) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	info := mfs.lookup(name)
	if info == nil {
		return nil, &iofs.PathError{Op: "read", Path: name, Err: ErrNotExist}
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path %q is a directory", name)
	}

	return info.mf.Bytes(), nil
}
