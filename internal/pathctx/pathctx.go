// Package pathctx owns the shell's current directory and the pure path helpers
// used to resolve user input against it.
package pathctx

import (
	"path/filepath"

	"github.com/rwx-research/fm-cli/internal/errors"
)

// Changer verifies a directory change with the underlying file system.
type Changer interface {
	Chdir(dir string) error
}

type Config struct {
	FileSystem Changer
	Home       string
}

func (c Config) Validate() error {
	if c.FileSystem == nil {
		return errors.New("missing file-system interface")
	}

	if c.Home == "" {
		return errors.New("missing home directory")
	}

	if !filepath.IsAbs(c.Home) {
		return errors.Errorf("home directory %q is not absolute", c.Home)
	}

	return nil
}

// Context holds the current directory. It is not safe for concurrent use;
// the shell only touches it from its read-dispatch loop.
type Context struct {
	fs      Changer
	home    string
	current string
}

// New returns a Context positioned at the home directory.
func New(cfg Config) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}

	c := &Context{fs: cfg.FileSystem, home: filepath.Clean(cfg.Home)}
	if !c.SetCurrent(c.home) {
		return nil, errors.Errorf("unable to enter home directory %q", c.home)
	}

	return c, nil
}

func (c *Context) Home() string {
	return c.home
}

func (c *Context) Current() string {
	return c.current
}

// SetCurrent moves to dir and reports whether the file system accepted it.
// The previous directory is kept when it did not.
func (c *Context) SetCurrent(dir string) bool {
	dir = filepath.Clean(dir)
	if !filepath.IsAbs(dir) {
		return false
	}

	if err := c.fs.Chdir(dir); err != nil {
		return false
	}

	c.current = dir
	return true
}

// Resolve resolves userPath against the current directory.
func (c *Context) Resolve(userPath string) string {
	return Resolve(userPath, c.current)
}

// Resolve returns userPath unchanged when it is absolute and joins it onto
// baseDir otherwise. It never touches the file system.
func Resolve(userPath, baseDir string) string {
	if filepath.IsAbs(userPath) {
		return userPath
	}

	return filepath.Join(baseDir, userPath)
}

// IsRoot reports whether dir is a file-system root, i.e. its own parent.
func IsRoot(dir string) bool {
	return filepath.Dir(dir) == dir
}
