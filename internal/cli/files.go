package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"

	"github.com/rwx-research/fm-cli/internal/errors"
	"github.com/rwx-research/fm-cli/internal/fs"
	"github.com/rwx-research/fm-cli/internal/stream"
)

func (e *Engine) cat(args []string) error {
	source := e.resolve(args[0])

	if err := e.requireRegularFile(source); err != nil {
		return err
	}

	in, err := e.FileSystem.Open(source)
	if err != nil {
		return errors.Wrapf(err, "unable to open %q", source)
	}
	defer in.Close()

	out := &lineTracker{w: e.Stdout}
	if err := stream.Pipeline(in, out, stream.Copy()); err != nil {
		return errors.Wrapf(err, "unable to read %q", source)
	}

	// Keep the prompt on its own line for files without a trailing newline.
	if out.written && out.last != '\n' {
		fmt.Fprintln(e.Stdout)
	}

	return nil
}

func (e *Engine) add(args []string) error {
	target := e.resolve(args[0])

	f, err := e.FileSystem.Create(target, fs.CreateNew)
	if err != nil {
		return errors.Wrapf(err, "unable to create %q", target)
	}

	return errors.WithStack(f.Close())
}

// rename keeps the entry in its directory: only the base name of newName is used.
func (e *Engine) rename(args []string) error {
	source := e.resolve(args[0])
	target := filepath.Join(filepath.Dir(source), filepath.Base(args[1]))

	if _, err := e.FileSystem.Stat(source); err != nil {
		return errors.Wrapf(err, "unable to stat %q", source)
	}

	exists, err := e.FileSystem.Exists(target)
	if err != nil {
		return errors.Wrapf(err, "unable to determine if %q exists", target)
	}
	if exists {
		return errors.Wrapf(errors.ErrFileExists, "unable to rename %q", source)
	}

	return e.FileSystem.Rename(source, target)
}

func (e *Engine) copy(args []string) error {
	_, err := e.copyInto(e.resolve(args[0]), e.resolve(args[1]))
	return err
}

// move copies and then removes the source. A failed removal leaves both files in place.
func (e *Engine) move(args []string) error {
	source := e.resolve(args[0])

	target, err := e.copyInto(source, e.resolve(args[1]))
	if err != nil {
		return err
	}

	if err := e.FileSystem.Remove(source); err != nil {
		return errors.Wrapf(err, "copied %q to %q but unable to remove the source", source, target)
	}

	return nil
}

func (e *Engine) remove(args []string) error {
	target := e.resolve(args[0])

	if err := e.requireRegularFile(target); err != nil {
		return err
	}

	return e.FileSystem.Remove(target)
}

// copyInto streams source into destDir under the same base name, replacing
// any existing file there, and returns the path it wrote.
func (e *Engine) copyInto(source, destDir string) (string, error) {
	if err := e.requireRegularFile(source); err != nil {
		return "", err
	}

	if err := e.requireDirectory(destDir); err != nil {
		return "", err
	}

	target := filepath.Join(destDir, filepath.Base(source))
	if err := e.requireDistinct(source, target); err != nil {
		return "", err
	}

	err := e.withIndicator(" Copying...", func() error {
		return e.transform(source, target, stream.Copy())
	})
	if err != nil {
		return "", err
	}

	return target, nil
}

// requireDistinct fails when target names the same file as source, either
// literally or through a link, since writing target would truncate source.
func (e *Engine) requireDistinct(source, target string) error {
	if filepath.Clean(source) == filepath.Clean(target) {
		return errors.Errorf("unable to write %q onto itself", source)
	}

	exists, err := e.FileSystem.Exists(target)
	if err != nil {
		return errors.Wrapf(err, "unable to determine if %q exists", target)
	}
	if !exists {
		return nil
	}

	sourceInfo, err := e.FileSystem.Stat(source)
	if err != nil {
		return errors.Wrapf(err, "unable to stat %q", source)
	}

	targetInfo, err := e.FileSystem.Stat(target)
	if err != nil {
		return errors.Wrapf(err, "unable to stat %q", target)
	}

	if os.SameFile(sourceInfo, targetInfo) {
		return errors.Errorf("%q and %q are the same file", source, target)
	}

	return nil
}

// transform streams source through stages into target, which is created or truncated.
func (e *Engine) transform(source, target string, stages ...stream.Stage) error {
	in, err := e.FileSystem.Open(source)
	if err != nil {
		return errors.Wrapf(err, "unable to open %q", source)
	}
	defer in.Close()

	out, err := e.FileSystem.Create(target, fs.CreateTruncate)
	if err != nil {
		return errors.Wrapf(err, "unable to create %q", target)
	}

	if err := stream.Pipeline(in, out, stages...); err != nil {
		out.Close()
		return errors.Wrapf(err, "unable to write %q", target)
	}

	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "unable to close %q", target)
	}

	return nil
}

func (e *Engine) withIndicator(suffix string, fn func() error) error {
	if !e.ShowProgress {
		return fn()
	}

	indicator := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(e.Stderr))
	indicator.Suffix = suffix
	indicator.Start()
	defer indicator.Stop()

	return fn()
}

type lineTracker struct {
	w       io.Writer
	last    byte
	written bool
}

func (t *lineTracker) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if n > 0 {
		t.last = p[n-1]
		t.written = true
	}
	return n, err
}
