package cli

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rwx-research/fm-cli/internal/errors"
	"github.com/rwx-research/fm-cli/internal/messages"
	"github.com/rwx-research/fm-cli/internal/pathctx"
)

// ListEntry is a single row of the ls output.
type ListEntry struct {
	Name  string
	IsDir bool
}

func (e ListEntry) Type() string {
	if e.IsDir {
		return "directory"
	}
	return "file"
}

// SortEntries orders directories before files and sorts each group by name
// using the collation rules of tag.
func SortEntries(entries []ListEntry, tag language.Tag) {
	collator := collate.New(tag)

	slices.SortStableFunc(entries, func(a, b ListEntry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}

		if c := collator.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
}

func (e *Engine) up(_ []string) error {
	current := e.Paths.Current()
	if pathctx.IsRoot(current) {
		fmt.Fprintln(e.Stdout, messages.RootNotice)
		return nil
	}

	parent := pathctx.Resolve("..", current)
	if !e.Paths.SetCurrent(parent) {
		e.log.Debug().Str("path", parent).Msg("unable to enter parent directory")
	}

	return nil
}

func (e *Engine) changeDirectory(args []string) error {
	target := e.resolve(args[0])

	if err := e.requireDirectory(target); err != nil {
		return err
	}

	if !e.Paths.SetCurrent(target) {
		return errors.Errorf("unable to change directory to %q", target)
	}

	return nil
}

func (e *Engine) list(_ []string) error {
	current := e.Paths.Current()

	dirEntries, err := e.FileSystem.ReadDir(current)
	if err != nil {
		return errors.Wrapf(err, "unable to list %q", current)
	}

	entries := make([]ListEntry, 0, len(dirEntries))
	for _, entry := range dirEntries {
		entries = append(entries, ListEntry{Name: entry.Name(), IsDir: entry.IsDir()})
	}
	SortEntries(entries, e.Collation)

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.Name, entry.Type()})
	}

	return e.table.PrintIndexed([]string{"Name", "Type"}, rows)
}

func (e *Engine) requireDirectory(name string) error {
	info, err := e.FileSystem.Stat(name)
	if err != nil {
		return errors.Wrapf(err, "unable to stat %q", name)
	}

	if !info.IsDir() {
		return errors.Errorf("%q is not a directory", name)
	}

	return nil
}

func (e *Engine) requireRegularFile(name string) error {
	info, err := e.FileSystem.Stat(name)
	if err != nil {
		return errors.Wrapf(err, "unable to stat %q", name)
	}

	if !info.Mode().IsRegular() {
		return errors.Errorf("%q is not a regular file", name)
	}

	return nil
}
