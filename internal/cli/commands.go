package cli

import (
	"github.com/rwx-research/fm-cli/internal/errors"
	"github.com/rwx-research/fm-cli/internal/messages"
)

type command struct {
	name string
	// args are the placeholders shown in help; their count is the command's arity.
	args        []string
	description string
	run         func(e *Engine, args []string) error
}

func (c command) usage() string {
	return messages.FormatUsage(c.name, c.args)
}

// commandTable is built on demand since help refers back to it.
func commandTable() []command {
	return []command{
		{name: "up", description: "Go one directory up", run: (*Engine).up},
		{name: "cd", args: []string{"path"}, description: "Go to a directory", run: (*Engine).changeDirectory},
		{name: "ls", description: "List the current directory", run: (*Engine).list},
		{name: "cat", args: []string{"path"}, description: "Print a file", run: (*Engine).cat},
		{name: "add", args: []string{"name"}, description: "Create an empty file", run: (*Engine).add},
		{name: "rn", args: []string{"path", "new_name"}, description: "Rename a file", run: (*Engine).rename},
		{name: "cp", args: []string{"path", "new_directory"}, description: "Copy a file into a directory", run: (*Engine).copy},
		{name: "mv", args: []string{"path", "new_directory"}, description: "Move a file into a directory", run: (*Engine).move},
		{name: "rm", args: []string{"path"}, description: "Delete a file", run: (*Engine).remove},
		{name: "os", args: []string{"flag"}, description: "Print operating system information (--EOL, --cpus, --homedir, --username, --architecture)", run: (*Engine).osInfo},
		{name: "hash", args: []string{"path"}, description: "Print the hash of a file", run: (*Engine).hash},
		{name: "compress", args: []string{"path", "destination"}, description: "Compress a file", run: (*Engine).compress},
		{name: "decompress", args: []string{"path", "destination"}, description: "Decompress a file", run: (*Engine).decompress},
		{name: "help", description: "List the available commands", run: (*Engine).help},
		{name: ".exit", description: "Leave the file manager", run: (*Engine).exit},
	}
}

func (e *Engine) help(_ []string) error {
	rows := make([][]string, 0, len(e.commands))
	for _, cmd := range e.commands {
		rows = append(rows, []string{cmd.usage(), cmd.description})
	}

	return e.table.Print([]string{"Command", "Description"}, rows)
}

func (e *Engine) exit(_ []string) error {
	return errors.ErrExit
}
