package cli

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rwx-research/fm-cli/internal/errors"
	"github.com/rwx-research/fm-cli/internal/pathctx"
	"github.com/rwx-research/fm-cli/internal/tableprint"
)

// Command is a single parsed input line.
type Command struct {
	Name string
	Args []string
}

// Engine parses command lines and dispatches them against the shared path context.
type Engine struct {
	Config

	commands []command
	byName   map[string]command
	log      zerolog.Logger
	table    tableprint.Printer
}

func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	commands := commandTable()
	byName := make(map[string]command, len(commands))
	for _, cmd := range commands {
		byName[cmd.name] = cmd
	}

	return &Engine{
		Config:   cfg,
		commands: commands,
		byName:   byName,
		log:      log,
		table:    tableprint.Printer{Out: cfg.Stdout, FitTerminal: cfg.FitTerminal},
	}, nil
}

// Split breaks a line into a command name and its arguments. It does not
// validate anything.
func Split(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}
	}

	return Command{Name: fields[0], Args: fields[1:]}
}

// Parse splits the line and checks the name and arity against the command table.
func (e *Engine) Parse(line string) (Command, error) {
	cmd := Split(line)
	if _, err := e.lookup(cmd); err != nil {
		return Command{}, err
	}

	return cmd, nil
}

// Execute runs a single input line. The returned error is nil, errors.ErrExit,
// errors.ErrInvalidInput or errors.ErrOperationFailed.
func (e *Engine) Execute(line string) error {
	cmd := Split(line)

	entry, err := e.lookup(cmd)
	if err != nil {
		return err
	}

	return e.dispatch(entry, cmd)
}

// Dispatch runs a command built without Parse, checking it against the command table first.
func (e *Engine) Dispatch(cmd Command) error {
	entry, err := e.lookup(cmd)
	if err != nil {
		return err
	}

	return e.dispatch(entry, cmd)
}

func (e *Engine) dispatch(entry command, cmd Command) error {
	err := entry.run(e, cmd.Args)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errors.ErrExit):
		return errors.ErrExit
	case errors.Is(err, errors.ErrInvalidInput):
		e.log.Debug().Err(err).Str("command", cmd.Name).Strs("args", cmd.Args).Msg("rejected input")
		return errors.ErrInvalidInput
	default:
		e.log.Debug().Err(err).Str("command", cmd.Name).Strs("args", cmd.Args).Msg("operation failed")
		return errors.ErrOperationFailed
	}
}

func (e *Engine) lookup(cmd Command) (command, error) {
	entry, ok := e.byName[cmd.Name]
	if !ok {
		e.log.Debug().Str("command", cmd.Name).Msg("unknown command")
		return command{}, errors.ErrInvalidInput
	}

	if len(cmd.Args) != len(entry.args) {
		e.log.Debug().
			Str("command", cmd.Name).
			Int("expected", len(entry.args)).
			Int("got", len(cmd.Args)).
			Msg("wrong number of arguments")
		return command{}, errors.ErrInvalidInput
	}

	return entry, nil
}

// resolve turns a user supplied path into a clean absolute one based on the current directory.
func (e *Engine) resolve(userPath string) string {
	return filepath.Clean(pathctx.Resolve(userPath, e.Paths.Current()))
}
