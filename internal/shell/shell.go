// Package shell runs the read-dispatch loop around the command engine.
package shell

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rwx-research/fm-cli/internal/errors"
	"github.com/rwx-research/fm-cli/internal/messages"
)

// ErrInterrupt is returned by a LineReader when the user pressed Ctrl-C.
var ErrInterrupt = errors.New("interrupted")

type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

type Executor interface {
	Execute(line string) error
}

type Location interface {
	Current() string
}

type Config struct {
	Engine   Executor
	Paths    Location
	Reader   LineReader
	Stdout   io.Writer
	Stderr   io.Writer
	Username string
	Logger   *zerolog.Logger
}

func (c Config) Validate() error {
	if c.Engine == nil {
		return errors.New("missing command engine")
	}

	if c.Paths == nil {
		return errors.New("missing path context")
	}

	if c.Reader == nil {
		return errors.New("missing line reader")
	}

	if c.Stdout == nil {
		return errors.New("missing stdout writer")
	}

	if c.Stderr == nil {
		return errors.New("missing stderr writer")
	}

	if c.Username == "" {
		return errors.New("missing username")
	}

	return nil
}

type Shell struct {
	Config

	log        zerolog.Logger
	errorStyle lipgloss.Style
	farewell   sync.Once
}

func New(cfg Config) (*Shell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	return &Shell{
		Config:     cfg,
		log:        log,
		errorStyle: lipgloss.NewRenderer(cfg.Stderr).NewStyle().Foreground(lipgloss.Color("9")),
	}, nil
}

// Run greets the user and executes lines until the session ends. Command
// failures are printed and never end the session; only a broken reader does.
func (s *Shell) Run() error {
	defer s.Reader.Close()

	fmt.Fprintln(s.Stdout, messages.Greeting(s.Username))
	fmt.Fprintln(s.Stdout, messages.CurrentDirectory(s.Paths.Current()))

	for {
		line, err := s.Reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupt) {
				s.log.Debug().Err(err).Msg("input closed")
				s.Farewell()
				return nil
			}
			return errors.Wrap(err, "unable to read input")
		}

		err = s.Engine.Execute(line)
		if errors.Is(err, errors.ErrExit) {
			s.Farewell()
			return nil
		}
		if err != nil {
			fmt.Fprintln(s.Stderr, s.errorStyle.Render(err.Error()))
		}

		fmt.Fprintln(s.Stdout, messages.CurrentDirectory(s.Paths.Current()))
	}
}

// Farewell prints the goodbye message once, no matter how often the session
// is ended. It is safe to call from a signal handler goroutine.
func (s *Shell) Farewell() {
	s.farewell.Do(func() {
		fmt.Fprintln(s.Stdout, messages.Farewell(s.Username))
	})
}
