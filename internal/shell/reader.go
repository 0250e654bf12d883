package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rwx-research/fm-cli/internal/errors"
	"github.com/rwx-research/fm-cli/internal/messages"
)

type terminalReader struct {
	instance *readline.Instance
}

// NewTerminalReader reads lines with line editing from the attached terminal.
func NewTerminalReader() (LineReader, error) {
	instance, err := readline.NewEx(&readline.Config{
		Prompt:          messages.Prompt,
		HistoryLimit:    -1,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to initialize the terminal")
	}

	return terminalReader{instance: instance}, nil
}

func (r terminalReader) ReadLine() (string, error) {
	line, err := r.instance.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupt
	}

	return line, err
}

func (r terminalReader) Close() error {
	return r.instance.Close()
}

type scanReader struct {
	reader *bufio.Reader
	prompt io.Writer
}

// NewScanReader reads lines of any length from in, writing the prompt to
// prompt before each one. It is used when the input is not a terminal.
func NewScanReader(in io.Reader, prompt io.Writer) LineReader {
	return &scanReader{reader: bufio.NewReader(in), prompt: prompt}
}

func (r *scanReader) ReadLine() (string, error) {
	fmt.Fprint(r.prompt, messages.Prompt)

	line, err := r.reader.ReadString('\n')
	switch {
	case err == nil:
		return strings.TrimRight(line, "\r\n"), nil
	case errors.Is(err, io.EOF) && line != "":
		// The last line has no newline; io.EOF follows on the next call.
		return strings.TrimRight(line, "\r"), nil
	case errors.Is(err, io.EOF):
		// Ends the prompt line.
		fmt.Fprintln(r.prompt)
		return "", io.EOF
	default:
		return "", errors.WithStack(err)
	}
}

func (r *scanReader) Close() error {
	return nil
}
