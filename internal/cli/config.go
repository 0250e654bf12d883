package cli

import (
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/rwx-research/fm-cli/internal/codec"
	"github.com/rwx-research/fm-cli/internal/digest"
	"github.com/rwx-research/fm-cli/internal/errors"
)

type Config struct {
	FileSystem FileSystem
	Paths      PathContext
	SystemInfo SystemInfo
	Codec      codec.Codec
	Digest     digest.Algorithm
	// Collation orders names in listings. The zero value sorts with the root locale.
	Collation language.Tag
	Stdout    io.Writer
	Stderr    io.Writer
	// ShowProgress draws a spinner on Stderr while files are streamed.
	ShowProgress bool
	// FitTerminal limits tables to the terminal width.
	FitTerminal bool
	Logger      *zerolog.Logger
}

func (c Config) Validate() error {
	if c.FileSystem == nil {
		return errors.New("missing file-system interface")
	}

	if c.Paths == nil {
		return errors.New("missing path context")
	}

	if c.SystemInfo == nil {
		return errors.New("missing system information provider")
	}

	if c.Codec == nil {
		return errors.New("missing compression codec")
	}

	if _, err := digest.New(c.Digest); err != nil {
		return err
	}

	if c.Stdout == nil {
		return errors.New("missing stdout writer")
	}

	if c.Stderr == nil {
		return errors.New("missing stderr writer")
	}

	return nil
}
