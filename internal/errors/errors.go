package errors

import (
	"os"

	"github.com/pkg/errors"
)

var (
	ErrFileNotExists = os.ErrNotExist
	ErrFileExists    = os.ErrExist

	// ErrInvalidInput is returned for malformed commands before any I/O happens.
	ErrInvalidInput = errors.New("Invalid input")
	// ErrOperationFailed hides every failure that happened while touching the file system.
	ErrOperationFailed = errors.New("Operation failed")
	// ErrExit is returned by the engine when the user asked to leave the session.
	ErrExit = errors.New("exit requested")

	As        = errors.As
	Cause     = errors.Cause
	Errorf    = errors.Errorf
	Is        = errors.Is
	New       = errors.New
	WithStack = errors.WithStack
	Wrap      = errors.Wrap
	Wrapf     = errors.Wrapf
)
