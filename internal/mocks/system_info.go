package mocks

import (
	"github.com/rwx-research/fm-cli/internal/errors"
	"github.com/rwx-research/fm-cli/internal/sysinfo"
)

type SystemInfo struct {
	MockEOL          func() string
	MockCPUs         func() ([]sysinfo.CPU, error)
	MockHomeDir      func() (string, error)
	MockUsername     func() (string, error)
	MockArchitecture func() string
}

func (s *SystemInfo) EOL() string {
	if s.MockEOL != nil {
		return s.MockEOL()
	}

	return "MockEOL was not configured"
}

func (s *SystemInfo) CPUs() ([]sysinfo.CPU, error) {
	if s.MockCPUs != nil {
		return s.MockCPUs()
	}

	return nil, errors.New("MockCPUs was not configured")
}

func (s *SystemInfo) HomeDir() (string, error) {
	if s.MockHomeDir != nil {
		return s.MockHomeDir()
	}

	return "", errors.New("MockHomeDir was not configured")
}

func (s *SystemInfo) Username() (string, error) {
	if s.MockUsername != nil {
		return s.MockUsername()
	}

	return "", errors.New("MockUsername was not configured")
}

func (s *SystemInfo) Architecture() string {
	if s.MockArchitecture != nil {
		return s.MockArchitecture()
	}

	return "MockArchitecture was not configured"
}
