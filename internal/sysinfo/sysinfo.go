// Package sysinfo answers the questions of the os command about the host.
package sysinfo

import (
	"os"
	"os/user"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"

	"github.com/rwx-research/fm-cli/internal/errors"
)

// CPU describes one logical processor.
type CPU struct {
	Model    string
	SpeedMHz float64
}

// SpeedGHz converts the clock speed to gigahertz.
func (c CPU) SpeedGHz() float64 {
	return c.SpeedMHz / 1000
}

// Host reads facts about the machine the shell runs on.
type Host struct {
	// GOOS overrides runtime.GOOS, for tests.
	GOOS string
}

func (h Host) goos() string {
	if h.GOOS != "" {
		return h.GOOS
	}
	return runtime.GOOS
}

// EOL is the platform's line ending.
func (h Host) EOL() string {
	if h.goos() == "windows" {
		return "\r\n"
	}
	return "\n"
}

// CPUs lists one entry per logical processor. Platforms that report a single
// package with a core count are expanded to one entry per core.
func (h Host) CPUs() ([]CPU, error) {
	infos, err := cpu.Info()
	if err != nil {
		return nil, errors.Wrap(err, "unable to read processor information")
	}

	cpus := make([]CPU, 0, len(infos))
	for _, info := range infos {
		cores := int(info.Cores)
		if cores < 1 {
			cores = 1
		}
		for i := 0; i < cores; i++ {
			cpus = append(cpus, CPU{Model: info.ModelName, SpeedMHz: info.Mhz})
		}
	}

	if len(cpus) == 0 {
		return nil, errors.New("no processors reported")
	}

	return cpus, nil
}

func (h Host) HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to determine the home directory")
	}

	return home, nil
}

// Username is the name of the operating-system account running the shell.
func (h Host) Username() (string, error) {
	current, err := user.Current()
	if err != nil {
		return "", errors.Wrap(err, "unable to determine the current user")
	}

	return current.Username, nil
}

func (h Host) Architecture() string {
	return runtime.GOARCH
}
