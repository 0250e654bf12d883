package cli

import (
	"fmt"
	"strconv"

	"github.com/rwx-research/fm-cli/internal/errors"
	"github.com/rwx-research/fm-cli/internal/messages"
)

func (e *Engine) osInfo(args []string) error {
	switch flag := args[0]; flag {
	case "--EOL":
		// Quoted so the control characters are visible.
		fmt.Fprintln(e.Stdout, strconv.Quote(e.SystemInfo.EOL()))
	case "--cpus":
		return e.printCPUs()
	case "--homedir":
		home, err := e.SystemInfo.HomeDir()
		if err != nil {
			return errors.Wrap(err, "unable to determine the home directory")
		}
		fmt.Fprintln(e.Stdout, home)
	case "--username":
		username, err := e.SystemInfo.Username()
		if err != nil {
			return errors.Wrap(err, "unable to determine the system user")
		}
		fmt.Fprintln(e.Stdout, username)
	case "--architecture":
		fmt.Fprintln(e.Stdout, e.SystemInfo.Architecture())
	default:
		return errors.Wrapf(errors.ErrInvalidInput, "unknown os flag %q", flag)
	}

	return nil
}

func (e *Engine) printCPUs() error {
	cpus, err := e.SystemInfo.CPUs()
	if err != nil {
		return errors.Wrap(err, "unable to inspect the CPUs")
	}

	fmt.Fprintln(e.Stdout, messages.CPUCount(len(cpus)))

	rows := make([][]string, 0, len(cpus))
	for _, cpu := range cpus {
		rows = append(rows, []string{cpu.Model, fmt.Sprintf("%.2f GHz", cpu.SpeedGHz())})
	}

	return e.table.PrintIndexed([]string{"Model", "Speed"}, rows)
}
