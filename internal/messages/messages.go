package messages

import (
	"fmt"
	"strings"
)

const (
	RootNotice = "You are already at the root directory"
	Prompt     = "> "
)

func Greeting(username string) string {
	return fmt.Sprintf("Welcome to the File Manager, %s!", username)
}

func Farewell(username string) string {
	return fmt.Sprintf("Thank you for using File Manager, %s, goodbye!", username)
}

func CurrentDirectory(dir string) string {
	return fmt.Sprintf("You are currently in %s", dir)
}

func CPUCount(count int) string {
	return fmt.Sprintf("Overall amount of CPUS: %d", count)
}

// FormatUsage renders a command name followed by its placeholders, e.g. "rn <path> <new_name>".
func FormatUsage(name string, placeholders []string) string {
	var builder strings.Builder

	builder.WriteString(name)
	for _, placeholder := range placeholders {
		builder.WriteString(" <")
		builder.WriteString(placeholder)
		builder.WriteString(">")
	}

	return builder.String()
}
