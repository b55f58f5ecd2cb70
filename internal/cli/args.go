// Package cli parses the editor's command line: either `--version`, a single file path, or
// nothing at all.
package cli

import (
	"fmt"
	"strings"
)

// TooManyArgumentsError is returned when more than one argument is given. N counts the
// arguments as the user typed them.
type TooManyArgumentsError struct {
	N int
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("too many arguments: got %d, want at most 1", e.N)
}

// UnrecognizedOptionError is returned for any flag-like argument other than --version.
type UnrecognizedOptionError struct {
	Arg string
}

func (e *UnrecognizedOptionError) Error() string {
	return fmt.Sprintf("unrecognized option %q", e.Arg)
}

// Command is what the process was asked to do.
type Command struct {
	Version bool
	// Empty means start with an empty buffer.
	Path string
}

// Parse interprets args, which must not include the program name.
func Parse(args []string) (Command, error) {
	switch {
	case len(args) == 0:
		return Command{}, nil
	case len(args) > 1:
		return Command{}, &TooManyArgumentsError{N: len(args)}
	case args[0] == "--version":
		return Command{Version: true}, nil
	case strings.HasPrefix(args[0], "-"):
		return Command{}, &UnrecognizedOptionError{Arg: args[0]}
	default:
		return Command{Path: args[0]}, nil
	}
}

// Usage is printed when Parse fails.
func Usage(prog string) string {
	return fmt.Sprintf("usage: %s [--version | FILE]", prog)
}
