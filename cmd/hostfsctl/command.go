package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// ErrSilentExit signals a non-zero exit without an additional error message
// (the command already reported what it had to).
var ErrSilentExit = errors.New("silent exit")

// Command is a single hostfsctl subcommand.
type Command struct {
	// Flags is the command's flag set. Every command defines an -h/--help
	// bool flag; Run handles it before Exec is called.
	Flags *flag.FlagSet

	// Usage is the one-line usage string, starting with the command name.
	Usage string

	// Short is the one-line description shown in the command list.
	Short string

	// Long is the extended description shown in the command's help output.
	Long string

	// Aliases are alternative names that dispatch to this command.
	Aliases []string

	// Exec runs the command with the remaining (post-flag) arguments.
	Exec func(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) error
}

// Name returns the command name (the first word of Usage).
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")

	return name
}

// HelpLine returns the command's line for the global command list.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-14s %s", c.Name(), c.Short)
}

// Run parses flags, handles --help, and executes the command.
// Returns the process exit code.
func (c *Command) Run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	// Suppress pflag's own output; errors are reported through fprintError.
	c.Flags.Usage = func() {}
	c.Flags.SetOutput(&strings.Builder{})

	err := c.Flags.Parse(args)
	if err != nil {
		fprintError(stderr, err)
		fprintln(stderr)
		c.printHelp(stderr)

		return 1
	}

	if help, _ := c.Flags.GetBool("help"); help {
		c.printHelp(stdout)

		return 0
	}

	err = c.Exec(ctx, stdin, stdout, stderr, c.Flags.Args())
	if err != nil {
		if errors.Is(err, ErrSilentExit) {
			return 1
		}

		fprintError(stderr, err)

		return 1
	}

	return 0
}

func (c *Command) printHelp(output io.Writer) {
	fprintln(output, c.Short)
	fprintln(output)
	fprintln(output, "Usage: hostfsctl "+c.Usage)

	if c.Long != "" {
		fprintln(output)
		fprintln(output, c.Long)
	}

	fprintln(output)
	fprintln(output, "Flags:")
	fprintln(output, strings.TrimRight(c.Flags.FlagUsages(), "\n"))
}
