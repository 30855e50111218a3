package commands

import (
	"fmt"
	"io"

	"github.com/josephlewis42/goxargs/core/config"
	"github.com/josephlewis42/goxargs/core/xargs"
)

// Xargs implements the POSIX command by the same name.
//
// https://pubs.opengroup.org/onlinepubs/9699919799/utilities/xargs.html
func Xargs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := &SimpleCommand{
		Use:   "xargs [-0prt] [-E STR] [-n NUM] [-s NUM] [COMMAND...]",
		Short: "Run a command repeatedly, appending arguments read from stdin.",
	}

	opts := cmd.Flags()
	nullDelim := opts.BoolLong("null", '0',
		"input arguments are NUL terminated, no whitespace processing")
	stopString := opts.StringLong("eof", 'E', "",
		"stop reading input at a token matching STR", "STR")
	maxArgs := opts.IntLong("max-args", 'n', 0,
		"max number of arguments per command", "NUM")
	openTTY := opts.BoolLong("open-tty", 'o',
		"open the tty for COMMAND's stdin (default /dev/null)")
	interactive := opts.BoolLong("interactive", 'p',
		"prompt for y/n from the tty before running each command")
	skipIfEmpty := opts.BoolLong("no-run-if-empty", 'r',
		"don't run COMMAND on empty input (otherwise it runs once)")
	maxChars := opts.IntLong("max-chars", 's', 0,
		"size in bytes per command line", "NUM")
	trace := opts.BoolLong("verbose", 't',
		"print each command line to stderr before running it")

	return cmd.Run(args, stdout, stderr, func() int {
		options := &config.Options{
			MaxBytes:      *maxChars,
			MaxEntries:    *maxArgs,
			StopString:    *stopString,
			NullDelimited: *nullDelim,
			SkipIfEmpty:   *skipIfEmpty,
			Interactive:   *interactive,
			Trace:         *trace,
			OpenTTY:       *openTTY,
			Command:       opts.Args(),
		}

		if err := options.Validate(); err != nil {
			fmt.Fprintf(stderr, "xargs: %v\n", err)
			return 1
		}

		loop, err := xargs.New(options, stdin, stdout, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "xargs: %v\n", err)
			return 1
		}

		code, err := loop.Run()
		if err != nil {
			fmt.Fprintf(stderr, "xargs: %v\n", err)
			return code
		}
		return code
	})
}
