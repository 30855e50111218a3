package xargs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/josephlewis42/goxargs/core/config"
)

var (
	// ErrArgTooLong reports a single input token that can't fit
	// within the size limit even as a batch's only entry.
	ErrArgTooLong = errors.New("argument too long")
	// ErrCommandTooLong reports a command template that leaves no
	// room for appended arguments.
	ErrCommandTooLong = errors.New("command too long")
)

// boundary describes why batch filling stopped.
type boundary int

const (
	// batchFull: a size or entry limit was reached; input remains.
	batchFull boundary = iota
	// inputDone: the input stream is exhausted.
	inputDone
	// stopHit: the stop string ended input for the whole run.
	stopHit
)

// A Loop drives the whole run: fill a batch from the tokenizer,
// build the argument vector, run it, and fold each result into the
// aggregate exit code.
type Loop struct {
	template []string
	tokens   *Tokenizer
	batch    *Accumulator
	runner   Invoker

	trace       bool
	prompt      bool
	runIfEmpty  bool
	skipIfEmpty bool

	stderr  io.Writer
	tty     *bufio.Reader
	ttyFile *os.File

	carry    string
	hasCarry bool
	exit     int
}

// New assembles a Loop from validated options. Input is read from
// input; child stdout/stderr and the trace stream go to stdout and
// stderr.
func New(opts *config.Options, input io.Reader, stdout, stderr io.Writer) (*Loop, error) {
	template := opts.Command
	if len(template) == 0 {
		template = []string{"echo"}
	}

	limit := opts.MaxBytes
	explicit := limit > 0
	if !explicit {
		limit = DefaultSizeLimit()
	}

	batch := NewAccumulator(limit, opts.MaxEntries, explicit)
	if !batch.SetPrefix(template) {
		return nil, ErrCommandTooLong
	}

	return &Loop{
		template:    template,
		tokens:      NewTokenizer(input, opts.NullDelimited, opts.StopString),
		batch:       batch,
		runner:      &ProcessRunner{OpenTTY: opts.OpenTTY, Stdout: stdout, Stderr: stderr},
		trace:       opts.Trace,
		prompt:      opts.Interactive,
		runIfEmpty:  opts.RunIfEmpty,
		skipIfEmpty: opts.SkipIfEmpty,
		stderr:      stderr,
	}, nil
}

// Run drives the loop to completion and returns the aggregate exit
// code for the run. The returned error marks fatal conditions that
// the caller reports before exiting nonzero.
func (l *Loop) Run() (int, error) {
	defer l.closeTTY()

	executed := false
	for {
		edge, err := l.fill()
		if err != nil {
			return 1, err
		}

		if l.batch.Len() == 0 && edge != batchFull {
			if executed || (l.skipIfEmpty && !l.runIfEmpty) {
				break
			}
			// POSIX: the bare command runs exactly once even when
			// input is empty.
		}

		argv := BuildArgv(l.template, l.batch.Take())
		executed = true

		run, err := l.confirm(argv)
		if err != nil {
			return 1, err
		}
		if run {
			stop, err := l.dispatch(argv)
			if err != nil {
				return 1, err
			}
			if stop {
				break
			}
		}

		if edge != batchFull {
			break
		}
	}

	return l.exit, nil
}

// fill pulls tokens into the accumulator until a batch limit, the
// stop string, or end of input is reached.
func (l *Loop) fill() (boundary, error) {
	if l.hasCarry {
		if l.batch.Add(l.carry) != Accepted {
			// A fresh batch that can't take the carried token will
			// never fit it.
			return inputDone, ErrArgTooLong
		}
		l.hasCarry = false
		l.carry = ""
	}

	for l.tokens.Scan() {
		tok := l.tokens.Token()
		switch l.batch.Add(tok) {
		case Accepted:
		case Full:
			l.carry = tok
			l.hasCarry = true
			return batchFull, nil
		case TooLarge:
			return inputDone, ErrArgTooLong
		}
	}

	if err := l.tokens.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return inputDone, ErrArgTooLong
		}
		return inputDone, err
	}
	if l.tokens.Stopped() {
		return stopHit, nil
	}
	return inputDone, nil
}

// confirm writes the trace line and, in interactive mode, asks the
// controlling terminal whether to run this invocation.
func (l *Loop) confirm(argv []string) (bool, error) {
	if !l.trace && !l.prompt {
		return true, nil
	}

	for _, arg := range argv {
		fmt.Fprintf(l.stderr, "%s ", arg)
	}
	if !l.prompt {
		fmt.Fprintln(l.stderr)
		return true, nil
	}

	fmt.Fprint(l.stderr, "?")
	if l.tty == nil {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return false, fmt.Errorf("can't open terminal for confirmation: %w", err)
		}
		l.ttyFile = tty
		l.tty = bufio.NewReader(tty)
	}

	answer, err := l.tty.ReadString('\n')
	if err != nil && answer == "" {
		return false, nil
	}
	// Only the first character of the answer counts.
	answer = strings.TrimSpace(answer)
	return strings.HasPrefix(answer, "y") || strings.HasPrefix(answer, "Y"), nil
}

// dispatch runs one invocation and folds its classification into the
// aggregate exit code. It reports whether the whole run must stop.
func (l *Loop) dispatch(argv []string) (stop bool, err error) {
	res, runErr := l.runner.Run(argv)

	switch res.Outcome {
	case OK, Unmapped:
	case NonZero:
		l.raise(123)
	case Signaled:
		l.raise(127)
	case FatalExec:
		if runErr != nil {
			fmt.Fprintf(l.stderr, "xargs: %v\n", runErr)
		}
		l.exit = res.Code
		return true, nil
	case Aborted:
		fmt.Fprintf(l.stderr, "xargs: %s: exited with status 255; aborting\n", argv[0])
		l.exit = 124
		return true, nil
	}

	if runErr != nil {
		return true, runErr
	}
	return false, nil
}

// raise lifts the aggregate exit code for conditions that let the
// run continue. A later, lower-priority failure never masks an
// earlier one.
func (l *Loop) raise(code int) {
	if exitRank(code) > exitRank(l.exit) {
		l.exit = code
	}
}

func exitRank(code int) int {
	switch code {
	case 0:
		return 0
	case 123:
		return 1
	default: // 127: a child died to a signal
		return 2
	}
}

func (l *Loop) closeTTY() {
	if l.ttyFile != nil {
		l.ttyFile.Close()
		l.ttyFile = nil
		l.tty = nil
	}
}
