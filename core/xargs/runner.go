package xargs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"
)

// Outcome classifies how one child invocation ended.
type Outcome int

const (
	// OK: the child exited 0.
	OK Outcome = iota
	// NonZero: the child exited 1..125. The run continues and the
	// aggregate exit code becomes 123.
	NonZero
	// FatalExec: the child exited 126 or 127, or could never be
	// launched. The exact code propagates as the final exit and the
	// run stops.
	FatalExec
	// Aborted: the child exited 255, the conventional request to stop
	// feeding it arguments. The run stops with aggregate exit 124.
	Aborted
	// Signaled: the child was killed by a signal. The aggregate exit
	// code becomes 127 but the run continues.
	Signaled
	// Unmapped: the child exited 128..254, statuses the POSIX table
	// assigns no meaning. The run continues and the aggregate exit
	// code is left alone.
	Unmapped
)

// Result reports the classified termination of one invocation.
type Result struct {
	Outcome Outcome
	Code    int // exit status, where the child exited on its own
}

// An Invoker runs a single child invocation to completion.
type Invoker interface {
	Run(argv []string) (Result, error)
}

// ProcessRunner launches real child processes and waits for them.
// The child's stdin is the null device, or the controlling terminal
// when OpenTTY is set; stdout and stderr go to the runner's streams.
type ProcessRunner struct {
	OpenTTY bool
	Stdout  io.Writer
	Stderr  io.Writer
}

var _ Invoker = (*ProcessRunner)(nil)

// Run spawns argv and blocks until it terminates.
func (r *ProcessRunner) Run(argv []string) (Result, error) {
	stdin, err := os.Open(r.stdinPath())
	if err != nil {
		return Result{Outcome: FatalExec, Code: 126}, err
	}
	defer stdin.Close()

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err = cmd.Run()
	if err == nil {
		return Result{Outcome: OK}, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		// The child never ran. Shells report 127 for a command that
		// can't be found and 126 for one that can't be executed.
		code := 126
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			code = 127
		}
		return Result{Outcome: FatalExec, Code: code}, err
	}

	// A negative exit code means the child was killed by a signal.
	if exitErr.ExitCode() < 0 {
		return Result{Outcome: Signaled}, nil
	}
	return classifyExit(exitErr.ExitCode()), nil
}

// classifyExit maps a nonzero exit status onto the POSIX xargs
// special cases.
func classifyExit(code int) Result {
	switch {
	case code == 126 || code == 127:
		return Result{Outcome: FatalExec, Code: code}
	case code == 255:
		return Result{Outcome: Aborted, Code: code}
	case code > 127:
		return Result{Outcome: Unmapped, Code: code}
	default: // 1..125
		return Result{Outcome: NonZero, Code: code}
	}
}

func (r *ProcessRunner) stdinPath() string {
	if r.OpenTTY {
		return "/dev/tty"
	}
	return os.DevNull
}
