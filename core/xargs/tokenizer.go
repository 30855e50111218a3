package xargs

import (
	"bufio"
	"bytes"
	"io"
)

// maxTokenSize bounds a single input token. Anything larger could
// never fit in an argument vector regardless of the configured limit.
const maxTokenSize = 16 << 20

// A Tokenizer splits an input stream into argument tokens under one
// of two delimiter disciplines. Whitespace mode skips runs of POSIX
// whitespace between tokens and never interprets quotes; null mode
// splits on NUL bytes and passes everything else through verbatim.
//
// The stream is consumed exactly once; a Tokenizer is not restartable.
type Tokenizer struct {
	scanner *bufio.Scanner
	stop    string
	token   string
	stopped bool
	done    bool
}

// NewTokenizer returns a Tokenizer reading from r.
//
// In whitespace mode a token exactly equal to stop ends input for the
// whole run; an empty stop string disables the check. Null mode never
// checks the stop string.
func NewTokenizer(r io.Reader, nullDelimited bool, stop string) *Tokenizer {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxTokenSize)

	t := &Tokenizer{scanner: scanner}
	if nullDelimited {
		scanner.Split(scanNull)
	} else {
		scanner.Split(bufio.ScanWords)
		t.stop = stop
	}
	return t
}

// scanNull is a bufio.SplitFunc that splits on NUL bytes. A trailing
// unterminated token is still emitted at EOF.
func scanNull(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Scan advances to the next token. It reports false at end of input,
// on read error, or once the stop string has been seen.
func (t *Tokenizer) Scan() bool {
	if t.done {
		return false
	}
	if !t.scanner.Scan() {
		t.done = true
		return false
	}

	tok := t.scanner.Text()
	if t.stop != "" && tok == t.stop {
		t.stopped = true
		t.done = true
		return false
	}

	t.token = tok
	return true
}

// Token returns the token read by the last successful call to Scan.
func (t *Tokenizer) Token() string {
	return t.token
}

// Stopped reports whether scanning ended because the stop string was
// seen rather than because input ran out.
func (t *Tokenizer) Stopped() bool {
	return t.stopped
}

// Err returns the first read error encountered, if any.
func (t *Tokenizer) Err() error {
	return t.scanner.Err()
}
