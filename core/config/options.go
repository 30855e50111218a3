package config

import (
	"github.com/go-playground/validator/v10"
)

// Options configures one run of the tool. It is populated by the
// flag-parsing layer; the engine consumes it read-only.
type Options struct {
	// MaxBytes bounds the total byte cost of each invocation's
	// argument vector. 0 derives the bound from OS limits.
	MaxBytes int `validate:"gte=0"`
	// MaxEntries bounds the number of appended arguments per
	// invocation. 0 means unlimited.
	MaxEntries int `validate:"gte=0"`
	// StopString ends input consumption for the whole run when read
	// as a complete token. Whitespace mode only; incompatible with
	// NullDelimited.
	StopString string `validate:"excluded_with=NullDelimited"`
	// NullDelimited splits input on NUL bytes instead of whitespace.
	NullDelimited bool
	// RunIfEmpty forces the bare command to run once even when
	// SkipIfEmpty is set.
	RunIfEmpty bool
	// SkipIfEmpty suppresses the command entirely when no input
	// arrives.
	SkipIfEmpty bool
	// Interactive asks the controlling terminal before each run.
	Interactive bool
	// Trace prints each command line to stderr before running it.
	Trace bool
	// OpenTTY attaches the child's stdin to the controlling terminal
	// instead of the null device.
	OpenTTY bool
	// Command is the fixed command template. Empty means echo.
	Command []string
}

// Validate checks the options for semantic errors.
func (o *Options) Validate() error {
	return validator.New().Struct(o)
}
