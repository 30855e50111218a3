package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsValidate(t *testing.T) {
	cases := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"zero-value", Options{}, false},
		{"typical", Options{MaxBytes: 4096, MaxEntries: 10, Command: []string{"echo"}}, false},
		{"stop-string-whitespace-mode", Options{StopString: "END"}, false},
		{"null-mode", Options{NullDelimited: true}, false},
		{"negative-max-bytes", Options{MaxBytes: -1}, true},
		{"negative-max-entries", Options{MaxEntries: -5}, true},
		{"stop-string-with-null-mode", Options{NullDelimited: true, StopString: "END"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()

			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
