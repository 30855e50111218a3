package xargs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(t *Tokenizer) []string {
	var out []string
	for t.Scan() {
		out = append(out, t.Token())
	}
	return out
}

func TestTokenizerWhitespace(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple", "a b c", []string{"a", "b", "c"}},
		{"leading-space", "   a", []string{"a"}},
		{"trailing-space", "a   ", []string{"a"}},
		{"mixed-whitespace", "a\tb\nc\r\nd", []string{"a", "b", "c", "d"}},
		{"runs-collapse", "a    b", []string{"a", "b"}},
		{"empty", "", nil},
		{"only-whitespace", " \t\n ", nil},
		// No quote processing: quotes are ordinary bytes.
		{"quotes-verbatim", `"a b" 'c'`, []string{`"a`, `b"`, `'c'`}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tok := NewTokenizer(strings.NewReader(tc.input), false, "")

			assert.Equal(t, tc.expected, collect(tok))
			assert.NoError(t, tok.Err())
			assert.False(t, tok.Stopped())
		})
	}
}

func TestTokenizerNullDelimited(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple", "a\x00b\x00", []string{"a", "b"}},
		{"unterminated-tail", "a\x00b", []string{"a", "b"}},
		// Whitespace is an ordinary byte in null mode.
		{"embedded-whitespace", "a b\tc\x00d\x00", []string{"a b\tc", "d"}},
		{"empty-token", "a\x00\x00b\x00", []string{"a", "", "b"}},
		{"empty", "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tok := NewTokenizer(strings.NewReader(tc.input), true, "")

			assert.Equal(t, tc.expected, collect(tok))
			assert.NoError(t, tok.Err())
		})
	}
}

func TestTokenizerStopString(t *testing.T) {
	t.Run("stops-at-token", func(t *testing.T) {
		tok := NewTokenizer(strings.NewReader("a b END c d"), false, "END")

		assert.Equal(t, []string{"a", "b"}, collect(tok))
		assert.True(t, tok.Stopped())

		// Nothing more comes out, even if asked again.
		assert.False(t, tok.Scan())
	})

	t.Run("whole-token-match-only", func(t *testing.T) {
		tok := NewTokenizer(strings.NewReader("ENDX END"), false, "END")

		assert.Equal(t, []string{"ENDX"}, collect(tok))
		assert.True(t, tok.Stopped())
	})

	t.Run("empty-stop-disabled", func(t *testing.T) {
		tok := NewTokenizer(strings.NewReader("a b"), false, "")

		assert.Equal(t, []string{"a", "b"}, collect(tok))
		assert.False(t, tok.Stopped())
	})

	t.Run("ignored-in-null-mode", func(t *testing.T) {
		tok := NewTokenizer(strings.NewReader("END\x00a\x00"), true, "END")

		assert.Equal(t, []string{"END", "a"}, collect(tok))
		assert.False(t, tok.Stopped())
	})
}
