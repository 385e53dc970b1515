package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain", []byte("X:1\nhello"), "X:1\nhello"},
		{"crlf kept", []byte("a\r\nb"), "a\r\nb"},
		{"utf8 bom dropped", []byte("\xEF\xBB\xBFX:1"), "X:1"},
		{"utf16le", []byte{0xFF, 0xFE, 'X', 0, ':', 0, '1', 0}, "X:1"},
		{"utf16be", []byte{0xFE, 0xFF, 0, 'h', 0, 'i'}, "hi"},
		{"invalid utf8 untouched", []byte("a\xffb"), "a\xffb"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Read("in.txt", strings.NewReader(string(tt.in)), 0)
			require.NoError(t, err)
			assert.Equal(t, "in.txt", f.Name)
			assert.Equal(t, tt.want, f.Content)
		})
	}
}

func TestRead_TooLarge(t *testing.T) {
	_, err := Read("big", strings.NewReader("0123456789"), 9)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)

	f, err := Read("fits", strings.NewReader("0123456789"), 10)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", f.Content)
}
