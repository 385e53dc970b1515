package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultMaxBytes caps the size of a single input file.
const DefaultMaxBytes int64 = 32 << 20

// ErrTooLarge is returned when a file exceeds Options.MaxBytes.
var ErrTooLarge = errors.New("file too large")

// File is one loaded input. It is never modified after loading.
type File struct {
	Name    string
	Content string
}

// Read decodes at most maxBytes of r into a File named name; zero or less
// means DefaultMaxBytes. A byte-order mark selects UTF-8 or UTF-16 decoding and
// is dropped; without one the bytes are kept as they are.
func Read(name string, r io.Reader, maxBytes int64) (File, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return File{}, fmt.Errorf("reading %s: %w", name, err)
	}

	if int64(len(data)) > maxBytes {
		return File{}, fmt.Errorf("%s: %w (limit %d bytes)", name, ErrTooLarge, maxBytes)
	}

	text, err := decode(data)
	if err != nil {
		return File{}, fmt.Errorf("decoding %s: %w", name, err)
	}

	return File{Name: name, Content: text}, nil
}

func decode(data []byte) (string, error) {
	if !hasBOM(data) {
		return string(data), nil
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), data)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, bomUTF8) ||
		bytes.HasPrefix(data, bomUTF16BE) ||
		bytes.HasPrefix(data, bomUTF16LE)
}
