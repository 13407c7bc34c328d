package scan

import (
	"bytes"
	"io"
	"os"
	"strings"
)

// Loader reads candidate files defensively. An empty return string always
// means "skip this file" and is never an error signal.
type Loader struct {
	maxBytes int
}

// NewLoader creates a Loader that reads at most maxBytes per file.
func NewLoader(maxBytes int) *Loader {
	return &Loader{maxBytes: maxBytes}
}

// ReadText returns the text content of path, or "" when the file is
// unreadable, binary, or empty. At most maxBytes are read; a truncated
// read is not corruption.
func (l *Loader) ReadText(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer func() { _ = f.Close() }()

	raw, err := io.ReadAll(io.LimitReader(f, int64(l.maxBytes)))
	if err != nil {
		return ""
	}

	if !isProbablyText(raw) {
		return ""
	}

	// Decode as UTF-8, dropping invalid byte sequences.
	return strings.ToValidUTF8(string(raw), "")
}

// isProbablyText reports whether data looks like text. Zero-length content
// is rejected explicitly, a NUL byte means binary, and otherwise more than
// 80% of bytes must be printable ASCII or tab/newline/carriage-return.
func isProbablyText(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return false
	}

	printable := 0
	for _, b := range data {
		if (b >= 32 && b < 127) || b == '\t' || b == '\n' || b == '\r' {
			printable++
		}
	}
	return float64(printable)/float64(len(data)) > 0.8
}
