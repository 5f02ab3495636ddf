// Package source obtains the raw text of a submission from arguments,
// standard input or files.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/h2non/filetype"
)

// ErrBinaryInput is returned for input that is a known binary format.
var ErrBinaryInput = errors.New("binary input")

type Kind string

const (
	KindEmpty Kind = "empty"
	KindText  Kind = "text"
	KindHTML  Kind = "html"
)

// headerSize is the number of leading bytes filetype needs for detection.
const headerSize = 262

func Normalize(raw string) string {
	return strings.TrimSpace(raw)
}

// KindOf classifies raw text for logging.
func KindOf(raw string) Kind {
	s := Normalize(raw)
	if s == "" {
		return KindEmpty
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "<html") || strings.Contains(lower, "<a ") || strings.Contains(lower, "<body") {
		return KindHTML
	}
	return KindText
}

// Read consumes r and returns its text. Data that carries a known magic
// number and is not text itself (it holds a NUL byte or invalid UTF-8) is
// refused with ErrBinaryInput. Short signatures such as "BM" or "MZ" at the
// start of valid text are not enough. Remaining invalid UTF-8 sequences are
// replaced with U+FFFD.
func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	head := data
	if len(head) > headerSize {
		head = head[:headerSize]
	}
	if kind, _ := filetype.Match(head); kind != filetype.Unknown && !isText(data) {
		return "", fmt.Errorf("%w: detected %s (%s)", ErrBinaryInput, kind.Extension, kind.MIME.Value)
	}

	text := string(data)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "�")
	}
	return text, nil
}

// isText reports whether data is NUL-free UTF-8.
func isText(data []byte) bool {
	return bytes.IndexByte(data, 0) < 0 && utf8.Valid(data)
}

// ReadFile reads the text of the file at path; "-" reads stdin.
func ReadFile(path string) (string, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Collect joins positional arguments into one text. No arguments, or a
// single "-", reads stdin instead.
func Collect(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		if stdin == nil {
			return "", nil
		}
		return Read(stdin)
	}
	return strings.Join(args, " "), nil
}
