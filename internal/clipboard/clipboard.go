// Package clipboard reads submissions from the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/splitfare/splitfare/internal/booking"
)

// ErrEmpty is returned when the clipboard holds no text.
var ErrEmpty = errors.New("clipboard is empty")

var clipboardReadAll = clipboard.ReadAll

// ReadText returns the clipboard contents unchanged.
func ReadText() (string, error) {
	text, err := clipboardReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmpty
	}
	return text, nil
}

// ReadBookingURL returns the first booking link in the clipboard, if any.
// Read errors count as no link.
func ReadBookingURL(ex *booking.Extractor) (booking.URL, bool) {
	text, err := ReadText()
	if err != nil {
		return "", false
	}
	if ex == nil {
		return booking.Extract(text)
	}
	return ex.Extract(text)
}
