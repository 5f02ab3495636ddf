package form

import (
	"fmt"

	"github.com/splitfare/splitfare/internal/booking"
)

// ErrorKind identifies why a submission was refused.
type ErrorKind int

const (
	EmptyInput ErrorKind = iota + 1
	NoURLFound
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "empty-input"
	case NoURLFound:
		return "no-url-found"
	default:
		return "unknown"
	}
}

const emptyInputMessage = "Please enter text containing a DB booking URL or paste a direct DB booking link"

// Message returns the user-facing text for k. The NoURLFound text names the
// expected host and path of p.
func (k ErrorKind) Message(p booking.Pattern) string {
	switch k {
	case EmptyInput:
		return emptyInputMessage
	case NoURLFound:
		return fmt.Sprintf("No valid DB booking URL found. Please paste text containing a Deutsche Bahn booking link (%s) or check that your URL is correct.", p.Hint())
	default:
		return "Unknown error"
	}
}

// ValidationError is returned for a refused submission.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

// NewValidationError returns the error for kind with its message for p.
func NewValidationError(kind ErrorKind, p booking.Pattern) *ValidationError {
	return &ValidationError{Kind: kind, Message: kind.Message(p)}
}

func (e *ValidationError) Error() string {
	return e.Message
}
