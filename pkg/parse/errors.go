package parse

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrParse = errors.New("parse error")

// Error reports text that does not have the expected shape. It matches
// ErrParse.
type Error struct {
	Text     string
	Expected string
	Err      error
}

// Errorf builds an *Error for text, with expected describing the shape the
// text should have had.
func Errorf(text, format string, args ...any) *Error {
	return &Error{Text: text, Expected: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("cannot parse %q: expected %s", e.Text, e.Expected)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrParse
}
