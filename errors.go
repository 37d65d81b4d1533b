package rapidutf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutputTooSmall is returned by the allocating helpers when a sizing
	// function and its converter disagree, which indicates a kernel bug.
	ErrOutputTooSmall = errors.New("rapidutf: output buffer too small")

	// ErrUnknownImplementation is returned when an implementation name is not
	// compiled in.
	ErrUnknownImplementation = errors.New("rapidutf: unknown implementation")

	// ErrUnsupportedImplementation is returned when an implementation cannot
	// run on this CPU.
	ErrUnsupportedImplementation = errors.New("rapidutf: implementation not supported by this CPU")
)

// Error implements the error interface so an ErrorCode can be matched with
// errors.Is.
func (c ErrorCode) Error() string {
	return "rapidutf: " + strings.ToLower(strings.ReplaceAll(c.String(), "_", " "))
}

// Error describes malformed input found at Offset.
type Error struct {
	Code   ErrorCode
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Code.Error(), e.Offset)
}

// Unwrap returns the ErrorCode.
func (e *Error) Unwrap() error {
	return e.Code
}
