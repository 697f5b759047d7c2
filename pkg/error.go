package pkg

// Sentinel errors shared by the sharutils tools and their packages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrReadInput is returned when reading the input stream fails.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrReadInput = MakeErrorf("failed to read input")

// ErrWriteOutput is returned when writing the output stream fails.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrWriteOutput = MakeErrorf("failed to write output")

// ErrNoBeginLine is returned when no begin header is found in an
// encoded input stream.
//
// This typically indicates that the input is not uuencoded data, or that
// the header was mangled in transit.
var ErrNoBeginLine = MakeErrorf("no begin line found")

// ErrBadHeader is returned when a begin header is present but malformed.
//
// This error should be wrapped with the offending header line.
var ErrBadHeader = MakeErrorf("malformed begin line")

// ErrCorruptData is returned when an encoded body line cannot be decoded.
//
// This error should be wrapped with context identifying the line.
var ErrCorruptData = MakeErrorf("corrupt encoded data")

// ErrMissingEnd is returned when an encoded stream terminates before its
// end marker.
var ErrMissingEnd = MakeErrorf("missing end marker")

// ErrUsage is returned when a tool is invoked with an unusable positional
// argument list.
//
// This error should be wrapped with a message describing the expected
// argument shape.
var ErrUsage = MakeErrorf("invalid usage")

// ErrOptionsFile is returned when saving or loading an option-state file
// fails.
//
// This error should be wrapped with the underlying I/O or decode error.
var ErrOptionsFile = MakeErrorf("options file error")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the result.
func (e Error) Wrap(err ...error) Error {
	return append(e, err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(e, fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
