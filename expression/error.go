// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package expression

// ErrorKind identifies a kind of expression parsing error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrEmptyExpression is returned when there is nothing to parse.
	ErrEmptyExpression = ErrorKind("ErrEmptyExpression")

	// ErrInvalidSequence is returned when two tokens appear next to each
	// other in a way that cannot occur in a valid expression, for example
	// "()" or ",,".
	ErrInvalidSequence = ErrorKind("ErrInvalidSequence")

	// ErrUnbalanced is returned when the parentheses of an expression do
	// not match up or an argument separator appears outside of any
	// argument list.
	ErrUnbalanced = ErrorKind("ErrUnbalanced")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an expression parsing error.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// parseError creates an Error given a set of arguments.
func parseError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
