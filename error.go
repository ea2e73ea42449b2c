// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package descriptor

// ErrorKind identifies a kind of descriptor error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrChecksumMismatch is returned when the checksum that follows a
	// descriptor does not match the descriptor.
	ErrChecksumMismatch = ErrorKind("ErrChecksumMismatch")

	// ErrMalformedExpression is returned when a descriptor cannot be
	// tokenized into an expression tree, or contains characters that are
	// not allowed in descriptors.
	ErrMalformedExpression = ErrorKind("ErrMalformedExpression")

	// ErrUnexpectedExpression is returned when an expression tree is well
	// formed but does not have the name or number of arguments the
	// descriptor expects.
	ErrUnexpectedExpression = ErrorKind("ErrUnexpectedExpression")

	// ErrInvalidAddress is returned when the argument of an addr()
	// descriptor is not a valid address.
	ErrInvalidAddress = ErrorKind("ErrInvalidAddress")

	// ErrInvalidScript is returned when the argument of a raw()
	// descriptor is not a valid hex encoded script.
	ErrInvalidScript = ErrorKind("ErrInvalidScript")

	// ErrNoExplicitScript is returned when the spending script of an
	// output cannot be recovered from the descriptor alone.
	ErrNoExplicitScript = ErrorKind("ErrNoExplicitScript")

	// ErrNoScriptCode is returned when an output has no script code, which
	// is the case for taproot outputs.
	ErrNoScriptCode = ErrorKind("ErrNoScriptCode")

	// ErrKeyType is returned when a key translator is handed a key of a
	// type it does not translate.
	ErrKeyType = ErrorKind("ErrKeyType")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a descriptor related error.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error kind, as well as the error
// reported by a collaborator such as the address decoder.
type Error struct {
	Err         error
	Description string

	// Cause is the error that led to this one, if any.
	Cause error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.Cause != nil {
		return e.Description + ": " + e.Cause.Error()
	}
	return e.Description
}

// Unwrap returns the error kind and the cause, if any.
func (e Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// descError creates an Error given a set of arguments.
func descError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// wrapError creates an Error caused by another error.
func wrapError(kind ErrorKind, desc string, cause error) Error {
	return Error{Err: kind, Description: desc, Cause: cause}
}
