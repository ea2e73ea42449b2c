// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package checksum

// ErrorKind identifies a kind of checksum error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidCharacter is returned when a descriptor contains a
	// character outside of the descriptor input character set.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrChecksumMismatch is returned when the checksum that follows the
	// '#' separator does not match the checksum computed over the
	// descriptor.
	ErrChecksumMismatch = ErrorKind("ErrChecksumMismatch")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a checksum related error.  It has full support for
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

// checksumError creates an Error given a set of arguments.
func checksumError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
