package f1337patch

import (
	"errors"
	"fmt"
)

// FormatError indicates that the input violates the 1337patch grammar:
// missing header marker, wrong line length, misplaced separators or a
// non-hex character in a digit field. The file content is bad; retrying the
// read will not help.
type FormatError struct {
	// Reason describes which part of the grammar was violated
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("wrong format: %s", e.Reason)
}

// ReadError indicates that the underlying source failed to yield data.
// Wraps the I/O cause for diagnostics.
type ReadError struct {
	// Op is the operation that failed, e.g. "seek to start"
	Op string

	// Err is the underlying I/O error
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ConversionError indicates that a hex field passed structural validation but
// could not be converted to its numeric type. Given the fixed field widths
// this cannot happen in practice; the kind exists for forward compatibility
// with variable-width formats.
type ConversionError struct {
	// Field is the patch line field that failed, e.g. "address"
	Field string

	// Err is the underlying numeric-parse error
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s field: %v", e.Field, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// IsFormatError returns true if the error is, or wraps, a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsReadError returns true if the error is, or wraps, a ReadError.
func IsReadError(err error) bool {
	var re *ReadError
	return errors.As(err, &re)
}

// IsConversionError returns true if the error is, or wraps, a ConversionError.
func IsConversionError(err error) bool {
	var ce *ConversionError
	return errors.As(err, &ce)
}
