package fec

import (
	"errors"
	"fmt"

	"fecstream/internal/schema"
)

// ErrAlreadyConsumed is returned when the batch stream is requested again
// after it has been drained, abandoned, or the filing closed. The byte
// source is not assumed rewindable; a filing is strictly single-pass.
var ErrAlreadyConsumed = errors.New("filing batch stream already consumed")

// MalformedHeaderError indicates the first record of a filing could not be
// parsed as an HDR record. Always fatal: without the header's format version
// no schema can be resolved.
type MalformedHeaderError struct {
	Line   int
	Reason string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("line %d: malformed header: %s", e.Line, e.Reason)
}

// MalformedCoverError indicates the second record of a filing could not be
// decoded as a cover. Always fatal.
type MalformedCoverError struct {
	Line int
	Err  error
}

func (e *MalformedCoverError) Error() string {
	return fmt.Sprintf("line %d: malformed cover: %v", e.Line, e.Err)
}

func (e *MalformedCoverError) Unwrap() error { return e.Err }

// MalformedLineError indicates a line exceeded the bounded lookahead before
// a terminator was found. The reader discards through the next line boundary
// so a lenient caller can resume.
type MalformedLineError struct {
	Line  int
	Limit int
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: no line terminator within %d bytes", e.Line, e.Limit)
}

// MissingRequiredFieldError indicates a required field's slot was empty or
// unreachable on a decoded line.
type MissingRequiredFieldError struct {
	Code  string
	Field string
	Line  int
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("line %d: %s: missing required field %q", e.Line, e.Code, e.Field)
}

// FieldCountMismatchError indicates a line carried more positional values
// than its schema defines. Reported only in strict mode; lenient decoding
// keeps extras as string-typed fields.
type FieldCountMismatchError struct {
	Code string
	Line int
	Want int
	Got  int
}

func (e *FieldCountMismatchError) Error() string {
	return fmt.Sprintf("line %d: %s: %d fields, schema defines %d", e.Line, e.Code, e.Got, e.Want)
}

// TypeCoercionError indicates a non-empty value could not be parsed as its
// field's semantic type.
type TypeCoercionError struct {
	Code  string
	Field string
	Value string
	Type  schema.FieldType
	Line  int
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("line %d: %s: field %q: cannot parse %q as %s",
		e.Line, e.Code, e.Field, e.Value, e.Type)
}
