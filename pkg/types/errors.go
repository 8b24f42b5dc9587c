// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Pipeline errors are fatal: the run aborts on the first one and no output
// file is committed. Each kind maps to its own process exit code so callers
// can distinguish failures without parsing messages.

// MissingInputFileError reports that the source or base file does not exist.
type MissingInputFileError struct {
	Path string
}

func (e *MissingInputFileError) Error() string {
	return fmt.Sprintf("input file %s does not exist", e.Path)
}

// MalformedInputError reports that the source file is not well-formed XML
// or lacks the expected root element.
type MalformedInputError struct {
	Path string
	Err  error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed source file %s: %v", e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// MissingFieldError reports a record missing (or carrying an unusable value
// for) a required field. Index is the 0-based position of the record in the
// source document.
type MissingFieldError struct {
	Path  string
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: record %d is missing required field %q", e.Path, e.Index, e.Field)
}

// UnknownModeError reports a detector token outside the recognized set.
type UnknownModeError struct {
	Token string
	Index int
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("record %d: unknown mode %q", e.Index, e.Token)
}

// InvalidBaseFormatError reports that the destination base document is not
// parseable JSON or lacks the top-level lists container.
type InvalidBaseFormatError struct {
	Path string
	Err  error
}

func (e *InvalidBaseFormatError) Error() string {
	return fmt.Sprintf("invalid base document %s: %v", e.Path, e.Err)
}

func (e *InvalidBaseFormatError) Unwrap() error { return e.Err }

// WriteError reports that the output path could not be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Exit codes, one per error kind. 1 is the generic failure code.
const (
	ExitFailure           = 1
	ExitMissingInputFile  = 2
	ExitMalformedInput    = 3
	ExitMissingField      = 4
	ExitUnknownMode       = 5
	ExitInvalidBaseFormat = 6
	ExitWrite             = 7
)

// ExitCode returns the process exit code for err, walking the wrap chain.
func ExitCode(err error) int {
	var (
		missing   *MissingInputFileError
		malformed *MalformedInputError
		field     *MissingFieldError
		mode      *UnknownModeError
		base      *InvalidBaseFormatError
		write     *WriteError
	)
	switch {
	case errors.As(err, &missing):
		return ExitMissingInputFile
	case errors.As(err, &malformed):
		return ExitMalformedInput
	case errors.As(err, &field):
		return ExitMissingField
	case errors.As(err, &mode):
		return ExitUnknownMode
	case errors.As(err, &base):
		return ExitInvalidBaseFormat
	case errors.As(err, &write):
		return ExitWrite
	default:
		return ExitFailure
	}
}
