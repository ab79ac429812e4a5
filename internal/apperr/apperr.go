// Package apperr classifies terminal failures and carries the localized
// text a run prints before exiting. Every failure kind maps onto exactly
// one process exit code.
package apperr

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitNotFound     = 1
	ExitNetwork      = 2
	ExitAPI          = 3
	ExitInvalidInput = 4
	ExitAmbiguous    = 5
)

// Kind identifies one failure class.
type Kind int

const (
	Timeout Kind = iota
	ConnectionFailure
	HTTPStatus
	MalformedBody
	NotFound
	MissingCoordinates
	IncompleteData
	Ambiguous
	InvalidInput
)

func (k Kind) String() string {
	switch k {
	case Timeout:
		return "timeout"
	case ConnectionFailure:
		return "connection failure"
	case HTTPStatus:
		return "http status"
	case MalformedBody:
		return "malformed body"
	case NotFound:
		return "not found"
	case MissingCoordinates:
		return "missing coordinates"
	case IncompleteData:
		return "incomplete data"
	case Ambiguous:
		return "ambiguous"
	case InvalidInput:
		return "invalid input"
	default:
		return fmt.Sprintf("Unknown (%d)", int(k))
	}
}

// ExitCode returns the process exit code for this kind.
func (k Kind) ExitCode() int {
	switch k {
	case Timeout, ConnectionFailure:
		return ExitNetwork
	case HTTPStatus, MalformedBody, MissingCoordinates, IncompleteData:
		return ExitAPI
	case NotFound:
		return ExitNotFound
	case Ambiguous:
		return ExitAmbiguous
	case InvalidInput:
		return ExitInvalidInput
	default:
		return ExitAPI
	}
}

// Error is a terminal failure. Message is already localized; Hint, when
// set, is a second line printed after the message (ambiguity hints).
type Error struct {
	Kind    Kind
	Message string
	Hint    string
	cause   error
}

// New builds a terminal failure of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds a terminal failure while keeping the underlying cause
// reachable through errors.Is and errors.As.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// NewAmbiguous builds an ambiguity failure with its follow-up hint line.
func NewAmbiguous(message, hint string) *Error {
	return &Error{Kind: Ambiguous, Message: message, Hint: hint}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Code extracts the exit code carried by err. Unclassified errors count
// as generic request failures.
func Code(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind.ExitCode()
	}
	return ExitNetwork
}
