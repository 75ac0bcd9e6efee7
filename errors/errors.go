// Package errors defines the closed set of failure kinds a uz1 codec can
// report, and a DriverError-shaped type carrying one of them plus an
// optional wrapped cause.
package errors

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Uz1Error is a wrapper around a Kind, with a customizable message and an
// optional wrapped cause.
type Uz1Error interface {
	error
	Kind() Kind
	Unwrap() error
}

type uz1Error struct {
	kind          Kind
	message       string
	originalError error
}

// Error implements the error interface.
func (e uz1Error) Error() string {
	if e.message != "" {
		return e.message
	}
	return e.kind.String()
}

func (e uz1Error) Kind() Kind {
	return e.kind
}

func (e uz1Error) Unwrap() error {
	return e.originalError
}

// New creates a new Uz1Error with a default message derived from kind.
func New(kind Kind) Uz1Error {
	return uz1Error{kind: kind, message: kind.String()}
}

// NewFromError creates a new Uz1Error wrapping an underlying cause.
func NewFromError(kind Kind, originalError error) Uz1Error {
	return uz1Error{
		kind:          kind,
		message:       fmt.Sprintf("%s: %s", kind.String(), originalError.Error()),
		originalError: originalError,
	}
}

// NewWithMessage creates a new Uz1Error from a kind with a custom message.
func NewWithMessage(kind Kind, message string) Uz1Error {
	return uz1Error{
		kind:    kind,
		message: fmt.Sprintf("%s: %s", kind.String(), message),
	}
}

// Wrap combines a Uz1Error with one or more additional causes (for example,
// an I/O failure discovered while unwinding after a corrupt block was
// already detected) into a single error via multierror.
func Wrap(primary error, causes ...error) error {
	merr := &multierror.Error{}
	merr = multierror.Append(merr, primary)
	for _, c := range causes {
		if c != nil {
			merr = multierror.Append(merr, c)
		}
	}
	return merr.ErrorOrNil()
}
