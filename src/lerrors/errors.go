// Package lerrors is a unified errors package for reading and decoding schema
// documents so that they can be formatted and handled in a uniform way. Walking a
// decoded schema never fails, so these errors only come from the document boundary.
package lerrors

import (
	"errors"
	"fmt"
)

type (
	// ErrorKind is an enum to describe where the error originates from.
	ErrorKind int
	// Error captures all errors raised while loading a schema. It distinguishes
	// between read, decode and repair errors and will format them accordingly.
	Error struct {
		Kind     ErrorKind
		Err      error
		Filename string
	}
)

const (
	// DecodeErr is an error from decoding a JSON or YAML document.
	DecodeErr ErrorKind = iota
	// ReadErr is an error from reading the document source.
	ReadErr
	// RepairErr is an error from repairing malformed JSON.
	RepairErr
)

// New wraps err with the given kind and filename. If err is already an *Error it
// is returned as is.
func New(kind ErrorKind, filename string, err error) error {
	if err == nil {
		return nil
	}
	var schemaErr *Error
	if errors.As(err, &schemaErr) {
		return schemaErr
	}
	return &Error{Kind: kind, Filename: filename, Err: err}
}

func (err *Error) Error() string {
	switch err.Kind {
	case ReadErr:
		return fmt.Sprintf("Read Error: %s %v", err.Filename, err.Err)
	case RepairErr:
		return fmt.Sprintf("Repair Error: %s %v", err.Filename, err.Err)
	default:
		return fmt.Sprintf("Decode Error: %s %v", err.Filename, err.Err)
	}
}

func (err *Error) Unwrap() error { return err.Err }
