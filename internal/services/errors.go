package services

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable wraps any read/write failure that is neither a
// duplicate nor a missing reference.
var ErrStoreUnavailable = errors.New("store unavailable")

// DuplicateError reports a natural-key collision, naming the field that
// collided so forms can surface a precise message.
type DuplicateError struct {
	Entity string
	Field  string
	Value  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Field, e.Value)
}

// UnresolvedError reports that a named foreign entity does not exist.
type UnresolvedError struct {
	Entity string
	Name   string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Name)
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
