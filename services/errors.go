package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCartLineNotFound   = errors.New("cart line not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrContactNotFound    = errors.New("contact not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidTransition  = errors.New("order is in a terminal status")
	ErrInvalidCredentials = errors.New("invalid merchant password")
	ErrAccountLocked      = errors.New("merchant account is locked")
)

// ValidationError reports every checkout field that failed validation.
// Nothing is persisted when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// PersistenceError wraps a store write failure. Operations that return it
// leave prior state intact and are never retried internally.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
