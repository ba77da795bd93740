package models

import (
	"errors"
	"fmt"
)

// Domain-specific errors for card movement
var (
	// ErrNoNextList indicates that the card is already in the last list
	ErrNoNextList = errors.New("card is already in the last list")

	// ErrNoPrevList indicates that the card is already in the first list
	ErrNoPrevList = errors.New("card is already in the first list")

	// ErrAlreadyFirstCard indicates an attempt to move up the top card
	ErrAlreadyFirstCard = errors.New("card is already at the top of the list")

	// ErrAlreadyLastCard indicates an attempt to move down the bottom card
	ErrAlreadyLastCard = errors.New("card is already at the bottom of the list")
)

// TransportError reports a failed call to the remote service.
type TransportError struct {
	Op         string // remote operation, e.g. "GET /boards/{id}/lists"
	StatusCode int    // HTTP status, 0 when the request never got a response
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// CacheReadError reports a snapshot that exists but could not be read.
// It is never fatal: the loader logs it and treats it as a miss.
type CacheReadError struct {
	Key string
	Err error
}

func (e *CacheReadError) Error() string {
	return fmt.Sprintf("snapshot %q unreadable: %v", e.Key, e.Err)
}

func (e *CacheReadError) Unwrap() error {
	return e.Err
}

// ValidationError reports input rejected before any store or remote access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a card or list missing from where the caller
// addressed it. This means the UI and the store disagree.
type NotFoundError struct {
	Kind  string // "card", "list", "board"
	ID    string // id or index that was looked up
	Scope string // where it was looked up, may be empty
}

func (e *NotFoundError) Error() string {
	if e.Scope != "" {
		return fmt.Sprintf("%s %s not found in %s", e.Kind, e.ID, e.Scope)
	}
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// IsTransport reports whether err wraps a TransportError
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsValidation reports whether err wraps a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err wraps a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
