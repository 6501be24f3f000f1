package core

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName       = errors.New("empty name")
	ErrNameTooLong     = errors.New("name too long (max 200 characters)")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrUnknownType     = errors.New("unknown transaction type")
	ErrUnknownCategory = errors.New("unknown category")

	ErrEmptyUserID    = errors.New("empty user id")
	ErrEmptyUserName  = errors.New("empty user name")
	ErrEmptyUserEmail = errors.New("empty user email")

	// ErrNotAuthenticated is returned by operations that require a signed-in
	// user when the session holds none.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// ValidationError reports malformed transaction input at construction time.
// The caller must fix the input before retrying.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid transaction: %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// AuthProviderError reports a provider that rejected the sign-in or returned
// an incomplete credential. Cancellation by the user is not an error and is
// never wrapped in one.
type AuthProviderError struct {
	Provider string
	Err      error
}

func (e *AuthProviderError) Error() string {
	return fmt.Sprintf("auth provider %s: %v", e.Provider, e.Err)
}

func (e *AuthProviderError) Unwrap() error { return e.Err }

// PersistenceError reports a failed store read or write. The user action may
// be retried as a whole; no automatic retry happens.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// MalformedRecordError reports corrupted persisted data detected while
// aggregating. It names the offending record so totals are never fabricated
// by silent coercion.
type MalformedRecordError struct {
	ID    string
	Field string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %s: %s: %v", e.ID, e.Field, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }
