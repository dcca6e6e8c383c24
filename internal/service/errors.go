package service

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAuthDisabled       = errors.New("authentication is not configured")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// inputError carries a client-facing message and matches ErrInvalidInput.
type inputError struct {
	msg string
}

func (e *inputError) Error() string { return e.msg }

func (e *inputError) Is(target error) bool { return target == ErrInvalidInput }

func invalidf(format string, args ...interface{}) error {
	return &inputError{msg: fmt.Sprintf(format, args...)}
}

// sameOwner reports whether caller may modify a row owned by owner. An
// ownerless row matches only an anonymous caller.
func sameOwner(owner, caller *int64) bool {
	if owner == nil || caller == nil {
		return owner == nil && caller == nil
	}
	return *owner == *caller
}
