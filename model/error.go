package model

import (
	"errors"
	"fmt"
)

type ExitCode int

func (e ExitCode) String() string {
	return fmt.Sprintf("Exit code %d", e)
}

func (e ExitCode) Error() string {
	return e.String()
}

const (
	Unset ExitCode = -1
)
const (
	NoError ExitCode = iota
	UnknownError
	UserCanceled
)

var (
	// ErrItemNotFound is returned when a menu path does not resolve.
	ErrItemNotFound = errors.New("menu item not found")
	// ErrControlledValueMissing is returned when a controlled input stops
	// receiving an external value. The last known value stays pinned.
	ErrControlledValueMissing = errors.New("controlled input received no value")
	// ErrUncontrolledValueSupplied is returned when an external value is pushed
	// into an uncontrolled input. The value is ignored.
	ErrUncontrolledValueSupplied = errors.New("uncontrolled input received an external value")
)
