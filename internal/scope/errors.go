package scope

import (
	"errors"
	"fmt"
)

var (
	ErrNesting            = errors.New("cannot nest op definitions")
	ErrNoActiveDefinition = errors.New("the expression requires an active op definition")
)

// NestingError reports an Enter while another definition is still active.
type NestingError struct {
	Active    string
	Requested string
}

func (e *NestingError) Error() string {
	return fmt.Sprintf("%s: %q requested while %q is active", ErrNesting, e.Requested, e.Active)
}

func (e *NestingError) Unwrap() error {
	return ErrNesting
}
