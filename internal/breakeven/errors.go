package breakeven

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a caller contract violation, such as a channel with
// sales share but no average order value.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes which field broke the contract.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidInput) match any InputError.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidInput(field, reason string) error {
	return &InputError{Field: field, Reason: reason}
}
