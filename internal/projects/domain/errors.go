package domain

import "errors"

var (
	ErrProjectNotFound      = errors.New("project not found or access denied")
	ErrBudgetItemNotFound   = errors.New("budget item not found")
	ErrBillingEntryNotFound = errors.New("billing entry not found or access denied")
)

// ValidationError marks input rejected at the service boundary before any
// store access. The message is reported verbatim to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Invalid(msg string) error {
	return &ValidationError{Message: msg}
}
