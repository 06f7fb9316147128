package rgs

import (
	"errors"
	"fmt"
)

// InvalidAmountError reports a monetary value that cannot be represented in
// the fixed-point wire format.
type InvalidAmountError struct {
	Value float64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount: %v", e.Value)
}

// MissingConfigError reports a session parameter that is absent from both the
// explicit call arguments and the ambient source.
type MissingConfigError struct {
	Field string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing configuration: %s", e.Field)
}

// MissingArgumentError reports an operation-specific required field that the
// caller did not supply. It is raised before any network call is made.
type MissingArgumentError struct {
	Field string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument: %s", e.Field)
}

// UnknownOperationError reports an operation with no endpoint mapping.
type UnknownOperationError struct {
	Op Operation
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation: %s", e.Op)
}

// StatusError reports a non-200 HTTP response from the service. Code and
// Message are filled from the response body when it decodes as an error
// payload; both are empty otherwise.
//
// In-band domain statuses (Status.StatusCode inside a 200 response) are never
// converted to a StatusError; they are returned to the caller as data.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("service returned HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("service returned HTTP %d", e.StatusCode)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
