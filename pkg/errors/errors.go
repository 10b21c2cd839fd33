package errors

import (
	"errors"
	"fmt"
)

// Configuration errors

var (
	// ErrMissingAPIKey indicates a required provider API key is not set
	ErrMissingAPIKey = errors.New("API key is not set")

	// ErrInvalidInput indicates invalid input parameters
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrInternal indicates an internal error
	ErrInternal = errors.New("internal error")
)

// Agent execution errors

var (
	// ErrAgentNotFound indicates the requested agent is not registered
	ErrAgentNotFound = errors.New("agent not found")

	// ErrToolNotFound indicates a tool name could not be resolved
	ErrToolNotFound = errors.New("tool not found")

	// ErrModelNotFound indicates the provider does not offer the model
	ErrModelNotFound = errors.New("model not found")

	// ErrProviderNotFound indicates no provider is registered under the name
	ErrProviderNotFound = errors.New("provider not found")

	// ErrNoFinalResponse indicates the run ended without a final response
	ErrNoFinalResponse = errors.New("agent did not produce a final response")

	// ErrRunTimeout indicates the agent run exceeded its deadline
	ErrRunTimeout = errors.New("agent run timed out")
)

// Guardrail errors

var (
	// ErrInputGuardrailTripped indicates the input guardrail blocked the run
	ErrInputGuardrailTripped = errors.New("input guardrail tripwire triggered")

	// ErrOutputGuardrailTripped indicates the output guardrail blocked the response
	ErrOutputGuardrailTripped = errors.New("output guardrail tripwire triggered")

	// ErrRateLimitExceeded indicates the client-side model rate limit was hit
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)

// DomainError wraps an error with additional context
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions

// Is checks if err is or wraps target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

func New(message string) error {
	return errors.New(message)
}

func Newf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
