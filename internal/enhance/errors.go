package enhance

import "fmt"

// BudgetError is returned when a call would exceed the call or token budget
type BudgetError struct {
	Message string
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("budget exceeded: %s", e.Message)
}

// SchemaError is returned when the target schema cannot be used as a response format
type SchemaError struct {
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid response schema: %s", e.Message)
}

// TimeoutError is returned when the provider did not answer in time or the caller gave up
type TimeoutError struct {
	Timeout string
	Cause   error
}

func (e *TimeoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("timed out after %s: %v", e.Timeout, e.Cause)
	}
	return fmt.Sprintf("timed out after %s", e.Timeout)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// TransportError wraps a provider failure, including a recovered panic
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("provider call failed: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ResponseParseError is returned when the response content is not JSON
type ResponseParseError struct {
	Cause error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Cause)
}

func (e *ResponseParseError) Unwrap() error {
	return e.Cause
}

// ValidationError is returned when the response does not match the schema
type ValidationError struct {
	Cause error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("response did not match schema: %v", e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// AdapterError is returned when a valid response yields nothing usable
type AdapterError struct {
	Message string
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("unusable response: %s", e.Message)
}
