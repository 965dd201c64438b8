package api

import "fmt"

// AuthError represents a credential rejection or registration conflict
// reported by the backend. The message is the server-supplied one so it
// can be shown to the user verbatim.
type AuthError struct {
	// Message is the server-supplied rejection message
	Message string
}

// Error implements the error interface
func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication rejected"
	}
	return fmt.Sprintf("authentication rejected: %s", e.Message)
}

// ResourceError represents a non-2xx response to a CRUD call.
type ResourceError struct {
	// Status is the HTTP status code returned by the backend
	Status int

	// Message is the server-supplied error message, if any
	Message string
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Status, e.Message)
}

// TransportError represents a request for which no response was
// obtained: the network was unreachable, the connection was refused, or
// the transport timed out.
type TransportError struct {
	// Err is the underlying transport error
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError represents a response body that could not be
// decoded into the expected shape.
type MalformedResponseError struct {
	// Err is the underlying decode error
	Err error
}

// Error implements the error interface
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
