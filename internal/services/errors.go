package services

import (
	"errors"
	"fmt"
)

// Error kinds returned by the proxy pipeline
var (
	// ErrClientInput is returned when the request body is malformed or incomplete
	ErrClientInput = errors.New("client input error")

	// ErrRouting is returned for a wrong method or an unknown path
	ErrRouting = errors.New("routing error")

	// ErrConfiguration is returned when a required credential is not configured
	ErrConfiguration = errors.New("configuration error")

	// ErrUpstream is returned when the upstream API fails or cannot be reached
	ErrUpstream = errors.New("upstream error")

	// ErrContractViolation is returned when a 2xx upstream response lacks the expected payload
	ErrContractViolation = errors.New("contract violation")
)

// ProxyError carries a client-facing message together with its kind and cause
type ProxyError struct {
	Kind    error  // One of the Err* kinds above
	Op      string // Integration or step that failed
	Message string // Message returned to the client
	Err     error  // Underlying error, if any
}

// Error implements the error interface
func (e *ProxyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error
func (e *ProxyError) Unwrap() error {
	return e.Err
}

// Is matches the error kind as well as the wrapped error
func (e *ProxyError) Is(target error) bool {
	return e.Kind == target
}

func newProxyError(kind error, op, message string, err error) *ProxyError {
	return &ProxyError{Kind: kind, Op: op, Message: message, Err: err}
}

// NewClientInputError creates a 400-class error
func NewClientInputError(op, message string, err error) *ProxyError {
	return newProxyError(ErrClientInput, op, message, err)
}

// NewRoutingError creates a 405-class error
func NewRoutingError(op, message string) *ProxyError {
	return newProxyError(ErrRouting, op, message, nil)
}

// NewConfigurationError creates an error for a missing setting
func NewConfigurationError(op, setting string) *ProxyError {
	return newProxyError(ErrConfiguration, op, fmt.Sprintf("Server configuration error: %s is not set", setting), nil)
}

// NewUpstreamError creates a 502-class error
func NewUpstreamError(op, message string, err error) *ProxyError {
	return newProxyError(ErrUpstream, op, message, err)
}

// NewContractViolationError creates an error for a 2xx response missing its payload
func NewContractViolationError(op, message string, err error) *ProxyError {
	return newProxyError(ErrContractViolation, op, message, err)
}

// ClientMessage returns the message safe to show to clients.
// Errors that are not a ProxyError are reported as unexpected.
func ClientMessage(err error) string {
	var proxyErr *ProxyError
	if errors.As(err, &proxyErr) {
		return proxyErr.Message
	}
	return "Internal server error: " + err.Error()
}
