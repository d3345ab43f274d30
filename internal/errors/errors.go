// Package errors provides centralized error definitions and error handling utilities
// for the signup client. It defines the failure kinds of the three network
// operations (catalog fetch, sign-up, removal), sentinel errors, and
// classification helpers used to turn failures into feedback text.
//
// # Error Types
//
// Domain-specific errors represent the operation that failed:
//   - FetchError: the activity catalog could not be loaded or decoded
//   - SignupError: a sign-up was rejected or never reached the server
//   - RemovalError: a participant removal was rejected or never reached the server
//
// Each carries the HTTP status and the server's "detail" text when a
// response was received. A StatusCode of zero means there was no usable
// response at all (transport failure or an undecodable body).
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewSignupError("sign-up rejected", errors.ErrSignupRejected).
//	    WithActivity("Chess Club").
//	    WithEmail("a@example.com").
//	    WithResponse(400, "Student already signed up")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrSignupRejected) { ... }
//
//	var signupErr *errors.SignupError
//	if errors.As(err, &signupErr) { ... }
//
//	// Feedback text
//	text := errors.DetailOr(err, "An error occurred")
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Catalog-related sentinel errors
var (
	// ErrCatalogUnavailable indicates that the activity catalog could not be loaded.
	ErrCatalogUnavailable = New("activity catalog unavailable")
	// ErrCatalogMalformed indicates that the catalog response could not be decoded.
	ErrCatalogMalformed = New("activity catalog malformed")
)

// Mutation-related sentinel errors
var (
	// ErrSignupRejected indicates that the server answered a sign-up with a failure status.
	ErrSignupRejected = New("sign-up rejected")
	// ErrSignupFailed indicates that a sign-up produced no usable response.
	ErrSignupFailed = New("sign-up request failed")
	// ErrRemovalRejected indicates that the server answered a removal with a failure status.
	ErrRemovalRejected = New("removal rejected")
	// ErrRemovalFailed indicates that a removal produced no usable response.
	ErrRemovalFailed = New("removal request failed")
)

// General sentinel errors
var (
	// ErrTimeout indicates that an operation timed out.
	ErrTimeout = New("operation timed out")
	// ErrCanceled indicates that an operation was canceled.
	ErrCanceled = New("operation canceled")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// SignupClientError is the base interface for all errors in this package.
type SignupClientError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the error is transient and the operation
	// may succeed when the user triggers it again.
	IsRetryable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsRetryable returns whether the error is retryable.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// Response holds what the server said about a failed request.
// StatusCode is zero when no usable response was received.
type Response struct {
	StatusCode int
	Detail     string
	RequestID  string
}

// HasResponse reports whether the server answered with a decodable body.
func (r *Response) HasResponse() bool {
	return r.StatusCode != 0
}

func (r *Response) contextParts() []string {
	var parts []string
	if r.StatusCode != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", r.StatusCode))
	}
	if r.RequestID != "" {
		parts = append(parts, fmt.Sprintf("request=%s", r.RequestID))
	}
	return parts
}

func (r *Response) response() *Response {
	return r
}

// responder is implemented by every error embedding Response.
type responder interface {
	response() *Response
}

func formatError(kind string, parts []string, message string, cause error) string {
	prefix := kind
	if len(parts) > 0 {
		prefix = fmt.Sprintf("%s [%s]", kind, strings.Join(parts, ", "))
	}
	if cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, message, cause)
	}
	return fmt.Sprintf("%s: %s", prefix, message)
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// FetchError represents a failure to load the activity catalog.
//
// Example:
//
//	err := errors.NewFetchError("load activities", ioErr).WithURL("http://localhost:8000/activities")
//	fmt.Println(err) // "fetch error [url=http://localhost:8000/activities]: load activities: ..."
type FetchError struct {
	baseError
	Response
	URL string
}

// NewFetchError creates a new FetchError.
func NewFetchError(message string, cause error) *FetchError {
	return &FetchError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  true,
			userFacing: false,
		},
	}
}

// WithURL adds the requested URL to the error context.
func (e *FetchError) WithURL(url string) *FetchError {
	e.URL = url
	return e
}

// WithStatus records the HTTP status of the failed fetch.
func (e *FetchError) WithStatus(code int) *FetchError {
	e.StatusCode = code
	return e
}

// WithRequestID records the request correlation ID.
func (e *FetchError) WithRequestID(id string) *FetchError {
	e.RequestID = id
	return e
}

// Error returns the formatted error message.
func (e *FetchError) Error() string {
	var parts []string
	if e.URL != "" {
		parts = append(parts, fmt.Sprintf("url=%s", e.URL))
	}
	parts = append(parts, e.contextParts()...)
	return formatError("fetch error", parts, e.message, e.cause)
}

// Is checks if this error matches the target.
func (e *FetchError) Is(target error) bool {
	if _, ok := target.(*FetchError); ok {
		return true
	}
	if target == ErrCatalogUnavailable {
		return true
	}
	return e.baseError.Is(target)
}

// SignupError represents a failed sign-up.
//
// Example:
//
//	err := errors.NewSignupError("sign-up rejected", errors.ErrSignupRejected).
//	    WithActivity("Chess Club").WithResponse(400, "Activity full")
type SignupError struct {
	baseError
	Response
	Activity string
	Email    string
}

// NewSignupError creates a new SignupError.
func NewSignupError(message string, cause error) *SignupError {
	return &SignupError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithActivity adds the activity name to the error context.
func (e *SignupError) WithActivity(name string) *SignupError {
	e.Activity = name
	return e
}

// WithEmail adds the participant email to the error context.
func (e *SignupError) WithEmail(email string) *SignupError {
	e.Email = email
	return e
}

// WithResponse records the server's status and detail text.
func (e *SignupError) WithResponse(code int, detail string) *SignupError {
	e.StatusCode = code
	e.Detail = detail
	return e
}

// WithRequestID records the request correlation ID.
func (e *SignupError) WithRequestID(id string) *SignupError {
	e.RequestID = id
	return e
}

// Error returns the formatted error message.
func (e *SignupError) Error() string {
	parts := mutationParts(e.Activity, e.Email)
	parts = append(parts, e.contextParts()...)
	msg := e.message
	if e.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Detail)
	}
	return formatError("signup error", parts, msg, e.cause)
}

// Is checks if this error matches the target.
func (e *SignupError) Is(target error) bool {
	if _, ok := target.(*SignupError); ok {
		return true
	}
	switch target {
	case ErrSignupRejected:
		return e.HasResponse()
	case ErrSignupFailed:
		return !e.HasResponse()
	}
	return e.baseError.Is(target)
}

// RemovalError represents a failed participant removal.
//
// Example:
//
//	err := errors.NewRemovalError("removal rejected", errors.ErrRemovalRejected).
//	    WithActivity("Chess Club").WithEmail("a@example.com").WithResponse(404, "Activity not found")
type RemovalError struct {
	baseError
	Response
	Activity string
	Email    string
}

// NewRemovalError creates a new RemovalError.
func NewRemovalError(message string, cause error) *RemovalError {
	return &RemovalError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithActivity adds the activity name to the error context.
func (e *RemovalError) WithActivity(name string) *RemovalError {
	e.Activity = name
	return e
}

// WithEmail adds the participant email to the error context.
func (e *RemovalError) WithEmail(email string) *RemovalError {
	e.Email = email
	return e
}

// WithResponse records the server's status and detail text.
func (e *RemovalError) WithResponse(code int, detail string) *RemovalError {
	e.StatusCode = code
	e.Detail = detail
	return e
}

// WithRequestID records the request correlation ID.
func (e *RemovalError) WithRequestID(id string) *RemovalError {
	e.RequestID = id
	return e
}

// Error returns the formatted error message.
func (e *RemovalError) Error() string {
	parts := mutationParts(e.Activity, e.Email)
	parts = append(parts, e.contextParts()...)
	msg := e.message
	if e.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Detail)
	}
	return formatError("removal error", parts, msg, e.cause)
}

// Is checks if this error matches the target.
func (e *RemovalError) Is(target error) bool {
	if _, ok := target.(*RemovalError); ok {
		return true
	}
	switch target {
	case ErrRemovalRejected:
		return e.HasResponse()
	case ErrRemovalFailed:
		return !e.HasResponse()
	}
	return e.baseError.Is(target)
}

func mutationParts(activity, email string) []string {
	var parts []string
	if activity != "" {
		parts = append(parts, fmt.Sprintf("activity=%s", activity))
	}
	if email != "" {
		parts = append(parts, fmt.Sprintf("email=%s", email))
	}
	return parts
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error represents a transient condition
// that may succeed when the user triggers the action again. Nothing in
// this client retries automatically.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var clientErr SignupClientError
	if As(err, &clientErr) {
		return clientErr.IsRetryable()
	}

	return Is(err, ErrTimeout)
}

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var clientErr SignupClientError
	if As(err, &clientErr) {
		return clientErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement SignupClientError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var clientErr SignupClientError
	if As(err, &clientErr) {
		return clientErr.Severity()
	}

	return SeverityError
}

// HasResponse reports whether err carries a decoded server response.
func HasResponse(err error) bool {
	var r responder
	if As(err, &r) {
		return r.response().HasResponse()
	}
	return false
}

// StatusCode returns the HTTP status carried by err, or zero.
func StatusCode(err error) int {
	var r responder
	if As(err, &r) {
		return r.response().StatusCode
	}
	return 0
}

// DetailOr returns the server's detail text carried by err, or fallback
// when there was no response or the response had no detail.
//
// Example:
//
//	text := errors.DetailOr(err, "An error occurred")
func DetailOr(err error, fallback string) string {
	var r responder
	if As(err, &r) {
		if resp := r.response(); resp.HasResponse() && resp.Detail != "" {
			return resp.Detail
		}
	}
	return fallback
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to process request")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
