package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as classification anchors for errors.Is.
var (
	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrObjectNotFound      = errors.New("object not found")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrPermissionDenied    = errors.New("permission denied")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ValueIsRequiredError indicates a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// DuplicateObjectError indicates a value that must be unique already exists,
// such as a username taken at registration.
type DuplicateObjectError struct {
	ParamName string
	Value     string
	Cause     error
}

// NewDuplicateObjectError creates a DuplicateObjectError for the named parameter and value.
func NewDuplicateObjectError(paramName string, value string) *DuplicateObjectError {
	return &DuplicateObjectError{ParamName: paramName, Value: value}
}

// NewDuplicateObjectErrorWithCause creates a DuplicateObjectError wrapping an underlying cause.
func NewDuplicateObjectErrorWithCause(paramName string, value string, cause error) *DuplicateObjectError {
	return &DuplicateObjectError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *DuplicateObjectError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, value is: %s (cause: %s)",
			ErrObjectAlreadyExists, e.ParamName, e.Value, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, e.Value))
}

func (e *DuplicateObjectError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// NotAuthenticatedError indicates the caller's identity could not be established:
// a missing or unknown token, or bad credentials at login.
type NotAuthenticatedError struct {
	Reason string
	Cause  error
}

// NewNotAuthenticatedError creates a NotAuthenticatedError with the given reason.
func NewNotAuthenticatedError(reason string) *NotAuthenticatedError {
	return &NotAuthenticatedError{Reason: reason}
}

// NewNotAuthenticatedErrorWithCause creates a NotAuthenticatedError wrapping an underlying cause.
func NewNotAuthenticatedErrorWithCause(reason string, cause error) *NotAuthenticatedError {
	return &NotAuthenticatedError{Reason: reason, Cause: cause}
}

func (e *NotAuthenticatedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrNotAuthenticated, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrNotAuthenticated, e.Reason))
}

func (e *NotAuthenticatedError) Unwrap() error {
	return ErrNotAuthenticated
}

// PermissionDeniedError indicates an authenticated identity holds a role
// that is not in the operation's allowed set.
type PermissionDeniedError struct {
	Operation string
	Role      string
}

// NewPermissionDeniedError creates a PermissionDeniedError for the operation and offending role.
func NewPermissionDeniedError(operation string, role string) *PermissionDeniedError {
	return &PermissionDeniedError{Operation: operation, Role: role}
}

func (e *PermissionDeniedError) Error() string {
	return sanitize(fmt.Sprintf("%s: role %s may not perform %s", ErrPermissionDenied, e.Role, e.Operation))
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}
