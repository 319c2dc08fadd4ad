// Package apperr defines the error taxonomy shared by the service layer.
// Each kind pairs a sentinel (for errors.Is classification at the HTTP
// boundary) with a struct type carrying the failure details.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound               = errors.New("resource not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrAccessDenied           = errors.New("access denied")
	ErrInvalidState           = errors.New("invalid state")
	ErrInvalidStateTransition = errors.New("invalid state transition")
)

// NotFoundError reports a missing user, restaurant, menu item or order.
type NotFoundError struct {
	Resource string
	ID       any
}

func NewNotFound(resource string, id any) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	if e.ID == nil {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s not found: %v", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidInputError reports a business-rule violation in the request payload,
// e.g. an empty cart, an inactive restaurant or an unavailable menu item.
type InvalidInputError struct {
	Reason string
}

func NewInvalidInput(reason string) *InvalidInputError {
	return &InvalidInputError{Reason: reason}
}

func (e *InvalidInputError) Error() string { return "invalid input: " + e.Reason }

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// UnauthorizedError reports a role or ownership mismatch on a mutation.
type UnauthorizedError struct {
	Reason string
}

func NewUnauthorized(reason string) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason}
}

func (e *UnauthorizedError) Error() string { return "unauthorized: " + e.Reason }

func (e *UnauthorizedError) Unwrap() error { return ErrUnauthorized }

// AccessDeniedError reports a failed permission check on a read path.
type AccessDeniedError struct {
	Reason string
}

func NewAccessDenied(reason string) *AccessDeniedError {
	return &AccessDeniedError{Reason: reason}
}

func (e *AccessDeniedError) Error() string { return "access denied: " + e.Reason }

func (e *AccessDeniedError) Unwrap() error { return ErrAccessDenied }

// InvalidStateError reports an action-specific precondition failure,
// e.g. cancelling an order that is no longer cancellable.
type InvalidStateError struct {
	Reason string
}

func NewInvalidState(reason string) *InvalidStateError {
	return &InvalidStateError{Reason: reason}
}

func (e *InvalidStateError) Error() string { return "invalid state: " + e.Reason }

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// InvalidStateTransitionError reports a state machine violation. It names the
// current status, the requested status and the actor role.
type InvalidStateTransitionError struct {
	From string
	To   string
	Role string
}

func NewInvalidStateTransition(from, to, role string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{From: from, To: to, Role: role}
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition: %s -> %s is not allowed for role %s", e.From, e.To, e.Role)
}

func (e *InvalidStateTransitionError) Unwrap() error { return ErrInvalidStateTransition }
