// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "errors"

var (
	// ErrUnauthenticated means the requester is anonymous. For voting the
	// handler layer turns this into a sign-in redirect, not an error page.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden means the requester is authenticated but is not the
	// poll's owner.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means the referenced poll does not exist.
	ErrNotFound = errors.New("poll not found")

	// ErrPollExpired means the poll's voting window has closed.
	ErrPollExpired = errors.New("poll has expired")
)

// ValidationError reports a missing or malformed input field. The request
// is never partially applied when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(message string) error {
	return &ValidationError{Message: message}
}
