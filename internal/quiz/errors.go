package quiz

import "errors"

var (
	// ErrNotFound is returned when a quiz or result id does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when required fields are missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrForbidden is returned when an authenticated actor is not allowed to
	// mutate the target quiz.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthenticated is returned when an operation requires a valid actor
	// and none was supplied.
	ErrUnauthenticated = errors.New("unauthenticated")
)
