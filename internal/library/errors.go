package library

import "errors"

// Authentication errors.
var (
	// ErrMalformedToken means the backend returned a token whose
	// payload could not be decoded. No session is established; the
	// client never substitutes a guessed identity.
	ErrMalformedToken = errors.New("malformed authentication token")

	// ErrAuthRejected means the backend rejected the credentials.
	ErrAuthRejected = errors.New("authentication rejected")
)

// Backend errors.
var (
	// ErrBackendUnavailable means the backend could not be reached.
	ErrBackendUnavailable = errors.New("library backend unavailable")

	// ErrBackendRejected means the backend answered with a GraphQL
	// error for a non-authentication operation.
	ErrBackendRejected = errors.New("request rejected by backend")
)
