package backend

import "github.com/biblio-project/bibctl/internal/library"

// RejectedError is a backend-issued GraphQL error. The reason is the
// backend's human-readable message and is shown to the user.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return "backend rejected request: " + e.Reason
}

// Is lets callers match against the taxonomy sentinel.
func (e *RejectedError) Is(target error) bool {
	return target == library.ErrBackendRejected
}

// UnavailableError is a transport-level failure reaching the backend.
type UnavailableError struct {
	cause error
}

func (e *UnavailableError) Error() string {
	return library.ErrBackendUnavailable.Error() + ": " + e.cause.Error()
}

func (e *UnavailableError) Unwrap() error { return e.cause }

func (e *UnavailableError) Is(target error) bool {
	return target == library.ErrBackendUnavailable
}
