package errors

import "fmt"

var (
	ErrNoToken          = fmt.Errorf("no session token stored")
	ErrUnauthorized     = fmt.Errorf("session rejected by server")
	ErrPasswordTooShort = fmt.Errorf("password must contain at least 6 characters")
	ErrPasswordMismatch = fmt.Errorf("passwords do not match")
	ErrInvalidEmail     = fmt.Errorf("invalid email address")
	ErrEmptyMessage     = fmt.Errorf("message is empty")
	ErrEmptyRoomName    = fmt.Errorf("room name is empty")
	ErrMissingRoomID    = fmt.Errorf("missing room identifier")
	ErrWorkerPanic      = fmt.Errorf("worker panicked")
)

// DefaultDetail is used when an error body carries no detail field
// or cannot be parsed at all.
const DefaultDetail = "request failed"

// RequestError carries the human-readable detail returned by the backend
// for any non-2xx, non-204, non-401 response.
type RequestError struct {
	StatusCode int
	Detail     string
}

func NewRequestError(statusCode int, detail string) *RequestError {
	if detail == "" {
		detail = DefaultDetail
	}
	return &RequestError{StatusCode: statusCode, Detail: detail}
}

func (e *RequestError) Error() string {
	return e.Detail
}
