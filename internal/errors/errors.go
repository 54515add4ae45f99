package errors

import "net/http"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Constructors for the outcome kinds the services produce.
// The status code doubles as the taxonomy kind; the transport
// layer writes it out as-is.

func InvalidInput(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusBadRequest}
}

func Unauthenticated(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusUnauthorized}
}

func Forbidden(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusForbidden}
}

func NotFound(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusNotFound}
}

func Conflict(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusConflict}
}

// InvalidOperation marks requests that are well-formed but can never
// succeed, like inviting yourself as a moderator.
func InvalidOperation(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusUnprocessableEntity}
}

// NotModified is the idempotence short-circuit: the update is a no-op
// because the new value equals the current one. Not a failure.
func NotModified(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusNotModified}
}

func statusIs(err error, code int) bool {
	if e, ok := err.(*ErrorWithStatusCode); ok {
		return e.StatusCode == code
	}
	return false
}

func IsNotFound(err error) bool     { return statusIs(err, http.StatusNotFound) }
func IsForbidden(err error) bool    { return statusIs(err, http.StatusForbidden) }
func IsConflict(err error) bool     { return statusIs(err, http.StatusConflict) }
func IsNotModified(err error) bool  { return statusIs(err, http.StatusNotModified) }
func IsInvalidInput(err error) bool { return statusIs(err, http.StatusBadRequest) }
