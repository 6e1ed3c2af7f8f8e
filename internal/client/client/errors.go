package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks transport failures: DNS, refused connection,
	// timeout, cancelled context.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized matches an *APIError carrying 401 or 403.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrBadResponse marks a 2xx response whose body could not be decoded.
	ErrBadResponse = errors.New("malformed response")
)

// APIError is a non-2xx answer from the API. Message is the backend's
// "message" field and may be empty.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api error: %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}

// MessageOf returns the backend-supplied message carried by err, or "" when
// err is not an *APIError or the backend sent none.
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// IsAPIError reports whether err came back from the server as a non-2xx
// response, as opposed to a transport or decoding failure.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
