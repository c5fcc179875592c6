package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusKinds = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// StatusError is a non-2xx answer of the note server. Message is the
// trimmed response body, one of the app.Msg* strings for known failures.
type StatusError struct {
	Code    int
	Message string
}

// NewStatusError builds the error the adapter returns for code and body.
func NewStatusError(code int, body string) *StatusError {
	return &StatusError{Code: code, Message: strings.TrimSpace(body)}
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Code)
	}
	if kind, ok := statusKinds[e.Code]; ok {
		return kind.Error() + ": " + msg
	}
	return fmt.Sprintf("http %d: %s", e.Code, msg)
}

// Unwrap returns the sentinel of the status class, so errors.Is(err,
// ErrConflict) holds for a 409.
func (e *StatusError) Unwrap() error {
	return statusKinds[e.Code]
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return NewStatusError(resp.StatusCode(), string(resp.Body()))
}
