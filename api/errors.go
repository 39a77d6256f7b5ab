package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sciencehub/hubctl/normalize"
)

// Error is a non-2xx response from the backend. Message is the server's
// error text when one could be extracted from the body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

func (e *Error) IsUnauthorized() bool { return e.Status == http.StatusUnauthorized }
func (e *Error) IsForbidden() bool    { return e.Status == http.StatusForbidden }
func (e *Error) IsNotFound() bool     { return e.Status == http.StatusNotFound }

// newError extracts the server message from an error body, which arrives
// under varying keys like everything else.
func newError(status int, body any) *Error {
	msg := ""
	if raw, ok := normalize.AsRaw(normalize.UnwrapData(body)); ok {
		msg = normalize.String(raw, "", "message", "Message", "error", "Error", "detail", "title")
	} else if s, ok := body.(string); ok {
		msg = s
	}
	return &Error{Status: status, Message: msg}
}

// AsError unwraps err to an *Error when the failure came from the backend
// rather than the transport.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
