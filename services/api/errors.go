package apisvc

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// Error is a non-success backend response. Message carries the server's
// wording verbatim so pages can surface it untouched.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode)
}

func (e *Error) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func newError(status int, message string, raw []byte) error {
	if message == "" {
		// older endpoints put the message under "error"
		var alt struct {
			Err string `json:"error"`
		}
		if json.Unmarshal(raw, &alt) == nil {
			message = alt.Err
		}
	}
	return &Error{StatusCode: status, Message: message}
}

// AsError unwraps an *Error from err's cause chain.
func AsError(err error) (*Error, bool) {
	apiErr, ok := errors.Cause(err).(*Error)
	return apiErr, ok
}
