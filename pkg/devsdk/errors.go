package devsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx answer from the service. Msg is set for {msg}
// bodies, Errors for {errors:[...]} bodies.
type APIError struct {
	StatusCode int
	Msg        string
	Errors     []ErrorItem
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.Msg != "":
		return fmt.Sprintf("devconnector: %d: %s", e.StatusCode, e.Msg)
	case len(e.Errors) > 0:
		msgs := make([]string, 0, len(e.Errors))
		for _, item := range e.Errors {
			msgs = append(msgs, item.Msg)
		}
		return fmt.Sprintf("devconnector: %d: %s", e.StatusCode, strings.Join(msgs, "; "))
	default:
		return fmt.Sprintf("devconnector: %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
}

// Messages returns every message carried by the error, in order.
func (e *APIError) Messages() []string {
	if e.Msg != "" {
		return []string{e.Msg}
	}
	out := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		out = append(out, item.Msg)
	}
	return out
}

// HasMessage reports whether msg is one of the error's messages.
func (e *APIError) HasMessage(msg string) bool {
	for _, m := range e.Messages() {
		if m == msg {
			return true
		}
	}
	return false
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// parseErrorResponse turns a non-2xx response body into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var shape struct {
		Msg    string      `json:"msg"`
		Errors []ErrorItem `json:"errors"`
	}
	if err := json.Unmarshal(body, &shape); err == nil {
		apiErr.Msg = shape.Msg
		apiErr.Errors = shape.Errors
	}

	return apiErr
}
