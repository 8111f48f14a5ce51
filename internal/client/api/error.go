package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"classtrack/internal/common"
)

// Error is returned for any response with a non-2xx status. Message holds
// the server-provided "error" field when the body carried one; Body keeps
// the raw payload for callers that want more than the message.
type Error struct {
	Status  int
	Message string
	Body    []byte
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// Unwrap maps well-known statuses onto sentinel errors so callers can use
// errors.Is without inspecting status codes.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	}
	return nil
}

// errorBody is the error envelope the server uses for all failures.
type errorBody struct {
	Error string `json:"error"`
}

func newError(status int, body []byte) *Error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)
	return &Error{Status: status, Message: eb.Error, Body: body}
}
