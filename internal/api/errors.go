package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx reply from the backend.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error: %d", e.StatusCode)
	}
	return fmt.Sprintf("API error: %d: %s", e.StatusCode, e.Message)
}

// StatusCode extracts the HTTP status of an API error, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// The backend sends {"message": "..."} or, for validation failures,
// {"message": ["...", "..."]}.
type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

func newError(status int, body []byte) *Error {
	e := &Error{StatusCode: status}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return e
	}

	var single string
	var many []string
	switch {
	case json.Unmarshal(eb.Message, &single) == nil:
		e.Message = single
	case json.Unmarshal(eb.Message, &many) == nil:
		e.Message = strings.Join(many, "; ")
	default:
		e.Message = eb.Error
	}
	return e
}
