package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

var (
	ErrTokenNotFound = errors.New("token not found")
	ErrNotPriced     = errors.New("client: select at least one slot and wait for the price before submitting")
	ErrNoHold        = errors.New("client: no payment in progress")
)

// APIError is every non-2xx response, whatever shape the server used for it.
type APIError struct {
	Status  int
	Message string
	Details []string
}

func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}

	return e.Message + ": " + strings.Join(e.Details, "; ")
}

func IsRateLimited(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.Status == http.StatusTooManyRequests
}

func decodeError(status int, body []byte) error {
	var payload struct {
		Error   string   `json:"error"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	}

	_ = json.Unmarshal(body, &payload)

	msg := payload.Error
	if msg == "" {
		msg = payload.Message
	}

	if msg == "" {
		msg = http.StatusText(status)
	}

	return &APIError{
		Status:  status,
		Message: msg,
		Details: payload.Details,
	}
}
