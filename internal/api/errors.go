package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a client failure so callers can react without matching on
// status codes or message strings.
type Kind string

const (
	// KindNetwork means the transport could not complete the exchange.
	KindNetwork Kind = "network"
	// KindAuthExpired means the session could not be salvaged: the refresh
	// token was absent, the refresh failed, or a retried request still came
	// back unauthorized.
	KindAuthExpired Kind = "auth_expired"
	// KindValidation covers 400 and 422 responses.
	KindValidation Kind = "validation"
	// KindForbidden covers 403 responses.
	KindForbidden Kind = "forbidden"
	// KindNotFound covers 404 responses.
	KindNotFound Kind = "not_found"
	// KindConflict covers 409 responses.
	KindConflict Kind = "conflict"
	// KindServer covers 5xx responses.
	KindServer Kind = "server"
	// KindCancelled means the caller's context was cancelled.
	KindCancelled Kind = "cancelled"
	// KindUnknown covers everything else.
	KindUnknown Kind = "unknown"
)

const fallbackMessage = "request failed"

// Error is the typed failure returned by every client operation. Status is 0
// when no HTTP response was received. Payload holds the raw response body
// verbatim for caller inspection.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Payload json.RawMessage
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// errorBody is the backend's error envelope. detail carries a string for
// most failures and an array of field errors for 422 responses.
type errorBody struct {
	Detail any `json:"detail"`
}

// mapStatus converts a non-success HTTP response into an *Error. It has no
// side effects; the body is preserved verbatim on the returned error.
func mapStatus(status int, body []byte) *Error {
	var kind Kind
	switch {
	case status == http.StatusUnauthorized:
		kind = KindAuthExpired
	case status == http.StatusForbidden:
		kind = KindForbidden
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status == http.StatusConflict:
		kind = KindConflict
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		kind = KindValidation
	case status >= 500:
		kind = KindServer
	default:
		kind = KindUnknown
	}

	message := fallbackMessage
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if detail, ok := parsed.Detail.(string); ok && detail != "" {
			message = detail
		}
	}

	return &Error{
		Kind:    kind,
		Status:  status,
		Message: message,
		Payload: append(json.RawMessage(nil), body...),
	}
}

// transportError maps a failure that produced no HTTP response at all.
// Caller cancellation is distinguished from genuine transport trouble.
func transportError(err error) *Error {
	if errors.Is(err, context.Canceled) {
		return &Error{Kind: KindCancelled, Message: "request cancelled"}
	}
	return &Error{Kind: KindNetwork, Message: err.Error()}
}
