package api

import (
	"errors"
	"testing"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    Kind
		wantMessage string
	}{
		{
			name:        "401 becomes auth expired",
			status:      401,
			body:        `{"detail":"token expired"}`,
			wantKind:    KindAuthExpired,
			wantMessage: "token expired",
		},
		{
			name:        "403 becomes forbidden",
			status:      403,
			body:        `{"detail":"admin only"}`,
			wantKind:    KindForbidden,
			wantMessage: "admin only",
		},
		{
			name:        "404 becomes not found",
			status:      404,
			body:        `{"detail":"not found"}`,
			wantKind:    KindNotFound,
			wantMessage: "not found",
		},
		{
			name:        "409 becomes conflict",
			status:      409,
			body:        `{"detail":"already exists"}`,
			wantKind:    KindConflict,
			wantMessage: "already exists",
		},
		{
			name:        "400 becomes validation",
			status:      400,
			body:        `{"detail":"bad request"}`,
			wantKind:    KindValidation,
			wantMessage: "bad request",
		},
		{
			name:        "422 with detail array falls back to generic message",
			status:      422,
			body:        `{"detail":[{"loc":["body","email"],"msg":"value is not a valid email address"}]}`,
			wantKind:    KindValidation,
			wantMessage: "request failed",
		},
		{
			name:        "500 becomes server",
			status:      500,
			body:        `{"detail":"boom"}`,
			wantKind:    KindServer,
			wantMessage: "boom",
		},
		{
			name:        "503 becomes server",
			status:      503,
			body:        ``,
			wantKind:    KindServer,
			wantMessage: "request failed",
		},
		{
			name:        "418 becomes unknown",
			status:      418,
			body:        `short and stout`,
			wantKind:    KindUnknown,
			wantMessage: "request failed",
		},
		{
			name:        "non-json body keeps fallback message",
			status:      404,
			body:        `<html>not here</html>`,
			wantKind:    KindNotFound,
			wantMessage: "request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapStatus(tt.status, []byte(tt.body))

			if got.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", got.Kind, tt.wantKind)
			}
			if got.Status != tt.status {
				t.Errorf("status = %d, want %d", got.Status, tt.status)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", got.Message, tt.wantMessage)
			}
			if string(got.Payload) != tt.body {
				t.Errorf("payload = %q, want body preserved verbatim", got.Payload)
			}
		})
	}
}

func TestMapStatusIsPure(t *testing.T) {
	body := []byte(`{"detail":"not found"}`)

	first := mapStatus(404, body)
	second := mapStatus(404, body)

	if first.Kind != second.Kind || first.Status != second.Status || first.Message != second.Message {
		t.Errorf("mapStatus is not deterministic: %v vs %v", first, second)
	}

	// Mutating the input must not reach through to an already built error.
	body[2] = 'x'
	if string(first.Payload) == string(body) {
		t.Error("payload aliases the caller's buffer")
	}
}

func TestIsKind(t *testing.T) {
	err := error(&Error{Kind: KindNotFound, Status: 404, Message: "not found"})

	if !IsKind(err, KindNotFound) {
		t.Error("expected IsKind to match KindNotFound")
	}
	if IsKind(err, KindServer) {
		t.Error("expected IsKind to reject a different kind")
	}
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Error("expected IsKind to reject a non-api error")
	}
}
