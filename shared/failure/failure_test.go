package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"salon/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "MissingBookingIntent",
			failure: failure.MissingBookingIntent,
			code:    http.StatusBadRequest,
			message: "no booking selected",
		},
		{
			name:    "MalformedBookingIntent",
			failure: failure.MalformedBookingIntent,
			code:    http.StatusBadRequest,
			message: "stored booking selection is malformed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
				return
			}

			var fail *failure.Failure
			if !errors.As(result, &fail) {
				t.Fatalf("expected *failure.Failure, got %T", result)
			}
			if fail.Code != http.StatusBadRequest {
				t.Errorf("expected code %d, got %d", http.StatusBadRequest, fail.Code)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "Unauthorized", err: failure.Unauthorized("no token"), code: http.StatusUnauthorized},
		{name: "Forbidden", err: failure.Forbidden("admins only"), code: http.StatusForbidden},
		{name: "NotFound", err: failure.NotFound("stylist not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("slot already taken"), code: http.StatusConflict},
		{name: "InternalError", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
		{name: "MalformedResponse", err: failure.MalformedResponse(errors.New("unexpected EOF")), code: http.StatusBadGateway},
		{name: "FromStatus", err: failure.FromStatus(http.StatusTeapot, "short and stout"), code: http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestFromStatus_EmptyMessage(t *testing.T) {
	err := failure.FromStatus(http.StatusServiceUnavailable, "")

	if err.Error() != http.StatusText(http.StatusServiceUnavailable) {
		t.Errorf("expected status text fallback, got %s", err.Error())
	}
}

func TestGetCode_UnknownError(t *testing.T) {
	if code := failure.GetCode(errors.New("plain")); code != http.StatusInternalServerError {
		t.Errorf("expected %d for non-failure errors, got %d", http.StatusInternalServerError, code)
	}
}

func TestIsMalformedResponse(t *testing.T) {
	malformed := failure.MalformedResponse(errors.New("missing field"))

	if !failure.IsMalformedResponse(malformed) {
		t.Error("expected malformed-response failure to be detected")
	}

	wrapped := fmt.Errorf("decoding stylists: %w", malformed)
	if !failure.IsMalformedResponse(wrapped) {
		t.Error("expected wrapped malformed-response failure to be detected")
	}

	if failure.IsMalformedResponse(failure.Conflict("taken")) {
		t.Error("conflict must not be reported as malformed response")
	}
}
