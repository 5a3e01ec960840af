package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"royalpalace/shared/failure"
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

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("missing authorization header"),
			code:    http.StatusUnauthorized,
			message: "missing authorization header",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("users can only cancel their own bookings"),
			code:    http.StatusForbidden,
			message: "users can only cancel their own bookings",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("booking"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("booking is already cancelled"),
			code:    http.StatusConflict,
			message: "booking is already cancelled",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("check-out date must be after check-in date"),
			code:    http.StatusBadRequest,
			message: "check-out date must be after check-in date",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("connection refused")),
			code:    http.StatusInternalServerError,
			message: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if failure.GetCode(tt.err) != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, failure.GetCode(tt.err))
			}
			if tt.err.Error() != tt.message {
				t.Errorf("expected message to be %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestGetCode_NotAFailure(t *testing.T) {
	if code := failure.GetCode(errors.New("plain error")); code != http.StatusInternalServerError {
		t.Errorf("expected code to be 500, got %d", code)
	}
}

func TestGetCode_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("updating booking: %w", failure.NotFound("booking"))
	if code := failure.GetCode(wrapped); code != http.StatusNotFound {
		t.Errorf("expected code to be 404, got %d", code)
	}
}

func TestIs(t *testing.T) {
	err := failure.Conflict("no transition out of a terminal status")

	if !failure.Is(err, http.StatusConflict) {
		t.Error("expected Is to match conflict code")
	}

	if failure.Is(err, http.StatusNotFound) {
		t.Error("expected Is not to match other codes")
	}
}
