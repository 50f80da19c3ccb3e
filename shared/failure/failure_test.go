package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	assert.Equal(t, "test error message", f.Error())
}

func TestPredefinedFailures(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, failure.ForbiddenError.Code)
}

func TestBadRequest(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))

	err := failure.BadRequest(errors.New("bad payload"))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, "bad payload", err.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request from string", err: failure.BadRequestFromString("invalid"), code: http.StatusBadRequest, message: "invalid"},
		{name: "invalid range", err: failure.InvalidRange("bad range"), code: http.StatusBadRequest, message: "bad range"},
		{name: "unauthorized", err: failure.Unauthorized("no token"), code: http.StatusUnauthorized, message: "no token"},
		{name: "not found", err: failure.NotFound("booking not found"), code: http.StatusNotFound, message: "booking not found"},
		{name: "conflict", err: failure.Conflict("room already booked"), code: http.StatusConflict, message: "room already booked"},
		{name: "invalid state", err: failure.InvalidState("booking is cancelled"), code: http.StatusUnprocessableEntity, message: "booking is cancelled"},
		{name: "forbidden", err: failure.Forbidden("access denied"), code: http.StatusForbidden, message: "access denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure

			assert.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Message)
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{name: "failure error", input: &failure.Failure{Code: http.StatusBadRequest, Message: "test"}, expected: http.StatusBadRequest},
		{name: "wrapped failure error", input: fmt.Errorf("create booking: %w", failure.Conflict("taken")), expected: http.StatusConflict},
		{name: "regular error", input: errors.New("regular error"), expected: http.StatusInternalServerError},
		{name: "nil error", input: nil, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}

func TestIsFailure(t *testing.T) {
	assert.True(t, failure.IsFailure(fmt.Errorf("wrapped: %w", failure.NotFound("room not found"))))
	assert.False(t, failure.IsFailure(errors.New("connection reset")))
}
