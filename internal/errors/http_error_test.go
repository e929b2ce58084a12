package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      *HTTPError
		code     int
		expected string
	}{
		{
			name:     "bad request",
			err:      ErrBadRequest("employees is required"),
			code:     http.StatusBadRequest,
			expected: "employees is required",
		},
		{
			name:     "bad request with detail",
			err:      ErrBadRequest("Invalid JSON in request body").WithDetail("unexpected EOF"),
			code:     http.StatusBadRequest,
			expected: "Invalid JSON in request body: unexpected EOF",
		},
		{
			name:     "method not allowed",
			err:      ErrMethodNotAllowed(),
			code:     http.StatusMethodNotAllowed,
			expected: "Method not allowed. Please use POST.",
		},
		{
			name:     "internal",
			err:      ErrInternal("boom"),
			code:     http.StatusInternalServerError,
			expected: "Internal server error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestWithDetailDoesNotMutate(t *testing.T) {
	base := ErrBadRequest("bad")
	_ = base.WithDetail("x")
	assert.Empty(t, base.Detail)
}
