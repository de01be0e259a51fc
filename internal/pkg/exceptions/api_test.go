package exceptions

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrAPIResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		kind       ErrorKind
		redirectTo string
	}{
		{name: "Unauthorized", statusCode: 401, kind: KindAuth, redirectTo: "/login"},
		{name: "Not Found", statusCode: 404, kind: KindNotFound},
		{name: "Internal Server Error", statusCode: 500, kind: KindServer},
		{name: "Bad Gateway", statusCode: 502, kind: KindServer},
		{name: "Bad Request", statusCode: 400, kind: KindGeneric},
		{name: "Conflict", statusCode: 409, kind: KindGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := ErrAPIResponse("POST", "/appointments", tt.statusCode, "server says no")

			assert.Equal(t, tt.kind, apiErr.Kind)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, tt.redirectTo, apiErr.RedirectTo)
			assert.Equal(t, "server says no", apiErr.ServerMessage)
		})
	}
}

func TestAPIErrorHelpers(t *testing.T) {
	t.Run("Wrapped Unauthorized", func(t *testing.T) {
		err := fmt.Errorf("loading profile: %w", ErrAPIResponse("GET", "/users/profile", 401, ""))

		assert.True(t, IsUnauthorized(err))
		assert.False(t, IsNetworkError(err))
		apiErr, ok := AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, "/login", apiErr.RedirectTo)
	})

	t.Run("Network Timeout", func(t *testing.T) {
		cause := errors.New("context deadline exceeded")
		err := ErrAPINetwork(cause, "GET", "/health", true)

		assert.True(t, IsNetworkError(err))
		assert.True(t, err.Timeout)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "timed out")
	})

	t.Run("Plain Error", func(t *testing.T) {
		_, ok := AsAPIError(errors.New("boom"))
		assert.False(t, ok)
		assert.False(t, IsUnauthorized(nil))
	})
}

func TestBuildNewCustomError(t *testing.T) {
	t.Run("Wraps Cause", func(t *testing.T) {
		cause := errors.New("redis down")
		err := ErrRedisGet(cause)

		assert.Equal(t, 500, err.StatusCode)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.DevMessage, "redis down")
		require.Len(t, err.Locations, 1)
		assert.Contains(t, err.Locations[0].FunctionName, "TestBuildNewCustomError")
	})

	t.Run("Rewrapping Appends Location", func(t *testing.T) {
		first := ErrServerProcess(errors.New("boom"))
		second := ErrServerProcess(first)

		assert.Same(t, first, second)
		assert.Len(t, second.Locations, 2)
	})
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("submit: %w", ErrFieldValidation("email", "Please enter a valid email address"))

	validationErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "email", validationErr.Field)
	assert.Equal(t, "Please enter a valid email address", validationErr.Error())
}
