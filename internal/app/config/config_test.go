package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAPIBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		override string
		hostname string
		env      string
		expected string
	}{
		{
			name:     "Override Wins",
			override: "https://staging.example.org/api",
			hostname: "localhost",
			env:      "development",
			expected: "https://staging.example.org/api",
		},
		{
			name:     "Localhost",
			hostname: "localhost",
			env:      "production",
			expected: "http://localhost:5001/api",
		},
		{
			name:     "Loopback",
			hostname: "127.0.0.1",
			env:      "production",
			expected: "http://localhost:5001/api",
		},
		{
			name:     "Development Environment",
			hostname: "shrm.example.org",
			env:      "development",
			expected: "http://localhost:5001/api",
		},
		{
			name:     "Production",
			hostname: "safehavenrestorationministries.com",
			env:      "production",
			expected: "https://shrm-server-production.up.railway.app/api",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveAPIBaseURL(tt.override, tt.hostname, tt.env))
		})
	}
}

func TestNewInternalConfig(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_HOSTNAME", "safehavenrestorationministries.com")
	t.Setenv("SHRM_API_URL", "")
	t.Setenv("API_TIMEOUT_IN_SECONDS", "15")
	t.Setenv("APP_ALLOWED_ORIGINS", " https://a.example.org, ,https://b.example.org")
	t.Setenv("APP_TRUST_PROXY_HEADERS", "true")

	internalConfig := NewInternalConfig()

	assert.Equal(t, "https://shrm-server-production.up.railway.app/api", internalConfig.API.BaseURL)
	assert.Equal(t, 15, internalConfig.API.TimeoutInSeconds)
	assert.True(t, internalConfig.Session.SecureCookie)
	assert.Equal(t, []string{"https://a.example.org", "https://b.example.org"}, internalConfig.App.AllowedOrigins)
	assert.True(t, internalConfig.App.TrustProxyHeaders)
}
