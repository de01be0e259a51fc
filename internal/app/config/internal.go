package config

type InternalConfig struct {
	App     App
	API     API
	Session Session
	Metrics Metrics
}

type App struct {
	Env                        string
	Port                       string
	Hostname                   string
	Version                    string
	Timezone                   string
	AllowedOrigins             []string
	MaxRequests                int
	MaxTimeRequestsPerSeconds  int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
	FormSubmissionsPerMinute   int
	FormBlockTimeInMinutes     int
	// TrustProxyHeaders keys rate limits on X-Real-IP and X-Forwarded-For.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxyHeaders          bool
}

// API configures the client of the counseling backend.
type API struct {
	BaseURL            string
	TimeoutInSeconds   int
	RateLimitPerSecond int
	RateLimitBurst     int
}

type Session struct {
	CookieName   string
	TTLInHours   int
	SecureCookie bool
}

type Metrics struct {
	Enabled   bool
	Namespace string
}
