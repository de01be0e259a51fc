package config

import (
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", true),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:         utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:            utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:            utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username:        utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password:        utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			SubmissionQueue: utils.GetEnvString("RABBITMQ_SUBMISSION_QUEUE", "shrm.form.submissions"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	env := utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
	hostname := utils.GetEnvString("APP_HOSTNAME", constvars.HostnameLocalhost)

	return &InternalConfig{
		App: App{
			Env:                        env,
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Hostname:                   hostname,
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "America/Chicago"),
			AllowedOrigins:             splitCSV(utils.GetEnvString("APP_ALLOWED_ORIGINS", "")),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			FormSubmissionsPerMinute:   utils.GetEnvInt("APP_FORM_SUBMISSIONS_PER_MINUTE", 5),
			FormBlockTimeInMinutes:     utils.GetEnvInt("APP_FORM_BLOCK_TIME_IN_MINUTES", 5),
			TrustProxyHeaders:          utils.GetEnvBool("APP_TRUST_PROXY_HEADERS", false),
		},
		API: API{
			BaseURL:            ResolveAPIBaseURL(utils.GetEnvString("SHRM_API_URL", ""), hostname, env),
			TimeoutInSeconds:   utils.GetEnvInt("API_TIMEOUT_IN_SECONDS", 15),
			RateLimitPerSecond: utils.GetEnvInt("API_RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     utils.GetEnvInt("API_RATE_LIMIT_BURST", 40),
		},
		Session: Session{
			CookieName:   utils.GetEnvString("SESSION_COOKIE_NAME", "shrm_session"),
			TTLInHours:   utils.GetEnvInt("SESSION_TTL_IN_HOURS", 24),
			SecureCookie: env == constvars.AppEnvProduction,
		},
		Metrics: Metrics{
			Enabled:   utils.GetEnvBool("METRICS_ENABLED", true),
			Namespace: utils.GetEnvString("METRICS_NAMESPACE", "shrm"),
		},
	}
}

// ResolveAPIBaseURL picks the backend base URL once at startup. An explicit
// override always wins; a local hostname or a development environment points
// at the local backend, anything else at production.
func ResolveAPIBaseURL(override, hostname, env string) string {
	if override != "" {
		return override
	}
	if env == constvars.AppEnvDevelopment ||
		hostname == constvars.HostnameLocalhost ||
		hostname == constvars.HostnameLoopback {
		return constvars.APIBaseURLDevelopment
	}
	return constvars.APIBaseURLProduction
}

func splitCSV(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
