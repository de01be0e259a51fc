package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"phone":    "must be a valid phone number",
	"notpast":  "must be today or a future date",
	"hhmm":     "must be a valid time (HH:MM)",
	"slot":     "must be one of the available appointment times",
	"datetime": "must be a valid date",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for visitors
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientPageNotFound                  = "the page you are looking for does not exist"

	ErrClientNetworkError     = "Network error: Unable to connect to server. Please check your internet connection and try again."
	ErrClientEndpointNotFound = "API endpoint not found. The server may be down or the URL is incorrect."
	ErrClientServerError      = "Server error occurred. Please try again in a few minutes."
	ErrClientUnexpected       = "An unexpected error occurred. Please try again."
	ErrClientContactFallback  = "Sorry, there was an error sending your message. Please try again or contact us directly via email."
)

// Field validation messages
const (
	ErrFieldRequiredFormat = "%s is required"
	ErrFieldInvalidEmail   = "Please enter a valid email address"
	ErrFieldInvalidPhone   = "Please enter a valid phone number"
	ErrFieldPastDate       = "Please select a future date"
	ErrFieldInvalidTime    = "Please enter a valid time (HH:MM)"
	ErrFieldInvalidSlot    = "Please choose one of the available appointment times"
	ErrFieldFillInFormat   = "Please fill in the %s"

	ErrContactInvalidName    = "Please enter a valid name (at least 2 characters)."
	ErrContactInvalidEmail   = "Please enter a valid email address."
	ErrContactMissingSubject = "Please select a subject for your message."
	ErrContactShortMessage   = "Please enter a message (at least 10 characters)."

	ErrProfileNothingToUpdate    = "Please change at least one field before saving."
	ErrRescheduleNothingToUpdate = "Please choose a new date or time for your appointment."
)

// Error messages for developers
const (
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseForm          = "cannot parse form body"
	ErrDevCannotRenderTemplate     = "cannot render template %s"
	ErrDevCannotRenderContent      = "cannot render page content %s"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevMissingSessionID         = "visitor session id missing from context"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevAPINetwork               = "no response received from %s %s"
	ErrDevAPITimeout               = "request to %s %s timed out"
	ErrDevAPIUnauthorized          = "%s %s responded 401, stored token cleared"
	ErrDevAPINotFound              = "%s %s responded 404"
	ErrDevAPIServer                = "%s %s responded %d"
	ErrDevAPIClient                = "%s %s responded %d"
	ErrDevAPIDecodeResponse        = "cannot decode response of %s %s"
	ErrDevAPIRateLimited           = "outbound API rate limiter refused the request"
	ErrDevAPIMissingToken          = "authentication response did not include a token"
	ErrDevAPIMissingAppointment    = "response did not include the appointment"
	ErrDevAPIMissingUser           = "response did not include the user"
	ErrDevRedisGetData             = "failed to get data from redis"
	ErrDevRedisSetData             = "failed to set data to redis"
	ErrDevRedisDeleteData          = "failed to delete data from redis"
	ErrDevRabbitMQPublishMessage   = "failed to publish message to queue %s"
	ErrDevBackendHealthCheckFailed = "backend health check failed"
)
