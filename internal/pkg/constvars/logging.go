package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionIDKey      = "session_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingOperationKey      = "operation"
	LoggingErrorKindKey      = "error_kind"
	LoggingFormKey           = "form"
	LoggingPhaseKey          = "phase"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingQueueKey          = "queue"
	LoggingPageKey           = "page"
	LoggingResponseLengthKey = "response_length"
)
