package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingSessionKeyKey  = "session_key"
	LoggingQueryParamsKey = "query_params"
	LoggingResponseKey    = "response"
	LoggingRequestKey     = "request"
	LoggingBirthDateKey   = "birth_date"
	LoggingPatientIDKey   = "patient_id"
	LoggingResultCountKey = "result_count"
	LoggingTotalKey       = "total"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingDurationKey   = "duration"
	LoggingStatusCodeKey = "status_code"
	LoggingSuccessKey    = "success"
)
