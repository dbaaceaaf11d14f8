package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingFhirUrlKey        = "fhir_url"
	LoggingPatientIDKey      = "patient_id"
	LoggingPersonIDKey       = "person_id"
	LoggingSlotIDKey         = "slot_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingResponseCountKey  = "response_count"
	LoggingResponseLengthKey = "response_length"
	LoggingEmailKey          = "email"
)
