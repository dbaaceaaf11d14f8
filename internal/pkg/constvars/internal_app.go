package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CRSLT_SVC_"
)

// Sentinel values the mappers fall back to when upstream data is missing.
// These must never be empty so the front end always has something to render.
const (
	SentinelUnknown         = "unknown"
	SentinelNotProvided     = "not provided"
	SentinelNotRecorded     = "not recorded"
	SentinelSlotUnspecified = "unspecified"
)

// SlotRawTimeFormat renders a Slot start when the catalog has no label.
// The suffix marks the value as derived from raw upstream data.
const (
	SlotRawTimeFormat = "1/2 15:04"
	SlotRawTimeSuffix = " (raw time)"
)

const (
	DefaultRecentAppointmentCount = 20
)
