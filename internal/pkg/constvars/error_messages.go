package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"numeric":  "must be a number",
	"datetime": "must be a valid date",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientEmailAlreadyRegistered        = "this email is already registered"
	ErrClientFhirServerRejected            = "the FHIR server rejected the request"
)

// Error messages for developers
const (
	ErrDevValidationFailed       = "Validation failed"
	ErrDevInvalidInput           = "Invalid input"
	ErrDevCannotParseJSON        = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON      = "Failed to marshal JSON payload"
	ErrDevCreateHTTPRequest      = "Failed to create HTTP request"
	ErrDevSendHTTPRequest        = "Failed to send HTTP request"
	ErrDevReadResponseBody       = "Failed to read response body"
	ErrDevDecodeResponse         = "Failed to decode %s response"
	ErrDevGetFHIRResource        = "Failed to fetch %s resource from FHIR server"
	ErrDevCreateFHIRResource     = "Failed to create %s resource on FHIR server"
	ErrDevUpdateFHIRResource     = "Failed to update %s resource on FHIR server"
	ErrDevEmailAlreadyExists     = "A Person with this email identifier already exists"
	ErrDevAdminPasswordInvalid   = "Admin password query parameter missing or wrong"
	ErrDevMissingRequestID       = "Request ID missing from request context"
	ErrDevServerDeadlineExceeded = "Server deadline exceeded while awaiting upstream"
	ErrDevMissingResourceID      = "FHIR server response carried no resource id"
)
