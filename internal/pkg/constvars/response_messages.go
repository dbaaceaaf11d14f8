package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Registration messages
	RegisterPatientSuccessMessage = "patient registered successfully"

	// Booking messages
	CreateBookingSuccessMessage = "appointment booked successfully"

	// Listing messages
	GetSlotsSuccessMessage                = "get slots successfully"
	GetPatientDirectorySuccessMessage     = "get patients successfully"
	GetAppointmentSummariesSuccessMessage = "get appointments successfully"
)
