package constvars

const (
	ResourcePerson      = "Person"
	ResourcePatient     = "Patient"
	ResourceAppointment = "Appointment"
	ResourceSlot        = "Slot"
	ResourceBundle      = "Bundle"
)

const (
	FhirSlotStatusFree            = "free"
	FhirSlotStatusBusy            = "busy"
	FhirSlotStatusBusyUnavailable = "busy-unavailable"
	FhirSlotStatusBusyTentative   = "busy-tentative"
	FhirSlotStatusEnteredInError  = "entered-in-error"
)

const (
	FhirAppointmentStatusBooked    = "booked"
	FhirAppointmentStatusProposed  = "proposed"
	FhirAppointmentStatusPending   = "pending"
	FhirAppointmentStatusFulfilled = "fulfilled"
	FhirAppointmentStatusCancelled = "cancelled"
)

const (
	FhirParticipantStatusAccepted    = "accepted"
	FhirParticipantStatusDeclined    = "declined"
	FhirParticipantStatusTentative   = "tentative"
	FhirParticipantStatusNeedsAction = "needs-action"
)

const (
	FhirTelecomSystemEmail = "email"
	FhirTelecomSystemPhone = "phone"
	FhirTelecomUseHome     = "home"
	FhirTelecomUseMobile   = "mobile"
)

const (
	FhirGenderUnknown = "unknown"
)

// Extension and identifier system URLs this service reads and writes.
const (
	FhirExtensionDietUrl      = "http://example.org/fhir/diet"
	FhirExtensionModeUrl      = "http://example.org/fhir/mode"
	FhirIdentifierEmailSystem = "http://example.org/fhir/email"
)

const (
	FhirIncludeAppointmentPatient = "Appointment:patient"
	FhirIncludeAppointmentSlot    = "Appointment:slot"
)
