package responses

type Booking struct {
	AppointmentID string `json:"appointment_id"`
}
