package responses

import "time"

type AppointmentSummary struct {
	AppointmentID string    `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	PatientName   string    `json:"patient_name"`
	Email         string    `json:"email"`
	SlotDisplay   string    `json:"slot_display"`
	Diet          string    `json:"diet"`
	Mode          string    `json:"mode"`
	Status        string    `json:"status"`
	LastUpdated   time.Time `json:"last_updated,omitempty"`
}
