package requests

type CreateBooking struct {
	PatientID string `json:"patientId" validate:"required"`
	SlotID    string `json:"slotId" validate:"required"`
	Diet      string `json:"diet,omitempty"`
	Mode      string `json:"mode,omitempty"`
}
