package responses

type Registration struct {
	PatientID string `json:"patient_id"`
	PersonID  string `json:"person_id"`
}
