package responses

type PatientSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
