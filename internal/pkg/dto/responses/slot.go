package responses

type Slot struct {
	ID      string `json:"id"`
	Display string `json:"display"`
	Start   string `json:"start,omitempty"`
}
